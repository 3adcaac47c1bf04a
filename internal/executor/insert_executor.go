package executor

import (
	"github.com/toysql/toydb/internal/domain/data"
	"github.com/toysql/toydb/internal/domain/dberr"
	"github.com/toysql/toydb/internal/domain/schema"
	"github.com/toysql/toydb/internal/parser/ast"
)

// executeInsert appends one row built from the statement's column/value
// pairs. Unlike the other statements an existing-but-empty table is a valid
// target here: presence in the store is what counts, not row count.
func executeInsert(stmt *ast.InsertStatement, db *schema.Database) (*Result, error) {
	table, err := db.Get(stmt.Table)
	if err != nil {
		return nil, err
	}

	// Strict positional pairing: a length mismatch fails the whole insert,
	// nothing is truncated.
	if len(stmt.Columns) != len(stmt.Values) {
		return nil, &dberr.ColumnValueMismatchError{
			Table:   stmt.Table,
			Columns: len(stmt.Columns),
			Values:  len(stmt.Values),
		}
	}

	row := make(data.Row, len(stmt.Columns))
	for i, col := range stmt.Columns {
		row[col] = stmt.Values[i]
	}
	table.Append(row)

	return &Result{
		Message:      "INSERT 1",
		RowsAffected: 1,
	}, nil
}
