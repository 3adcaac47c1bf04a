package executor

import (
	"fmt"

	"github.com/toysql/toydb/internal/domain/schema"
	"github.com/toysql/toydb/internal/parser/ast"
)

// executeDelete rebuilds the table without the matching rows, preserving
// the survivors' relative order. No WHERE clause means delete every row.
func executeDelete(stmt *ast.DeleteStatement, db *schema.Database) (*Result, error) {
	table, err := db.Lookup(stmt.Table)
	if err != nil {
		return nil, err
	}

	removed, err := table.DeleteWhere(stmt.Where)
	if err != nil {
		return nil, err
	}

	return &Result{
		Message:      fmt.Sprintf("DELETE %d", removed),
		RowsAffected: removed,
	}, nil
}
