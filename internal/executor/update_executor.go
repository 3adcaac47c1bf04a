package executor

import (
	"fmt"

	"github.com/toysql/toydb/internal/domain/schema"
	"github.com/toysql/toydb/internal/parser/ast"
)

// executeUpdate mutates matching rows in place. Mutation is visible to
// later reads of the same table. If the predicate fails on a row mid-scan,
// rows mutated before it stay mutated; that sharp edge is reported, not
// masked.
func executeUpdate(stmt *ast.UpdateStatement, db *schema.Database) (*Result, error) {
	table, err := db.Lookup(stmt.Table)
	if err != nil {
		return nil, err
	}

	affected, err := table.Update(stmt.Where, stmt.Assignments)
	if err != nil {
		return nil, err
	}

	return &Result{
		Message:      fmt.Sprintf("UPDATE %d", affected),
		RowsAffected: affected,
	}, nil
}
