// Package executor applies parsed statements to the table store.
package executor

import (
	"fmt"

	"github.com/toysql/toydb/internal/domain/data"
	"github.com/toysql/toydb/internal/domain/schema"
	"github.com/toysql/toydb/internal/parser/ast"
)

// Result is the outcome of one executed statement. Rows is populated for
// SELECT only; mutating statements report a message and an affected count.
type Result struct {
	Columns      []string   `json:"columns,omitempty"`
	Rows         []data.Row `json:"rows,omitempty"`
	Message      string     `json:"message,omitempty"`
	RowsAffected int        `json:"rows_affected,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// Execute dispatches a statement to its executor. The statement set is
// closed, so the type switch is exhaustive; the default arm guards against
// a variant the parser cannot currently produce.
func Execute(stmt ast.Statement, db *schema.Database) (*Result, error) {
	switch s := stmt.(type) {
	case *ast.SelectStatement:
		return executeSelect(s, db)
	case *ast.InsertStatement:
		return executeInsert(s, db)
	case *ast.UpdateStatement:
		return executeUpdate(s, db)
	case *ast.DeleteStatement:
		return executeDelete(s, db)
	default:
		return nil, fmt.Errorf("unsupported statement type: %T", stmt)
	}
}
