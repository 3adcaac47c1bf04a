// Package dberr defines the error taxonomy shared by the parser, the
// predicate compiler and the execution engine. Every error is fatal to the
// single statement that raised it; the engine performs no retries and no
// partial recovery.
package dberr

import "fmt"

// ParseError reports that a statement did not match any known grammar,
// or matched a leading keyword but had a malformed body.
type ParseError struct {
	Statement string // offending statement text
	Reason    string // human-readable explanation (optional)
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("parse error: %s", e.Reason)
	}
	return "parse error: query did not match any known operation"
}

// PredicateError reports a malformed WHERE clause or an unsupported
// comparison operator.
type PredicateError struct {
	Clause   string // the full clause text
	Operator string // offending operator token (empty if the clause shape is wrong)
}

func (e *PredicateError) Error() string {
	if e.Operator != "" {
		return fmt.Sprintf("unsupported operator in WHERE condition: %s", e.Operator)
	}
	return fmt.Sprintf("unsupported WHERE condition: %s", e.Clause)
}

// TableExistsError reports a duplicate CreateTable.
type TableExistsError struct {
	Table string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("table '%s' already exists", e.Table)
}

// TableNotFoundError reports a statement referencing a table absent from the
// store. For SELECT, UPDATE and DELETE an existing but empty table raises the
// same error, since the lookup treats an empty row sequence as missing.
type TableNotFoundError struct {
	Table string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table '%s' does not exist", e.Table)
}

// ColumnValueMismatchError reports an INSERT whose column and value lists
// have different lengths. Pairing is strict; nothing is truncated.
type ColumnValueMismatchError struct {
	Table   string
	Columns int
	Values  int
}

func (e *ColumnValueMismatchError) Error() string {
	return fmt.Sprintf("insert into '%s': column count (%d) does not match value count (%d)",
		e.Table, e.Columns, e.Values)
}

// RowKeyError reports a predicate or projection referencing a column that is
// absent on a specific row. Surfaced during execution, never at parse time.
type RowKeyError struct {
	Column string
}

func (e *RowKeyError) Error() string {
	return fmt.Sprintf("row has no column '%s'", e.Column)
}
