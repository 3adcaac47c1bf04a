package schema

import (
	"github.com/toysql/toydb/internal/domain/data"
	"github.com/toysql/toydb/internal/predicate"
)

// Table holds an ordered sequence of rows. Columns records the names given
// at creation time; it is documentation only and is never consulted by
// execution, so a row's key set may legally differ from it.
type Table struct {
	Name    string
	Columns []string
	Rows    []data.Row
}

// Scan returns the table's rows in insertion order. The slice is a copy so
// callers may reorder it freely; the row maps themselves are shared.
func (t *Table) Scan() []data.Row {
	rows := make([]data.Row, len(t.Rows))
	copy(rows, t.Rows)
	return rows
}

// Append adds a row at the end of the table.
func (t *Table) Append(row data.Row) {
	t.Rows = append(t.Rows, row)
}

// Update mutates, in table order, every row matching pred (a nil pred
// matches all rows), setting each assignment column to its value. Columns
// absent from a matching row are created. Returns the number of rows
// touched.
//
// A predicate evaluation error aborts the scan mid-way: rows already
// mutated stay mutated. That partial state is part of the contract and is
// reported to the caller via the error.
func (t *Table) Update(pred *predicate.Predicate, assignments map[string]string) (int, error) {
	affected := 0
	for _, row := range t.Rows {
		if pred != nil {
			ok, err := pred.Eval(row)
			if err != nil {
				return affected, err
			}
			if !ok {
				continue
			}
		}
		for col, val := range assignments {
			row[col] = val
		}
		affected++
	}
	return affected, nil
}

// DeleteWhere rebuilds the table keeping only the rows that fail pred,
// preserving their relative order. A nil pred deletes every row. Unlike
// Update, evaluation errors abort before the table is replaced, so the
// store is untouched on failure. Returns the number of rows removed.
func (t *Table) DeleteWhere(pred *predicate.Predicate) (int, error) {
	var kept []data.Row
	if pred != nil {
		for _, row := range t.Rows {
			ok, err := pred.Eval(row)
			if err != nil {
				return 0, err
			}
			if !ok {
				kept = append(kept, row)
			}
		}
	}
	removed := len(t.Rows) - len(kept)
	t.Rows = kept
	return removed, nil
}
