package executor

import (
	"fmt"
	"sort"

	"github.com/toysql/toydb/internal/domain/data"
	"github.com/toysql/toydb/internal/domain/dberr"
	"github.com/toysql/toydb/internal/domain/schema"
	"github.com/toysql/toydb/internal/parser/ast"
)

// executeSelect runs the filter → sort → project pipeline. The pipeline is
// all-or-nothing: any evaluation or projection error aborts before a result
// is returned, and the store is never mutated.
func executeSelect(stmt *ast.SelectStatement, db *schema.Database) (*Result, error) {
	table, err := db.Lookup(stmt.Table)
	if err != nil {
		return nil, err
	}

	var rows []data.Row
	if stmt.Where == nil {
		rows = table.Scan()
	} else {
		for _, row := range table.Rows {
			ok, err := stmt.Where.Eval(row)
			if err != nil {
				return nil, err
			}
			if ok {
				rows = append(rows, row)
			}
		}
	}

	if stmt.OrderBy != "" {
		if err := sortRows(rows, stmt.OrderBy); err != nil {
			return nil, err
		}
	}

	columns := stmt.Columns
	if !selectAll(stmt.Columns) {
		projected := make([]data.Row, len(rows))
		for i, row := range rows {
			projRow, err := projectRow(row, stmt.Columns)
			if err != nil {
				return nil, err
			}
			projected[i] = projRow
		}
		rows = projected
	} else {
		columns = table.Columns
	}

	return &Result{
		Columns: columns,
		Rows:    rows,
		Message: fmt.Sprintf("Returned %d rows", len(rows)),
	}, nil
}

// sortRows stable-sorts ascending by the order column's text value, so ties
// keep their insertion order. Every row must carry the column. The reorder
// applies to the result slice only; the stored table keeps insertion order.
func sortRows(rows []data.Row, column string) error {
	for _, row := range rows {
		if _, ok := row[column]; !ok {
			return &dberr.RowKeyError{Column: column}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i][column] < rows[j][column]
	})
	return nil
}

// projectRow restricts a row to the requested columns, in requested order
// of iteration. A requested column absent from the row is an error.
func projectRow(row data.Row, columns []string) (data.Row, error) {
	projected := make(data.Row, len(columns))
	for _, col := range columns {
		v, ok := row[col]
		if !ok {
			return nil, &dberr.RowKeyError{Column: col}
		}
		projected[col] = v
	}
	return projected, nil
}

// selectAll reports whether the column list is exactly the "*" sentinel.
func selectAll(columns []string) bool {
	return len(columns) == 1 && columns[0] == "*"
}
