package data

// Row represents a single table row.
// Key = column name, Value = cell value as stored text.
// Values are never coerced to numbers or booleans; quote characters
// captured during parsing are kept verbatim.
type Row map[string]string

// Copy creates an independent copy of the row to prevent shared mutation.
func (r Row) Copy() Row {
	cp := make(Row, len(r))
	for k, v := range r {
		cp[k] = v
	}
	return cp
}
