package ast

import (
	"bytes"
	"sort"
	"strings"

	"github.com/toysql/toydb/internal/predicate"
)

// Statement represents one parsed instruction ready for execution. The set
// of implementations is closed: Select, Insert, Update, Delete.
type Statement interface {
	// Keyword returns the statement's leading keyword.
	Keyword() string
	String() string
	statementNode()
}

// SelectStatement: SELECT col1, col2 FROM table [WHERE cond] [ORDER BY col]
type SelectStatement struct {
	Columns []string // ["*"] means all columns
	Table   string
	Where   *predicate.Predicate // nil when no WHERE clause
	OrderBy string               // empty when no ORDER BY clause
}

func (s *SelectStatement) statementNode()  {}
func (s *SelectStatement) Keyword() string { return "SELECT" }
func (s *SelectStatement) String() string {
	var out bytes.Buffer
	out.WriteString("SELECT ")
	out.WriteString(strings.Join(s.Columns, ", "))
	out.WriteString(" FROM ")
	out.WriteString(s.Table)
	if s.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(s.Where.String())
	}
	if s.OrderBy != "" {
		out.WriteString(" ORDER BY ")
		out.WriteString(s.OrderBy)
	}
	return out.String()
}

// InsertStatement: INSERT INTO table (col1, col2) VALUES (val1, val2)
//
// Values hold the raw captured text, surrounding quotes included. Columns
// and Values are positionally paired; the parser does not check the counts,
// insert execution does.
type InsertStatement struct {
	Table   string
	Columns []string
	Values  []string
}

func (s *InsertStatement) statementNode()  {}
func (s *InsertStatement) Keyword() string { return "INSERT" }
func (s *InsertStatement) String() string {
	var out bytes.Buffer
	out.WriteString("INSERT INTO ")
	out.WriteString(s.Table)
	out.WriteString(" (")
	out.WriteString(strings.Join(s.Columns, ", "))
	out.WriteString(") VALUES (")
	out.WriteString(strings.Join(s.Values, ", "))
	out.WriteString(")")
	return out.String()
}

// UpdateStatement: UPDATE table SET col=val, ... [WHERE cond]
//
// Assignment keys are unique and order is irrelevant; values keep their raw
// captured text.
type UpdateStatement struct {
	Table       string
	Assignments map[string]string
	Where       *predicate.Predicate
}

func (s *UpdateStatement) statementNode()  {}
func (s *UpdateStatement) Keyword() string { return "UPDATE" }
func (s *UpdateStatement) String() string {
	cols := make([]string, 0, len(s.Assignments))
	for col := range s.Assignments {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	var out bytes.Buffer
	out.WriteString("UPDATE ")
	out.WriteString(s.Table)
	out.WriteString(" SET ")
	for i, col := range cols {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(col)
		out.WriteString(" = ")
		out.WriteString(s.Assignments[col])
	}
	if s.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(s.Where.String())
	}
	return out.String()
}

// DeleteStatement: DELETE FROM table [WHERE cond]
//
// A nil Where means unconditional delete: every row goes.
type DeleteStatement struct {
	Table string
	Where *predicate.Predicate
}

func (s *DeleteStatement) statementNode()  {}
func (s *DeleteStatement) Keyword() string { return "DELETE" }
func (s *DeleteStatement) String() string {
	var out bytes.Buffer
	out.WriteString("DELETE FROM ")
	out.WriteString(s.Table)
	if s.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(s.Where.String())
	}
	return out.String()
}
