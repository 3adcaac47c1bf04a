// Package parser turns statement text into typed AST nodes. It recognizes
// exactly four grammars, dispatched on the case-insensitive leading keyword;
// identifiers and literals stay case-sensitive and literal values keep any
// surrounding quote characters verbatim.
package parser

import (
	"fmt"
	"strings"

	"github.com/toysql/toydb/internal/domain/dberr"
	"github.com/toysql/toydb/internal/parser/ast"
	"github.com/toysql/toydb/internal/predicate"
)

// Parse converts a statement string into a Statement. Parsing fails with a
// *dberr.ParseError when no grammar matches, and with the compiler's
// *dberr.PredicateError when a WHERE clause is present but malformed.
func Parse(text string) (ast.Statement, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimSpace(strings.TrimSuffix(body, ";"))

	s := newScanner(body)
	switch {
	case s.matchKeyword("SELECT"):
		return parseSelect(s, text)
	case s.matchKeyword("INSERT"):
		return parseInsert(s, text)
	case s.matchKeyword("UPDATE"):
		return parseUpdate(s, text)
	case s.matchKeyword("DELETE"):
		return parseDelete(s, text)
	default:
		// Unrecognized leading keyword: fail immediately, no guessing.
		return nil, &dberr.ParseError{Statement: text}
	}
}

// parseSelect matches: SELECT <columns> FROM <table> [WHERE <cond>] [ORDER BY <column>]
func parseSelect(s *scanner, text string) (ast.Statement, error) {
	stmt := &ast.SelectStatement{}

	columns, err := parseColumnList(s, text)
	if err != nil {
		return nil, err
	}
	stmt.Columns = columns

	if !s.matchKeyword("FROM") {
		return nil, malformed(text, "SELECT: expected FROM")
	}

	table := s.readIdentifier()
	if table == "" {
		return nil, malformed(text, "SELECT: expected table name after FROM")
	}
	stmt.Table = table

	hasOrderBy := false
	if s.matchKeyword("WHERE") {
		clause, found := s.readUntilKeyword("ORDER", "BY")
		pred, err := compileClause(clause, text)
		if err != nil {
			return nil, err
		}
		stmt.Where = pred
		hasOrderBy = found
	} else if s.matchKeyword("ORDER", "BY") {
		hasOrderBy = true
	}

	if hasOrderBy {
		orderBy := s.readIdentifier()
		if orderBy == "" {
			return nil, malformed(text, "SELECT: expected column name after ORDER BY")
		}
		stmt.OrderBy = orderBy
	}

	if !s.atEnd() {
		return nil, malformed(text, "SELECT: unexpected trailing text")
	}

	return stmt, nil
}

// parseColumnList matches a comma-separated list of identifiers, or the
// literal "*".
func parseColumnList(s *scanner, text string) ([]string, error) {
	var columns []string
	for {
		s.skipSpace()
		if s.pos < len(s.input) && s.input[s.pos] == '*' {
			s.pos++
			columns = append(columns, "*")
		} else {
			ident := s.readIdentifier()
			if ident == "" {
				return nil, malformed(text, "SELECT: expected column name")
			}
			columns = append(columns, ident)
		}
		if !s.expect(',') {
			return columns, nil
		}
	}
}

// parseInsert matches: INSERT INTO <table> (<columns>) VALUES (<values>)
func parseInsert(s *scanner, text string) (ast.Statement, error) {
	if !s.matchKeyword("INTO") {
		return nil, malformed(text, "INSERT: expected INTO")
	}

	table := s.readIdentifier()
	if table == "" {
		return nil, malformed(text, "INSERT: expected table name after INTO")
	}

	if !s.expect('(') {
		return nil, malformed(text, "INSERT: expected column list")
	}
	colText, ok := s.readUntil(')')
	if !ok {
		return nil, malformed(text, "INSERT: unterminated column list")
	}
	columns, err := splitIdentifiers(colText, text)
	if err != nil {
		return nil, err
	}

	if !s.matchKeyword("VALUES") {
		return nil, malformed(text, "INSERT: expected VALUES")
	}
	if !s.expect('(') {
		return nil, malformed(text, "INSERT: expected value list")
	}

	// Values run to the closing paren that ends the statement; the raw text
	// between commas is kept as-is, quotes and all.
	valText := s.rest()
	if !strings.HasSuffix(strings.TrimSpace(valText), ")") {
		return nil, malformed(text, "INSERT: unterminated value list")
	}
	valText = strings.TrimSpace(valText)
	valText = strings.TrimSpace(valText[:len(valText)-1])
	if valText == "" {
		return nil, malformed(text, "INSERT: empty value list")
	}

	var values []string
	for _, v := range strings.Split(valText, ",") {
		values = append(values, strings.TrimSpace(v))
	}

	return &ast.InsertStatement{Table: table, Columns: columns, Values: values}, nil
}

// parseUpdate matches: UPDATE <table> SET <col>=<val>[, ...] [WHERE <cond>]
func parseUpdate(s *scanner, text string) (ast.Statement, error) {
	table := s.readIdentifier()
	if table == "" {
		return nil, malformed(text, "UPDATE: expected table name")
	}

	if !s.matchKeyword("SET") {
		return nil, malformed(text, "UPDATE: expected SET")
	}

	assignText, hasWhere := s.readUntilKeyword("WHERE")
	assignments, err := parseAssignments(assignText, text)
	if err != nil {
		return nil, err
	}

	stmt := &ast.UpdateStatement{Table: table, Assignments: assignments}

	if hasWhere {
		pred, err := compileClause(s.rest(), text)
		if err != nil {
			return nil, err
		}
		stmt.Where = pred
	}

	return stmt, nil
}

// parseAssignments splits "a=1, b='x'" into a column→literal map. Each
// assignment is split on "=" exactly once from each side: a value containing
// "=" is a documented limitation and is rejected, not silently repaired.
func parseAssignments(assignText, text string) (map[string]string, error) {
	assignments := make(map[string]string)
	for _, part := range strings.Split(assignText, ",") {
		pieces := strings.Split(part, "=")
		if len(pieces) != 2 {
			return nil, malformed(text, fmt.Sprintf("UPDATE: malformed assignment %q", strings.TrimSpace(part)))
		}
		col := strings.TrimSpace(pieces[0])
		if col == "" {
			return nil, malformed(text, "UPDATE: assignment missing column name")
		}
		assignments[col] = strings.TrimSpace(pieces[1])
	}
	return assignments, nil
}

// parseDelete matches: DELETE FROM <table> [WHERE <cond>]
func parseDelete(s *scanner, text string) (ast.Statement, error) {
	if !s.matchKeyword("FROM") {
		return nil, malformed(text, "DELETE: expected FROM")
	}

	table := s.readIdentifier()
	if table == "" {
		return nil, malformed(text, "DELETE: expected table name after FROM")
	}

	stmt := &ast.DeleteStatement{Table: table}

	if s.matchKeyword("WHERE") {
		pred, err := compileClause(s.rest(), text)
		if err != nil {
			return nil, err
		}
		stmt.Where = pred
	}

	if !s.atEnd() {
		return nil, malformed(text, "DELETE: unexpected trailing text")
	}

	return stmt, nil
}

// compileClause hands WHERE text to the predicate compiler. An empty clause
// is a grammar failure of the enclosing statement; anything else that goes
// wrong is the compiler's error, propagated as-is.
func compileClause(clause, text string) (*predicate.Predicate, error) {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return nil, malformed(text, "expected condition after WHERE")
	}
	return predicate.Compile(clause)
}

func splitIdentifiers(list, text string) ([]string, error) {
	var idents []string
	for _, part := range strings.Split(list, ",") {
		ident := strings.TrimSpace(part)
		if ident == "" || !isIdentifier(ident) {
			return nil, malformed(text, fmt.Sprintf("invalid column name %q", ident))
		}
		idents = append(idents, ident)
	}
	return idents, nil
}

func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func malformed(text, reason string) error {
	return &dberr.ParseError{Statement: text, Reason: reason}
}
