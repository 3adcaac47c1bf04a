// Package predicate compiles WHERE-clause text into a single-condition row
// test and evaluates it against rows.
//
// A clause has the shape <identifier> <operator> <literal>, where the
// literal is the untouched remainder of the clause text. The compiled form
// is an inspectable (column, operator, literal) tuple rather than an opaque
// closure, so tests can assert on the parts independent of evaluation.
package predicate

import (
	"fmt"
	"strings"

	"github.com/toysql/toydb/internal/domain/data"
	"github.com/toysql/toydb/internal/domain/dberr"
)

// Operator is one of the six supported comparison operators.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
)

// Predicate is a compiled unary row test.
type Predicate struct {
	Column   string
	Operator Operator
	Literal  string
}

func (p *Predicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Column, p.Operator, p.Literal)
}

// Compile turns clause text into a Predicate. The right-hand operand is the
// remainder of the clause after the operator, trimmed of surrounding
// whitespace and otherwise kept verbatim: quote characters are not stripped
// and no numeric conversion ever happens.
func Compile(clause string) (*Predicate, error) {
	text := strings.TrimSpace(clause)

	column, rest := readIdentifier(text)
	if column == "" {
		return nil, &dberr.PredicateError{Clause: clause}
	}
	rest = strings.TrimLeft(rest, " \t")

	op, rest, err := readOperator(rest, clause)
	if err != nil {
		return nil, err
	}

	literal := strings.TrimSpace(rest)
	if literal == "" {
		return nil, &dberr.PredicateError{Clause: clause}
	}

	return &Predicate{Column: column, Operator: op, Literal: literal}, nil
}

// Eval applies the predicate to a row. A row without the predicate's column
// is an error, never a silent false. Comparisons are plain string ordering
// over the stored text, so "9" < "10" is false; that behavior is part of
// the contract.
func (p *Predicate) Eval(row data.Row) (bool, error) {
	value, ok := row[p.Column]
	if !ok {
		return false, &dberr.RowKeyError{Column: p.Column}
	}

	switch p.Operator {
	case OpEqual:
		return value == p.Literal, nil
	case OpNotEqual:
		return value != p.Literal, nil
	case OpLess:
		return value < p.Literal, nil
	case OpLessEqual:
		return value <= p.Literal, nil
	case OpGreater:
		return value > p.Literal, nil
	case OpGreaterEqual:
		return value >= p.Literal, nil
	default:
		return false, &dberr.PredicateError{Clause: p.String(), Operator: string(p.Operator)}
	}
}

// readIdentifier consumes a leading run of word characters.
func readIdentifier(s string) (ident, rest string) {
	i := 0
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// readOperator consumes the comparison operator. Two-character operators
// must be recognized before single-character ones: matching '<' first would
// misread "<=" as '<' followed by a stray '='.
func readOperator(s, clause string) (Operator, string, error) {
	if len(s) >= 2 {
		switch two := s[:2]; two {
		case "!=", "<=", ">=":
			return Operator(two), s[2:], nil
		}
	}
	if len(s) >= 1 {
		switch one := s[:1]; one {
		case "=", "<", ">":
			return Operator(one), s[1:], nil
		}
	}

	// The clause had an identifier but whatever follows is not a supported
	// operator; report the offending token.
	token := s
	if i := strings.IndexAny(token, " \t"); i >= 0 {
		token = token[:i]
	}
	if token == "" {
		return "", "", &dberr.PredicateError{Clause: clause}
	}
	return "", "", &dberr.PredicateError{Clause: clause, Operator: token}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
