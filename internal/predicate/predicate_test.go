package predicate

import (
	"errors"
	"testing"

	"github.com/toysql/toydb/internal/domain/data"
	"github.com/toysql/toydb/internal/domain/dberr"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		clause   string
		column   string
		operator Operator
		literal  string
	}{
		{"age = 30", "age", OpEqual, "30"},
		{"age != 30", "age", OpNotEqual, "30"},
		{"age < 30", "age", OpLess, "30"},
		{"age <= 30", "age", OpLessEqual, "30"},
		{"age > 30", "age", OpGreater, "30"},
		{"age >= 30", "age", OpGreaterEqual, "30"},
		{"age>=30", "age", OpGreaterEqual, "30"},
		{"name = 'Alice'", "name", OpEqual, "'Alice'"},
		{"note = a b c", "note", OpEqual, "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			pred, err := Compile(tt.clause)
			if err != nil {
				t.Fatalf("Compile error: %v", err)
			}
			if pred.Column != tt.column {
				t.Errorf("Expected column %s, got %s", tt.column, pred.Column)
			}
			if pred.Operator != tt.operator {
				t.Errorf("Expected operator %s, got %s", tt.operator, pred.Operator)
			}
			if pred.Literal != tt.literal {
				t.Errorf("Expected literal %q, got %q", tt.literal, pred.Literal)
			}
		})
	}
}

// Two-character operators must win over their one-character prefixes.
func TestCompileTwoCharOperatorPrecedence(t *testing.T) {
	pred, err := Compile("x<=y")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if pred.Operator != OpLessEqual {
		t.Errorf("Expected <=, got %s", pred.Operator)
	}
	if pred.Literal != "y" {
		t.Errorf("Expected literal y, got %q", pred.Literal)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name   string
		clause string
	}{
		{"empty", ""},
		{"no operator", "age"},
		{"no literal", "age ="},
		{"no column", "= 30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.clause)
			if err == nil {
				t.Fatalf("Expected error for %q", tt.clause)
			}
			var predErr *dberr.PredicateError
			if !errors.As(err, &predErr) {
				t.Fatalf("Expected PredicateError, got %T", err)
			}
		})
	}
}

func TestCompileUnsupportedOperator(t *testing.T) {
	_, err := Compile("age ~ 30")
	if err == nil {
		t.Fatal("Expected error")
	}
	var predErr *dberr.PredicateError
	if !errors.As(err, &predErr) {
		t.Fatalf("Expected PredicateError, got %T", err)
	}
	if predErr.Operator != "~" {
		t.Errorf("Expected offending operator ~, got %q", predErr.Operator)
	}
}

func TestEval(t *testing.T) {
	row := data.Row{"age": "30", "name": "'Alice'"}

	tests := []struct {
		clause string
		want   bool
	}{
		{"age = 30", true},
		{"age = 31", false},
		{"age != 31", true},
		{"age < 31", true},
		{"age <= 30", true},
		{"age > 29", true},
		{"age >= 31", false},
		{"name = 'Alice'", true},
		{"name = Alice", false}, // quotes are part of the stored text
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			pred, err := Compile(tt.clause)
			if err != nil {
				t.Fatalf("Compile error: %v", err)
			}
			got, err := pred.Eval(row)
			if err != nil {
				t.Fatalf("Eval error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// Comparisons are lexicographic over the stored text, never numeric:
// "9" < "10" is false even though 9 < 10.
func TestEvalStringOrdering(t *testing.T) {
	pred, err := Compile("n < 10")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	got, err := pred.Eval(data.Row{"n": "9"})
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if got {
		t.Error("Expected \"9\" < \"10\" to be false under string ordering")
	}
}

func TestEvalMissingColumn(t *testing.T) {
	pred, err := Compile("ghost = 1")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	_, err = pred.Eval(data.Row{"age": "30"})
	if err == nil {
		t.Fatal("Expected error for missing column")
	}
	var keyErr *dberr.RowKeyError
	if !errors.As(err, &keyErr) {
		t.Fatalf("Expected RowKeyError, got %T", err)
	}
	if keyErr.Column != "ghost" {
		t.Errorf("Expected column ghost, got %s", keyErr.Column)
	}
}
