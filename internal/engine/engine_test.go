package engine

import (
	"errors"
	"testing"

	"github.com/toysql/toydb/internal/domain/dberr"
)

func TestCreateTable(t *testing.T) {
	eng := New()

	if err := eng.CreateTable("users", []string{"id", "name"}); err != nil {
		t.Fatalf("CreateTable error: %v", err)
	}

	err := eng.CreateTable("users", []string{"id"})
	var existsErr *dberr.TableExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("Expected TableExistsError, got %T", err)
	}

	tables := eng.ListTables()
	if len(tables) != 1 || tables[0] != "users" {
		t.Errorf("Expected [users], got %v", tables)
	}
}

func TestExecutePipeline(t *testing.T) {
	eng := New()
	if err := eng.CreateTable("users", []string{"id", "name"}); err != nil {
		t.Fatalf("CreateTable error: %v", err)
	}

	if _, err := eng.Execute("INSERT INTO users (id, name) VALUES (1, 'Alice')"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	result, err := eng.Execute("SELECT * FROM users")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(result.Rows))
	}
	if result.Rows[0]["name"] != "'Alice'" {
		t.Errorf("Expected 'Alice', got %q", result.Rows[0]["name"])
	}
}

func TestExecuteParseError(t *testing.T) {
	eng := New()

	_, err := eng.Execute("EXPLAIN SELECT * FROM users")
	var parseErr *dberr.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %T: %v", err, err)
	}
}

// Repeated identical SELECTs against an unmutated store return identical
// sequences.
func TestExecuteSelectIdempotent(t *testing.T) {
	eng := New()
	if err := eng.CreateTable("users", []string{"id"}); err != nil {
		t.Fatalf("CreateTable error: %v", err)
	}
	for _, q := range []string{
		"INSERT INTO users (id) VALUES (2)",
		"INSERT INTO users (id) VALUES (1)",
	} {
		if _, err := eng.Execute(q); err != nil {
			t.Fatalf("Execute error: %v", err)
		}
	}

	first, err := eng.Execute("SELECT * FROM users ORDER BY id")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	second, err := eng.Execute("SELECT * FROM users ORDER BY id")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(first.Rows) != len(second.Rows) {
		t.Fatalf("Expected identical row counts, got %d and %d", len(first.Rows), len(second.Rows))
	}
	for i := range first.Rows {
		if first.Rows[i]["id"] != second.Rows[i]["id"] {
			t.Errorf("Row %d differs between runs", i)
		}
	}
}
