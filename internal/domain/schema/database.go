package schema

import (
	"sort"

	"github.com/toysql/toydb/internal/domain/dberr"
)

// Database is the table store: a process-lifetime mapping from table name to
// its rows. Tables are created explicitly and never dropped; the store is
// destroyed only when the Database value itself is discarded.
type Database struct {
	Tables map[string]*Table
}

// NewDatabase creates an empty store.
func NewDatabase() *Database {
	return &Database{Tables: make(map[string]*Table)}
}

// CreateTable registers an empty table. The column list is recorded as
// metadata only; no types, constraints or keys are enforced.
func (db *Database) CreateTable(name string, columns []string) error {
	if _, exists := db.Tables[name]; exists {
		return &dberr.TableExistsError{Table: name}
	}
	db.Tables[name] = &Table{Name: name, Columns: columns}
	return nil
}

// Lookup resolves a table for SELECT, UPDATE and DELETE. An existing table
// with zero rows is reported as missing: the lookup cannot tell an empty
// row sequence apart from an absent one. This equivalence is kept for
// compatibility with the engine's documented behavior, not fixed.
func (db *Database) Lookup(name string) (*Table, error) {
	table, ok := db.Tables[name]
	if !ok || len(table.Rows) == 0 {
		return nil, &dberr.TableNotFoundError{Table: name}
	}
	return table, nil
}

// Get resolves a table by key presence alone. INSERT uses this form, so an
// existing-but-empty table is a valid insert target.
func (db *Database) Get(name string) (*Table, error) {
	table, ok := db.Tables[name]
	if !ok {
		return nil, &dberr.TableNotFoundError{Table: name}
	}
	return table, nil
}

// TableNames returns the names of all tables in the store, sorted.
func (db *Database) TableNames() []string {
	names := make([]string, 0, len(db.Tables))
	for name := range db.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
