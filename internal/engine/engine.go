// Package engine is the main entry point for the database system. It owns
// the table store and runs each statement through the parse → execute
// pipeline, emitting observer events at phase boundaries.
//
// The engine holds no locks of its own: parsing and execution are pure
// computation plus in-memory mutation. A host that shares one Engine across
// goroutines must serialize CreateTable/Execute itself.
package engine

import (
	"fmt"
	"time"

	"github.com/toysql/toydb/internal/domain/schema"
	"github.com/toysql/toydb/internal/domain/session"
	"github.com/toysql/toydb/internal/executor"
	"github.com/toysql/toydb/internal/parser"
)

// Engine executes statements against an in-memory table store.
type Engine struct {
	db        *schema.Database
	observers []Observer // Observers for lifecycle events
}

// New creates an Engine with an empty store.
func New() *Engine {
	return &Engine{
		db:        schema.NewDatabase(),
		observers: make([]Observer, 0),
	}
}

// CreateTable registers a new, empty table. Table creation is API-level
// only; no statement text can create a table. The column list is recorded
// as documentation only.
func (e *Engine) CreateTable(name string, columns []string) error {
	if err := e.db.CreateTable(name, columns); err != nil {
		return err
	}
	e.notify(Event{Type: EventCreateTable, Data: map[string]interface{}{
		"table":   name,
		"columns": columns,
	}})
	return nil
}

// Execute processes one statement string and returns the result. Every
// error is fatal to this statement only; the store keeps the state it had
// before the failing mutation began, except for the documented
// mid-scan UPDATE case.
func (e *Engine) Execute(text string) (*executor.Result, error) {
	sess := session.New()
	defer sess.Close()

	e.notify(Event{Type: EventParseStart, SessionID: sess.ID, Data: text})
	stmt, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventParseEnd, SessionID: sess.ID, Data: fmt.Sprintf("%T", stmt)})

	e.notify(Event{Type: EventExecStart, SessionID: sess.ID})
	result, err := executor.Execute(stmt, e.db)
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventExecEnd, SessionID: sess.ID, Data: map[string]interface{}{
		"rows_affected": result.RowsAffected,
		"rows_returned": len(result.Rows),
	}})

	return result, nil
}

// ListTables returns the names of all tables in the store, sorted.
func (e *Engine) ListTables() []string {
	return e.db.TableNames()
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
