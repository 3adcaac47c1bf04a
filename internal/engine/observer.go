package engine

import "time"

// EventType represents different lifecycle phases in statement execution
type EventType string

const (
	EventParseStart  EventType = "parse_start"
	EventParseEnd    EventType = "parse_end"
	EventExecStart   EventType = "exec_start"
	EventExecEnd     EventType = "exec_end"
	EventCreateTable EventType = "create_table"
)

// Event represents a lifecycle event in statement execution
type Event struct {
	Type      EventType   // Type of event
	SessionID string      // Statement session ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., statement text, AST kind, row counts)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
