package engine

import (
	"testing"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	eng := New()
	observer := &MockObserver{}

	eng.AddObserver(observer)

	if len(eng.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(eng.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	eng := New()
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	if len(eng.observers) != 0 {
		t.Errorf("Expected 0 observers, got %d", len(eng.observers))
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New()

	// Should not panic
	eng.notify(Event{Type: EventParseStart, SessionID: "test-session"})
}

func TestObserverReceivesLifecycleEvents(t *testing.T) {
	eng := New()
	observer := &MockObserver{}
	eng.AddObserver(observer)

	if err := eng.CreateTable("users", []string{"id"}); err != nil {
		t.Fatalf("CreateTable error: %v", err)
	}
	if _, err := eng.Execute("INSERT INTO users (id) VALUES (1)"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	wantTypes := []EventType{
		EventCreateTable,
		EventParseStart,
		EventParseEnd,
		EventExecStart,
		EventExecEnd,
	}
	if len(observer.Events) != len(wantTypes) {
		t.Fatalf("Expected %d events, got %d", len(wantTypes), len(observer.Events))
	}
	for i, want := range wantTypes {
		if observer.Events[i].Type != want {
			t.Errorf("Event %d: expected %s, got %s", i, want, observer.Events[i].Type)
		}
	}

	// All statement events share the statement's session ID.
	sessionID := observer.Events[1].SessionID
	if sessionID == "" {
		t.Fatal("Expected a session ID on parse_start")
	}
	for _, ev := range observer.Events[2:] {
		if ev.SessionID != sessionID {
			t.Errorf("Expected session ID %s, got %s", sessionID, ev.SessionID)
		}
	}
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	eng := New()
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	testEvent := Event{Type: EventParseStart, SessionID: "test-session", Data: "SELECT * FROM users"}
	eng.notify(testEvent)

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}
}
