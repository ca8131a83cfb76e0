package docflow

import (
	"sync"
	"testing"
)

// TestObserver is a mock observer for testing that captures all observer events
type TestObserver struct {
	mutex        sync.RWMutex
	Transitions  []TransitionEvent
	PhaseEnters  []PhaseEvent
	PhaseExits   []PhaseEvent
	EventRejects []EventRejectEvent
	Errors       []ErrorEvent
}

type TransitionEvent struct {
	DocID string
	From  Phase
	To    Phase
	Event Event
}

type PhaseEvent struct {
	DocID string
	Phase Phase
}

type EventRejectEvent struct {
	DocID string
	Event Event
	Err   error
}

type ErrorEvent struct {
	DocID string
	Error error
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		Transitions:  make([]TransitionEvent, 0),
		PhaseEnters:  make([]PhaseEvent, 0),
		PhaseExits:   make([]PhaseEvent, 0),
		EventRejects: make([]EventRejectEvent, 0),
		Errors:       make([]ErrorEvent, 0),
	}
}

// Observer interface implementations
func (o *TestObserver) OnTransition(doc *Document, from Phase, to Phase, event Event) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Transitions = append(o.Transitions, TransitionEvent{DocID: doc.ID(), From: from, To: to, Event: event})
}

func (o *TestObserver) OnPhaseEnter(doc *Document, phase Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.PhaseEnters = append(o.PhaseEnters, PhaseEvent{DocID: doc.ID(), Phase: phase})
}

// ExtendedObserver interface implementations
func (o *TestObserver) OnPhaseExit(doc *Document, phase Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.PhaseExits = append(o.PhaseExits, PhaseEvent{DocID: doc.ID(), Phase: phase})
}

func (o *TestObserver) OnEventRejected(doc *Document, event Event, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.EventRejects = append(o.EventRejects, EventRejectEvent{DocID: doc.ID(), Event: event, Err: err})
}

func (o *TestObserver) OnError(doc *Document, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Errors = append(o.Errors, ErrorEvent{DocID: doc.ID(), Error: err})
}

// Helper methods for test assertions
func (o *TestObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Transitions = nil
	o.PhaseEnters = nil
	o.PhaseExits = nil
	o.EventRejects = nil
	o.Errors = nil
}

func (o *TestObserver) TransitionCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.Transitions)
}

func (o *TestObserver) PhaseEnterCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.PhaseEnters)
}

func (o *TestObserver) PhaseExitCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.PhaseExits)
}

func (o *TestObserver) RejectCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.EventRejects)
}

func (o *TestObserver) LastTransition() *TransitionEvent {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.Transitions) == 0 {
		return nil
	}
	return &o.Transitions[len(o.Transitions)-1]
}

func (o *TestObserver) LastReject() *EventRejectEvent {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(o.EventRejects) == 0 {
		return nil
	}
	return &o.EventRejects[len(o.EventRejects)-1]
}

// Test document builders

// CreateReviewDocument creates a document holding text that is already under review
func CreateReviewDocument(text string, opts ...Option) *Document {
	doc := NewDocument(opts...)
	doc.AddText(text)
	doc.RequestReview()
	return doc
}

// CreatePublishedDocument creates a published document holding text
func CreatePublishedDocument(text string, opts ...Option) *Document {
	doc := CreateReviewDocument(text, opts...)
	doc.Approve()
	return doc
}

// Test assertions and utilities

// AssertPhase checks if document is in expected phase
func AssertPhase(t *testing.T, doc *Document, expected Phase) {
	t.Helper()
	if doc.Phase() != expected {
		t.Errorf("Expected phase %s, got %s", expected, doc.Phase())
	}
}

// AssertContent checks the visible content of a document
func AssertContent(t *testing.T, doc *Document, expected string) {
	t.Helper()
	if content := doc.Content(); content != expected {
		t.Errorf("Expected content %q, got %q", expected, content)
	}
}

// AssertObserverCalled checks if observer methods were called expected number of times
func AssertObserverCalled(t *testing.T, observer *TestObserver, transitions, enters, exits int) {
	t.Helper()
	if observer.TransitionCount() != transitions {
		t.Errorf("Expected %d transitions, got %d", transitions, observer.TransitionCount())
	}
	if observer.PhaseEnterCount() != enters {
		t.Errorf("Expected %d phase enters, got %d", enters, observer.PhaseEnterCount())
	}
	if observer.PhaseExitCount() != exits {
		t.Errorf("Expected %d phase exits, got %d", exits, observer.PhaseExitCount())
	}
}
