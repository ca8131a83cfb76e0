package docflow

import (
	"strings"

	"github.com/google/uuid"
)

// Document is an editable text that moves through draft, review and publication.
//
// A Document holds exactly one State handle at a time and replaces it wholesale
// on transition. It is not safe for concurrent use; callers that share a
// document across goroutines must serialize access themselves.
type Document struct {
	id        string
	buffer    strings.Builder
	state     State
	approvals int
	observers *ObserverManager
}

// Option configures a Document at construction time
type Option func(*Document)

// WithID overrides the generated document identifier
func WithID(id string) Option {
	return func(d *Document) {
		d.id = id
	}
}

// WithObserver registers an observer before the document enters its first phase
func WithObserver(observer Observer) Option {
	return func(d *Document) {
		d.observers.AddObserver(observer)
	}
}

// NewDocument creates an empty document in the draft phase
func NewDocument(opts ...Option) *Document {
	d := &Document{
		id:        uuid.New().String(),
		state:     draftState{},
		observers: NewObserverManager(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.observers.NotifyPhaseEnter(d, d.state.Phase())
	return d
}

// ID returns the document identifier
func (d *Document) ID() string {
	return d.id
}

// Phase returns the current phase
func (d *Document) Phase() Phase {
	return d.state.Phase()
}

// State returns the current phase-behavior handle
func (d *Document) State() State {
	return d.state
}

// Approvals returns the number of approvals received in the current review round
func (d *Document) Approvals() int {
	return d.approvals
}

// AddText appends s to the buffer while the document is a draft.
// In any other phase the call does nothing.
func (d *Document) AddText(s string) {
	if !d.state.AcceptsText() {
		d.reject(NewEvent(EventAddText, s))
		return
	}
	d.buffer.WriteString(s)
}

// RequestReview moves a draft into review
func (d *Document) RequestReview() {
	d.transition(EventRequestReview, State.RequestReview)
}

// Approve publishes a document under review
func (d *Document) Approve() {
	if d.state.Phase() == PhasePendingReview {
		d.approvals++
	}
	d.transition(EventApprove, State.Approve)
}

// Reject returns a document under review to draft, keeping its text
func (d *Document) Reject() {
	if d.state.Phase() == PhasePendingReview {
		d.approvals = 0
	}
	d.transition(EventReject, State.Reject)
}

// Content returns the text visible in the current phase
func (d *Document) Content() string {
	return d.state.Content(d)
}

// AddObserver adds an observer to the document
func (d *Document) AddObserver(observer Observer) {
	d.observers.AddObserver(observer)
}

// RemoveObserver removes an observer from the document
func (d *Document) RemoveObserver(observer Observer) {
	d.observers.RemoveObserver(observer)
}

func (d *Document) transition(name string, next func(State) State) {
	from := d.state
	to := next(from)

	if to.Phase() == from.Phase() {
		d.reject(NewEvent(name, nil))
		return
	}

	d.state = to

	if d.observers.Len() == 0 {
		return
	}
	event := NewEvent(name, nil)
	d.observers.NotifyPhaseExit(d, from.Phase())
	d.observers.NotifyTransition(d, from.Phase(), to.Phase(), event)
	d.observers.NotifyPhaseEnter(d, to.Phase())
}

func (d *Document) reject(event Event) {
	if d.observers.Len() == 0 {
		return
	}
	d.observers.NotifyEventRejected(d, event, NewTransitionNotAllowedError(d.state.Phase(), event.GetName()))
}
