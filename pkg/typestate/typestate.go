// Package typestate implements the document approval workflow with one type
// per phase. Each transition consumes the current value and returns a value
// of the next phase's type, so only the operations legal in a phase exist
// on that phase's type. Calling Approve on a draft does not compile.
//
// Values are immutable: AddText returns a new DraftDoc instead of changing
// the receiver. A superseded value stays valid but describes the phase it
// was created in; callers should rebind their variable on every transition.
//
//	draft := typestate.New().AddText("I ate salad for lunch today")
//	review := draft.RequestReview()
//	published := review.Approve()
//	published.Content() // "I ate salad for lunch today"
package typestate

import "github.com/google/uuid"

// document is the data carried from phase to phase
type document struct {
	id   string
	text string
}

// DraftDoc is a document being written. Its content is hidden.
type DraftDoc struct {
	doc document
}

// New creates an empty draft with a generated ID
func New() DraftDoc {
	return NewWithID(uuid.New().String())
}

// NewWithID creates an empty draft with the given ID
func NewWithID(id string) DraftDoc {
	return DraftDoc{doc: document{id: id}}
}

// ID returns the document identifier
func (d DraftDoc) ID() string { return d.doc.id }

// AddText returns the draft with s appended
func (d DraftDoc) AddText(s string) DraftDoc {
	d.doc.text += s
	return d
}

// RequestReview hands the draft over for review
func (d DraftDoc) RequestReview() ReviewDoc {
	return ReviewDoc{doc: d.doc}
}

// Content is always empty for a draft
func (d DraftDoc) Content() string { return "" }

// ReviewDoc is a document waiting for a decision
type ReviewDoc struct {
	doc document
}

// ID returns the document identifier
func (r ReviewDoc) ID() string { return r.doc.id }

// Approve publishes the document
func (r ReviewDoc) Approve() PublishedDoc {
	return PublishedDoc{doc: r.doc}
}

// Reject returns the document to draft with its text intact
func (r ReviewDoc) Reject() DraftDoc {
	return DraftDoc{doc: r.doc}
}

// Content is always empty while under review
func (r ReviewDoc) Content() string { return "" }

// PublishedDoc is a document whose text is final and visible
type PublishedDoc struct {
	doc document
}

// ID returns the document identifier
func (p PublishedDoc) ID() string { return p.doc.id }

// Content returns the full text
func (p PublishedDoc) Content() string { return p.doc.text }
