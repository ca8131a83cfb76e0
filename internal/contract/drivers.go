package contract

import (
	"github.com/anggasct/docflow"
	"github.com/anggasct/docflow/pkg/typestate"
)

// DocumentDriver plays scenarios against a docflow.Document
type DocumentDriver struct {
	*docflow.Document
}

// NewDocumentDriver wraps a fresh document
func NewDocumentDriver(opts ...docflow.Option) *DocumentDriver {
	return &DocumentDriver{Document: docflow.NewDocument(opts...)}
}

// Phase returns the phase name
func (d *DocumentDriver) Phase() string {
	return d.Document.Phase().String()
}

// TypestateDriver rebinds a typestate value on each legal step and ignores
// steps that the current phase type does not offer
type TypestateDriver struct {
	current any
}

// NewTypestateDriver starts from an empty draft
func NewTypestateDriver() *TypestateDriver {
	return &TypestateDriver{current: typestate.New()}
}

func (d *TypestateDriver) AddText(s string) {
	if draft, ok := d.current.(typestate.DraftDoc); ok {
		d.current = draft.AddText(s)
	}
}

func (d *TypestateDriver) RequestReview() {
	if draft, ok := d.current.(typestate.DraftDoc); ok {
		d.current = draft.RequestReview()
	}
}

func (d *TypestateDriver) Approve() {
	if review, ok := d.current.(typestate.ReviewDoc); ok {
		d.current = review.Approve()
	}
}

func (d *TypestateDriver) Reject() {
	if review, ok := d.current.(typestate.ReviewDoc); ok {
		d.current = review.Reject()
	}
}

func (d *TypestateDriver) Content() string {
	return d.current.(interface{ Content() string }).Content()
}

// Phase names the phase type currently held, using the docflow phase names
func (d *TypestateDriver) Phase() string {
	switch d.current.(type) {
	case typestate.DraftDoc:
		return docflow.PhaseDraft.String()
	case typestate.ReviewDoc:
		return docflow.PhasePendingReview.String()
	case typestate.PublishedDoc:
		return docflow.PhasePublished.String()
	default:
		return "unknown"
	}
}
