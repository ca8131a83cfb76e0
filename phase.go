package docflow

// Phase enumerates the stages of the document lifecycle
type Phase int

const (
	// PhaseDraft accepts text and hides content
	PhaseDraft Phase = iota
	// PhasePendingReview waits for approval or rejection
	PhasePendingReview
	// PhasePublished exposes the full content
	PhasePublished
)

// String returns the phase identifier used in logs and graphs
func (p Phase) String() string {
	switch p {
	case PhaseDraft:
		return "draft"
	case PhasePendingReview:
		return "pending_review"
	case PhasePublished:
		return "published"
	default:
		return "unknown"
	}
}

// Phases returns every phase in lifecycle order
func Phases() []Phase {
	return []Phase{PhaseDraft, PhasePendingReview, PhasePublished}
}
