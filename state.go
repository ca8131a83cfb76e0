package docflow

// State is the phase-behavior handle held by a Document.
//
// Transition methods return the handle for the next phase when the
// transition is legal from this phase, and the receiver itself otherwise.
// Implementations hold no data; everything mutable lives on the Document.
type State interface {
	Phase() Phase
	Content(doc *Document) string
	AcceptsText() bool

	RequestReview() State
	Approve() State
	Reject() State
}

// NewState returns the handle for the given phase, or nil for an unknown phase
func NewState(phase Phase) State {
	switch phase {
	case PhaseDraft:
		return draftState{}
	case PhasePendingReview:
		return pendingReviewState{}
	case PhasePublished:
		return publishedState{}
	default:
		return nil
	}
}

type draftState struct{}

func (s draftState) Phase() Phase                 { return PhaseDraft }
func (s draftState) Content(doc *Document) string { return "" }
func (s draftState) AcceptsText() bool            { return true }
func (s draftState) RequestReview() State         { return pendingReviewState{} }
func (s draftState) Approve() State               { return s }
func (s draftState) Reject() State                { return s }

type pendingReviewState struct{}

func (s pendingReviewState) Phase() Phase                 { return PhasePendingReview }
func (s pendingReviewState) Content(doc *Document) string { return "" }
func (s pendingReviewState) AcceptsText() bool            { return false }
func (s pendingReviewState) RequestReview() State         { return s }

// Approve publishes the document; a single approval is enough
func (s pendingReviewState) Approve() State { return publishedState{} }

// Reject sends the document back to draft with its text intact
func (s pendingReviewState) Reject() State { return draftState{} }

type publishedState struct{}

func (s publishedState) Phase() Phase { return PhasePublished }

// Content returns the buffer as written during draft
func (s publishedState) Content(doc *Document) string { return doc.buffer.String() }

func (s publishedState) AcceptsText() bool    { return false }
func (s publishedState) RequestReview() State { return s }
func (s publishedState) Approve() State       { return s }
func (s publishedState) Reject() State        { return s }
