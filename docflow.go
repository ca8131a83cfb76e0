// Package docflow provides a small document approval workflow built on the
// state pattern. A Document moves from Draft to PendingReview to Published,
// and the phase it is in decides which operations take effect and what
// content is visible.
//
// The Document delegates every phase-specific decision to its current State
// handle. Operations that are not legal in the current phase are no-ops at
// the call site; observers registered on the Document are told about them.
//
// A typestate rendition of the same workflow, where each phase is its own
// type, lives in pkg/typestate.
package docflow

// Event names used for transitions and rejection reports
const (
	EventAddText       = "add_text"
	EventRequestReview = "request_review"
	EventApprove       = "approve"
	EventReject        = "reject"
)
