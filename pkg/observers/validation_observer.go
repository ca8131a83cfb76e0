package observers

import (
	"fmt"
	"sync"

	"github.com/anggasct/docflow"
)

// ValidationObserver checks that documents only take transitions from the
// workflow table and never expose content before publication
type ValidationObserver struct {
	docflow.BaseObserver

	expectedPhases     map[docflow.Phase]bool
	visitedPhases      map[docflow.Phase]bool
	allowedTransitions map[docflow.Phase]map[docflow.Phase]bool
	violations         []string
	mutex              sync.RWMutex
}

// NewValidationObserver creates a validation observer loaded with docflow.Transitions
func NewValidationObserver() *ValidationObserver {
	o := &ValidationObserver{
		expectedPhases:     make(map[docflow.Phase]bool),
		visitedPhases:      make(map[docflow.Phase]bool),
		allowedTransitions: make(map[docflow.Phase]map[docflow.Phase]bool),
		violations:         make([]string, 0),
	}
	for _, t := range docflow.Transitions() {
		o.AddAllowedTransition(t.From, t.To)
	}
	return o
}

// AddExpectedPhase adds a phase that should be visited
func (o *ValidationObserver) AddExpectedPhase(phase docflow.Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.expectedPhases[phase] = true
}

// AddAllowedTransition adds an allowed transition
func (o *ValidationObserver) AddAllowedTransition(from, to docflow.Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if _, exists := o.allowedTransitions[from]; !exists {
		o.allowedTransitions[from] = make(map[docflow.Phase]bool)
	}

	o.allowedTransitions[from][to] = true
}

// OnPhaseEnter marks the phase visited and checks content visibility
func (o *ValidationObserver) OnPhaseEnter(doc *docflow.Document, phase docflow.Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.visitedPhases[phase] = true

	if phase != docflow.PhasePublished && doc.Content() != "" {
		o.violations = append(o.violations, fmt.Sprintf(
			"Document '%s' exposes content in phase '%s'", doc.ID(), phase))
	}
}

// OnTransition validates transitions
func (o *ValidationObserver) OnTransition(doc *docflow.Document, from docflow.Phase, to docflow.Phase, event docflow.Event) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if !o.allowedTransitions[from][to] {
		o.violations = append(o.violations, fmt.Sprintf(
			"Invalid transition from '%s' to '%s' on event '%s'",
			from, to, event.GetName()))
	}
}

// OnError records observer failures as violations
func (o *ValidationObserver) OnError(doc *docflow.Document, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.violations = append(o.violations, fmt.Sprintf("Error occurred: %v", err))
}

// GetViolations returns all validation violations
func (o *ValidationObserver) GetViolations() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make([]string, len(o.violations))
	copy(result, o.violations)
	return result
}

// GetUnvisitedPhases returns phases that were expected but not visited
func (o *ValidationObserver) GetUnvisitedPhases() []docflow.Phase {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	var unvisited []docflow.Phase
	for _, phase := range docflow.Phases() {
		if o.expectedPhases[phase] && !o.visitedPhases[phase] {
			unvisited = append(unvisited, phase)
		}
	}

	return unvisited
}

// HasViolations returns whether any violations occurred
func (o *ValidationObserver) HasViolations() bool {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.violations) > 0
}

// Reset resets the validation state
func (o *ValidationObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.visitedPhases = make(map[docflow.Phase]bool)
	o.violations = make([]string, 0)
}
