package docflow

// Transition represents one legal phase change
type Transition struct {
	From      Phase
	To        Phase
	EventName string
}

// Transitions returns the workflow table, derived by asking each phase
// handle where every transition event leads
func Transitions() []Transition {
	events := []struct {
		name string
		next func(State) State
	}{
		{EventRequestReview, State.RequestReview},
		{EventApprove, State.Approve},
		{EventReject, State.Reject},
	}

	var transitions []Transition
	for _, phase := range Phases() {
		state := NewState(phase)
		for _, ev := range events {
			if to := ev.next(state).Phase(); to != phase {
				transitions = append(transitions, Transition{From: phase, To: to, EventName: ev.name})
			}
		}
	}
	return transitions
}

// InitialPhase returns the phase every new document starts in
func InitialPhase() Phase {
	return PhaseDraft
}

// FinalPhases returns phases with no outgoing transitions
func FinalPhases() []Phase {
	outgoing := make(map[Phase]bool)
	for _, t := range Transitions() {
		outgoing[t.From] = true
	}

	var final []Phase
	for _, phase := range Phases() {
		if !outgoing[phase] {
			final = append(final, phase)
		}
	}
	return final
}
