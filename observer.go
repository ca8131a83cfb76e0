package docflow

// Observer represents an entity that observes a document's lifecycle
type Observer interface {
	// Required methods

	// OnTransition is called after the document has moved to a new phase
	OnTransition(doc *Document, from Phase, to Phase, event Event)

	// OnPhaseEnter is called when entering a new phase
	OnPhaseEnter(doc *Document, phase Phase)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnPhaseExit is called when leaving a phase
	OnPhaseExit(doc *Document, phase Phase)

	// OnEventRejected is called when an operation has no effect in the current phase
	OnEventRejected(doc *Document, event Event, err error)

	// OnError is called when an observer callback panics
	OnError(doc *Document, err error)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnTransition implements the required Observer method
func (o *BaseObserver) OnTransition(doc *Document, from Phase, to Phase, event Event) {}

// OnPhaseEnter implements the required Observer method
func (o *BaseObserver) OnPhaseEnter(doc *Document, phase Phase) {}

// OnPhaseExit implements the optional ExtendedObserver method
func (o *BaseObserver) OnPhaseExit(doc *Document, phase Phase) {}

// OnEventRejected implements the optional ExtendedObserver method
func (o *BaseObserver) OnEventRejected(doc *Document, event Event, err error) {}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(doc *Document, err error) {}

// ObserverManager manages a collection of observers
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered observers
func (om *ObserverManager) Len() int {
	return len(om.observers)
}

// NotifyTransition notifies all observers of a phase transition
func (om *ObserverManager) NotifyTransition(doc *Document, from Phase, to Phase, event Event) {
	for _, observer := range om.snapshot() {
		om.guard(doc, observer, "OnTransition", func() {
			observer.OnTransition(doc, from, to, event)
		})
	}
}

// NotifyPhaseEnter notifies all observers of phase entry
func (om *ObserverManager) NotifyPhaseEnter(doc *Document, phase Phase) {
	for _, observer := range om.snapshot() {
		om.guard(doc, observer, "OnPhaseEnter", func() {
			observer.OnPhaseEnter(doc, phase)
		})
	}
}

// NotifyPhaseExit notifies all observers of phase exit
func (om *ObserverManager) NotifyPhaseExit(doc *Document, phase Phase) {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			om.guard(doc, observer, "OnPhaseExit", func() {
				extObs.OnPhaseExit(doc, phase)
			})
		}
	}
}

// NotifyEventRejected notifies all observers of a rejected operation
func (om *ObserverManager) NotifyEventRejected(doc *Document, event Event, err error) {
	for _, observer := range om.snapshot() {
		if extObs, ok := observer.(ExtendedObserver); ok {
			om.guard(doc, observer, "OnEventRejected", func() {
				extObs.OnEventRejected(doc, event, err)
			})
		}
	}
}

func (om *ObserverManager) snapshot() []Observer {
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)
	return observers
}

// guard runs fn and reports a panic to the panicking observer's OnError
func (om *ObserverManager) guard(doc *Document, observer Observer, callback string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if extObs, ok := observer.(ExtendedObserver); ok {
				func() {
					defer func() { recover() }()
					extObs.OnError(doc, NewObserverError(callback, r))
				}()
			}
		}
	}()
	fn()
}
