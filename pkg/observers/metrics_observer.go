package observers

import (
	"sync"
	"time"

	"github.com/anggasct/docflow"
)

// MetricsObserver collects metrics about document workflows
type MetricsObserver struct {
	phaseVisits      map[docflow.Phase]int
	phaseTimeSpent   map[docflow.Phase]time.Duration
	transitionCounts map[string]int
	rejectionCounts  map[string]int
	errorCount       int
	lastPhaseEntry   map[string]time.Time
	now              func() time.Time
	mutex            sync.RWMutex
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		phaseVisits:      make(map[docflow.Phase]int),
		phaseTimeSpent:   make(map[docflow.Phase]time.Duration),
		transitionCounts: make(map[string]int),
		rejectionCounts:  make(map[string]int),
		lastPhaseEntry:   make(map[string]time.Time),
		now:              time.Now,
	}
}

// WithClock replaces the time source
func (o *MetricsObserver) WithClock(now func() time.Time) *MetricsObserver {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.now = now
	return o
}

// OnPhaseEnter records phase entry metrics
func (o *MetricsObserver) OnPhaseEnter(doc *docflow.Document, phase docflow.Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.phaseVisits[phase]++
	o.lastPhaseEntry[doc.ID()] = o.now()
}

// OnPhaseExit records the time spent in the phase being left
func (o *MetricsObserver) OnPhaseExit(doc *docflow.Document, phase docflow.Phase) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if entryTime, ok := o.lastPhaseEntry[doc.ID()]; ok {
		o.phaseTimeSpent[phase] += o.now().Sub(entryTime)
		delete(o.lastPhaseEntry, doc.ID())
	}
}

// OnTransition records transition metrics
func (o *MetricsObserver) OnTransition(doc *docflow.Document, from docflow.Phase, to docflow.Phase, event docflow.Event) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.transitionCounts[from.String()+"->"+to.String()]++
}

// OnEventRejected records operations that had no effect
func (o *MetricsObserver) OnEventRejected(doc *docflow.Document, event docflow.Event, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.rejectionCounts[event.GetName()]++
}

// OnError records error metrics
func (o *MetricsObserver) OnError(doc *docflow.Document, err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.errorCount++
}

// GetPhaseVisitCounts returns the number of times each phase was entered
func (o *MetricsObserver) GetPhaseVisitCounts() map[docflow.Phase]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[docflow.Phase]int)
	for phase, count := range o.phaseVisits {
		result[phase] = count
	}
	return result
}

// GetPhaseTimeSpent returns the time spent in each phase
func (o *MetricsObserver) GetPhaseTimeSpent() map[docflow.Phase]time.Duration {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[docflow.Phase]time.Duration)
	for phase, duration := range o.phaseTimeSpent {
		result[phase] = duration
	}
	return result
}

// GetTransitionCounts returns the number of times each transition occurred
func (o *MetricsObserver) GetTransitionCounts() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for transition, count := range o.transitionCounts {
		result[transition] = count
	}
	return result
}

// GetRejectionCounts returns the number of ignored operations per event name
func (o *MetricsObserver) GetRejectionCounts() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for event, count := range o.rejectionCounts {
		result[event] = count
	}
	return result
}

// GetErrorCount returns the number of errors
func (o *MetricsObserver) GetErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.errorCount
}

// Reset resets all metrics
func (o *MetricsObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.phaseVisits = make(map[docflow.Phase]int)
	o.phaseTimeSpent = make(map[docflow.Phase]time.Duration)
	o.transitionCounts = make(map[string]int)
	o.rejectionCounts = make(map[string]int)
	o.errorCount = 0
	o.lastPhaseEntry = make(map[string]time.Time)
}
