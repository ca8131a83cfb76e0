// Package observers provides observers for monitoring document workflows
package observers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/anggasct/docflow"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// LogError logs only errors
	LogError LogLevel = iota
	// LogWarning logs errors and warnings
	LogWarning
	// LogInfo logs errors, warnings, and info
	LogInfo
	// LogDebug logs errors, warnings, info, and debug
	LogDebug
)

// SlogLevel maps the level to the slog level used for emission
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogError:
		return slog.LevelError
	case LogWarning:
		return slog.LevelWarn
	case LogDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// LoggingObserver logs document lifecycle events through slog
type LoggingObserver struct {
	level  LogLevel
	prefix string
	logger *slog.Logger
	mutex  sync.RWMutex
}

// NewLoggingObserver creates a new logging observer writing to slog.Default
func NewLoggingObserver(level LogLevel, prefix string) *LoggingObserver {
	return &LoggingObserver{
		level:  level,
		prefix: prefix,
		logger: slog.Default(),
	}
}

// NewDefaultLoggingObserver creates a logging observer with default settings (LogInfo level)
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(LogInfo, "docflow")
}

// WithLogger sets the destination logger
func (o *LoggingObserver) WithLogger(logger *slog.Logger) *LoggingObserver {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.logger = logger
	return o
}

// SetLevel changes the threshold
func (o *LoggingObserver) SetLevel(level LogLevel) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.level = level
}

func (o *LoggingObserver) log(level LogLevel, doc *docflow.Document, msg string, attrs ...slog.Attr) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if level > o.level {
		return
	}

	base := make([]slog.Attr, 0, len(attrs)+2)
	if o.prefix != "" {
		base = append(base, slog.String("source", o.prefix))
	}
	base = append(base, slog.String("document", doc.ID()))
	o.logger.LogAttrs(context.Background(), level.SlogLevel(), msg, append(base, attrs...)...)
}

// OnTransition logs transitions
func (o *LoggingObserver) OnTransition(doc *docflow.Document, from docflow.Phase, to docflow.Phase, event docflow.Event) {
	o.log(LogInfo, doc, "document.transition",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("event", event.GetName()),
		slog.String("event_id", event.GetID()),
	)
}

// OnPhaseEnter logs phase entry
func (o *LoggingObserver) OnPhaseEnter(doc *docflow.Document, phase docflow.Phase) {
	o.log(LogDebug, doc, "document.phase.enter", slog.String("phase", phase.String()))
}

// OnPhaseExit logs phase exit
func (o *LoggingObserver) OnPhaseExit(doc *docflow.Document, phase docflow.Phase) {
	o.log(LogDebug, doc, "document.phase.exit", slog.String("phase", phase.String()))
}

// OnEventRejected logs operations that had no effect
func (o *LoggingObserver) OnEventRejected(doc *docflow.Document, event docflow.Event, err error) {
	o.log(LogWarning, doc, "document.rejected",
		slog.String("phase", doc.Phase().String()),
		slog.String("event", event.GetName()),
		slog.String("reason", err.Error()),
	)
}

// OnError logs errors
func (o *LoggingObserver) OnError(doc *docflow.Document, err error) {
	o.log(LogError, doc, "document.error", slog.String("error", err.Error()))
}
