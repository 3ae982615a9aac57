// Package notify carries user-facing feedback (toasts) from list operations to
// whatever presents them: the TUI toast line, the CLI output, or the log.
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	// SeverityInfo is neutral feedback.
	SeverityInfo Severity = "info"
	// SeveritySuccess confirms a completed change.
	SeveritySuccess Severity = "success"
	// SeverityWarning flags something the user may want to act on.
	SeverityWarning Severity = "warning"
	// SeverityError reports a rejected operation.
	SeverityError Severity = "error"
)

// Notification is a (title, description, severity) triple.
type Notification struct {
	Title       string    `json:"title"       yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Severity    Severity  `json:"severity"    yaml:"severity"`
	Time        time.Time `json:"time"        yaml:"time"`
}

// Sink accepts notifications.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(n Notification)

// Notify calls f(n).
func (f SinkFunc) Notify(n Notification) { f(n) }

// Discard drops every notification.
//
//nolint:gochecknoglobals // Stateless sink value.
var Discard Sink = SinkFunc(func(Notification) {})

// Multi fans a notification out to every non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(n Notification) {
		for _, s := range sinks {
			if s != nil {
				s.Notify(n)
			}
		}
	})
}

// Recorder keeps every notification it receives, oldest first.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// Notify records n.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Reset drops all recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// LogSink writes notifications to a zerolog logger.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink that logs each notification.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Notify logs n at a level matching its severity.
func (s *LogSink) Notify(n Notification) {
	var evt *zerolog.Event
	switch n.Severity {
	case SeverityError:
		evt = s.logger.Warn()
	case SeverityWarning:
		evt = s.logger.Info()
	case SeverityInfo, SeveritySuccess:
		evt = s.logger.Debug()
	default:
		evt = s.logger.Debug()
	}
	evt.Str("operation", "notify").
		Str("severity", string(n.Severity)).
		Str("description", n.Description).
		Msg(n.Title)
}
