package engine

import "log/slog"

// Operation identifies which solver entry point an event belongs to.
type Operation uint8

const (
	OpAdvise Operation = iota
	OpSimulate
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpAdvise:
		return "advise"
	case OpSimulate:
		return "simulate"
	default:
		return "unknown"
	}
}

// Event records one solver interaction. Err and Results are mutually
// exclusive: a terminal event carries one or the other.
type Event struct {
	RequestID string
	Operation Operation
	Results   int
	Err       error
}

// Logger is the interface applications implement to observe solver
// calls. Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records a solver event. Implementations must be thread-safe.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}

// SlogAdapter writes solver events to an slog.Logger. Useful for
// development when you want solver traffic in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to the given logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn when it carries an
// error.
func (a *SlogAdapter) Log(event Event) {
	attrs := []any{
		slog.String("request_id", event.RequestID),
		slog.String("operation", event.Operation.String()),
	}
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		a.logger.Warn("solver call failed", attrs...)
		return
	}
	if event.Results > 0 {
		attrs = append(attrs, slog.Int("results", event.Results))
	}
	a.logger.Debug("solver call", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
