package logging

import (
	"time"
)

// now is replaced in tests
var now = time.Now

// Span is one timed operation, logged at debug level when it ends.
type Span struct {
	logger *Logger
	name   string
	start  time.Time
}

// Start begins a span on the global logger.
//
//	span := logging.Start("load catalog")
//	defer span.End("count", catalog.Len())
func Start(name string) Span {
	return Get().Start(name)
}

// Start begins a span on l, keeping its component tags.
func (l *Logger) Start(name string) Span {
	return Span{logger: l, name: name, start: now()}
}

// End logs the elapsed time with any extra key-value pairs and returns it.
func (s Span) End(args ...any) time.Duration {
	elapsed := now().Sub(s.start)
	if !s.logger.IsEnabled() {
		return elapsed
	}

	attrs := append([]any{"duration", elapsed.String(), "ms", elapsed.Milliseconds()}, args...)
	s.logger.Debug(s.name, attrs...)
	return elapsed
}

// Time runs fn inside a span on l.
func (l *Logger) Time(name string, fn func()) {
	span := l.Start(name)
	fn()
	span.End()
}

// TimeWithResult runs fn inside a span on the global logger. A failed call
// is logged with its error at warn level instead.
func TimeWithResult[T any](name string, fn func() (T, error)) (T, error) {
	span := Start(name)
	result, err := fn()
	if err != nil {
		elapsed := now().Sub(span.start)
		Get().Warn(name+" failed", "error", err, "ms", elapsed.Milliseconds())
		return result, err
	}
	span.End()
	return result, nil
}
