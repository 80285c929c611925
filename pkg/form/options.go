package form

import "time"

// DefaultDelay stands in for the network round trip of a submission.
const DefaultDelay = 2 * time.Second

// Logger is the subset of a structured logger the form reports lifecycle
// events to. *github.com/charmbracelet/log.Logger satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Info(any, ...any)  {}

// Clock abstracts time so tests can drive the submission delay.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Option configures a Form.
type Option func(*Form)

// WithDelay overrides the simulated submission delay. Negative values are
// treated as zero.
func WithDelay(d time.Duration) Option {
	return func(f *Form) {
		if d < 0 {
			d = 0
		}
		f.delay = d
	}
}

// WithClock injects the time source used for the delay and completion
// timestamps.
func WithClock(clock Clock) Option {
	return func(f *Form) {
		if clock != nil {
			f.clock = clock
		}
	}
}

// WithLogger routes lifecycle logging to logger.
func WithLogger(logger Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithInitialValues prefills field values. Unknown field names are dropped.
func WithInitialValues(values Values) Option {
	return func(f *Form) {
		for name, value := range values {
			if name.Known() {
				f.values = f.values.With(name, value)
			}
		}
	}
}
