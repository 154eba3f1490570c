package signal

import "log/slog"

// Option configures a Signal. Signatures are Options too: passing one to
// New declares it.
type Option interface {
	apply(*Signal)
}

type optionFunc func(*Signal)

func (f optionFunc) apply(s *Signal) { f(s) }

// PanicHandler is called when a slot panics during an emission.
// Receives the name of the signature being emitted and the recovered value.
type PanicHandler func(signature string, recovered any)

// WithName sets the name used in log lines, errors and Stats.
func WithName(name string) Option {
	return optionFunc(func(s *Signal) {
		s.name = name
	})
}

// WithLogger sets the logger for connection lifecycle and recovered panics.
// Default is slog.Default() at the time New is called.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(s *Signal) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithPanicHandler makes emissions recover panicking slots. The handler is
// invoked with the recovered value and the emission carries on with the
// next slot. Without a handler, a slot's panic propagates to the caller of
// Emit once the Signal's bookkeeping has been restored.
func WithPanicHandler(handler PanicHandler) Option {
	return optionFunc(func(s *Signal) {
		s.panicHandler = handler
	})
}
