package schema

import "log/slog"

// WithLogger injects the logger that receives failure traces, replacing
// slog.Default(). It has no effect unless LogFailures is also given.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// trace is the diagnostics sink threaded through one evaluation. It is
// purely observational; the evaluator never reads anything back from it.
type trace struct {
	enabled bool
	logger  *slog.Logger
}

func newTrace(cfg Config) trace {
	if !cfg.LogFailures {
		return trace{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return trace{enabled: true, logger: logger}
}

// muted returns a copy of the trace with output suppressed. Union members
// are evaluated muted so that a rejected candidate branch does not produce
// trace lines; only the union's overall failure is reported.
func (t trace) muted() trace {
	t.enabled = false

	return t
}

// reject records one combinator rejecting value at path. Paths use bracket
// notation rooted at $, e.g. $['user']['tags'][2].
func (t trace) reject(path, want string, value any) {
	if !t.enabled {
		return
	}

	t.logger.Info("schema: validation failed",
		"path", path,
		"want", want,
		"got", canonString(value))
}
