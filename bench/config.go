package bench

import "log/slog"

type RunnerOption func(r *Runner)

// WithVerify enables the untimed comparison of both routines' output after
// the timed loop.
func WithVerify(verify bool) RunnerOption {
	return func(r *Runner) {
		r.verify = verify
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}
