package cheb

import "github.com/nativebind/nativebind-go/pkg/logging"

// Option configures a Series at allocation time.
type Option func(*options)

type options struct {
	logger logging.Logger
}

func defaultOptions() options {
	return options{logger: logging.New(nil)}
}

// WithLogger sets the logger used for lifecycle events. A nil logger keeps
// the default (slog.Default()).
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
