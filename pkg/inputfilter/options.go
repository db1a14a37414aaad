package inputfilter

import (
	"log/slog"

	"github.com/dmitrymomot/inputfilter/pkg/logger"
)

// Option configures an InputFilter or a CollectionInputFilter.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

func newSettings(opts []Option) settings {
	s := settings{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLogger sets the logger used for debug output of validation passes.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
