package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Input records an input name under the key "input".
// If name is empty, it returns an empty Attr.
func Input(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("input", name)
}

// Path records a dotted field path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Valid records a validation verdict under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Counts groups the outcome of a validation pass under the key "counts".
func Counts(considered, valid, invalid int) slog.Attr {
	return Group("counts",
		slog.Int("considered", considered),
		slog.Int("valid", valid),
		slog.Int("invalid", invalid),
	)
}

// RunID records the identifier of a validation run under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Source records where data or a definition was loaded from under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
