package logger

import (
	"fmt"
	"log/slog"
	"strconv"
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

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Path records a JSON pointer into a validated value under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Stage records the pipeline stage that rejected an input under the key "stage".
func Stage(stage string) slog.Attr {
	return slog.String("stage", stage)
}

// Locale records the negotiated language tag under the key "locale".
// An empty locale yields an empty Attr.
func Locale(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("locale", lang)
}

// Kind records a constraint kind under the key "kind".
// If k is nil, it returns an empty Attr.
func Kind(k fmt.Stringer) slog.Attr {
	if k == nil {
		return slog.Attr{}
	}
	return slog.String("kind", k.String())
}

// Type records a Go type name under the key "type".
func Type(name string) slog.Attr {
	return slog.String("type", name)
}

// Violations records how many failures a tree holds under the key "violations".
func Violations(n int) slog.Attr {
	return slog.Int("violations", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
