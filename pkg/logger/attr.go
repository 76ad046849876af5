package logger

import (
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

// Schema records the schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Issues records validation messages under the key "issues" together with their count.
// If messages is empty, it returns an empty Attr.
func Issues(messages []string) slog.Attr {
	if len(messages) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(messages)+1)
	as = append(as, slog.Int("count", len(messages)))
	for i, msg := range messages {
		as = append(as, slog.String(strconv.Itoa(i), msg))
	}
	return slog.Attr{Key: "issues", Value: slog.GroupValue(as...)}
}

// Lang records a language tag under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Key records a message key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}
