package schema

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// LoggedValidator decorates a validator and logs every failed validation.
type LoggedValidator[T any] struct {
	name  string
	inner Validator[T]
	log   *slog.Logger
	level slog.Level
}

// Logged wraps v so failures are logged at debug level under the given schema name.
// A nil log uses slog.Default.
func Logged[T any](name string, v Validator[T], log *slog.Logger) LoggedValidator[T] {
	if log == nil {
		log = slog.Default()
	}
	return LoggedValidator[T]{name: name, inner: v, log: log, level: slog.LevelDebug}
}

// AtLevel returns a copy logging failures at level.
func (l LoggedValidator[T]) AtLevel(level slog.Level) LoggedValidator[T] {
	l.level = level
	return l
}

func (l LoggedValidator[T]) Validate(value any) Result[T] {
	res := l.inner.Validate(value)
	if !res.Success {
		ctx := context.Background()
		if l.log.Enabled(ctx, l.level) {
			l.log.LogAttrs(ctx, l.level, "validation failed",
				logger.Schema(l.name),
				logger.Issues(res.Issues.Messages()),
			)
		}
	}
	return res
}

func (l LoggedValidator[T]) ValidateAny(value any) Result[any] { return l.Validate(value).erase() }
