// Package logger provides a thin factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions that select the
// output format (text or json), the minimum level, and static attributes.
// WithDevelopment and WithProduction bundle sensible defaults.
//
// Helper constructors in attr.go keep attribute naming consistent across the
// module: Schema and Issues are used by schema.Logged to report failed
// validations, Lang and Key by the i18n catalog for missing translations.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("signup-api"))
//	signup := schema.Logged("signup", signupSchema, log)
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no additional nil check.
package logger
