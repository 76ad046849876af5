package i18n

import "errors"

// Context cancellation errors are separate so callers can tell timeouts from bad input.
var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadDir      = errors.New("failed to read translation directory")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrNoTranslationFiles   = errors.New("no translation files found")
	ErrInvalidLanguageCode  = errors.New("invalid language code")
	ErrLanguageNotSupported = errors.New("language not supported")
)
