package schema

import "errors"

var (
	// ErrValidationFailed is matched by every Issues value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidTimezone is returned by Settings.Location for an unknown zone name.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrLoadingSettings is returned when settings cannot be read from the environment.
	ErrLoadingSettings = errors.New("failed to load schema settings")
)

// Issue codes. They double as translation keys in the i18n catalogs.
const (
	CodeRequired      = "schema.required"
	CodeNotString     = "schema.type.string"
	CodeNotNumber     = "schema.type.number"
	CodeNotBoolean    = "schema.type.boolean"
	CodeNotDate       = "schema.type.date"
	CodeNotArray      = "schema.type.array"
	CodeNotObject     = "schema.type.object"
	CodeMinLength     = "schema.min_length"
	CodeMaxLength     = "schema.max_length"
	CodeMinItems      = "schema.min_items"
	CodeMaxItems      = "schema.max_items"
	CodePattern       = "schema.pattern"
	CodeMin           = "schema.min"
	CodeMax           = "schema.max"
	CodeInteger       = "schema.integer"
	CodePositive      = "schema.positive"
	CodeInvalidDate   = "schema.invalid_date"
	CodeMinDate       = "schema.min_date"
	CodeMaxDate       = "schema.max_date"
	CodeUnionMismatch = "schema.union"
	CodeLiteral       = "schema.literal"
	CodeUnexpected    = "schema.unexpected_field"
)
