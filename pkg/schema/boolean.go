package schema

import "reflect"

// BooleanValidator validates bool values. It has no constraints.
type BooleanValidator struct {
	base
}

// Boolean creates a validator accepting values of bool kind.
func Boolean() BooleanValidator {
	return BooleanValidator{}
}

// Optional makes a nil input succeed as an absent value.
func (b BooleanValidator) Optional() BooleanValidator {
	b.optional = true
	return b
}

// WithMessage replaces the message of this validator's own failures.
func (b BooleanValidator) WithMessage(message string) BooleanValidator {
	b.message, b.custom = message, true
	return b
}

// Validate accepts true and false only; no truthiness conversion is applied.
func (b BooleanValidator) Validate(value any) Result[bool] {
	if res, cont := presence[bool](b.base, value); !cont {
		return res
	}

	rv := reflect.ValueOf(deref(value))
	if rv.Kind() != reflect.Bool {
		return fail[bool](b.issue(CodeNotBoolean, "Value must be a boolean", nil))
	}

	return ok(rv.Bool())
}

func (b BooleanValidator) ValidateAny(value any) Result[any] { return b.Validate(value).erase() }
