package schema

import (
	"encoding/json"
	"math"
	"reflect"
)

// NumberValidator validates numeric values of any Go integer or float kind.
// The validated data is always float64.
type NumberValidator struct {
	base
	bounds   rangeRule
	integer  bool
	positive bool
}

// Number creates a validator accepting any Go numeric kind or json.Number.
func Number() NumberValidator {
	return NumberValidator{}
}

// Optional makes a nil input succeed as an absent value.
func (n NumberValidator) Optional() NumberValidator {
	n.optional = true
	return n
}

// WithMessage replaces the message of this validator's own failures.
func (n NumberValidator) WithMessage(message string) NumberValidator {
	n.message, n.custom = message, true
	return n
}

// Min sets an inclusive lower bound.
func (n NumberValidator) Min(v float64) NumberValidator {
	n.bounds = n.bounds.withMin(v)
	return n
}

// Max sets an inclusive upper bound.
func (n NumberValidator) Max(v float64) NumberValidator {
	n.bounds = n.bounds.withMax(v)
	return n
}

// Between sets both inclusive bounds.
func (n NumberValidator) Between(min, max float64) NumberValidator {
	return n.Min(min).Max(max)
}

// Integer rejects values with a fractional part and infinities.
func (n NumberValidator) Integer() NumberValidator {
	n.integer = true
	return n
}

// Positive requires a value strictly greater than zero.
func (n NumberValidator) Positive() NumberValidator {
	n.positive = true
	return n
}

// Validate checks constraints in a fixed order (range, integer, positive);
// the first violation is the only issue reported.
func (n NumberValidator) Validate(value any) Result[float64] {
	if res, cont := presence[float64](n.base, value); !cont {
		return res
	}

	f, isNumber := asFloat(value)
	if !isNumber || math.IsNaN(f) {
		return fail[float64](n.issue(CodeNotNumber, "Value must be a number", nil))
	}

	if issue, passed := n.bounds.check(n.base, f); !passed {
		return fail[float64](issue)
	}

	if n.integer && (math.IsInf(f, 0) || f != math.Trunc(f)) {
		return fail[float64](n.issue(CodeInteger, "Value must be an integer", nil))
	}

	if n.positive && f <= 0 {
		return fail[float64](n.issue(CodePositive, "Value must be positive", nil))
	}

	return ok(f)
}

func (n NumberValidator) ValidateAny(value any) Result[any] { return n.Validate(value).erase() }

// asFloat converts any Go numeric kind, or a json.Number, to float64.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}

	value = deref(value)
	if v, isJSON := value.(json.Number); isJSON {
		f, err := v.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
