package schema

import (
	"reflect"
	"strconv"
)

// Validator checks one untyped input and produces either typed data or issues.
// A configured Validator holds no input-dependent state and is safe for
// concurrent use.
type Validator[T any] interface {
	Validate(value any) Result[T]
}

// AnyValidator is implemented by every validator in this package. It lets
// validators of different output types share one Object field map.
type AnyValidator interface {
	ValidateAny(value any) Result[any]
}

// Fields maps object field names to their validators.
type Fields map[string]AnyValidator

// base holds the configuration shared by every validator kind.
type base struct {
	optional bool
	message  string
	custom   bool
}

// issue builds the validator's own failure, honouring a custom message.
func (b base) issue(code, message string, params map[string]string) Issue {
	if b.custom {
		return Issue{Code: code, Message: b.message, Params: params, Custom: true}
	}
	return Issue{Code: code, Message: message, Params: params}
}

// nullish reports whether the value counts as null/undefined.
func nullish(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// deref follows non-nil pointers so *string validates like string.
func deref(value any) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// presence runs the nullish short-circuit shared by every kind. The second
// return value is false when validation must stop with the returned result.
func presence[T any](b base, value any) (Result[T], bool) {
	if !nullish(value) {
		return Result[T]{}, true
	}
	if b.optional {
		return absent[T](), false
	}
	return fail[T](b.issue(CodeRequired, "Value is required", nil)), false
}

func formatInt(n int) string { return strconv.Itoa(n) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// Erase adapts a typed validator to Validator[any], e.g. to mix kinds in a Union.
func Erase[T any](v Validator[T]) Validator[any] {
	return erased[T]{v: v}
}

type erased[T any] struct {
	v Validator[T]
}

func (e erased[T]) Validate(value any) Result[any] { return e.v.Validate(value).erase() }

func (e erased[T]) ValidateAny(value any) Result[any] { return e.Validate(value) }

// Parse validates value and returns the data or the issues as an error.
func Parse[T any](v Validator[T], value any) (T, error) {
	return v.Validate(value).Unwrap()
}

// MustParse is like Parse but panics on validation failure.
func MustParse[T any](v Validator[T], value any) T {
	data, err := Parse(v, value)
	if err != nil {
		panic(err)
	}
	return data
}
