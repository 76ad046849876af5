package schema

import (
	"fmt"
	"reflect"
)

// Scalar lists the types a Literal can hold.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// LiteralValidator accepts exactly one value.
type LiteralValidator[T Scalar] struct {
	base
	expected T
}

// Literal creates a validator accepting only value. A float32 literal is
// compared in float32 precision, so it matches the float64 a decoder produces.
func Literal[T Scalar](value T) LiteralValidator[T] {
	return LiteralValidator[T]{expected: value}
}

// Optional makes a nil input succeed as an absent value.
func (l LiteralValidator[T]) Optional() LiteralValidator[T] {
	l.optional = true
	return l
}

// WithMessage replaces the message of this validator's own failures.
func (l LiteralValidator[T]) WithMessage(message string) LiteralValidator[T] {
	l.message, l.custom = message, true
	return l
}

// Value returns the expected literal.
func (l LiteralValidator[T]) Value() T {
	return l.expected
}

// Validate compares with strict equality: strings only equal strings, bools
// only bools, and numbers of any kind compare by numeric value.
func (l LiteralValidator[T]) Validate(value any) Result[T] {
	if res, cont := presence[T](l.base, value); !cont {
		return res
	}

	if !sameScalar(l.expected, value) {
		s := fmt.Sprint(l.expected)
		return fail[T](l.issue(CodeLiteral, "Value must be exactly "+s, map[string]string{"literal": s}))
	}

	return ok(l.expected)
}

func (l LiteralValidator[T]) ValidateAny(value any) Result[any] { return l.Validate(value).erase() }

func sameScalar(expected, value any) bool {
	switch reflect.ValueOf(expected).Kind() {
	case reflect.String:
		want, _ := asString(expected)
		got, isString := asString(value)
		return isString && got == want
	case reflect.Bool:
		got := reflect.ValueOf(deref(value))
		return got.Kind() == reflect.Bool && got.Bool() == reflect.ValueOf(expected).Bool()
	case reflect.Float32:
		want, _ := asFloat(expected)
		got, isNumber := asFloat(value)
		return isNumber && float32(got) == float32(want)
	default:
		want, _ := asFloat(expected)
		got, isNumber := asFloat(value)
		return isNumber && got == want
	}
}
