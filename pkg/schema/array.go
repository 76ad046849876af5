package schema

import "reflect"

// ArrayValidator validates slices and arrays whose elements all satisfy one
// item validator. Element failures are aggregated, never short-circuited.
type ArrayValidator[T any] struct {
	base
	item   Validator[T]
	length lengthRule
}

// Array creates a validator whose elements are each checked by item.
func Array[T any](item Validator[T]) ArrayValidator[T] {
	return ArrayValidator[T]{item: item}
}

// Optional makes a nil input succeed as an absent value.
func (a ArrayValidator[T]) Optional() ArrayValidator[T] {
	a.optional = true
	return a
}

// WithMessage replaces the presence, type and length messages. Per-item
// issues keep their own text.
func (a ArrayValidator[T]) WithMessage(message string) ArrayValidator[T] {
	a.message, a.custom = message, true
	return a
}

// MinLength requires at least n items.
func (a ArrayValidator[T]) MinLength(n int) ArrayValidator[T] {
	a.length = a.length.withMin(n)
	return a
}

// MaxLength allows at most n items.
func (a ArrayValidator[T]) MaxLength(n int) ArrayValidator[T] {
	a.length = a.length.withMax(n)
	return a
}

// Length requires exactly n items.
func (a ArrayValidator[T]) Length(n int) ArrayValidator[T] {
	return a.MinLength(n).MaxLength(n)
}

// NonEmpty requires at least one item and reports "Array must not be empty".
func (a ArrayValidator[T]) NonEmpty() ArrayValidator[T] {
	return a.MinLength(1).WithMessage("Array must not be empty")
}

// Validate checks every element and reports all element issues together.
func (a ArrayValidator[T]) Validate(value any) Result[[]T] {
	if res, cont := presence[[]T](a.base, value); !cont {
		return res
	}

	rv := reflect.ValueOf(deref(value))
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fail[[]T](a.issue(CodeNotArray, "Value must be an array", nil))
	}

	if issue, passed := a.length.check(a.base, rv.Len(), itemWording); !passed {
		return fail[[]T](issue)
	}

	data := make([]T, rv.Len())
	var issues Issues
	for i := range rv.Len() {
		res := a.item.Validate(rv.Index(i).Interface())
		if !res.Success {
			for _, issue := range res.Issues {
				issues = append(issues, issue.nest(indexSegment(i)))
			}
			continue
		}
		data[i] = res.Data
	}

	if len(issues) > 0 {
		return fail[[]T](issues...)
	}
	return ok(data)
}

func (a ArrayValidator[T]) ValidateAny(value any) Result[any] { return a.Validate(value).erase() }
