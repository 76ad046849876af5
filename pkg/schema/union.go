package schema

// UnionValidator tries its alternatives in order and returns the first success.
type UnionValidator[T any] struct {
	base
	alternatives []Validator[T]
}

// Union creates a validator over alternatives of one output type. Use Erase
// to combine validators of different kinds.
func Union[T any](alternatives ...Validator[T]) UnionValidator[T] {
	return UnionValidator[T]{alternatives: append([]Validator[T](nil), alternatives...)}
}

// Optional makes a nil input succeed as an absent value.
func (u UnionValidator[T]) Optional() UnionValidator[T] {
	u.optional = true
	return u
}

// WithMessage replaces the message of this validator's own failures.
func (u UnionValidator[T]) WithMessage(message string) UnionValidator[T] {
	u.message, u.custom = message, true
	return u
}

// Validate returns the first successful alternative's result verbatim. The
// issues of failed alternatives are discarded.
func (u UnionValidator[T]) Validate(value any) Result[T] {
	if res, cont := presence[T](u.base, value); !cont {
		return res
	}

	for _, alt := range u.alternatives {
		if res := alt.Validate(value); res.Success {
			return res
		}
	}

	return fail[T](u.issue(CodeUnionMismatch, "Value does not match any of the allowed types", nil))
}

func (u UnionValidator[T]) ValidateAny(value any) Result[any] { return u.Validate(value).erase() }
