package schema

import (
	"encoding/json"
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
)

// StringValidator validates string values. Configuration methods return a
// modified copy, so a StringValidator can be shared once built.
type StringValidator struct {
	base
	length  lengthRule
	pattern *regexp.Regexp
	uuid    bool
}

// String creates a validator accepting any value of string kind.
func String() StringValidator {
	return StringValidator{}
}

// Optional makes a nil input succeed as an absent value.
func (s StringValidator) Optional() StringValidator {
	s.optional = true
	return s
}

// WithMessage replaces the message of this validator's own failures.
func (s StringValidator) WithMessage(message string) StringValidator {
	s.message, s.custom = message, true
	return s
}

// MinLength requires at least n characters (Unicode code points).
func (s StringValidator) MinLength(n int) StringValidator {
	s.length = s.length.withMin(n)
	return s
}

// MaxLength allows at most n characters (Unicode code points).
func (s StringValidator) MaxLength(n int) StringValidator {
	s.length = s.length.withMax(n)
	return s
}

// Length requires exactly n characters.
func (s StringValidator) Length(n int) StringValidator {
	return s.MinLength(n).MaxLength(n)
}

// Pattern requires the value to match re. A nil re removes the pattern.
func (s StringValidator) Pattern(re *regexp.Regexp) StringValidator {
	s.pattern = re
	return s
}

// Matches compiles expr and installs it as the pattern. Panics on an invalid expression.
func (s StringValidator) Matches(expr string) StringValidator {
	return s.Pattern(regexp.MustCompile(expr))
}

// Email requires a plausible address of the form local@domain.tld.
func (s StringValidator) Email() StringValidator {
	return s.Pattern(emailPattern).WithMessage("Value must be a valid email address")
}

// URL requires an absolute http or https URL.
func (s StringValidator) URL() StringValidator {
	return s.Pattern(urlPattern).WithMessage("Value must be a valid URL")
}

// UUID requires a hyphenated UUID string.
func (s StringValidator) UUID() StringValidator {
	s.uuid = true
	return s.WithMessage("Value must be a valid UUID")
}

// Validate checks presence, type, length, pattern and UUID format in that order.
func (s StringValidator) Validate(value any) Result[string] {
	if res, cont := presence[string](s.base, value); !cont {
		return res
	}

	str, isString := asString(value)
	if !isString {
		return fail[string](s.issue(CodeNotString, "Value must be a string", nil))
	}

	if issue, passed := s.length.check(s.base, utf8.RuneCountInString(str), characterWording); !passed {
		return fail[string](issue)
	}

	if s.pattern != nil && !s.pattern.MatchString(str) {
		return fail[string](s.issue(CodePattern, "Value does not match the required pattern",
			map[string]string{"pattern": s.pattern.String()}))
	}

	if s.uuid && !validUUID(str) {
		return fail[string](s.issue(CodePattern, "Value does not match the required pattern",
			map[string]string{"pattern": "uuid"}))
	}

	return ok(str)
}

func (s StringValidator) ValidateAny(value any) Result[any] { return s.Validate(value).erase() }

// asString accepts values of string kind. json.Number is a number even though
// its underlying kind is string.
func asString(value any) (string, bool) {
	if str, isString := value.(string); isString {
		return str, true
	}
	value = deref(value)
	if _, isNumber := value.(json.Number); isNumber {
		return "", false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// validUUID checks length and hyphen positions before parsing, rejecting the
// braced and URN forms uuid.Parse would otherwise accept.
func validUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
