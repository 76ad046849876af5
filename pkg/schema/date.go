package schema

import (
	"math"
	"strings"
	"time"
)

// maxUnixMilli is the largest distance from the epoch a numeric date may have (±100,000,000 days).
const maxUnixMilli = 8.64e15

// DateValidator validates time.Time values, date strings and Unix millisecond
// numbers. Strings and numbers are converted, so Data is always a time.Time.
type DateValidator struct {
	base
	bounds   timeRange
	layouts  []string
	location *time.Location
	now      func() time.Time
}

// Date creates a validator using DefaultSettings.
func Date() DateValidator {
	return DefaultSettings().Date()
}

// Optional makes a nil input succeed as an absent value.
func (d DateValidator) Optional() DateValidator {
	d.optional = true
	return d
}

// WithMessage replaces the message of this validator's own failures.
func (d DateValidator) WithMessage(message string) DateValidator {
	d.message, d.custom = message, true
	return d
}

// Min sets an inclusive lower bound.
func (d DateValidator) Min(t time.Time) DateValidator {
	d.bounds.min, d.bounds.hasMin, d.bounds.minIsNow = t, true, false
	return d
}

// Max sets an inclusive upper bound.
func (d DateValidator) Max(t time.Time) DateValidator {
	d.bounds.max, d.bounds.hasMax, d.bounds.maxIsNow = t, true, false
	return d
}

// Future bounds the date below by the current time, read on every Validate call.
func (d DateValidator) Future() DateValidator {
	d.bounds.hasMin, d.bounds.minIsNow = true, true
	return d.WithMessage("Date must be in the future")
}

// Past bounds the date above by the current time, read on every Validate call.
func (d DateValidator) Past() DateValidator {
	d.bounds.hasMax, d.bounds.maxIsNow = true, true
	return d.WithMessage("Date must be in the past")
}

// Layouts replaces the layouts used to parse strings.
func (d DateValidator) Layouts(layouts ...string) DateValidator {
	d.layouts = append([]string(nil), layouts...)
	return d
}

// In sets the location used for strings without a zone offset.
func (d DateValidator) In(loc *time.Location) DateValidator {
	if loc != nil {
		d.location = loc
	}
	return d
}

// WithClock replaces time.Now for Future and Past.
func (d DateValidator) WithClock(now func() time.Time) DateValidator {
	if now != nil {
		d.now = now
	}
	return d
}

// Validate converts the input to a time.Time and checks the bounds.
func (d DateValidator) Validate(value any) Result[time.Time] {
	if res, cont := presence[time.Time](d.base, value); !cont {
		return res
	}

	t, convertible, valid := d.convert(value)
	if !convertible {
		return fail[time.Time](d.issue(CodeNotDate, "Value must be a Date, string, or number", nil))
	}
	if !valid {
		return fail[time.Time](d.issue(CodeInvalidDate, "Value must be a valid date", nil))
	}

	if issue, passed := d.bounds.check(d.base, t, d.clock()); !passed {
		return fail[time.Time](issue)
	}

	return ok(t)
}

func (d DateValidator) ValidateAny(value any) Result[any] { return d.Validate(value).erase() }

func (d DateValidator) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}

// convert reports the parsed time, whether the input kind is convertible at
// all, and whether the conversion produced a valid date.
func (d DateValidator) convert(value any) (time.Time, bool, bool) {
	switch v := deref(value).(type) {
	case time.Time:
		return v, true, !v.IsZero()
	}

	if s, isString := asString(value); isString {
		t, err := d.parse(s)
		return t, true, err == nil
	}

	if f, isNumber := asFloat(value); isNumber {
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxUnixMilli {
			return time.Time{}, true, false
		}
		return time.UnixMilli(int64(f)).UTC(), true, true
	}

	return time.Time{}, false, false
}

func (d DateValidator) parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	loc := d.location
	if loc == nil {
		loc = time.UTC
	}
	layouts := d.layouts
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
