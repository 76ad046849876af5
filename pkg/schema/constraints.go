package schema

import "time"

// lengthRule is the shared minLength/maxLength logic of String and Array.
type lengthRule struct {
	min, max       int
	hasMin, hasMax bool
}

func (l lengthRule) withMin(n int) lengthRule {
	l.min, l.hasMin = n, true
	return l
}

func (l lengthRule) withMax(n int) lengthRule {
	l.max, l.hasMax = n, true
	return l
}

// lengthWording distinguishes "characters long" from "items".
type lengthWording struct {
	minCode, maxCode string
	minText, maxText func(n int) string
}

var (
	characterWording = lengthWording{
		minCode: CodeMinLength,
		maxCode: CodeMaxLength,
		minText: func(n int) string { return "Value must be at least " + formatInt(n) + " characters long" },
		maxText: func(n int) string { return "Value must be no more than " + formatInt(n) + " characters long" },
	}
	itemWording = lengthWording{
		minCode: CodeMinItems,
		maxCode: CodeMaxItems,
		minText: func(n int) string { return "Value must have at least " + formatInt(n) + " items" },
		maxText: func(n int) string { return "Value must have no more than " + formatInt(n) + " items" },
	}
)

// check returns the first violated bound, if any.
func (l lengthRule) check(b base, n int, w lengthWording) (Issue, bool) {
	if l.hasMin && n < l.min {
		return b.issue(w.minCode, w.minText(l.min), map[string]string{"min": formatInt(l.min)}), false
	}
	if l.hasMax && n > l.max {
		return b.issue(w.maxCode, w.maxText(l.max), map[string]string{"max": formatInt(l.max)}), false
	}
	return Issue{}, true
}

// rangeRule is the shared inclusive min/max logic of Number.
type rangeRule struct {
	min, max       float64
	hasMin, hasMax bool
}

func (r rangeRule) withMin(v float64) rangeRule {
	r.min, r.hasMin = v, true
	return r
}

func (r rangeRule) withMax(v float64) rangeRule {
	r.max, r.hasMax = v, true
	return r
}

func (r rangeRule) check(b base, v float64) (Issue, bool) {
	if r.hasMin && v < r.min {
		m := formatFloat(r.min)
		return b.issue(CodeMin, "Value must be at least "+m, map[string]string{"min": m}), false
	}
	if r.hasMax && v > r.max {
		m := formatFloat(r.max)
		return b.issue(CodeMax, "Value must be no more than "+m, map[string]string{"max": m}), false
	}
	return Issue{}, true
}

// timeRange is the inclusive min/max logic of Date. A bound set through
// Future or Past is resolved against the clock on every call.
type timeRange struct {
	min, max           time.Time
	hasMin, hasMax     bool
	minIsNow, maxIsNow bool
}

func (r timeRange) check(b base, v, now time.Time) (Issue, bool) {
	if r.hasMin {
		bound := r.min
		if r.minIsNow {
			bound = now
		}
		if v.Before(bound) {
			s := formatTime(bound)
			return b.issue(CodeMinDate, "Date must be on or after "+s, map[string]string{"min": s}), false
		}
	}
	if r.hasMax {
		bound := r.max
		if r.maxIsNow {
			bound = now
		}
		if v.After(bound) {
			s := formatTime(bound)
			return b.issue(CodeMaxDate, "Date must be on or before "+s, map[string]string{"max": s}), false
		}
	}
	return Issue{}, true
}

// formatTime renders t like an ISO-8601 timestamp with millisecond precision in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
