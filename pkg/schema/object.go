package schema

import (
	"maps"
	"reflect"
	"slices"
)

// ObjectValidator validates string-keyed maps field by field. Every declared
// field is checked and all field issues are reported together.
type ObjectValidator struct {
	base
	fields Fields
	strict bool
}

// Object creates a validator for the given fields. The map is copied.
func Object(fields Fields) ObjectValidator {
	return ObjectValidator{fields: maps.Clone(fields)}
}

// Optional makes a nil input succeed as an absent value.
func (o ObjectValidator) Optional() ObjectValidator {
	o.optional = true
	return o
}

// WithMessage replaces the presence and type messages. Field issues keep
// their own text.
func (o ObjectValidator) WithMessage(message string) ObjectValidator {
	o.message, o.custom = message, true
	return o
}

// Strict rejects input keys that are not declared fields, one issue per key
// in key order. A WithMessage text replaces these messages too.
func (o ObjectValidator) Strict() ObjectValidator {
	o.strict = true
	return o
}

// Extend returns a validator with extra fields; same-named fields are replaced.
func (o ObjectValidator) Extend(fields Fields) ObjectValidator {
	merged := maps.Clone(o.fields)
	if merged == nil {
		merged = make(Fields, len(fields))
	}
	maps.Copy(merged, fields)
	o.fields = merged
	return o
}

// Shape returns a copy of the declared fields.
func (o ObjectValidator) Shape() Fields {
	return maps.Clone(o.fields)
}

// Validate checks declared fields in name order, so the issue order is stable.
// Fields that are absent and optional are left out of the output map.
func (o ObjectValidator) Validate(value any) Result[map[string]any] {
	if res, cont := presence[map[string]any](o.base, value); !cont {
		return res
	}

	rv := reflect.ValueOf(deref(value))
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return fail[map[string]any](o.issue(CodeNotObject, "Value must be an object", nil))
	}

	input := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		input[iter.Key().String()] = iter.Value().Interface()
	}

	data := make(map[string]any, len(o.fields))
	var issues Issues
	for _, name := range slices.Sorted(maps.Keys(o.fields)) {
		res := o.fields[name].ValidateAny(input[name])
		if !res.Success {
			for _, issue := range res.Issues {
				issues = append(issues, issue.nest(fieldSegment(name)))
			}
			continue
		}
		if res.Present {
			data[name] = res.Data
		}
	}

	if o.strict {
		for _, key := range slices.Sorted(maps.Keys(input)) {
			if _, declared := o.fields[key]; !declared {
				issues = append(issues, o.issue(CodeUnexpected, "Unexpected field '"+key+"'",
					map[string]string{"field": key}))
			}
		}
	}

	if len(issues) > 0 {
		return fail[map[string]any](issues...)
	}
	return ok(data)
}

func (o ObjectValidator) ValidateAny(value any) Result[any] { return o.Validate(value).erase() }
