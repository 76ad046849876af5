// Package schema provides composable, type-safe validators that check untyped
// input (typically values produced by a JSON or YAML decoder) and return
// either typed data or a list of human-readable errors.
//
// Validators are built from small units and nested into a tree describing a
// whole data shape:
//
//	user := schema.Object(schema.Fields{
//	    "name":  schema.String().MinLength(2).MaxLength(64),
//	    "email": schema.String().Email(),
//	    "age":   schema.Number().Integer().Min(18).Optional(),
//	    "role":  schema.Union(schema.Literal("admin"), schema.Literal("member")),
//	    "tags":  schema.Array(schema.String()).MaxLength(10),
//	})
//
//	res := user.Validate(input)
//	if !res.Success {
//	    for _, msg := range res.Errors() {
//	        // "Field 'email': Value must be a valid email address"
//	    }
//	}
//
// # Architecture
//
// Every validator kind is a value type with chainable configuration methods.
// Each method returns a modified copy, so a configured validator is immutable,
// can be reused in several trees, and is safe for concurrent use.
//
// Validation runs in a fixed sequence: nil check (Optional turns a nil input
// into a successful, absent result), type check, then constraints. Primitive
// validators stop at the first failure and report a single issue. Array and
// Object validate every element or field and aggregate all issues, prefixing
// each with "Item at index <i>: " or "Field '<name>': ". Union returns the first
// successful alternative and Literal requires an exact value.
//
// WithMessage replaces the message of the validator's own failures only;
// issues aggregated from children keep their text.
//
// # Error Handling
//
// Result.Issues holds structured Issue values with a path, a stable code and
// translation params. Issues implements error and matches ErrValidationFailed
// with errors.Is; Parse returns it directly. Localize renders issues through
// an i18n catalog.
//
// # Configuration
//
// Date parsing layouts and the default timezone come from Settings, which can
// be loaded from SCHEMA_DATE_LAYOUTS and SCHEMA_TIMEZONE with LoadSettings.
package schema
