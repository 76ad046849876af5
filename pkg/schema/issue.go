package schema

import (
	"errors"
	"strconv"
	"strings"
)

// Segment is one step of an issue path: either an object field or an array index.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func fieldSegment(name string) Segment { return Segment{Field: name} }

func indexSegment(i int) Segment { return Segment{Index: i, IsIndex: true} }

func (s Segment) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Field
}

// Issue represents a single validation failure with translation support.
// Message holds the default English text of the failing validator; the
// locator prefixes added by composites are rendered from Path by String.
type Issue struct {
	Path    []Segment
	Code    string
	Message string
	Params  map[string]string
	// Custom is set when Message comes from WithMessage and must not be translated.
	Custom bool
}

// PathString renders the path in dotted form, e.g. "users.2.email".
func (i Issue) PathString() string {
	parts := make([]string, len(i.Path))
	for n, seg := range i.Path {
		parts[n] = seg.String()
	}
	return strings.Join(parts, ".")
}

// String renders the issue the way it appears in Result.Errors.
func (i Issue) String() string {
	return renderPath(i.Path, i.Message, func(seg Segment, msg string) string {
		if seg.IsIndex {
			return "Item at index " + strconv.Itoa(seg.Index) + ": " + msg
		}
		return "Field '" + seg.Field + "': " + msg
	})
}

// renderPath wraps msg with one prefix per segment, innermost first.
func renderPath(path []Segment, msg string, prefix func(Segment, string) string) string {
	for n := len(path) - 1; n >= 0; n-- {
		msg = prefix(path[n], msg)
	}
	return msg
}

// nest returns a copy of the issue located under seg.
func (i Issue) nest(seg Segment) Issue {
	path := make([]Segment, 0, len(i.Path)+1)
	path = append(path, seg)
	path = append(path, i.Path...)
	i.Path = path
	return i
}

// Issues is an ordered collection of validation issues. It implements error.
type Issues []Issue

func (is Issues) Error() string {
	if len(is) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(is.Messages(), "; ")
}

// Is reports whether target is ErrValidationFailed so callers can use errors.Is.
func (is Issues) Is(target error) bool {
	return target == ErrValidationFailed
}

// Messages returns the rendered message of every issue in order.
func (is Issues) Messages() []string {
	out := make([]string, len(is))
	for n, issue := range is {
		out[n] = issue.String()
	}
	return out
}

// Has reports whether any issue is located at the dotted path.
func (is Issues) Has(path string) bool {
	for _, issue := range is {
		if issue.PathString() == path {
			return true
		}
	}
	return false
}

// Get returns the unprefixed messages of issues located at the dotted path.
func (is Issues) Get(path string) []string {
	var messages []string
	for _, issue := range is {
		if issue.PathString() == path {
			messages = append(messages, issue.Message)
		}
	}
	return messages
}

// Paths returns the distinct dotted paths in first-seen order.
func (is Issues) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, issue := range is {
		p := issue.PathString()
		if !seen[p] {
			paths = append(paths, p)
			seen[p] = true
		}
	}
	return paths
}

// ExtractIssues extracts Issues from an error chain.
func ExtractIssues(err error) Issues {
	if err == nil {
		return nil
	}

	var issues Issues
	if errors.As(err, &issues) {
		return issues
	}

	return nil
}

// IsValidationError reports whether err wraps Issues.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var issues Issues
	return errors.As(err, &issues)
}
