package schema

import "strconv"

// Localizer looks up a message template by language and key, substituting
// key/value args. It is satisfied by *i18n.Catalog.
type Localizer interface {
	Lookup(lang, key string, args ...string) (string, bool)
}

// Path prefix keys used by Localize.
const (
	KeyItemPrefix  = "schema.path.item"
	KeyFieldPrefix = "schema.path.field"
)

// Localize renders issues in lang. Issues carrying a custom message, and codes
// the localizer does not know, keep their English text.
func Localize(issues Issues, l Localizer, lang string) []string {
	out := make([]string, len(issues))
	for n, issue := range issues {
		out[n] = localizeIssue(issue, l, lang)
	}
	return out
}

func localizeIssue(issue Issue, l Localizer, lang string) string {
	msg := issue.Message
	if !issue.Custom && issue.Code != "" {
		args := make([]string, 0, 2*len(issue.Params))
		for k, v := range issue.Params {
			args = append(args, k, v)
		}
		if translated, found := l.Lookup(lang, issue.Code, args...); found {
			msg = translated
		}
	}

	return renderPath(issue.Path, msg, func(seg Segment, inner string) string {
		if seg.IsIndex {
			index := strconv.Itoa(seg.Index)
			if s, found := l.Lookup(lang, KeyItemPrefix, "index", index, "message", inner); found {
				return s
			}
			return "Item at index " + index + ": " + inner
		}
		if s, found := l.Lookup(lang, KeyFieldPrefix, "field", seg.Field, "message", inner); found {
			return s
		}
		return "Field '" + seg.Field + "': " + inner
	})
}
