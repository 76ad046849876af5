package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/schemakit/pkg/logger"
)

// DefaultLanguage is used when a requested language cannot be matched.
const DefaultLanguage = "en"

// Catalog holds message templates per language. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	translations  map[string]map[string]any
	languages     []string
	matcher       language.Matcher
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// NewCatalog loads translations through the adapter and prepares language matching.
func NewCatalog(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return nil, err
	}

	tags := make([]language.Tag, 0, len(translations))
	languages := make([]string, 0, len(translations))
	// The default language goes first so the matcher falls back to it.
	ordered := slices.Sorted(maps.Keys(translations))
	if i := slices.Index(ordered, c.defaultLang); i > 0 {
		ordered = append([]string{c.defaultLang}, slices.Delete(ordered, i, i+1)...)
	}
	for _, lang := range ordered {
		if translations[lang] == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrInvalidLanguageCode, lang)
		}
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLanguageCode, lang, err)
		}
		tags = append(tags, tag)
		languages = append(languages, lang)
	}

	c.translations = translations
	c.languages = languages
	if len(tags) > 0 {
		c.matcher = language.NewMatcher(tags)
	}
	c.logger.InfoContext(ctx, "translations loaded",
		logger.Group("catalog", slog.Any("languages", c.SupportedLanguages()), slog.String("default", c.defaultLang)))
	return c, nil
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (c *Catalog) SupportedLanguages() []string {
	out := slices.Clone(c.languages)
	slices.Sort(out)
	return out
}

// Match resolves a requested language (e.g. "de-AT" or an Accept-Language
// header value) to the closest loaded language. Unmatched requests resolve to
// the default language.
func (c *Catalog) Match(lang string) string {
	if _, ok := c.translations[lang]; ok {
		return lang
	}
	if c.matcher == nil {
		return c.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, index, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.defaultLang
	}
	return c.languages[index]
}

// HasTranslation checks if a translation exists for the exact language and key.
func (c *Catalog) HasTranslation(lang, key string) bool {
	_, ok := c.template(lang, key)
	return ok
}

// Lookup finds the template for key in the language matched from lang and
// substitutes "%{name}" placeholders with args given as name/value pairs.
// The boolean result is false when no template exists.
func (c *Catalog) Lookup(lang, key string, args ...string) (string, bool) {
	matched := c.Match(lang)
	tmpl, ok := c.template(matched, key)
	if !ok && matched != c.defaultLang {
		tmpl, ok = c.template(c.defaultLang, key)
	}
	if !ok {
		if c.logMissing {
			c.logger.Warn("translation not found", logger.Lang(lang), logger.Key(key))
		}
		return "", false
	}
	return substitute(tmpl, args), true
}

// T translates key like Lookup. A missing translation returns the key itself
// when fallback to key is enabled (the default), otherwise an empty string.
func (c *Catalog) T(lang, key string, args ...string) string {
	if s, ok := c.Lookup(lang, key, args...); ok {
		return s
	}
	if c.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

func (c *Catalog) template(lang, key string) (string, bool) {
	m, ok := c.translations[lang]
	if !ok {
		return "", false
	}
	if v, ok := m[key].(string); ok {
		return v, true
	}
	v, ok := lookupNested(m, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// lookupNested traverses a nested map using dot-separated keys, so
// "schema.type.string" reads m["schema"]["type"]["string"].
func lookupNested(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders. Unknown placeholders are kept;
// an odd trailing argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
