package schema

import (
	"errors"
	"time"

	"github.com/dmitrymomot/schemakit/pkg/config"
)

// DefaultDateLayouts are tried in order when a Date validator parses a string.
var DefaultDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"Jan 2, 2006",
}

// Settings controls how Date validators turn strings into times.
//
// Example environment:
//
//	SCHEMA_DATE_LAYOUTS="2006-01-02;02.01.2006"
//	SCHEMA_TIMEZONE=Europe/Berlin
type Settings struct {
	// DateLayouts replaces DefaultDateLayouts when not empty.
	DateLayouts []string `env:"SCHEMA_DATE_LAYOUTS" envSeparator:";"`
	// Timezone is used for strings that carry no zone offset.
	Timezone string `env:"SCHEMA_TIMEZONE" envDefault:"UTC"`
}

// DefaultSettings uses DefaultDateLayouts in UTC.
func DefaultSettings() Settings {
	return Settings{Timezone: "UTC"}
}

// LoadSettings reads Settings from the environment (and .env, if present).
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, errors.Join(ErrLoadingSettings, err)
	}
	if _, err := s.Location(); err != nil {
		return Settings{}, errors.Join(ErrLoadingSettings, err)
	}
	return s, nil
}

// Layouts returns DateLayouts, or DefaultDateLayouts when none are set.
func (s Settings) Layouts() []string {
	if len(s.DateLayouts) == 0 {
		return DefaultDateLayouts
	}
	return s.DateLayouts
}

// Location resolves Timezone. An empty Timezone means UTC.
func (s Settings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimezone, err)
	}
	return loc, nil
}

// Date builds a Date validator that parses strings with these settings.
// An unresolvable Timezone falls back to UTC; LoadSettings rejects it upfront.
func (s Settings) Date() DateValidator {
	loc, err := s.Location()
	if err != nil {
		loc = time.UTC
	}
	layouts := append([]string(nil), s.Layouts()...)
	return DateValidator{layouts: layouts, location: loc, now: time.Now}
}
