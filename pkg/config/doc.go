// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file is read once (if present), then the environment is
// parsed into any struct using `env` field tags. Every configuration type is
// parsed once and cached for the lifetime of the process.
//
// # Usage
//
//	type Settings struct {
//		Timezone string `env:"SCHEMA_TIMEZONE" envDefault:"UTC"`
//	}
//
//	var s Settings
//	config.MustLoad(&s)
//
// LoadEnv reads additional .env files, Reload re-parses a single type and
// ResetCache clears everything, which is mostly useful in tests.
package config
