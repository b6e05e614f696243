// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//	    Locale     string `env:"VALIDATE_LOCALE" envDefault:"en"`
//	    LocalesDir string `env:"VALIDATE_LOCALES_DIR"`
//	}
//
//	if err := config.LoadEnv("./.env.local"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each configuration type is parsed once and cached. ForceReload re-parses a
// type after the environment changes; ResetCache clears everything, which is
// handy in tests. Errors wrap the sentinels ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
