// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files, or .env in the working directory.
//   - Load parses the environment into any struct annotated with env tags.
//   - Each configuration type is parsed once and served from a cache after.
//   - MustLoad and MustLoadEnv panic instead of returning errors.
//
// # Usage
//
//	type Config struct {
//		LogLevel  string `env:"INPUTFILTER_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"INPUTFILTER_LOG_FORMAT" envDefault:"text"`
//		Strict    bool   `env:"INPUTFILTER_STRICT"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//		return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Variables already present in the process environment are never
// overwritten by .env files.
//
// # Errors
//
//   - ErrParsingConfig: the environment could not be parsed into the struct.
//   - ErrLoadingEnv: a .env file could not be read.
//   - ErrConfigNotLoaded: the parsed value is missing from the cache.
//   - ErrNilPointer: a nil pointer was passed to Load or MustLoad.
//
// # Testing
//
// ResetCache clears every cached type. ForceReloadConfig reparses a single
// type after the environment changed.
package config
