package cmd

import (
	"fmt"
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/inputfilter/pkg/config"
	"github.com/dmitrymomot/inputfilter/pkg/i18n"
	"github.com/dmitrymomot/inputfilter/pkg/logger"
)

// Exit codes reported by the CLI.
const (
	ExitInvalid = 1
	ExitConfig  = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func configError(err error) error {
	return &ExitError{Code: ExitConfig, Err: err}
}

// Config is read from the environment. Flags override it. Locale turns on
// message translation; Translations names a JSON or YAML file replacing the
// built-in translations.
type Config struct {
	LogLevel     string `env:"INPUTFILTER_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"INPUTFILTER_LOG_FORMAT" envDefault:"text"`
	Env          string `env:"INPUTFILTER_ENV" envDefault:"development"`
	Strict       bool   `env:"INPUTFILTER_STRICT"`
	Locale       string `env:"INPUTFILTER_LOCALE"`
	Translations string `env:"INPUTFILTER_TRANSLATIONS"`
}

func loadConfig(envFiles []string) (Config, error) {
	var cfg Config
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return cfg, err
		}
		if err := config.ForceReloadConfig(&cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) logger(opts ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	opts = append([]logger.Option{
		logger.WithEnvironment(c.Env, "inputfilter"),
		logger.WithLevel(level),
		logger.WithFormat(format),
	}, opts...)
	return logger.New(opts...), nil
}

//go:embed translations
var translations embed.FS

// translator returns nil when no locale is set.
func (c Config) translator(ctx context.Context, log *slog.Logger) (*i18n.Translator, error) {
	if c.Locale == "" {
		return nil, nil
	}
	var adapter i18n.TranslationAdapter = i18n.NewFSAdapter(i18n.NewYAMLParser(), translations, "translations")
	if c.Translations != "" {
		parser := i18n.NewParserForFile(c.Translations)
		if parser == nil {
			return nil, fmt.Errorf("%w: %s", i18n.ErrUnsupportedFile, c.Translations)
		}
		adapter = i18n.NewFileAdapter(parser, c.Translations)
	}
	return i18n.NewTranslator(ctx, adapter,
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
