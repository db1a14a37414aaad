package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputfilter/pkg/factory"
	"github.com/dmitrymomot/inputfilter/pkg/i18n"
	"github.com/dmitrymomot/inputfilter/pkg/inputfilter"
	"github.com/dmitrymomot/inputfilter/pkg/logger"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

type runIDKey struct{}

// Report is the JSON document printed by the validate command.
type Report struct {
	RunID   string         `json:"run_id"`
	Valid   bool           `json:"valid"`
	Values  map[string]any `json:"values,omitempty"`
	Errors  []FieldError   `json:"errors,omitempty"`
	Unknown map[string]any `json:"unknown,omitempty"`
}

// FieldError is one validation message addressed by a dotted path.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <data-file>",
		Short: "Validate a JSON or YAML document",
		Long: `Validate filters and validates a JSON or YAML document against a
definition file and prints a JSON report to stdout.

Use "-" to read the document from stdin. The command exits with status 1
when the data is invalid and 2 when the definition or settings are broken.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().StringP("definition", "d", "", "definition file (YAML)")
	cmd.Flags().Bool("strict", false, "treat unknown keys as a failure")
	_ = cmd.MarkFlagRequired("definition")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return configError(err)
	}

	runID := uuid.New()
	log, err := cfg.logger(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	if err != nil {
		return configError(err)
	}
	ctx := context.WithValue(cmd.Context(), runIDKey{}, runID.String())

	tr, err := cfg.translator(ctx, log)
	if err != nil {
		return configError(err)
	}

	defPath, _ := cmd.Flags().GetString("definition")
	def, err := factory.LoadFile(defPath)
	if err != nil {
		return configError(err)
	}
	f, err := factory.New(factory.WithLogger(log)).Build(def)
	if err != nil {
		return configError(fmt.Errorf("%s: %w", defPath, err))
	}

	data, err := readData(cmd.InOrStdin(), args[0])
	if err != nil {
		log.Error("failed to read data", logger.RunID(runID.String()), logger.Source(args[0]), logger.Error(err))
		return configError(err)
	}

	start := time.Now()
	report := validate(f, data, cfg.Strict, translate(tr, cfg.Locale))
	report.RunID = runID.String()

	log.InfoContext(ctx, "validation finished",
		logger.Source(args[0]),
		logger.Valid(report.Valid),
		slog.Int("errors", len(report.Errors)),
		slog.Int("unknown", len(report.Unknown)),
		logger.Duration(time.Since(start)),
	)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return configError(err)
	}
	if !report.Valid {
		return &ExitError{Code: ExitInvalid}
	}
	return nil
}

func validate(f *inputfilter.InputFilter, data any, strict bool, tr func(validator.ValidationErrors) validator.ValidationErrors) Report {
	var report Report
	var errs validator.ValidationErrors
	if err := f.SetData(data); errors.Is(err, inputfilter.ErrInvalidData) {
		errs.Add(validator.ValidationError{
			Code:           inputfilter.CodeInvalidData,
			Message:        "Document must be a set of named fields",
			TranslationKey: "validation.document",
		})
	} else {
		report.Valid = f.IsValid(nil)
		report.Unknown = f.Unknown()
		if report.Valid {
			report.Values = f.Values()
		}
		errs = f.Errors()
	}

	for _, e := range tr(errs) {
		report.Errors = append(report.Errors, FieldError{Field: e.Field, Code: e.Code, Message: e.Message})
	}
	if strict && len(report.Unknown) > 0 {
		report.Valid = false
	}
	return report
}

// translate returns the identity when tr is nil.
func translate(tr *i18n.Translator, locale string) func(validator.ValidationErrors) validator.ValidationErrors {
	return func(errs validator.ValidationErrors) validator.ValidationErrors {
		if tr == nil {
			return errs
		}
		return tr.Errors(locale, errs)
	}
}

func settings(cmd *cobra.Command) (Config, error) {
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	cfg, err := loadConfig(envFiles)
	if err != nil {
		return cfg, err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if v, _ := cmd.Flags().GetString("locale"); v != "" {
		cfg.Locale = v
	}
	if v, _ := cmd.Flags().GetString("translations"); v != "" {
		cfg.Translations = v
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	return cfg, nil
}

// readData decodes a YAML or JSON document. JSON is valid YAML.
func readData(stdin io.Reader, path string) (any, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return data, nil
}
