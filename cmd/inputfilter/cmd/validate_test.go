package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/config"
)

func execute(t *testing.T, stdin string, args ...string) (Report, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()

	var report Report
	if stdout.Len() > 0 {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report), stdout.String())
	}
	return report, stderr.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	exit, ok := err.(*ExitError)
	require.True(t, ok, "unexpected error: %v", err)
	return exit.Code
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		report, _, err := execute(t, "", "validate", "-d", "testdata/definition.yaml", "testdata/valid.json")
		require.NoError(t, err)

		assert.True(t, report.Valid)
		assert.Equal(t, map[string]any{"foo": "bazbat", "bar": "12345"}, report.Values)
		assert.Empty(t, report.Errors)
		assert.NotEmpty(t, report.RunID)
	})

	t.Run("invalid document", func(t *testing.T) {
		report, _, err := execute(t, "", "validate", "-d", "testdata/definition.yaml", "testdata/invalid.yaml")
		assert.Equal(t, ExitInvalid, exitCode(t, err))

		assert.False(t, report.Valid)
		assert.Nil(t, report.Values)
		fields := make([]string, 0, len(report.Errors))
		for _, e := range report.Errors {
			fields = append(fields, e.Field)
		}
		assert.ElementsMatch(t, []string{"foo", "bar"}, fields)
	})

	t.Run("document from stdin", func(t *testing.T) {
		report, _, err := execute(t, `{"foo": "abc", "bar": "1"}`, "validate", "-d", "testdata/definition.yaml", "-")
		require.NoError(t, err)
		assert.True(t, report.Valid)
	})

	t.Run("unknown keys are reported", func(t *testing.T) {
		stdin := `{"foo": "abc", "bar": "1", "extra": true}`

		report, _, err := execute(t, stdin, "validate", "-d", "testdata/definition.yaml", "-")
		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Equal(t, map[string]any{"extra": true}, report.Unknown)

		report, _, err = execute(t, stdin, "validate", "--strict", "-d", "testdata/definition.yaml", "-")
		assert.Equal(t, ExitInvalid, exitCode(t, err))
		assert.False(t, report.Valid)
	})

	t.Run("document that is not a mapping", func(t *testing.T) {
		report, _, err := execute(t, "[1, 2]", "validate", "-d", "testdata/definition.yaml", "-")
		assert.Equal(t, ExitInvalid, exitCode(t, err))
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "invalidData", report.Errors[0].Code)
	})

	t.Run("missing definition", func(t *testing.T) {
		_, _, err := execute(t, "", "validate", "-d", "testdata/missing.yaml", "testdata/valid.json")
		assert.Equal(t, ExitConfig, exitCode(t, err))
	})

	t.Run("missing data file", func(t *testing.T) {
		_, _, err := execute(t, "", "validate", "-d", "testdata/definition.yaml", "testdata/missing.json")
		assert.Equal(t, ExitConfig, exitCode(t, err))
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := execute(t, "", "validate", "--log-level", "loud", "-d", "testdata/definition.yaml", "testdata/valid.json")
		assert.Equal(t, ExitConfig, exitCode(t, err))
	})

	t.Run("logs carry the run id", func(t *testing.T) {
		report, stderr, err := execute(t, "",
			"validate", "--log-format", "json", "--log-level", "info",
			"-d", "testdata/definition.yaml", "testdata/valid.json",
		)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry), stderr)
		assert.Equal(t, "validation finished", entry["msg"])
		assert.Equal(t, report.RunID, entry["run_id"])
		assert.Equal(t, true, entry["valid"])
	})
}

func messagesByField(report Report) map[string]string {
	out := make(map[string]string, len(report.Errors))
	for _, e := range report.Errors {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateCommand_Locale(t *testing.T) {
	t.Run("built-in translations", func(t *testing.T) {
		report, _, err := execute(t, "", "validate", "--locale", "de", "-d", "testdata/definition.yaml", "testdata/invalid.yaml")
		assert.Equal(t, ExitInvalid, exitCode(t, err))

		msgs := messagesByField(report)
		assert.Equal(t, "Die Eingabe ist kürzer als 3 Zeichen", msgs["foo"])
		assert.Equal(t, "Die Eingabe darf nur Ziffern enthalten", msgs["bar"])
	})

	t.Run("no locale keeps the messages", func(t *testing.T) {
		report, _, _ := execute(t, "", "validate", "-d", "testdata/definition.yaml", "testdata/invalid.yaml")
		assert.Equal(t, "The input is less than 3 characters long", messagesByField(report)["foo"])
	})

	t.Run("missing translation keeps the message", func(t *testing.T) {
		report, _, _ := execute(t, "", "validate", "--locale", "pl", "-d", "testdata/definition.yaml", "testdata/invalid.yaml")
		assert.Equal(t, "The input is less than 3 characters long", messagesByField(report)["foo"])
	})

	t.Run("document error is translated", func(t *testing.T) {
		report, _, err := execute(t, "[1, 2]", "validate", "--locale", "de", "-d", "testdata/definition.yaml", "-")
		assert.Equal(t, ExitInvalid, exitCode(t, err))
		require.Len(t, report.Errors, 1)
		assert.Equal(t, "Dokument muss aus benannten Feldern bestehen", report.Errors[0].Message)
	})

	t.Run("translations file", func(t *testing.T) {
		report, _, _ := execute(t, "",
			"validate", "--locale", "fr", "--translations", "testdata/translations.yaml",
			"-d", "testdata/definition.yaml", "testdata/invalid.yaml",
		)
		msgs := messagesByField(report)
		assert.Equal(t, "Au moins 3 caractères", msgs["foo"])
		assert.Equal(t, "The input must contain only digits", msgs["bar"])
	})

	t.Run("unsupported translations file", func(t *testing.T) {
		_, _, err := execute(t, "",
			"validate", "--locale", "fr", "--translations", "testdata/locale.env",
			"-d", "testdata/definition.yaml", "testdata/invalid.yaml",
		)
		assert.Equal(t, ExitConfig, exitCode(t, err))
	})

	t.Run("missing translations file", func(t *testing.T) {
		_, _, err := execute(t, "",
			"validate", "--locale", "fr", "--translations", "testdata/missing.yaml",
			"-d", "testdata/definition.yaml", "testdata/invalid.yaml",
		)
		assert.Equal(t, ExitConfig, exitCode(t, err))
	})

	t.Run("locale from environment", func(t *testing.T) {
		t.Cleanup(func() {
			_ = os.Unsetenv("INPUTFILTER_LOCALE")
			config.ResetCache()
		})

		report, _, err := execute(t, "", "validate", "--env-file", "testdata/locale.env", "-d", "testdata/definition.yaml", "testdata/invalid.yaml")
		assert.Equal(t, ExitInvalid, exitCode(t, err))
		assert.Equal(t, "Die Eingabe ist kürzer als 3 Zeichen", messagesByField(report)["foo"])
	})
}

func TestRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "inputfilter", root.Use)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "validate")
}
