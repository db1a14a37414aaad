package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/logger"
)

func TestWithDevelopment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithDevelopment("svc"),
		logger.WithOutput(buf),
	)
	require.NotNil(t, log)
	log.Debug("msg")
	output := buf.String()
	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "service=svc")
	assert.Contains(t, output, "env=development")
}

func TestWithProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithProduction("svc"),
		logger.WithOutput(buf),
	)
	log.Debug("hidden")
	log.Info("msg")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "svc", entry["service"])
	assert.Equal(t, logger.EnvProduction, entry["env"])
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"prod", logger.EnvProduction},
		{"STAGING", logger.EnvStaging},
		{"anything", logger.EnvDevelopment},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithEnvironment(tt.env, "svc"),
				logger.WithJSONFormatter(),
				logger.WithOutput(buf),
			)
			log.Warn("msg")
			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.want, entry["env"])
		})
	}
}

func TestPresetIgnoresEmptyService(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithDevelopment(""), logger.WithOutput(buf))
	log.Debug("msg")
	assert.Empty(t, buf.String())
}
