package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazegen/internal/generator"
)

func TestRunExitStatus(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantCode  int
		wantLines int // -1 means no file may exist
	}{
		{"no program name", nil, exitInvalidArguments, -1},
		{"missing dimension", []string{"mazegen"}, exitInvalidArguments, -1},
		{"zero", []string{"mazegen", "0"}, exitInvalidArguments, -1},
		{"garbage", []string{"mazegen", "abc"}, exitInvalidArguments, -1},
		{"negative", []string{"mazegen", "-5"}, 0, 0},
		{"three", []string{"mazegen", "3"}, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HONEYCOMB_MAZEGEN_API_KEY", "")
			dir := t.TempDir()
			t.Chdir(dir)

			assert.Equal(t, tt.wantCode, run(tt.args))

			content, err := os.ReadFile(filepath.Join(dir, generator.DefaultOutputPath))
			if tt.wantLines < 0 {
				assert.True(t, os.IsNotExist(err), "%s must not be created", generator.DefaultOutputPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, strings.Count(string(content), "\n"))
			assert.Len(t, content, tt.wantLines*(tt.wantLines+1))
		})
	}
}

func TestRunUnwritableOutput(t *testing.T) {
	t.Setenv("HONEYCOMB_MAZEGEN_API_KEY", "")
	dir := t.TempDir()
	t.Chdir(dir)

	// A directory in place of the output file cannot be opened for writing.
	require.NoError(t, os.Mkdir(filepath.Join(dir, generator.DefaultOutputPath), 0o755))

	assert.Equal(t, exitIOFailure, run([]string{"mazegen", "3"}))
}

func TestSetupOTelEnvWithoutKey(t *testing.T) {
	t.Setenv("HONEYCOMB_MAZEGEN_API_KEY", "")

	assert.False(t, setupOTelEnv(), "telemetry should stay disabled without an API key")
}

func TestSetupOTelEnvWithKey(t *testing.T) {
	t.Setenv("HONEYCOMB_MAZEGEN_API_KEY", "secret")
	t.Setenv("HONEYCOMB_MAZEGEN_DATASET", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	require.True(t, setupOTelEnv(), "telemetry should be enabled with an API key")

	assert.Equal(t, "https://api.honeycomb.io", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	headers := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	assert.Contains(t, headers, "x-honeycomb-team=secret")
	assert.Contains(t, headers, "x-honeycomb-dataset=mazegen")
}
