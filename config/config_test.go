package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitsearch/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bitsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.MaxStates)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
workers: 3
max_states: 100000
max_frames: 5000
timeout: 45s
log_level: debug
log_format: json
trace: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 100000, cfg.MaxStates)
	assert.Equal(t, 5000, cfg.MaxFrames)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Trace)
	assert.False(t, cfg.Metrics)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "max_frames: 10\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Workers, cfg.Workers)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10, cfg.MaxFrames)

	cfg, err = config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "wrokers: 2\n"))
	assert.Error(t, err, "unknown keys are rejected")

	cases := map[string]string{
		"workers":    "workers: 0\n",
		"max_states": "max_states: -1\n",
		"max_frames": "max_frames: -2\n",
		"timeout":    "timeout: -1s\n",
		"log_level":  "log_level: loud\n",
		"log_format": "log_format: xml\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BITSEARCH_WORKERS":   "7",
		"BITSEARCH_LOG_LEVEL": "warn",
		"BITSEARCH_TRACE":     "true",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Trace)

	env["BITSEARCH_WORKERS"] = "many"
	assert.ErrorIs(t, cfg.ApplyEnv(lookup), config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("dropped")
	log.WithFields(cfg.Fields()).Warn("kept")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "json", entry["log_format"])
}
