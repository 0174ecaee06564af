package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
pipeline:
  input: "data/http.csv"
  output_dir: "data/out"
  stages: ["bitel", "religious"]
  backup: true

classifier:
  confidence_threshold: 0.7
  high_precision_weight: 0.9

logging:
  level: "debug"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "data/http.csv", cfg.Pipeline.Input)
	assert.Equal(t, "data/out", cfg.Pipeline.OutputDir)
	assert.Equal(t, []string{"bitel", "religious"}, cfg.Pipeline.Stages)
	assert.True(t, cfg.Pipeline.Backup)

	// Explicit values kept, untouched weights defaulted.
	assert.Equal(t, 0.7, cfg.Classifier.ConfidenceThreshold)
	assert.Equal(t, 0.9, cfg.Classifier.HighPrecisionWeight)
	assert.Equal(t, 0.6, cfg.Classifier.PatternWeight)
	assert.Equal(t, 0.3, cfg.Classifier.ContextWeight)
	assert.Equal(t, 0.9, cfg.Classifier.DomainWeight)
	assert.Equal(t, 0.7, cfg.Classifier.SubdomainWeight)
	assert.Equal(t, 0.5, cfg.Classifier.TextThreshold)
	assert.Equal(t, 0.6, cfg.Classifier.DomainThreshold)

	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(""), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{"geo", "bitel", "pluto", "political", "religious"}, cfg.Pipeline.Stages)
	assert.Equal(t, 0.5, cfg.Classifier.ConfidenceThreshold)
	assert.Equal(t, 0.8, cfg.Classifier.HighPrecisionWeight)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("CURATOR_INPUT", "env.csv")
	t.Setenv("CURATOR_STAGES", "pluto,religious")
	t.Setenv("CURATOR_THRESHOLD", "0.65")
	t.Setenv("CURATOR_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv("")
	require.NoError(t, err)

	assert.Equal(t, "env.csv", cfg.Pipeline.Input)
	assert.Equal(t, []string{"pluto", "religious"}, cfg.Pipeline.Stages)
	assert.Equal(t, 0.65, cfg.Classifier.ConfidenceThreshold)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
