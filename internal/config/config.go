// Package config loads the curator configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a curation run.
type Config struct {
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PipelineConfig selects the input listing, output location and stage order.
type PipelineConfig struct {
	Input     string   `yaml:"input"`
	OutputDir string   `yaml:"output_dir"`
	Stages    []string `yaml:"stages"`
	Backup    bool     `yaml:"backup"`
}

// ClassifierConfig exposes the religious classifier's scoring constants for
// tuning. The defaults are the reference values; they are heuristic weights,
// not derived quantities.
type ClassifierConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	HighPrecisionWeight float64 `yaml:"high_precision_weight"`
	PatternWeight       float64 `yaml:"pattern_weight"`
	ContextWeight       float64 `yaml:"context_weight"`
	DomainWeight        float64 `yaml:"domain_weight"`
	SubdomainWeight     float64 `yaml:"subdomain_weight"`
	TextThreshold       float64 `yaml:"text_threshold"`
	DomainThreshold     float64 `yaml:"domain_threshold"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file and fills in defaults. A missing
// file is an error; an empty file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads configuration from an optional YAML file, then applies
// environment overrides. A .env file is honored when present.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg *Config
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &Config{}
		cfg.applyDefaults()
	}

	if v := os.Getenv("CURATOR_INPUT"); v != "" {
		cfg.Pipeline.Input = v
	}
	if v := os.Getenv("CURATOR_OUTPUT_DIR"); v != "" {
		cfg.Pipeline.OutputDir = v
	}
	if v := os.Getenv("CURATOR_STAGES"); v != "" {
		cfg.Pipeline.Stages = strings.Split(v, ",")
	}
	if v := os.Getenv("CURATOR_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Classifier.ConfidenceThreshold = f
		}
	}
	if v := os.Getenv("CURATOR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Pipeline.Stages) == 0 {
		c.Pipeline.Stages = []string{"geo", "bitel", "pluto", "political", "religious"}
	}
	if c.Classifier.ConfidenceThreshold == 0 {
		c.Classifier.ConfidenceThreshold = 0.5
	}
	if c.Classifier.HighPrecisionWeight == 0 {
		c.Classifier.HighPrecisionWeight = 0.8
	}
	if c.Classifier.PatternWeight == 0 {
		c.Classifier.PatternWeight = 0.6
	}
	if c.Classifier.ContextWeight == 0 {
		c.Classifier.ContextWeight = 0.3
	}
	if c.Classifier.DomainWeight == 0 {
		c.Classifier.DomainWeight = 0.9
	}
	if c.Classifier.SubdomainWeight == 0 {
		c.Classifier.SubdomainWeight = 0.7
	}
	if c.Classifier.TextThreshold == 0 {
		c.Classifier.TextThreshold = 0.5
	}
	if c.Classifier.DomainThreshold == 0 {
		c.Classifier.DomainThreshold = 0.6
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
