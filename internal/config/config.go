package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds costspectre configuration loaded from .costspectre.yaml.
type Config struct {
	AWS    AWSConfig   `yaml:"aws"`
	Azure  AzureConfig `yaml:"azure"`
	GCP    GCPConfig   `yaml:"gcp"`
	AI     AIConfig    `yaml:"ai"`
	Output string      `yaml:"output"`
}

// AWSConfig controls the AWS probe.
type AWSConfig struct {
	Enabled      bool     `yaml:"enabled"`
	Profile      string   `yaml:"profile"`
	Regions      []string `yaml:"regions"`
	LookbackDays int      `yaml:"lookback_days"`
	StaleDays    int      `yaml:"stale_days"`
}

// AzureConfig controls the Azure probe.
type AzureConfig struct {
	Enabled        bool   `yaml:"enabled"`
	SubscriptionID string `yaml:"subscription_id"`
}

// GCPConfig controls the GCP probe.
type GCPConfig struct {
	Enabled   bool   `yaml:"enabled"`
	ProjectID string `yaml:"project_id"`
}

// AIConfig controls AI-enhanced recommendations.
type AIConfig struct {
	Enabled             bool    `yaml:"enabled"`
	Model               string  `yaml:"model"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

// OutputDir returns the configured output directory, or "output" when unset.
func (c Config) OutputDir() string {
	if c.Output == "" {
		return "output"
	}
	return c.Output
}

// Load searches for .costspectre.yaml or .costspectre.yml in the given
// directory and returns the parsed config. Returns a default Config with the
// AWS probe enabled if no file is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".costspectre.yaml"),
		filepath.Join(dir, ".costspectre.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{AWS: AWSConfig{Enabled: true}}, nil
}
