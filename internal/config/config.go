package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = "segmental.yaml"

// Config represents the top-level segmental.yaml configuration.
type Config struct {
	Project   ProjectConfig   `yaml:"project"`
	Data      DataConfig      `yaml:"data"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Generator GeneratorConfig `yaml:"generator"`
	Server    ServerConfig    `yaml:"server"`
}

// ProjectConfig identifies the venue being analyzed.
type ProjectConfig struct {
	Name string `yaml:"name"`
}

// DataConfig locates the CSV dataset.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// AnalysisConfig controls RFM scoring.
type AnalysisConfig struct {
	// ReferenceDate is a "2006-01-02" date recency is measured against.
	// Empty means the current time at analysis.
	ReferenceDate string `yaml:"reference_date,omitempty"`
}

// GeneratorConfig holds defaults for synthetic dataset generation.
type GeneratorConfig struct {
	Customers    int   `yaml:"customers"`
	Transactions int   `yaml:"transactions"`
	Seed         int64 `yaml:"seed"`
}

// ServerConfig controls the web API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ReferenceDateTime parses the configured reference date. A zero time
// with a nil error means no fixed date is configured.
func (a AnalysisConfig) ReferenceDateTime() (time.Time, error) {
	if a.ReferenceDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", a.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing reference_date %q: %w", a.ReferenceDate, err)
	}
	return t, nil
}

// Load reads a segmental.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(projectName string) *Config {
	return &Config{
		Project: ProjectConfig{
			Name: projectName,
		},
		Data: DataConfig{
			Dir: "data",
		},
		Generator: GeneratorConfig{
			Customers:    100,
			Transactions: 500,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
