package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultModel is used when the config file does not name one.
	DefaultModel = "gpt-4o-mini"
	// DefaultBaseURL is the OpenAI-compatible chat completions endpoint.
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"

	configDir  = ".taskplan"
	configFile = "config.json"
)

// Config holds the planner settings persisted under .taskplan/config.json.
type Config struct {
	Model           string   `json:"model"`
	BaseURL         string   `json:"base_url"`
	Provider        string   `json:"provider"`
	Extensions      []string `json:"extensions"`       // source suffixes collected into the prompt
	ExcludePatterns []string `json:"exclude_patterns"` // extra gitignore-style patterns
	MaxFileBytes    int64    `json:"max_file_bytes"`   // per-file cap, larger files are skipped
	MaxTotalBytes   int64    `json:"max_total_bytes"`  // cap on total collected content
	MaxTokens       int      `json:"max_tokens"`
	Temperature     float64  `json:"temperature"`
	SkipPrompt      bool     `json:"-"` // internal use, not saved to config
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Model:         DefaultModel,
		BaseURL:       DefaultBaseURL,
		Provider:      "openai",
		Extensions:    []string{".go"},
		MaxFileBytes:  256 * 1024,
		MaxTotalBytes: 4 * 1024 * 1024,
		MaxTokens:     150,
		Temperature:   0.7,
	}
}

// LoadOrDefault reads the config from rootDir, falling back to defaults when
// the file is absent. A missing config is never an error; a malformed one is.
func LoadOrDefault(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, configDir, configFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	cfg.applyFloors()
	return cfg, nil
}

// Save writes the config to rootDir, creating .taskplan/ if needed.
func (c *Config) Save(rootDir string) error {
	dirPath := filepath.Join(rootDir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("could not create %s directory: %w", configDir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dirPath, configFile), data, 0644); err != nil {
		return fmt.Errorf("could not write config file: %w", err)
	}
	return nil
}

// applyFloors backfills zero values so a sparse config file still yields a
// usable configuration.
func (c *Config) applyFloors() {
	d := DefaultConfig()
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Provider == "" {
		c.Provider = d.Provider
	}
	if len(c.Extensions) == 0 {
		c.Extensions = d.Extensions
	}
	if c.MaxFileBytes <= 0 {
		c.MaxFileBytes = d.MaxFileBytes
	}
	if c.MaxTotalBytes <= 0 {
		c.MaxTotalBytes = d.MaxTotalBytes
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
}
