// Package configuration holds worker configuration with safe defaults and
// optional YAML overrides. API keys are referenced by environment variable
// name only and are never part of the serialized configuration.
package configuration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelConfig configures one language model collaborator.
type ModelConfig struct {
	// Model is the chat completion model identifier.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL optionally overrides the provider endpoint.
	BaseURL string `yaml:"base_url,omitempty"`
}

// APIKey resolves the key from the configured environment variable.
func (m ModelConfig) APIKey() (string, error) {
	key := os.Getenv(m.APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("configuration: environment variable %s is not set", m.APIKeyEnv)
	}
	return key, nil
}

// TemporalConfig configures the Temporal client connection.
type TemporalConfig struct {
	// HostPort is the frontend address of the Temporal cluster.
	HostPort string `yaml:"host_port"`

	// Namespace is the Temporal namespace the worker operates in.
	Namespace string `yaml:"namespace"`
}

// Config is the complete worker configuration.
type Config struct {
	Temporal   TemporalConfig `yaml:"temporal"`
	Extraction ModelConfig    `yaml:"extraction"`
	Generation ModelConfig    `yaml:"generation"`
}

// DefaultConfig returns the configuration used when no overrides are given.
func DefaultConfig() *Config {
	return &Config{
		Temporal: TemporalConfig{
			HostPort:  "localhost:7233",
			Namespace: "default",
		},
		Extraction: ModelConfig{
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Generation: ModelConfig{
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults. An empty
// path returns the defaults unchanged; fields absent from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configuration: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("configuration: parse %s: %w", path, err)
	}
	return cfg, nil
}
