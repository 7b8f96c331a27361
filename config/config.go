// Package config provides configuration loading and management for Semcode.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semcode/builder"
)

// Config represents the complete Semcode configuration
type Config struct {
	Graph GraphConfig `yaml:"graph"`
	Repo  RepoConfig  `yaml:"repo"`
	NATS  NATSConfig  `yaml:"nats"`
}

// GraphConfig configures IRI minting and triple generation
type GraphConfig struct {
	// BaseIRI is the namespace under which all entity IRIs are minted
	BaseIRI string `yaml:"base_iri"`
	// IncludeExpressions enables expression-level triple generation
	IncludeExpressions bool `yaml:"include_expressions"`
	// DependencyRoots are glob patterns for third-party code roots that
	// never get expression-level detail (default: deps/**, _build/**)
	DependencyRoots []string `yaml:"dependency_roots"`
}

// RepoConfig configures the repository settings
type RepoConfig struct {
	// Path is the repository root path (auto-detected from git if empty)
	Path string `yaml:"path"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
	// Embedded indicates whether to use embedded NATS
	Embedded bool `yaml:"embedded"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			BaseIRI:            "https://semcode.dev/graph/",
			IncludeExpressions: false,
			DependencyRoots:    []string{"deps/**", "_build/**", "node_modules/**"},
		},
		Repo: RepoConfig{
			Path: "", // Auto-detect
		},
		NATS: NATSConfig{
			URL:      "",
			Embedded: true,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Graph.BaseIRI == "" {
		return fmt.Errorf("graph.base_iri is required")
	}
	if !strings.HasPrefix(c.Graph.BaseIRI, "http://") && !strings.HasPrefix(c.Graph.BaseIRI, "https://") {
		return fmt.Errorf("graph.base_iri must be an absolute IRI")
	}
	return nil
}

// Context creates a builder context carrying this configuration.
func (c *Config) Context() (*builder.Context, error) {
	ctx, err := builder.NewContext(c.Graph.BaseIRI)
	if err != nil {
		return nil, err
	}
	return ctx.WithConfig(map[string]any{
		builder.ConfigIncludeExpressions: c.Graph.IncludeExpressions,
		builder.ConfigDependencyRoots:    c.Graph.DependencyRoots,
	}), nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Graph
	if other.Graph.BaseIRI != "" {
		c.Graph.BaseIRI = other.Graph.BaseIRI
	}
	if other.Graph.IncludeExpressions {
		c.Graph.IncludeExpressions = true
	}
	if len(other.Graph.DependencyRoots) > 0 {
		c.Graph.DependencyRoots = other.Graph.DependencyRoots
	}

	// Repo
	if other.Repo.Path != "" {
		c.Repo.Path = other.Repo.Path
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
		c.NATS.Embedded = false
	}
}
