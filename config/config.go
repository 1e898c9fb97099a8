// Package config handles reactagent configuration loading.
//
// Configuration comes from a YAML file, validated against an embedded JSON Schema, with
// ${VAR} expansion and a small set of environment overrides applied on top. A .env file in
// the working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Providers accepted in model.provider.
const (
	ProviderOpenAI = "openai"
	ProviderGitHub = "github"
)

// Environment variables that override file values.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvGitHubToken   = "GITHUB_TOKEN"
	EnvProvider      = "REACTAGENT_PROVIDER"
	EnvModel         = "REACTAGENT_MODEL"
	EnvBaseURL       = "REACTAGENT_BASE_URL"
	EnvScratchDir    = "REACTAGENT_SCRATCH_DIR"
	EnvLogLevel      = "REACTAGENT_LOG_LEVEL"
	EnvJournalPath   = "REACTAGENT_JOURNAL"
	EnvMaxIterations = "REACTAGENT_MAX_ITERATIONS"
)

// Config holds all reactagent configuration.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Agent   AgentConfig   `yaml:"agent"`
	Journal JournalConfig `yaml:"journal"`
	Log     LogConfig     `yaml:"log"`
}

// ModelConfig selects and configures the chat endpoint.
type ModelConfig struct {
	Provider    string  `yaml:"provider"` // openai, github
	Name        string  `yaml:"name"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Temperature float64 `yaml:"temperature"`
}

// AgentConfig configures the agent loop and its tools.
type AgentConfig struct {
	// MaxIterations caps chat calls per run. 0 means unbounded.
	MaxIterations int `yaml:"max_iterations"`

	// ScratchDir is the root that file tool paths are joined onto.
	ScratchDir string `yaml:"scratch_dir"`

	// OperatingSystem overrides the value reported in the system prompt.
	OperatingSystem string `yaml:"operating_system"`

	// Environment holds extra lines appended to the system prompt's environment block.
	Environment []string `yaml:"environment"`
}

// JournalConfig configures the SQLite step journal.
type JournalConfig struct {
	// Path of the database file. Empty disables the journal.
	Path string `yaml:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json

	// Events, when set, is a file that receives every agent event as YAML.
	Events string `yaml:"events"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Provider:    ProviderOpenAI,
			Name:        "gpt-4o",
			Temperature: 0.7,
		},
		Agent: AgentConfig{
			ScratchDir: os.TempDir(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultSearchPaths returns the config file search order used when no explicit path is
// given: ./reactagent.yaml, then ~/.config/reactagent/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"reactagent.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "reactagent", "config.yaml"))
	}
	return paths
}

// FindConfig locates a config file. If explicit is non-empty, it must exist.
// Otherwise, searches DefaultSearchPaths and returns the first that exists, or "" when none
// does. A missing default file is not an error; defaults apply.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// LoadDotEnv loads .env files into the process environment. Existing variables win.
// Missing files are ignored; with no arguments it reads ./.env.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from a YAML file on top of Default, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML configuration on top of Default without consulting the environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	expanded := []byte(os.ExpandEnv(string(data)))

	var doc any
	if err := yaml.Unmarshal(expanded, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if doc == nil {
		return nil
	}
	if err := validateDocument(doc); err != nil {
		return err
	}

	if err := yaml.Unmarshal(expanded, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvProvider); ok && v != "" {
		c.Model.Provider = v
	}
	switch c.Model.Provider {
	case ProviderGitHub:
		if v, ok := lookup(EnvGitHubToken); ok && v != "" {
			c.Model.APIKey = v
		}
	default:
		if v, ok := lookup(EnvOpenAIKey); ok && v != "" {
			c.Model.APIKey = v
		}
	}
	if v, ok := lookup(EnvModel); ok && v != "" {
		c.Model.Name = v
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.Model.BaseURL = v
	}
	if v, ok := lookup(EnvScratchDir); ok && v != "" {
		c.Agent.ScratchDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvJournalPath); ok {
		c.Journal.Path = v
	}
	if v, ok := lookup(EnvMaxIterations); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxIterations, err)
		}
		c.Agent.MaxIterations = n
	}
	return nil
}

// Validate checks cross-field constraints the schema cannot express, and values that may
// have come from the environment.
func (c *Config) Validate() error {
	switch c.Model.Provider {
	case ProviderOpenAI, ProviderGitHub:
	default:
		return fmt.Errorf("unknown model provider %q (valid: openai, github)", c.Model.Provider)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Agent.MaxIterations < 0 {
		return fmt.Errorf("agent.max_iterations must not be negative, got %d", c.Agent.MaxIterations)
	}
	if c.Agent.ScratchDir == "" {
		return fmt.Errorf("agent.scratch_dir must not be empty")
	}
	return nil
}
