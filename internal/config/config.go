// Package config loads statforge configuration from layered sources:
// defaults, the global config file, an optional local config file, and
// STATFORGE_ environment variables, in ascending priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the statforge CLI configuration
type Configuration struct {
	MaxAttempts int    `koanf:"max_attempts" json:"max_attempts" validate:"min=1,max=10"`
	Backend     string `koanf:"backend" json:"backend" validate:"omitempty,oneof=none openai agent"`

	OpenAIBaseURL string `koanf:"openai_base_url" json:"openai_base_url"`
	OpenAIModel   string `koanf:"openai_model" json:"openai_model"`
	OpenAIAPIKey  string `koanf:"openai_api_key" json:"-"`

	AgentCmd        string   `koanf:"agent_cmd" json:"agent_cmd"`
	AgentArgs       []string `koanf:"agent_args" json:"agent_args"`
	AgentPromptFlag string   `koanf:"agent_prompt_flag" json:"agent_prompt_flag"`
	AgentTimeout    int      `koanf:"agent_timeout" json:"agent_timeout" validate:"omitempty,min=1,max=3600"` // seconds

	TraitsFile string `koanf:"traits_file" json:"traits_file"`

	SinkDir     string `koanf:"sink_dir" json:"sink_dir" validate:"required"`
	SinkPayload bool   `koanf:"sink_payload" json:"sink_payload"`
	SinkErrors  bool   `koanf:"sink_errors" json:"sink_errors"`

	ShowProgress bool `koanf:"show_progress" json:"show_progress"` // Show spinner during backend calls
	NoColor      bool `koanf:"no_color" json:"no_color"`
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".statforge", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("STATFORGE_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Backend == "openai" && cfg.OpenAIModel == "" {
		return nil, fmt.Errorf("openai_model is required when backend is openai")
	}
	if cfg.Backend == "agent" && cfg.AgentCmd == "" {
		return nil, fmt.Errorf("agent_cmd is required when backend is agent")
	}

	// Expand home directory in paths
	cfg.SinkDir = expandHomePath(cfg.SinkDir)
	cfg.TraitsFile = expandHomePath(cfg.TraitsFile)

	// Handle NO_COLOR as an alias for no_color
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: STATFORGE_MAX_ATTEMPTS -> max_attempts
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "STATFORGE_"))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
