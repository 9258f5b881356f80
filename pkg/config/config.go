// Package config loads skillet's runtime configuration from config
// files and SKILLET_* environment variables via viper.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the configuration handed to the external agent
// framework plus everything the skills core needs.
type Config struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	MaxTokens int    `mapstructure:"max_tokens"`
	Workspace string `mapstructure:"workspace"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Skills SkillsConfig `mapstructure:"skills"`
}

// SkillsConfig controls skill discovery. Empty dirs fall back to the
// well-known user and project roots.
type SkillsConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	Allowed    []string `mapstructure:"allowed"`
	UserDir    string   `mapstructure:"user_dir"`
	ProjectDir string   `mapstructure:"project_dir"`
}

// Load reads configuration from ~/.skillet/config.yaml, then
// ./skillet-config.yaml, then SKILLET_* environment variables, in
// increasing precedence.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(homeDir + "/.skillet")
	}
	// Config file is optional
	_ = v.ReadInConfig()

	projectCfg := viper.New()
	projectCfg.SetConfigFile("skillet-config.yaml")
	if err := projectCfg.ReadInConfig(); err == nil {
		// Merge at config precedence so SKILLET_* env stays on top
		_ = v.MergeConfigMap(projectCfg.AllSettings())
	}

	return unmarshal(v)
}

// LoadFrom reads configuration from an explicit config file path plus
// the environment. Used by tests and the --config flag.
func LoadFrom(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("SKILLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("provider", "anthropic")
	v.SetDefault("model", "claude-sonnet-4-20250514")
	v.SetDefault("base_url", "")
	v.SetDefault("api_key", "")
	v.SetDefault("max_tokens", 16000)
	v.SetDefault("workspace", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("skills.enabled", true)
	v.SetDefault("skills.allowed", []string{})
	v.SetDefault("skills.user_dir", "")
	v.SetDefault("skills.project_dir", "")

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.Workspace == "" {
		if pwd, err := os.Getwd(); err == nil {
			cfg.Workspace = pwd
		}
	}

	return cfg, nil
}

// Validate checks structural validity. The API key is only required by
// the external framework at inference time, so it is checked
// separately via RequireAPIKey.
func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.New("model is required")
	}
	if c.MaxTokens <= 0 {
		return errors.New("max_tokens must be greater than 0")
	}
	return nil
}

// RequireAPIKey ensures an API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return errors.New("API key is required; set SKILLET_API_KEY or ANTHROPIC_API_KEY")
	}
	return nil
}
