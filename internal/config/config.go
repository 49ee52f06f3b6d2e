package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"mailtriage/internal/retry"
)

type Config struct {
	// Provider selects the completion backend: "gemini" (default) or "openai".
	Provider string `mapstructure:"provider"`

	Gemini struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"gemini"`

	OpenAI struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"openai"`

	Request struct {
		// Timeout bounds each individual completion call so the backend
		// cannot hang the pipeline indefinitely.
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"request"`

	Retry retry.Policy `mapstructure:"retry"`

	Prompts struct {
		// Optional paths to prompt template files overriding the built-in
		// PT-BR templates. Relative paths resolve against the user config
		// directory (see prompts.go).
		Classification string `mapstructure:"classification"`
		Summary        string `mapstructure:"summary"`
	} `mapstructure:"prompts"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("provider", "gemini")
	viper.SetDefault("gemini.model", "gemini-2.0-flash-lite")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("request.timeout", 30*time.Second)
	viper.SetDefault("retry.max_attempts", 3)
	viper.SetDefault("retry.initial_interval", 1*time.Second)
	viper.SetDefault("retry.max_interval", 10*time.Second)
	viper.SetDefault("retry.multiplier", 2.0)

	// Allow Viper to read environment variables. The credential and model
	// name are explicitly bound so the conventional variable names work
	// without a prefix.
	viper.AutomaticEnv()
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist; env vars and defaults
		// are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that the selected provider has its credential set. The
// caller exits before any model call when this fails.
func (c *Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY is not set; define it in the environment or in config.yaml (gemini.api_key)")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return errors.New("OPENAI_API_KEY is not set; define it in the environment or in config.yaml (openai.api_key)")
		}
	default:
		return fmt.Errorf("unknown provider %q (expected \"gemini\" or \"openai\")", c.Provider)
	}
	return nil
}
