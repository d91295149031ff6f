package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr   string
	DatabasePath string
	GeminiAPIKey string
	GeminiModel  string
	Debug        bool
}

// Load reads an optional dailythoughts.yaml next to the binary plus
// DAILYTHOUGHTS_* environment variables, env winning.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":6835")
	v.SetDefault("database_path", "dailythoughts.db")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("DAILYTHOUGHTS")
	v.AutomaticEnv()

	v.SetConfigName("dailythoughts")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{
		ListenAddr:   v.GetString("listen_addr"),
		DatabasePath: v.GetString("database_path"),
		GeminiAPIKey: v.GetString("gemini_api_key"),
		GeminiModel:  v.GetString("gemini_model"),
		Debug:        v.GetBool("debug"),
	}, nil
}
