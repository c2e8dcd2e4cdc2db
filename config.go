package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string   `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	AI       AIConfig `yaml:"ai"`
}

type AIConfig struct {
	Depth          int  `yaml:"depth" env:"AI_DEPTH" env-default:"2"`
	LogSearchStats bool `yaml:"log-search-stats" env:"AI_LOG_SEARCH_STATS" env-default:"false"`
}

// MustLoad reads config from path, falling back to environment variables
// when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
		return config
	}
	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read config from environment: %w", err))
	}
	return config
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		HTTPPort: "8080",
		AI: AIConfig{
			Depth:          2,
			LogSearchStats: false,
		},
	}
}
