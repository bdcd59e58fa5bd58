package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration. Every value has an env
// override so a bare deployment can run with no config file at all.
type Config struct {
	Server struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Storage struct {
		Driver string `yaml:"driver"` // "postgres" or "memory"
	} `yaml:"storage"`
	Auth struct {
		TokenTTLMinutes int `yaml:"token_ttl_minutes"`
	} `yaml:"auth"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

func (c *Config) port() string {
	if v := os.Getenv("PORT"); v != "" {
		return v
	}
	if c.Server.Port != "" {
		return c.Server.Port
	}
	return "9999"
}

func (c *Config) storageDriver() string {
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		return v
	}
	if c.Storage.Driver != "" {
		return c.Storage.Driver
	}
	return "memory"
}

func (c *Config) tokenTTL() time.Duration {
	minutes := getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", c.Auth.TokenTTLMinutes)
	if minutes <= 0 {
		minutes = 24 * 60
	}
	return time.Duration(minutes) * time.Minute
}

func (c *Config) allowedOrigins() []string {
	if len(c.Server.AllowedOrigins) > 0 {
		return c.Server.AllowedOrigins
	}
	return []string{"*"}
}
