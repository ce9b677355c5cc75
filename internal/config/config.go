// Package config loads client configuration from defaults, an optional
// YAML file, and DEAL_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Player  PlayerConfig  `mapstructure:"player"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig describes the rule-engine endpoint and reconnect policy.
type ServerConfig struct {
	URL               string        `mapstructure:"url"`
	ReconnectAttempts int           `mapstructure:"reconnect_attempts"`
	ReconnectDelay    time.Duration `mapstructure:"reconnect_delay"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

// PlayerConfig holds local player identity defaults.
type PlayerConfig struct {
	Name string `mapstructure:"name"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given path. A missing file is not an
// error; defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.url", "ws://localhost:8080/ws")
	v.SetDefault("server.reconnect_attempts", 5)
	v.SetDefault("server.reconnect_delay", time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("player.name", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("DEAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return nil, fmt.Errorf("read config %s: %w", path, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url must not be empty")
	}
	if c.Server.ReconnectAttempts < 0 {
		return fmt.Errorf("server.reconnect_attempts must not be negative")
	}
	if c.Server.ReconnectDelay <= 0 {
		return fmt.Errorf("server.reconnect_delay must be positive")
	}
	return nil
}
