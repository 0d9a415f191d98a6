package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig     `mapstructure:"server"`
	State  StateStoreConfig `mapstructure:"state"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// StateStoreConfig describes the state store sidecar the repository talks to.
// Timeout bounds every individual state round trip.
type StateStoreConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	StoreName string        `mapstructure:"store_name"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

func Load() (*Config, error) {
	// Set default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("state.base_url", "http://localhost:3501")
	viper.SetDefault("state.store_name", "mongo")
	viper.SetDefault("state.timeout", 5*time.Second)

	// Configuration file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/auction-api/")

	// Environment variable support
	viper.AutomaticEnv()

	// Environment variable mappings
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("state.base_url", "STATE_BASE_URL")
	viper.BindEnv("state.store_name", "STATE_STORE_NAME")
	viper.BindEnv("state.timeout", "STATE_TIMEOUT")

	// Read configuration file (optional - will use defaults/env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, continue with defaults and environment variables
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
