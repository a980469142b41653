// Package config holds the runtime configuration, resolved by viper from
// flags, config file, and ATAIL_ environment variables.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultEndpoint is where agent runners expose their feed by default.
const DefaultEndpoint = "ws://127.0.0.1:12001"

// DefaultListen is the web surface's default listen address.
const DefaultListen = ":8417"

type Config struct {
	Endpoint    string `mapstructure:"endpoint"`
	Listen      string `mapstructure:"listen"`
	HistoryPath string `mapstructure:"history_path"`
	Record      bool   `mapstructure:"record"`
}

// NewDefaultConfig returns the defaults, with the history database under the
// given data directory.
func NewDefaultConfig(dataDir string) Config {
	return Config{
		Endpoint:    DefaultEndpoint,
		Listen:      DefaultListen,
		HistoryPath: filepath.Join(dataDir, "history.db"),
	}
}

// Load unmarshals the resolved viper state.
func Load() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}
