package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	c := NewDefaultConfig("/data/atail")
	require.Equal(t, DefaultEndpoint, c.Endpoint)
	require.Equal(t, DefaultListen, c.Listen)
	require.Equal(t, filepath.Join("/data/atail", "history.db"), c.HistoryPath)
	require.False(t, c.Record)
}

func TestLoad(t *testing.T) {
	req := require.New(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("endpoint", "ws://runner:9000")
	viper.Set("listen", ":9090")
	viper.Set("history_path", "/tmp/h.db")
	viper.Set("record", true)

	c, err := Load()
	req.NoError(err)
	req.Equal("ws://runner:9000", c.Endpoint)
	req.Equal(":9090", c.Listen)
	req.Equal("/tmp/h.db", c.HistoryPath)
	req.True(c.Record)
}

func TestLoadEnvOverride(t *testing.T) {
	req := require.New(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetEnvPrefix("ATAIL")
	viper.AutomaticEnv()
	viper.SetDefault("endpoint", DefaultEndpoint)
	t.Setenv("ATAIL_ENDPOINT", "ws://elsewhere:12001")

	c, err := Load()
	req.NoError(err)
	req.Equal("ws://elsewhere:12001", c.Endpoint)
}
