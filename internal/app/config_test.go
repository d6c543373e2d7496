package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		InputDir:    "in",
		OutputDir:   "out",
		Profile:     "forum",
		LogFormat:   "text",
		LogLevel:    "info",
		WorkerCount: 1,
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(validConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultWatchDebounce, cfg.WatchDebounce)
}

func TestNewConfig_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input", func(c *Config) { c.InputDir = "" }},
		{"missing output", func(c *Config) { c.OutputDir = "" }},
		{"missing profile", func(c *Config) { c.Profile = "" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
		{"no workers", func(c *Config) { c.WorkerCount = 0 }},
		{"bad port", func(c *Config) { c.HealthcheckPort = 70000 }},
		{"bad urdf url", func(c *Config) { c.URDFURL = "not a url" }},
		{"bad socket.io url", func(c *Config) { c.SocketIOURL = "::" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			_, err := NewConfig(cfg)
			assert.Error(t, err)
		})
	}
}
