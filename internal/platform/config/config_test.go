package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, warnings := fromLookup(lookupFrom(nil))

	assert.Empty(t, warnings)
	assert.Equal(t, Server{
		Addr:            DefaultAddr,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		RequestTimeout:  DefaultRequestTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MetricsEnabled:  true,
	}, cfg)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, warnings := fromLookup(lookupFrom(map[string]string{
		"CNIC_GATEWAY_ADDR": "127.0.0.1:9090",
		"LOG_LEVEL":         "DEBUG",
		"LOG_FORMAT":        "text",
		"REQUEST_TIMEOUT":   "250ms",
		"SHUTDOWN_TIMEOUT":  "3s",
		"METRICS_ENABLED":   "false",
	}))

	assert.Empty(t, warnings)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.MetricsEnabled)
}

func TestFromLookup_InvalidDurationsFallBack(t *testing.T) {
	cfg, warnings := fromLookup(lookupFrom(map[string]string{
		"REQUEST_TIMEOUT":  "soon",
		"SHUTDOWN_TIMEOUT": "-1s",
	}))

	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "REQUEST_TIMEOUT")
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestFromLookup_BlankValuesUseDefaults(t *testing.T) {
	cfg, _ := fromLookup(lookupFrom(map[string]string{"CNIC_GATEWAY_ADDR": "   "}))
	assert.Equal(t, DefaultAddr, cfg.Addr)
}
