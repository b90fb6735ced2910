package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultRequestTimeout  = 5 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Unparseable values fall back to their defaults; each fallback is reported in
// warnings for the caller to log once a logger exists.
func FromEnv() (cfg Server, warnings []string) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, []string) {
	var warnings []string
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	duration := func(key string, def time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a positive duration, using %s", key, raw, def))
			return def
		}
		return d
	}

	cfg := Server{
		Addr:            get("CNIC_GATEWAY_ADDR", DefaultAddr),
		LogLevel:        strings.ToLower(get("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:       strings.ToLower(get("LOG_FORMAT", DefaultLogFormat)),
		RequestTimeout:  duration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		ShutdownTimeout: duration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		MetricsEnabled:  get("METRICS_ENABLED", "true") != "false",
	}
	return cfg, warnings
}
