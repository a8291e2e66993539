// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"colcrt/internal/locale"
)

// Prefix is shared by every variable colcrt reads.
const Prefix = "COLCRT_"

const (
	EnvLogLevel = Prefix + "LOG_LEVEL"
	EnvCharset  = Prefix + "CHARSET"
)

// Config holds settings that do not come from the command line.
type Config struct {
	LogLevel log.Level
	// Charset names the input and output encoding; empty means UTF-8.
	Charset string
}

// Default is used for anything the environment leaves unset.
func Default() Config {
	return Config{LogLevel: log.WarnLevel}
}

// Load builds a Config from the environment. The charset falls back to the
// codeset of the process locale.
func Load() (Config, error) {
	cfg := Default()
	if v, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		lvl, err := log.ParseLevel(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := os.LookupEnv(EnvCharset); ok && strings.TrimSpace(v) != "" {
		cfg.Charset = strings.TrimSpace(v)
	} else {
		cfg.Charset = locale.Charset(os.Getenv)
	}
	return cfg, nil
}
