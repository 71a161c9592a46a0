// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package config

import (
	"github.com/caarlos0/env/v11"
)

// HostEnv is the slice of the host process environment the plugin host
// reads. ShellLevel is read fresh on every dispatch, never cached.
type HostEnv struct {
	ShellLevel int    `env:"SHLVL" envDefault:"1"`
	User       string `env:"USER"`
	ConfigPath string `env:"PLUGSH_PLUGIN_CONFIG"`
	LogLevel   string `env:"PLUGSH_LOG_LEVEL" envDefault:"info"`
	LogFile    string `env:"PLUGSH_LOG_FILE"`
}

// ReadHostEnv parses the host environment. On a malformed variable it
// returns usable defaults alongside the error so callers can log and
// continue; the plugin host never fails because of a broken SHLVL.
func ReadHostEnv() (HostEnv, error) {
	he := HostEnv{ShellLevel: 1, LogLevel: "info"}
	if err := env.Parse(&he); err != nil {
		return HostEnv{ShellLevel: 1, LogLevel: "info"}, err
	}
	return he, nil
}

// ResolveConfigPath picks the plugin config file: an explicit flag value
// wins, then PLUGSH_PLUGIN_CONFIG, then the system-wide default.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if he, err := ReadHostEnv(); err == nil && he.ConfigPath != "" {
		return he.ConfigPath
	}
	return DefaultPluginConfigPath
}
