// SPDX-License-Identifier: MPL-2.0

// Package config loads venvctl configuration from a TOML file with viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "venvctl"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

var (
	// configFileOverride is an explicit config file path (--config flag).
	configFileOverride string
	// configDirOverride lets tests redirect the config directory.
	configDirOverride string
)

// SetConfigFilePathOverride routes Load to an explicit config file.
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}

// SetConfigDirOverride redirects the config directory, primarily for tests.
// It returns a function that restores the previous value.
func SetConfigDirOverride(dir string) func() {
	prev := configDirOverride
	configDirOverride = dir
	return func() { configDirOverride = prev }
}

// ConfigDir returns the venvctl configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the path Load reads from, whether or not it exists.
func FilePath() (string, error) {
	if configFileOverride != "" {
		return configFileOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the configuration file and returns the effective Config.
// A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType(ConfigFileExt)

	defaults := DefaultConfig()
	v.SetDefault("venvs_path", defaults.VenvsPath)
	v.SetDefault("project_markers", defaults.ProjectMarkers)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	path, err := FilePath()
	if err != nil {
		return nil, err
	}
	if fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if configFileOverride != "" {
		return nil, fmt.Errorf("config file not found: %s", configFileOverride)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Render returns cfg serialized as TOML, as written by `config init` and
// shown by `config show`.
func Render(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return data, nil
}

// WriteDefault creates the config file with default values. It refuses to
// overwrite an existing file.
func WriteDefault() (string, error) {
	path, err := FilePath()
	if err != nil {
		return "", err
	}
	if fileExists(path) {
		return path, fmt.Errorf("config file already exists: %s", path)
	}
	data, err := Render(DefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// defaultVenvsPath is ~/.virtualenvs, the conventional virtualenvwrapper
// location. An unresolvable home disables the venv-root enumerator.
func defaultVenvsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".virtualenvs")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
