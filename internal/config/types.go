// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the root configuration for venvctl.
	Config struct {
		// VenvsPath is the directory whose immediate subdirectories are
		// offered as venv candidates (e.g. ~/.virtualenvs).
		VenvsPath string `mapstructure:"venvs_path" toml:"venvs_path"`

		// ProjectMarkers overrides the file/directory names that identify a
		// project root during auto-resolution.
		ProjectMarkers []string `mapstructure:"project_markers" toml:"project_markers"`

		// UI holds user interface settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// Verbose enables verbose diagnostic output.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		VenvsPath:      defaultVenvsPath(),
		ProjectMarkers: nil,
		UI: UIConfig{
			Verbose: false,
		},
	}
}
