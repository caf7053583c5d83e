// Package config provides configuration management for pathscope.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir is the directory name under the user config root.
const ConfigDir = "pathscope"

// getConfigDir returns the platform-appropriate config directory.
//   - Windows: %APPDATA%\Rescale\Pathscope
//   - Unix: ~/.config/pathscope (XDG standard)
func getConfigDir() string {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Rescale", "Pathscope")
		}
		// Fallback to USERPROFILE if APPDATA not set
		if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
			return filepath.Join(userProfile, "AppData", "Roaming", "Rescale", "Pathscope")
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", ConfigDir)
	}
	return ""
}

// GetDefaultConfigPath returns the default config file path, or
// "config.csv" in the working directory when no home directory is known.
func GetDefaultConfigPath() string {
	configDir := getConfigDir()
	if configDir == "" {
		return "config.csv"
	}
	return filepath.Join(configDir, "config.csv")
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	configDir := getConfigDir()
	if configDir == "" {
		return os.ErrNotExist
	}
	return os.MkdirAll(configDir, 0700)
}
