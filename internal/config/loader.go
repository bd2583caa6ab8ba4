package config

import (
	"os"
	"path/filepath"
)

// Loader finds and loads the configuration file.
type Loader struct {
	OverridePath string // Set from the command line if given
}

func NewLoader(overridePath string) *Loader {
	return &Loader{OverridePath: overridePath}
}

// Load returns the parsed configuration, or the defaults when no file
// exists.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	// 1. Explicit override
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	// 2. Working directory
	wd, _ := os.Getwd()
	localPath := filepath.Join(wd, "localboard.toml")
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	// 3. XDG config directory
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	xdgPath := filepath.Join(dir, "localboard", "config.toml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}
