package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Packages
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the optional configuration file under the user config
// directory, holding named server profiles.
type Config struct {
	Default  string             `yaml:"default,omitempty"`
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// Profile is a named server in the configuration file.
type Profile struct {
	URL string `yaml:"url"`
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolveURL returns the server URL for this invocation. An explicit
// URL wins; otherwise the named profile (or the configuration file's
// default profile) supplies it. Returns "" when nothing is configured.
func resolveURL(url, profile string) (string, error) {
	if url != "" {
		return url, nil
	}

	// Read the configuration file
	config, err := readConfig(configPath())
	if err != nil {
		return "", err
	}
	if profile == "" {
		profile = config.Default
	}
	if profile == "" {
		return "", nil
	}
	if p, exists := config.Profiles[profile]; exists {
		return p.URL, nil
	}
	return "", fmt.Errorf("profile %q not found in %q", profile, configPath())
}

// readConfig parses the configuration file. A missing file is not an
// error and returns an empty configuration.
func readConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// configPath returns the path of the configuration file.
func configPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// tokenDir returns the directory holding stored session tokens.
func tokenDir() string {
	return filepath.Join(configDir(), "tokens")
}

// configDir returns the application configuration directory.
func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "owui")
	}
	return filepath.Join(os.TempDir(), "owui")
}

// apiEndpoint appends the API prefix to a server URL.
func apiEndpoint(url string) string {
	return strings.TrimSuffix(url, "/") + "/api"
}
