package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user configuration directory under $HOME.
const DirName = ".svcprofile"

// Config holds tool-wide settings.
type Config struct {
	// CredentialsPath points at the YAML credential table.
	// Empty uses the built-in table.
	CredentialsPath string `yaml:"credentials_path"`
	LogLevel        string `yaml:"log_level"`
	// Listen is the gRPC address for serve and remote.
	Listen string `yaml:"listen"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Listen:   "127.0.0.1:50061",
	}
}

// Dir returns ~/.svcprofile, or "" if the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName)
}

// DefaultPath returns ~/.svcprofile/config.yaml, or "" if the home directory is unknown.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from a YAML file.
// Empty path falls back to ~/.svcprofile/config.yaml.
// Missing file returns defaults. Invalid YAML returns an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Start with defaults, YAML overwrites only specified fields
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.CredentialsPath != "" && !filepath.IsAbs(cfg.CredentialsPath) {
		cfg.CredentialsPath = filepath.Join(filepath.Dir(path), cfg.CredentialsPath)
	}
	return cfg, nil
}

// DefaultYAML returns a commented config file for init.
func DefaultYAML() string {
	return `# svcprofile configuration
# Generated by: svcprofile init

# Credential table used by the login gate. Relative paths resolve
# against this file's directory. Remove to use the built-in table.
credentials_path: credentials.yaml

# debug | info | warn | error
log_level: warn

# gRPC address for "svcprofile serve" and "svcprofile remote".
listen: 127.0.0.1:50061
`
}
