// Package config provides configuration management for the RestaurApp CLI.
// It handles reading and writing settings to the config file and applies
// environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is the default RestaurApp backend endpoint
	DefaultAPIURL = "https://restaurapp-backend.onrender.com/api"

	// DefaultDashboardURL is the default RestaurApp web dashboard
	DefaultDashboardURL = "https://restaurapp.vercel.app"

	// ConfigDirName is the name of the config directory
	ConfigDirName = ".restaurapp"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config.json"

	// SessionFileName is the name of the persisted session file
	SessionFileName = "session.json"
)

// Environment variables recognized as overrides. A .env file in the
// working directory is loaded first when present.
const (
	EnvAPIURL       = "RESTAURAPP_API_URL"
	EnvDashboardURL = "RESTAURAPP_DASHBOARD_URL"
	EnvLogLevel     = "RESTAURAPP_LOG_LEVEL"
)

// Config represents the CLI configuration stored on disk
type Config struct {
	// APIURL is the base URL of the RestaurApp backend API
	APIURL string `json:"api_url,omitempty"`

	// DashboardURL is the URL of the RestaurApp web dashboard
	DashboardURL string `json:"dashboard_url,omitempty"`

	// LogLevel controls CLI log verbosity (trace, debug, info, warn, error)
	LogLevel string `json:"log_level,omitempty"`
}

// Default returns a configuration populated with the built-in defaults
func Default() *Config {
	return &Config{
		APIURL:       DefaultAPIURL,
		DashboardURL: DefaultDashboardURL,
	}
}

// Manager handles configuration file operations
type Manager struct {
	configPath  string
	sessionPath string
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(homeDir, ConfigDirName)
	return &Manager{
		configPath:  filepath.Join(dir, ConfigFileName),
		sessionPath: filepath.Join(dir, SessionFileName),
	}, nil
}

// NewManagerWithDir creates a configuration manager rooted at a custom
// directory. This is useful for testing.
func NewManagerWithDir(dir string) *Manager {
	return &Manager{
		configPath:  filepath.Join(dir, ConfigFileName),
		sessionPath: filepath.Join(dir, SessionFileName),
	}
}

// Load reads the configuration from disk and applies environment
// overrides. Returns a default config if the file doesn't exist.
func (m *Manager) Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	config := &Config{}

	data, err := os.ReadFile(m.configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		config.APIURL = v
	}
	if v := os.Getenv(EnvDashboardURL); v != "" {
		config.DashboardURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}

	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	if config.DashboardURL == "" {
		config.DashboardURL = DefaultDashboardURL
	}

	return config, nil
}

// Save writes the configuration to disk
func (m *Manager) Save(config *Config) error {
	// Ensure the config directory exists
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	return os.WriteFile(m.configPath, data, 0600)
}

// SessionPath returns the path of the persisted session file
func (m *Manager) SessionPath() string {
	return m.sessionPath
}

// ConfigPath returns the path to the config file
func (m *Manager) ConfigPath() string {
	return m.configPath
}
