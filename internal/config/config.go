// Package config loads the backend's YAML configuration with sane
// defaults so the binary runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int    `yaml:"port"`
	BindAddress  string `yaml:"bind_address"`
	EnableCORS   bool   `yaml:"enable_cors"`
	AllowOrigins string `yaml:"allow_origins"`
	ReadTimeout  int    `yaml:"read_timeout_seconds"`
	WriteTimeout int    `yaml:"write_timeout_seconds"`
	IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	BodyLimit    string `yaml:"body_limit"`
}

// StorageConfig contains snapshot persistence settings.
type StorageConfig struct {
	DataDirectory string `yaml:"data_directory"`
	SnapshotFile  string `yaml:"snapshot_file"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Directory     string `yaml:"directory"`
	FileMaxAgeDay int    `yaml:"file_max_age_days"`
	RequestLog    bool   `yaml:"request_log"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8090,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
			BodyLimit:    "32M",
		},
		Storage: StorageConfig{
			DataDirectory: "./data",
			SnapshotFile:  "inventory.db",
		},
		Logging: LoggingConfig{
			Level:         "info",
			Directory:     "./data/logs",
			FileMaxAgeDay: 7,
			RequestLog:    true,
		},
	}
}

// Load reads the YAML config at path, falling back to defaults when the
// file does not exist. Environment variables SERVER_PORT, BIND_ADDRESS and
// DATA_DIR override the file (so a .env works during development).
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("BIND_ADDRESS"); v != "" {
		cfg.Server.BindAddress = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Storage.DataDirectory = v
	}
}

// ServerAddr returns the bind address:port pair for the HTTP server.
func (c *AppConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// SnapshotPath returns the full path of the snapshot database.
func (c *AppConfig) SnapshotPath() string {
	return filepath.Join(c.Storage.DataDirectory, c.Storage.SnapshotFile)
}

// EnsureDirectories creates the data and log directories.
func (c *AppConfig) EnsureDirectories() error {
	for _, dir := range []string{c.Storage.DataDirectory, c.Logging.Directory} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}
