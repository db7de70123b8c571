package config

import (
	"fmt"
	"path/filepath"

	"github.com/muurk/netscen/internal/storage"
)

// DefaultStorageKey is the key the scenario record is stored under.
const DefaultStorageKey = "networkScenarioData"

// Config represents the entire user configuration file.
type Config struct {
	Version int            `yaml:"version"`
	Storage *StorageConfig `yaml:"storage,omitempty"`
	Logging *LoggingConfig `yaml:"logging,omitempty"`
}

// StorageConfig selects where the scenario record is persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"`        // file, sqlite or memory
	Path    string `yaml:"path,omitempty"` // Directory (file) or database file (sqlite)
	Key     string `yaml:"key"`            // Record key
}

// LoggingConfig controls zap output.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // Empty means silent unless NETSCEN_LOG_LEVEL is set
	File  string `yaml:"file,omitempty"`  // Log file used while the interactive wizard runs
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Storage: &StorageConfig{
			Backend: string(storage.BackendFile),
			Key:     DefaultStorageKey,
		},
		Logging: &LoggingConfig{},
	}
}

// SetDefaults fills every empty field. Paths default to locations inside
// configDir.
func (c *Config) SetDefaults(configDir string) {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = string(storage.BackendFile)
	}
	// Unknown names are left alone for Validate to report.
	if b, err := storage.ParseBackend(c.Storage.Backend); err == nil {
		c.Storage.Backend = string(b)
	}
	if c.Storage.Key == "" {
		c.Storage.Key = DefaultStorageKey
	}
	if c.Storage.Path == "" {
		switch storage.Backend(c.Storage.Backend) {
		case storage.BackendSQLite:
			c.Storage.Path = filepath.Join(configDir, "netscen.db")
		case storage.BackendFile:
			c.Storage.Path = filepath.Join(configDir, "records")
		}
	}
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(configDir, "netscen.log")
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	if c.Storage == nil {
		return fmt.Errorf("storage section is required")
	}
	if _, err := storage.ParseBackend(c.Storage.Backend); err != nil {
		return err
	}
	if err := storage.ValidateKey(c.Storage.Key); err != nil {
		return fmt.Errorf("storage.key: %w", err)
	}
	return nil
}

// Backend returns the parsed storage backend.
func (c *Config) Backend() storage.Backend {
	b, err := storage.ParseBackend(c.Storage.Backend)
	if err != nil {
		return storage.BackendFile
	}
	return b
}

// OpenStore opens the configured key-value store.
func (c *Config) OpenStore() (storage.KV, error) {
	return storage.Open(c.Backend(), c.Storage.Path)
}
