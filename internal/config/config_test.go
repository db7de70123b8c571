package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/netscen/internal/storage"
)

func TestGetConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "netscen") {
		t.Errorf("GetConfigDir() = %v, should contain 'netscen'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_Override(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if got != dir {
		t.Errorf("GetConfigDir() = %v, want %v", got, dir)
	}

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", path)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("NewConfig().Storage.Backend = %v, want file", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != DefaultStorageKey {
		t.Errorf("NewConfig().Storage.Key = %v, want %v", cfg.Storage.Key, DefaultStorageKey)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend() != storage.BackendFile {
		t.Errorf("Backend() = %v, want file", cfg.Backend())
	}
	if cfg.Storage.Path != filepath.Join(dir, "records") {
		t.Errorf("Storage.Path = %v, want %v", cfg.Storage.Path, filepath.Join(dir, "records"))
	}
	if cfg.Logging.File != filepath.Join(dir, "netscen.log") {
		t.Errorf("Logging.File = %v", cfg.Logging.File)
	}
}

func TestSaveAndLoad(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Key = "lab-a"
	cfg.Logging.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# netscen configuration file") {
		t.Error("saved config is missing its header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Backend() != storage.BackendSQLite {
		t.Errorf("Backend() = %v, want sqlite", loaded.Backend())
	}
	if loaded.Storage.Key != "lab-a" {
		t.Errorf("Storage.Key = %v, want lab-a", loaded.Storage.Key)
	}
	if loaded.Storage.Path != filepath.Join(dir, "nested", "netscen.db") {
		t.Errorf("Storage.Path = %v", loaded.Storage.Path)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", loaded.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(EnvStorageBackend, "memory")
	t.Setenv(EnvStorageKey, "from-env")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend() != storage.BackendMemory {
		t.Errorf("Backend() = %v, want memory", cfg.Backend())
	}
	if cfg.Storage.Key != "from-env" {
		t.Errorf("Storage.Key = %v, want from-env", cfg.Storage.Key)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %v, want warn", cfg.Logging.Level)
	}
}

func TestLoad_MixedCaseBackend(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		want     storage.Backend
		wantPath string
	}{
		{"sqlite", "SQLite", storage.BackendSQLite, "netscen.db"},
		{"file", " FILE ", storage.BackendFile, "records"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			t.Setenv(EnvStorageBackend, tt.backend)

			cfg, err := Load(filepath.Join(dir, "config.yaml"))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Storage.Backend != string(tt.want) {
				t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, tt.want)
			}
			if want := filepath.Join(dir, tt.wantPath); cfg.Storage.Path != want {
				t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, want)
			}

			kv, err := cfg.OpenStore()
			if err != nil {
				t.Fatalf("OpenStore() error = %v", err)
			}
			kv.Close()
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad version", "version: 2\n"},
		{"bad backend", "version: 1\nstorage:\n  backend: redis\n"},
		{"key with slash", "version: 1\nstorage:\n  key: a/b\n"},
		{"bad yaml", "storage: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestOpenStore(t *testing.T) {
	cfg := NewConfig()
	cfg.SetDefaults(t.TempDir())

	kv, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	defer kv.Close()

	if _, ok := kv.(*storage.FileKV); !ok {
		t.Errorf("OpenStore() = %T, want *storage.FileKV", kv)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvStorageBackend, EnvStoragePath, EnvStorageKey, EnvLogLevel} {
		t.Setenv(key, "")
	}
}
