package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openAll(t *testing.T) map[Backend]KV {
	t.Helper()
	dir := t.TempDir()

	fileKV, err := NewFileKV(filepath.Join(dir, "records"))
	if err != nil {
		t.Fatalf("NewFileKV() error = %v", err)
	}
	sqliteKV, err := NewSQLiteKV(filepath.Join(dir, "netscen.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV() error = %v", err)
	}

	stores := map[Backend]KV{
		BackendFile:   fileKV,
		BackendSQLite: sqliteKV,
		BackendMemory: NewMemoryKV(),
	}
	t.Cleanup(func() {
		for _, kv := range stores {
			kv.Close()
		}
	})
	return stores
}

func TestKVContract(t *testing.T) {
	for backend, kv := range openAll(t) {
		t.Run(string(backend), func(t *testing.T) {
			if _, ok, err := kv.Get("networkScenarioData"); err != nil || ok {
				t.Fatalf("Get(absent) = ok %v, err %v, want false, nil", ok, err)
			}

			if err := kv.Set("networkScenarioData", "first"); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := kv.Set("networkScenarioData", "second"); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}

			got, ok, err := kv.Get("networkScenarioData")
			if err != nil || !ok {
				t.Fatalf("Get() = ok %v, err %v", ok, err)
			}
			if got != "second" {
				t.Errorf("Get() = %q, want %q", got, "second")
			}

			if err := kv.Remove("networkScenarioData"); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if _, ok, _ := kv.Get("networkScenarioData"); ok {
				t.Error("Get() after Remove() still finds the key")
			}
			if err := kv.Remove("networkScenarioData"); err != nil {
				t.Errorf("Remove(absent) error = %v, want nil", err)
			}

			if err := kv.Set("", "x"); err == nil {
				t.Error("Set(\"\") expected error")
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"networkScenarioData", false},
		{"a_b", false},
		{"case-1.v2", false},
		{"", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{"../escape", true},
		{"a b", true},
		{"a\\b", true},
		{"héllo", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestFileKV_DistinctKeysDistinctFiles(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := kv.Set("a/b", "slash"); err == nil {
		t.Fatal("Set(\"a/b\") succeeded")
	}
	if err := kv.Set("a_b", "underscore"); err != nil {
		t.Fatalf("Set(\"a_b\") error = %v", err)
	}
	if err := kv.Set("a-b", "dash"); err != nil {
		t.Fatalf("Set(\"a-b\") error = %v", err)
	}

	for key, want := range map[string]string{"a_b": "underscore", "a-b": "dash"} {
		got, ok, err := kv.Get(key)
		if err != nil || !ok || got != want {
			t.Errorf("Get(%q) = %q, %v, %v, want %q", key, got, ok, err, want)
		}
	}
	if _, _, err := kv.Get("a/b"); err == nil {
		t.Error("Get(\"a/b\") succeeded")
	}
}

func TestFileKV_AtomicWriteLeavesNoTemp(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV() error = %v", err)
	}

	if err := kv.Set("networkScenarioData", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	path := kv.Path("networkScenarioData")
	if filepath.Dir(path) != kv.Dir() {
		t.Errorf("Path() = %q escapes storage directory", path)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after Set()")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("record permissions = %v, want 0600", info.Mode().Perm())
	}
}

func TestSQLiteKV_UpdatedAt(t *testing.T) {
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV() error = %v", err)
	}
	defer kv.Close()

	if _, ok, err := kv.UpdatedAt("k"); err != nil || ok {
		t.Fatalf("UpdatedAt(absent) = ok %v, err %v", ok, err)
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	ts, ok, err := kv.UpdatedAt("k")
	if err != nil || !ok {
		t.Fatalf("UpdatedAt() = ok %v, err %v", ok, err)
	}
	if ts.IsZero() {
		t.Error("UpdatedAt() returned zero time")
	}
}

func TestSQLiteKV_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV() error = %v", err)
	}
	if err := kv.Set("k", "persisted"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	kv.Close()

	kv, err = NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV() reopen error = %v", err)
	}
	defer kv.Close()

	got, ok, err := kv.Get("k")
	if err != nil || !ok || got != "persisted" {
		t.Errorf("Get() after reopen = %q, %v, %v", got, ok, err)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{"file", BackendFile, false},
		{" SQLite ", BackendSQLite, false},
		{"memory", BackendMemory, false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBackend(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBackend() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseBackend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	kv, err := Open(BackendMemory, "")
	if err != nil {
		t.Fatalf("Open(memory) error = %v", err)
	}
	if _, ok := kv.(*MemoryKV); !ok {
		t.Errorf("Open(memory) = %T, want *MemoryKV", kv)
	}

	if _, err := Open("bogus", ""); err == nil {
		t.Error("Open(bogus) expected error")
	}
}
