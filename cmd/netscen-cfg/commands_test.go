package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/netscen/internal/bands"
	"github.com/muurk/netscen/internal/config"
	"github.com/muurk/netscen/internal/scenario"
	"github.com/muurk/netscen/internal/storage"
)

// executeCommand runs the root command with args and returns its output.
// Flag variables are package globals, so they are reset first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath, storageBackend, storagePath, storageKey, logLevel = "", "", "", "", ""
	outputFormat, assumeYes, bandDuplex, bandTech, forceInit = "detailed", false, "", "", false
	cfg = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// withStore points the config dir at a temp dir and returns the file store
// the commands will use by default.
func withStore(t *testing.T) (string, *storage.FileKV) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigDir, dir)
	t.Setenv(config.EnvStorageBackend, "")
	t.Setenv(config.EnvStoragePath, "")
	t.Setenv(config.EnvStorageKey, "")
	t.Setenv(config.EnvLogLevel, "")

	kv, err := storage.NewFileKV(filepath.Join(dir, "records"))
	if err != nil {
		t.Fatal(err)
	}
	return dir, kv
}

func storeScenario(t *testing.T, kv storage.KV, name string) {
	t.Helper()
	doc := scenario.Default()
	doc.Settings.TestCaseName = name
	data, err := scenario.Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(config.DefaultStorageKey, string(data)); err != nil {
		t.Fatal(err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "netscen-cfg ") {
		t.Errorf("version output = %q", out)
	}
}

func TestScenarioCommands(t *testing.T) {
	dir, kv := withStore(t)
	storeScenario(t, kv, "smoke")

	t.Run("show yaml", func(t *testing.T) {
		out, err := executeCommand(t, "show", "--format", "yaml")
		if err != nil {
			t.Fatalf("show error = %v", err)
		}
		if !strings.Contains(out, "testCaseName: smoke") {
			t.Errorf("show output missing the test case name:\n%s", out)
		}
	})

	t.Run("show unknown format", func(t *testing.T) {
		if _, err := executeCommand(t, "show", "--format", "xml"); err == nil {
			t.Error("show --format xml succeeded")
		}
	})

	t.Run("validate", func(t *testing.T) {
		out, err := executeCommand(t, "validate")
		if err != nil {
			t.Fatalf("validate error = %v\n%s", err, out)
		}
		if !strings.Contains(out, "Scenario is valid") {
			t.Errorf("validate output:\n%s", out)
		}
	})

	t.Run("export", func(t *testing.T) {
		target := filepath.Join(dir, "out.yaml")
		if _, err := executeCommand(t, "export", target); err != nil {
			t.Fatalf("export error = %v", err)
		}
		data, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		doc, repaired, err := scenario.Decode(data)
		if err != nil || len(repaired) != 0 {
			t.Fatalf("Decode() = %v, repaired %v", err, repaired)
		}
		if doc.Settings.TestCaseName != "smoke" {
			t.Errorf("exported TestCaseName = %q", doc.Settings.TestCaseName)
		}
	})

	t.Run("reset needs confirmation", func(t *testing.T) {
		_, err := executeCommand(t, "reset")
		if err == nil || !strings.Contains(err.Error(), "--yes") {
			t.Errorf("reset without --yes error = %v", err)
		}
		if _, ok, _ := kv.Get(config.DefaultStorageKey); !ok {
			t.Error("record removed without confirmation")
		}
	})

	t.Run("reset", func(t *testing.T) {
		if _, err := executeCommand(t, "reset", "--yes"); err != nil {
			t.Fatalf("reset error = %v", err)
		}
		if _, ok, _ := kv.Get(config.DefaultStorageKey); ok {
			t.Error("record still stored after reset")
		}
	})

	t.Run("validate defaults fails", func(t *testing.T) {
		out, err := executeCommand(t, "validate")
		if err == nil {
			t.Fatal("validate succeeded without a test case name")
		}
		if !strings.Contains(out, "No scenario stored") {
			t.Errorf("validate output:\n%s", out)
		}
	})

	t.Run("export without record", func(t *testing.T) {
		if _, err := executeCommand(t, "export", "-"); err == nil {
			t.Error("export succeeded with nothing stored")
		}
	})
}

func TestStorageFlags(t *testing.T) {
	dir, _ := withStore(t)
	db := filepath.Join(dir, "scenarios.db")

	kv, err := storage.Open(storage.BackendSQLite, db)
	if err != nil {
		t.Fatal(err)
	}
	storeScenario(t, kv, "from-sqlite")
	kv.Close()

	out, err := executeCommand(t, "--storage", "sqlite", "--storage-path", db, "show")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	for _, want := range []string{"from-sqlite", "Last saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	if _, err := executeCommand(t, "--storage", "floppy", "show"); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestStorageFlags_MixedCase(t *testing.T) {
	dir, _ := withStore(t)

	kv, err := storage.Open(storage.BackendSQLite, filepath.Join(dir, "netscen.db"))
	if err != nil {
		t.Fatal(err)
	}
	storeScenario(t, kv, "default-db")
	kv.Close()

	out, err := executeCommand(t, "--storage", "SQLITE", "show")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	if !strings.Contains(out, "default-db") {
		t.Errorf("show output missing the stored scenario:\n%s", out)
	}
	if cfg.Storage.Backend != string(storage.BackendSQLite) {
		t.Errorf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
}

func TestConfigInit(t *testing.T) {
	dir, _ := withStore(t)

	if _, err := executeCommand(t, "--storage", "sqlite", "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}

	c, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Storage.Backend != "sqlite" {
		t.Errorf("saved backend = %q, want sqlite", c.Storage.Backend)
	}

	if _, err := executeCommand(t, "config", "init"); err == nil {
		t.Error("config init overwrote an existing file without --force")
	}
}

func TestBandRows(t *testing.T) {
	all, err := bandRows("", "")
	if err != nil {
		t.Fatal(err)
	}

	want := 0
	for _, mode := range bands.DuplexModes {
		for _, b := range bands.BandsFor(mode) {
			for _, tech := range []bands.Technology{bands.Tech4G, bands.Tech5G} {
				if _, ok := bands.Lookup(b, mode, tech); ok {
					want++
				}
			}
		}
	}
	if len(all) != want {
		t.Errorf("len(bandRows()) = %d, want %d", len(all), want)
	}

	filtered, err := bandRows("tdd", "5g")
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range filtered {
		if row[1] != "TDD" || row[2] != "5G" {
			t.Errorf("row %v does not match the filter", row)
		}
		if row[5] == "-" {
			t.Errorf("5G row %v has no SSB", row)
		}
	}

	for _, tt := range []struct{ duplex, tech string }{{"XDD", ""}, {"", "LTE"}} {
		if _, err := bandRows(tt.duplex, tt.tech); err == nil {
			t.Errorf("bandRows(%q, %q) accepted an unknown filter", tt.duplex, tt.tech)
		}
	}
}
