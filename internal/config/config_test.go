package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.Store != StoreSQLite || cfg.DBPath != ".vibetask.db" {
		t.Fatalf("unexpected store defaults: %+v", cfg)
	}
	if cfg.DefaultUrgency != 50 || cfg.ExportDir != "exports" {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("VIBETASK_STORE", "FILE")
	t.Setenv("VIBETASK_STATE_FILE", "state/custom.json")
	t.Setenv("VIBETASK_EXPORT_DIR", "ics")
	t.Setenv("VIBETASK_LOG_LEVEL", "debug")
	t.Setenv("VIBETASK_LOG_FILE", "vibetask.log")
	t.Setenv("VIBETASK_DEFAULT_URGENCY", "70")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.Store != StoreFile || cfg.StateFilePath != "state/custom.json" {
		t.Fatalf("unexpected store config: %+v", cfg)
	}
	if cfg.ExportDir != "ics" || cfg.LogLevel != "debug" || cfg.LogFile != "vibetask.log" {
		t.Fatalf("unexpected config overrides: %+v", cfg)
	}
	if cfg.DefaultUrgency != 70 {
		t.Fatalf("unexpected default urgency: %d", cfg.DefaultUrgency)
	}
}

func TestRuntimeConfigFromEnvIgnoresBadUrgency(t *testing.T) {
	t.Setenv("VIBETASK_DEFAULT_URGENCY", "250")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DefaultUrgency != 50 {
		t.Fatalf("expected default urgency kept, got %d", cfg.DefaultUrgency)
	}
	t.Setenv("VIBETASK_DEFAULT_URGENCY", "soon")
	cfg = RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DefaultUrgency != 50 {
		t.Fatalf("expected default urgency kept, got %d", cfg.DefaultUrgency)
	}
}

func TestLoadLayersFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vibetask.yaml")
	doc := "store: file\nstate_file: from-file.json\nexport_dir: file-exports\ndefault_urgency: 30\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VIBETASK_CONFIG", path)
	t.Setenv("VIBETASK_EXPORT_DIR", "env-exports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store != StoreFile || cfg.StateFilePath != "from-file.json" || cfg.DefaultUrgency != 30 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.ExportDir != "env-exports" {
		t.Fatalf("env should win over file, got %q", cfg.ExportDir)
	}
	if cfg.DBPath != ".vibetask.db" {
		t.Fatalf("unset keys should keep defaults, got %q", cfg.DBPath)
	}
}

func TestValidateRejectsUnknownStore(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Store = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown store error")
	}
}
