package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookcheck.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != Default() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadYAMLKeepsUnsetDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  level: warn\noutput:\n  format: json\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Output.Format != "json" {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if !cfg.Log.Console {
		t.Fatal("console default lost")
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	t.Setenv("BOOKCHECK_LOG__LEVEL", "debug")
	t.Setenv("BOOKCHECK_METRICS__TEXTFILE", "/tmp/bookcheck.prom")

	cfg, err := Load(writeConfig(t, "log:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env did not override yaml: %s", cfg.Log.Level)
	}
	if cfg.Metrics.Textfile != "/tmp/bookcheck.prom" {
		t.Fatalf("unexpected textfile: %s", cfg.Metrics.Textfile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	if _, err := Load(writeConfig(t, "log:\n  level: loud\n")); err == nil {
		t.Fatal("expected invalid log level to fail")
	}
	if _, err := Load(writeConfig(t, "output:\n  format: xml\n")); err == nil {
		t.Fatal("expected invalid output format to fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

func TestEnvKey(t *testing.T) {
	if got := envKey("BOOKCHECK_LOG__LEVEL"); got != "log.level" {
		t.Fatalf("unexpected key: %s", got)
	}
}
