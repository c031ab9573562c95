package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.REPLThreshold != 3 {
		t.Fatalf("repl threshold mismatch: got=%d want=3", cfg.REPLThreshold)
	}
	if len(cfg.PythonAliases) == 0 {
		t.Fatalf("expected default python aliases")
	}
	if cfg.LLM.Enabled {
		t.Fatalf("llm must be disabled by default")
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "repl_threshold: 5\nllm:\n  enabled: true\n  model: gpt-4o\nmetrics_addr: \":9187\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.REPLThreshold != 5 {
		t.Fatalf("repl threshold mismatch: got=%d want=5", cfg.REPLThreshold)
	}
	if !cfg.LLM.Enabled || cfg.LLM.Model != "gpt-4o" {
		t.Fatalf("llm config mismatch: %+v", cfg.LLM)
	}
	if cfg.MetricsAddr != ":9187" {
		t.Fatalf("metrics addr mismatch: got=%q", cfg.MetricsAddr)
	}
	// Keys absent from the file keep their defaults.
	if len(cfg.PythonAliases) == 0 {
		t.Fatalf("expected default aliases to survive a partial config")
	}
}

func TestLoadConfigAliasOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "python_aliases:\n  - python\n  - snake\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.PythonAliases) != 2 || cfg.PythonAliases[1] != "snake" {
		t.Fatalf("alias override mismatch: %v", cfg.PythonAliases)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.REPLThreshold = 0
	if err := ValidateConfig(cfg); err == nil {
		t.Fatalf("expected validation error for zero threshold")
	}

	cfg = Default()
	cfg.PythonAliases = []string{"py thon"}
	if err := ValidateConfig(cfg); err == nil {
		t.Fatalf("expected validation error for an alias with spaces")
	}

	cfg = Default()
	cfg.PythonAliases = nil
	if err := ValidateConfig(cfg); err == nil {
		t.Fatalf("expected validation error for empty aliases")
	}
}
