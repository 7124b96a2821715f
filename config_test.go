package main

import (
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig(t.TempDir(), 9090)
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, ":9090", cfg.Addr())
}

func TestConfigValidatePortFallback(t *testing.T) {
	for _, port := range []int{-1, 0, 70000} {
		cfg := NewConfig(t.TempDir(), port)
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
		if cfg.Port != DefaultPort {
			t.Errorf("port %d: got %d, want default %d", port, cfg.Port, DefaultPort)
		}
	}
}

func TestConfigValidateRejectsBadRoot(t *testing.T) {
	cfg := NewConfig("", DefaultPort)
	if err := cfg.Validate(); err == nil {
		t.Error("empty root should fail validation")
	}

	cfg = NewConfig(filepath.Join(t.TempDir(), "missing"), DefaultPort)
	if err := cfg.Validate(); err == nil {
		t.Error("missing root should fail validation")
	}
}

func TestConfigValidateRejectsFileRoot(t *testing.T) {
	root := serveRoot(t)
	cfg := NewConfig(filepath.Join(root, "a.txt"), DefaultPort)
	if err := cfg.Validate(); err == nil {
		t.Error("a file is not a servable root")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig(t.TempDir(), DefaultPort)
	cfg.Timeout = 0
	cfg.TemplatePath = ""
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != DefaultSocketTimeout {
		t.Errorf("timeout not defaulted: %v", cfg.Timeout)
	}
	ExpectEqual(t, defaultTemplatePath, cfg.TemplatePath)
}
