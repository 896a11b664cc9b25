package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Hazard-Board/internal/config"
)

func TestRun_ReturnsConfigErrors(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.yaml"), "")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load config error, got: %v", err)
	}
}

func TestRun_RejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("HAZARD_LOG_LEVEL", "chatty")
	err := run("", "")
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got: %v", err)
	}
}

func TestRun_ReturnsScenarioErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("hazards: [{axis: diagonal, coord: 1, kind: lava}]"), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	err := run("", path)
	if !errors.Is(err, config.ErrInvalidScenario) {
		t.Fatalf("expected ErrInvalidScenario, got: %v", err)
	}
}
