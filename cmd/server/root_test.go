package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arco/demo/internal/version"
)

func TestVersionCommand(t *testing.T) {
	t.Setenv("APP_NAME", "demo")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "demo "+version.Version) {
		t.Fatalf("expected name and version, got %q", out.String())
	}
}

func TestMigrateCommand_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "up"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}
}
