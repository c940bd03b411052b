package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "c")

	if err := EnsureDir(target, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Idempotent
	if err := EnsureDir(target, 0); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}

func TestAppConfigDir(t *testing.T) {
	got := AppConfigDir()
	if got == "" {
		t.Fatal("AppConfigDir() returned empty string")
	}
	if filepath.Base(got) != AppName {
		t.Errorf("AppConfigDir() = %q, want basename %q", got, AppName)
	}
}
