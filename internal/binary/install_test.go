package binary

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSetExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "cambridge-lsp")
	if err := os.WriteFile(path, []byte("binary"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := SetExecutable(path); err != nil {
		t.Fatalf("SetExecutable() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %o, want 0755", info.Mode().Perm())
	}
}

func TestSetExecutableMissingFile(t *testing.T) {
	err := SetExecutable(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestIsInstalled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions not meaningful on windows")
	}

	tmpDir := t.TempDir()

	// Missing file
	installed, err := IsInstalled(filepath.Join(tmpDir, "missing"))
	if err != nil {
		t.Fatalf("IsInstalled() error = %v", err)
	}
	if installed {
		t.Error("IsInstalled() = true for missing file")
	}

	// Present but not executable
	plain := filepath.Join(tmpDir, "plain")
	if err := os.WriteFile(plain, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	installed, err = IsInstalled(plain)
	if err != nil {
		t.Fatalf("IsInstalled() error = %v", err)
	}
	if installed {
		t.Error("IsInstalled() = true for non-executable file")
	}

	// Executable
	exe := filepath.Join(tmpDir, "exe")
	if err := os.WriteFile(exe, []byte("x"), 0755); err != nil {
		t.Fatal(err)
	}
	installed, err = IsInstalled(exe)
	if err != nil {
		t.Fatalf("IsInstalled() error = %v", err)
	}
	if !installed {
		t.Error("IsInstalled() = false for executable file")
	}

	// Directory
	installed, err = IsInstalled(tmpDir)
	if err != nil {
		t.Fatalf("IsInstalled() error = %v", err)
	}
	if installed {
		t.Error("IsInstalled() = true for directory")
	}
}

func TestIsRegularFile(t *testing.T) {
	tmpDir := t.TempDir()

	if IsRegularFile(filepath.Join(tmpDir, "missing")) {
		t.Error("IsRegularFile() = true for missing file")
	}
	if IsRegularFile(tmpDir) {
		t.Error("IsRegularFile() = true for directory")
	}

	path := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !IsRegularFile(path) {
		t.Error("IsRegularFile() = false for regular file")
	}
}
