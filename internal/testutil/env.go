// Package testutil provides utilities for testing the installer in
// isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv points the installer's environment at per-test temp
// directories so tests never touch a user's real settings or installed
// binaries. Cleanup is handled by t.TempDir and t.Setenv.
//
// It returns the temp root for tests that need to place files inside.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	t.Setenv("CAMBRIDGE_LSP_CONFIG", filepath.Join(tmpDir, "cambridge.lua"))
	t.Setenv("CAMBRIDGE_LSP_INSTALL_DIR", filepath.Join(tmpDir, "bin"))

	if err := os.MkdirAll(filepath.Join(tmpDir, "bin"), 0o750); err != nil {
		t.Fatalf("failed to create test install directory: %v", err)
	}

	return tmpDir
}
