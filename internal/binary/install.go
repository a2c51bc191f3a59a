package binary

import (
	"fmt"
	"os"
)

// SetExecutable marks a file executable (0755).
func SetExecutable(path string) error {
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}

// IsInstalled reports whether path names an installed, executable
// binary: a regular file with at least one execute bit set.
func IsInstalled(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat binary: %w", err)
	}

	if !info.Mode().IsRegular() {
		return false, nil
	}
	if info.Mode().Perm()&0111 == 0 {
		return false, nil
	}
	return true, nil
}

// IsRegularFile reports whether path names an existing regular file.
// This is the check used to validate cached resolver paths.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
