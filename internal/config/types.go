package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Strategy values accepted in settings files.
const (
	StrategyDownload   = "download"
	StrategySearchPath = "path"
)

// Settings selects how the language-server binary is obtained and where
// it lives. Zero-value fields mean "use the default".
type Settings struct {
	// Strategy is "download" (prebuilt release asset) or "path"
	// (manually built binary on the search path).
	Strategy string
	// Version is the release tag to fetch, without the leading "v".
	Version string
	// BaseURL overrides the release download root.
	BaseURL string
	// InstallDir is where downloaded binaries land. Supports a
	// leading "~".
	InstallDir string
	// Keyring is an armored GPG keyring path; setting it enables
	// signature verification of downloads. Supports a leading "~".
	Keyring string
	// Checksums is a checksum file path; setting it enables SHA256
	// verification of downloads. Supports a leading "~".
	Checksums string
}

// DefaultSettings returns the settings used when no file is present:
// download the baked-in release into the current directory, unverified.
func DefaultSettings() Settings {
	return Settings{
		Strategy:   StrategyDownload,
		Version:    "0.1.0",
		InstallDir: ".",
	}
}

// Validate checks field values and expands "~" in path fields.
func (s *Settings) Validate() error {
	switch s.Strategy {
	case StrategyDownload, StrategySearchPath:
	default:
		return fmt.Errorf("invalid strategy %q: must be %q or %q",
			s.Strategy, StrategyDownload, StrategySearchPath)
	}

	if s.Strategy == StrategyDownload && s.Version == "" {
		return fmt.Errorf("version must not be empty with the download strategy")
	}

	for _, field := range []*string{&s.InstallDir, &s.Keyring, &s.Checksums} {
		expanded, err := expandHome(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	return nil
}

// expandHome expands a leading "~" to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
