package binary

import (
	"errors"
	"fmt"

	"github.com/andrinoff/cambridge-lang/internal/platform"
)

// ToolName is the logical name of the language-server binary.
const ToolName = "cambridge-lsp"

// ErrUnsupportedPlatform indicates no release asset exists for the
// detected platform. The error is terminal; there is nothing to retry.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Release identifies a published set of binaries by version tag and
// download base URL.
type Release struct {
	Version string // e.g. "0.1.0"
	BaseURL string // release download root, no trailing slash
}

// DefaultRelease is the release baked in at build time. Shipping a new
// binary means bumping this version; there is no other release channel.
var DefaultRelease = Release{
	Version: "0.1.0",
	BaseURL: "https://github.com/andrinoff/cambridge-lang/releases/download",
}

// AssetName returns the release asset name for a platform pair.
//
// macOS assets are architecture-specific. Linux and Windows publish a
// single asset each, matched regardless of architecture.
func AssetName(info *platform.Info) (string, error) {
	if info == nil {
		return "", fmt.Errorf("platform info is required")
	}

	switch {
	case info.OS == "darwin" && info.Arch == "arm64":
		return "cambridge-lsp-macos-arm64", nil
	case info.OS == "darwin" && info.Arch == "amd64":
		return "cambridge-lsp-macos-intel", nil
	case info.OS == "linux":
		return "cambridge-lsp-linux", nil
	case info.OS == "windows":
		return "cambridge-lsp.exe", nil
	default:
		arch := info.Arch
		if arch == "" {
			arch = info.ArchRaw
		}
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, info.OS, arch)
	}
}

// DownloadURL returns the single download URL for a platform pair, or
// ErrUnsupportedPlatform when no asset exists.
func (r Release) DownloadURL(info *platform.Info) (string, error) {
	asset, err := AssetName(info)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/v%s/%s", r.BaseURL, r.Version, asset), nil
}

// LocalName returns the on-disk file name for the installed binary.
// Windows binaries keep their .exe suffix.
func LocalName(info *platform.Info) string {
	if info != nil && info.OS == "windows" {
		return ToolName + ".exe"
	}
	return ToolName
}
