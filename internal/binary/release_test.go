package binary

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/andrinoff/cambridge-lang/internal/platform"
)

func TestDownloadURLSupportedPlatforms(t *testing.T) {
	tests := []struct {
		name string
		info platform.Info
		want string
	}{
		{
			name: "macos_arm64",
			info: platform.Info{OS: "darwin", Arch: "arm64"},
			want: "cambridge-lsp-macos-arm64",
		},
		{
			name: "macos_intel",
			info: platform.Info{OS: "darwin", Arch: "amd64"},
			want: "cambridge-lsp-macos-intel",
		},
		{
			name: "linux_amd64",
			info: platform.Info{OS: "linux", Arch: "amd64"},
			want: "cambridge-lsp-linux",
		},
		{
			name: "linux_arm64_same_asset",
			info: platform.Info{OS: "linux", Arch: "arm64"},
			want: "cambridge-lsp-linux",
		},
		{
			name: "windows_amd64",
			info: platform.Info{OS: "windows", Arch: "amd64"},
			want: "cambridge-lsp.exe",
		},
		{
			name: "windows_arm64_same_asset",
			info: platform.Info{OS: "windows", Arch: "arm64"},
			want: "cambridge-lsp.exe",
		},
		{
			// No normalized arch name; the Linux asset matches anyway.
			name: "linux_arm_same_asset",
			info: platform.Info{OS: "linux", ArchRaw: "arm"},
			want: "cambridge-lsp-linux",
		},
		{
			name: "linux_riscv64_same_asset",
			info: platform.Info{OS: "linux", ArchRaw: "riscv64"},
			want: "cambridge-lsp-linux",
		},
		{
			name: "windows_386_same_asset",
			info: platform.Info{OS: "windows", ArchRaw: "386"},
			want: "cambridge-lsp.exe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := DefaultRelease.DownloadURL(&tt.info)
			if err != nil {
				t.Fatalf("DownloadURL() error = %v", err)
			}

			wantURL := fmt.Sprintf(
				"https://github.com/andrinoff/cambridge-lang/releases/download/v%s/%s",
				DefaultRelease.Version, tt.want,
			)
			if url != wantURL {
				t.Errorf("DownloadURL() = %q, want %q", url, wantURL)
			}
			if !strings.Contains(url, "/releases/download/v") {
				t.Errorf("URL %q missing release-download shape", url)
			}
		})
	}
}

func TestDownloadURLUnsupportedPlatform(t *testing.T) {
	tests := []struct {
		name string
		info platform.Info
	}{
		{"freebsd", platform.Info{OS: "freebsd", Arch: "amd64"}},
		{"plan9", platform.Info{OS: "plan9", Arch: "amd64"}},
		{"macos_unknown_arch", platform.Info{OS: "darwin", Arch: "386"}},
		{"macos_unnormalized_arch", platform.Info{OS: "darwin", ArchRaw: "386"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultRelease.DownloadURL(&tt.info)
			if err == nil {
				t.Fatal("expected error for unsupported platform")
			}
			if !errors.Is(err, ErrUnsupportedPlatform) {
				t.Errorf("error = %v, want ErrUnsupportedPlatform", err)
			}
		})
	}
}

func TestDownloadURLNilPlatform(t *testing.T) {
	if _, err := DefaultRelease.DownloadURL(nil); err == nil {
		t.Fatal("expected error for nil platform info")
	}
}

func TestDownloadURLCustomRelease(t *testing.T) {
	release := Release{Version: "0.2.0", BaseURL: "https://mirror.example.com/cambridge"}
	url, err := release.DownloadURL(&platform.Info{OS: "linux", Arch: "amd64"})
	if err != nil {
		t.Fatalf("DownloadURL() error = %v", err)
	}
	if url != "https://mirror.example.com/cambridge/v0.2.0/cambridge-lsp-linux" {
		t.Errorf("DownloadURL() = %q", url)
	}
}

func TestLocalName(t *testing.T) {
	if got := LocalName(&platform.Info{OS: "linux"}); got != "cambridge-lsp" {
		t.Errorf("LocalName(linux) = %q", got)
	}
	if got := LocalName(&platform.Info{OS: "darwin"}); got != "cambridge-lsp" {
		t.Errorf("LocalName(darwin) = %q", got)
	}
	if got := LocalName(&platform.Info{OS: "windows"}); got != "cambridge-lsp.exe" {
		t.Errorf("LocalName(windows) = %q", got)
	}
	if got := LocalName(nil); got != "cambridge-lsp" {
		t.Errorf("LocalName(nil) = %q", got)
	}
}
