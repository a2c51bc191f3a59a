// Package platform detects the host operating system and architecture
// for release-asset selection, and exposes the result to Lua settings
// files as a read-only table.
//
// OS and architecture come from the Go runtime. On Linux, gopsutil adds
// distribution details (ID, family, version) with graceful fallback when
// detection fails, so settings can branch on e.g. Alpine without the
// basic OS/arch information ever being unavailable.
package platform

import "context"

// Linux distribution family constants.
const (
	FamilyDebian  = "debian" // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"   // RHEL, CentOS, Rocky, Alma, Fedora
	FamilyArch    = "arch"   // Arch Linux, Manjaro
	FamilyAlpine  = "alpine" // Alpine Linux
	FamilyUnknown = "unknown"
)

// Info contains detected platform information.
type Info struct {
	OS       string // "linux", "darwin", "windows"
	Arch     string // normalized: "amd64", "arm64"; empty when no normalized name exists
	ArchRaw  string // original GOARCH value
	Platform string // distro ID (Linux only, e.g. "ubuntu")
	Family   string // canonical family (Linux only, e.g. "debian")
	Version  string // distro version (Linux only, e.g. "22.04")
}

// Distro contains Linux distribution information.
type Distro struct {
	ID      string
	Family  string
	Version string
}

// GetDistro returns distro information on Linux, nil elsewhere or when
// distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != "linux" || i.Platform == "" {
		return nil
	}
	return &Distro{
		ID:      i.Platform,
		Family:  i.Family,
		Version: i.Version,
	}
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool { return i.OS == "linux" }

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool { return i.OS == "darwin" }

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool { return i.OS == "windows" }

// IsAMD64 returns true if the architecture is amd64.
func (i *Info) IsAMD64() bool { return i.Arch == "amd64" }

// IsARM64 returns true if the architecture is arm64.
func (i *Info) IsARM64() bool { return i.Arch == "arm64" }

// IsAppleSilicon returns true on macOS arm64.
func (i *Info) IsAppleSilicon() bool { return i.OS == "darwin" && i.Arch == "arm64" }

// IsDebianFamily returns true if the Linux distribution is Debian-based.
func (i *Info) IsDebianFamily() bool { return i.OS == "linux" && i.Family == FamilyDebian }

// IsRHELFamily returns true if the Linux distribution is RHEL-based.
func (i *Info) IsRHELFamily() bool { return i.OS == "linux" && i.Family == FamilyRHEL }

// IsArchFamily returns true if the Linux distribution is Arch-based.
func (i *Info) IsArchFamily() bool { return i.OS == "linux" && i.Family == FamilyArch }

// IsAlpine returns true if the Linux distribution is Alpine.
func (i *Info) IsAlpine() bool { return i.OS == "linux" && i.Family == FamilyAlpine }

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
