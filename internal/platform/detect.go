package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using the Go runtime and gopsutil.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect returns platform information for the current host.
//
// On Linux, distro detection failures are not fatal: the returned Info
// carries OS and architecture with empty distro fields. Context
// cancellation during distro detection is a hard failure.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:      runtime.GOOS,
		ArchRaw: runtime.GOARCH,
	}

	// Architectures without a normalized name keep Arch empty rather
	// than failing detection: Linux and Windows release assets match
	// any architecture, so asset selection decides what is supported.
	if arch, err := normalizeArch(runtime.GOARCH); err == nil {
		info.Arch = arch
	}

	if runtime.GOOS == "linux" {
		plat, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Distro detection failed; OS/arch alone is enough for
			// release-asset selection.
			return info, nil
		}

		plat = normalizePlatform(plat)
		if plat != "" {
			info.Platform = plat
			info.Family = mapFamily(family)
			info.Version = normalizePlatform(version)
		}
	}

	return info, nil
}
