package platform

import (
	"fmt"
	"strings"
)

// familyMap normalizes distribution family strings reported by gopsutil
// to their canonical family names.
var familyMap = map[string]string{
	"debian": FamilyDebian,
	"ubuntu": FamilyDebian,
	"rhel":   FamilyRHEL,
	"centos": FamilyRHEL,
	"rocky":  FamilyRHEL,
	"fedora": FamilyRHEL,
	"arch":   FamilyArch,
	"alpine": FamilyAlpine,
}

// normalizeArch converts GOARCH values to normalized architecture names.
// Only amd64 and arm64 have normalized names; other architectures return
// an error and keep their raw name.
func normalizeArch(arch string) (string, error) {
	switch arch {
	case "amd64", "x86_64":
		return "amd64", nil
	case "arm64", "aarch64":
		return "arm64", nil
	default:
		return "", fmt.Errorf("no normalized name for architecture: %s", arch)
	}
}

// normalizePlatform lowercases and trims platform IDs for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// mapFamily maps a distribution family string to a canonical family name.
func mapFamily(family string) string {
	if canonical, ok := familyMap[strings.ToLower(strings.TrimSpace(family))]; ok {
		return canonical
	}
	return FamilyUnknown
}
