// Package binary locates and fetches prebuilt cambridge-lsp release
// binaries.
//
// Release assets are single uncompressed executables published on GitHub
// under a version tag, one asset per supported platform:
//
//	cambridge-lsp-macos-arm64   macOS on Apple Silicon
//	cambridge-lsp-macos-intel   macOS on Intel
//	cambridge-lsp-linux         Linux, any architecture
//	cambridge-lsp.exe           Windows, any architecture
//
// The package provides URL construction from a detected platform, an
// HTTP downloader with bounded retries and atomic writes, and optional
// integrity verification. Verification is off unless a GPG keyring or a
// checksum file is configured; the published releases do not currently
// ship signatures, so the default matches what upstream actually serves.
package binary
