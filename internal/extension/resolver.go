package extension

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrinoff/cambridge-lang/internal/binary"
	"github.com/andrinoff/cambridge-lang/internal/platform"
)

// ErrBinaryNotFound indicates the search-path strategy could not locate
// the tool. The error is terminal for the attempt; the user has to
// build the binary and place it on the search path.
var ErrBinaryNotFound = errors.New("binary not found")

// Strategy selects how a missing binary is obtained.
type Strategy int

const (
	// StrategyDownload fetches a prebuilt release asset for the host
	// platform. This is the default distribution policy.
	StrategyDownload Strategy = iota
	// StrategySearchPath expects a manually built binary on the host's
	// search path and never touches the network.
	StrategySearchPath
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyDownload:
		return "download"
	case StrategySearchPath:
		return "path"
	default:
		return "unknown"
	}
}

// Fetcher downloads a URL to a local path. binary.Downloader is the
// production implementation.
type Fetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
}

// Options configures a Resolver. Zero values select production
// defaults throughout.
type Options struct {
	// ServerID identifies the language server in status reports.
	// Defaults to the tool name.
	ServerID string
	// Platform is the detected host platform. Required for the
	// download strategy.
	Platform *platform.Info
	// Strategy picks the distribution policy.
	Strategy Strategy
	// InstallDir is where downloaded binaries land. Defaults to the
	// current directory, mirroring an extension's support directory.
	InstallDir string
	// Release overrides the baked-in release. Zero value uses
	// binary.DefaultRelease.
	Release binary.Release
	// Status receives installation status transitions. Nil discards.
	Status StatusReporter
	// Worktree locates executables by name. Nil uses the process
	// environment's search path.
	Worktree Worktree
	// Fetcher downloads release assets. Nil uses binary.NewDownloader.
	Fetcher Fetcher
	// Verifier checks downloaded assets. Nil or unconfigured skips
	// verification, which matches the published releases.
	Verifier *binary.Verifier
}

// Resolver produces a usable executable path for the language server.
type Resolver struct {
	serverID   string
	strategy   Strategy
	installDir string
	release    binary.Release
	platform   *platform.Info
	status     StatusReporter
	worktree   Worktree
	fetcher    Fetcher
	verifier   *binary.Verifier

	// cachedPath lives for the resolver instance. The host execution
	// model guarantees at most one in-flight Resolve per instance, so
	// the field is not synchronized.
	cachedPath string
}

// NewResolver creates a resolver, filling in production defaults for
// any port left nil.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		serverID:   opts.ServerID,
		strategy:   opts.Strategy,
		installDir: opts.InstallDir,
		release:    opts.Release,
		platform:   opts.Platform,
		status:     opts.Status,
		worktree:   opts.Worktree,
		fetcher:    opts.Fetcher,
		verifier:   opts.Verifier,
	}

	if r.serverID == "" {
		r.serverID = binary.ToolName
	}
	if r.installDir == "" {
		r.installDir = "."
	}
	if r.release == (binary.Release{}) {
		r.release = binary.DefaultRelease
	}
	if r.status == nil {
		r.status = nopStatusReporter{}
	}
	if r.worktree == nil {
		r.worktree = execWorktree{}
	}
	if r.fetcher == nil {
		r.fetcher = binary.NewDownloader()
	}

	return r
}

// Resolve returns a usable path to the language-server binary.
//
// A cached path is returned immediately when it still names a regular
// file on disk; a stale entry falls through to full resolution. Every
// failure is terminal for this attempt and leaves the cache untouched;
// a later call starts fresh.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	if r.cachedPath != "" && binary.IsRegularFile(r.cachedPath) {
		return r.cachedPath, nil
	}

	switch r.strategy {
	case StrategySearchPath:
		return r.resolveSearchPath()
	default:
		return r.resolveDownload(ctx)
	}
}

// resolveSearchPath locates a manually built binary on the host's
// search path. No network, no status reporting.
func (r *Resolver) resolveSearchPath() (string, error) {
	path, ok := r.worktree.Which(binary.ToolName)
	if !ok {
		return "", fmt.Errorf(
			"%w: %s is not on your search path; build it from source and place it on your PATH",
			ErrBinaryNotFound, binary.ToolName,
		)
	}

	r.cachedPath = path
	return path, nil
}

// resolveDownload returns the locally installed binary, fetching the
// platform's release asset first when it is absent.
func (r *Resolver) resolveDownload(ctx context.Context) (string, error) {
	r.status.SetInstallationStatus(r.serverID, StatusCheckingForUpdate)

	localPath := filepath.Join(r.installDir, binary.LocalName(r.platform))

	if !binary.IsRegularFile(localPath) {
		r.status.SetInstallationStatus(r.serverID, StatusDownloading)

		// Unsupported platforms fail before any network access.
		url, err := r.release.DownloadURL(r.platform)
		if err != nil {
			return "", err
		}

		if err := r.fetcher.Fetch(ctx, url, localPath); err != nil {
			return "", fmt.Errorf("failed to download language server: %w", err)
		}

		if err := r.verifyDownload(ctx, url, localPath); err != nil {
			os.Remove(localPath)
			return "", err
		}

		// Chmod failures surface unchanged.
		if err := binary.SetExecutable(localPath); err != nil {
			return "", err
		}
	}

	r.cachedPath = localPath
	r.status.SetInstallationStatus(r.serverID, StatusNone)
	return localPath, nil
}

// verifyDownload checks a fetched asset when verification is
// configured, fetching the detached signature first if GPG is in use.
func (r *Resolver) verifyDownload(ctx context.Context, url, localPath string) error {
	if r.verifier == nil || !r.verifier.Enabled() {
		return nil
	}

	signaturePath := ""
	if r.verifier.NeedsSignature() {
		signaturePath = localPath + ".sig"
		if err := r.fetcher.Fetch(ctx, url+".sig", signaturePath); err != nil {
			return fmt.Errorf("failed to download signature: %w", err)
		}
		defer os.Remove(signaturePath)
	}

	result, err := r.verifier.VerifyFile(localPath, signaturePath)
	if err != nil {
		return fmt.Errorf("verify downloaded binary: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("verification failed: %v", result.Error)
	}
	return nil
}

// CachedPath returns the currently cached binary path, empty when no
// resolution has succeeded yet.
func (r *Resolver) CachedPath() string {
	return r.cachedPath
}
