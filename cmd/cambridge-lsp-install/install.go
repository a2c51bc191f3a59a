package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/andrinoff/cambridge-lang/internal/binary"
	"github.com/andrinoff/cambridge-lang/internal/config"
	"github.com/andrinoff/cambridge-lang/internal/extension"
	"github.com/andrinoff/cambridge-lang/internal/platform"
)

// Environment variables recognized by the installer.
const (
	// EnvConfigPath overrides the settings file location.
	EnvConfigPath = "CAMBRIDGE_LSP_CONFIG"
	// EnvInstallDir overrides the install directory.
	EnvInstallDir = "CAMBRIDGE_LSP_INSTALL_DIR"
)

// installFlags holds parsed command-line options.
type installFlags struct {
	configPath string
	installDir string
	which      bool
}

// parseInstallFlags parses the installer's options by hand.
func parseInstallFlags(args []string) (installFlags, error) {
	var flags installFlags

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				return flags, fmt.Errorf("--config requires a path")
			}
			i++
			flags.configPath = args[i]
		case "--dir":
			if i+1 >= len(args) {
				return flags, fmt.Errorf("--dir requires a path")
			}
			i++
			flags.installDir = args[i]
		case "--which":
			flags.which = true
		default:
			return flags, fmt.Errorf("unknown option: %s", args[i])
		}
	}

	return flags, nil
}

// resolveConfigPath applies flag > environment > default precedence.
func resolveConfigPath(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return "cambridge.lua"
}

// resolveInstallDir applies flag > environment > settings precedence.
func resolveInstallDir(flagVal string, settings config.Settings) string {
	if flagVal != "" {
		return flagVal
	}
	if env := os.Getenv(EnvInstallDir); env != "" {
		return env
	}
	return settings.InstallDir
}

// detectedPlatform feeds an already-detected Info to the settings
// parser so detection happens exactly once.
type detectedPlatform struct {
	info *platform.Info
}

func (d *detectedPlatform) Detect(context.Context) (*platform.Info, error) {
	return d.info, nil
}

// statusWriter streams installation status transitions to a writer.
type statusWriter struct {
	w io.Writer
}

func (s *statusWriter) SetInstallationStatus(serverID string, status extension.InstallStatus) {
	switch status {
	case extension.StatusCheckingForUpdate:
		fmt.Fprintf(s.w, "%s: checking for existing binary...\n", serverID)
	case extension.StatusDownloading:
		fmt.Fprintf(s.w, "%s: downloading...\n", serverID)
	case extension.StatusNone:
		fmt.Fprintf(s.w, "%s: ready\n", serverID)
	}
}

// buildResolverOptions maps settings and flags onto resolver options.
func buildResolverOptions(settings config.Settings, flags installFlags, info *platform.Info, status extension.StatusReporter) extension.Options {
	opts := extension.Options{
		Platform:   info,
		InstallDir: resolveInstallDir(flags.installDir, settings),
		Status:     status,
	}

	if flags.which || settings.Strategy == config.StrategySearchPath {
		opts.Strategy = extension.StrategySearchPath
	}

	if settings.Version != "" {
		opts.Release.Version = settings.Version
	} else {
		opts.Release.Version = binary.DefaultRelease.Version
	}
	if settings.BaseURL != "" {
		opts.Release.BaseURL = settings.BaseURL
	} else {
		opts.Release.BaseURL = binary.DefaultRelease.BaseURL
	}

	if settings.Keyring != "" || settings.Checksums != "" {
		opts.Verifier = binary.NewVerifier(settings.Keyring, settings.Checksums)
	}

	return opts
}

// runInstall handles the default install/locate action.
func runInstall(args []string) error {
	return installTo(os.Stderr, args)
}

func installTo(stderr io.Writer, args []string) error {
	flags, err := parseInstallFlags(args)
	if err != nil {
		return err
	}

	// Downloads can be slow on poor links; everything else is quick.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}

	parser := config.NewParser(&detectedPlatform{info: info})
	settings, err := parser.Load(ctx, resolveConfigPath(flags.configPath))
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	opts := buildResolverOptions(settings, flags, info, &statusWriter{w: stderr})

	// Report an executable that is already in place up front, so "ready"
	// is not mistaken for a fresh download.
	if opts.Strategy == extension.StrategyDownload {
		local := filepath.Join(opts.InstallDir, binary.LocalName(info))
		if installed, err := binary.IsInstalled(local); err == nil && installed {
			fmt.Fprintf(stderr, "%s: already installed at %s\n", binary.ToolName, local)
		}
	}

	path, err := extension.NewResolver(opts).Resolve(ctx)
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
