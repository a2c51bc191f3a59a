package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "--version":
			fmt.Printf("cambridge-lsp-install %s\n", Version)
			return
		case "--help", "-h":
			printHelp()
			return
		}
	}

	if err := runInstall(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("cambridge-lsp-install - fetch or locate the cambridge-lsp language server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cambridge-lsp-install [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <path>   Lua settings file (default: cambridge.lua)")
	fmt.Println("  --dir <path>      Install directory (overrides settings)")
	fmt.Println("  --which           Locate the binary on the search path instead of downloading")
	fmt.Println("  --version         Show version information")
	fmt.Println("  --help, -h        Show this help")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Printf("  %s   Settings file path\n", EnvConfigPath)
	fmt.Printf("  %s   Install directory\n", EnvInstallDir)
	fmt.Println()
	fmt.Println("On success the resolved binary path is printed to stdout.")
}
