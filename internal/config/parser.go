package config

import (
	"context"
	"fmt"
	"os"

	"github.com/andrinoff/cambridge-lang/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser evaluates Lua settings files with platform detection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a settings parser. The detector supplies the
// read-only platform table; nil skips injection (tests only).
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseError is a settings parsing error with a user-facing message.
type ParseError struct {
	Message string // friendly message
	Detail  string // raw Lua error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// Load reads settings from path. A missing file yields defaults; a
// present file must parse and validate.
func (p *Parser) Load(ctx context.Context, path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return p.ParseString(ctx, string(data))
}

// ParseString parses settings from Lua source.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (Settings, error) {
	L := newSandboxedVM()
	defer L.Close()

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return Settings{}, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return Settings{}, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return Settings{}, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	settings, err := extractSettings(L)
	if err != nil {
		return Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// extractSettings pulls the lsp sub-table out of the global cambridge
// table, starting from defaults so omitted fields keep their values.
func extractSettings(L *lua.LState) (Settings, error) {
	settings := DefaultSettings()

	root := L.GetGlobal("cambridge")
	if root.Type() != lua.LTTable {
		return Settings{}, &ParseError{
			Message: "missing or invalid 'cambridge' table",
			Detail:  fmt.Sprintf("expected table, got %s", root.Type()),
		}
	}

	lspVal := root.(*lua.LTable).RawGetString("lsp")
	if lspVal.Type() == lua.LTNil {
		// No lsp section; everything stays at defaults.
		return settings, nil
	}
	if lspVal.Type() != lua.LTTable {
		return Settings{}, &ParseError{
			Message: "invalid 'cambridge.lsp' section",
			Detail:  fmt.Sprintf("expected table, got %s", lspVal.Type()),
		}
	}
	lsp := lspVal.(*lua.LTable)

	fields := []struct {
		key  string
		dest *string
	}{
		{"strategy", &settings.Strategy},
		{"version", &settings.Version},
		{"base_url", &settings.BaseURL},
		{"install_dir", &settings.InstallDir},
		{"keyring", &settings.Keyring},
		{"checksums", &settings.Checksums},
	}

	for _, f := range fields {
		val := lsp.RawGetString(f.key)
		switch val.Type() {
		case lua.LTNil:
			// keep default
		case lua.LTString:
			*f.dest = string(val.(lua.LString))
		default:
			return Settings{}, &ParseError{
				Message: fmt.Sprintf("invalid 'cambridge.lsp.%s'", f.key),
				Detail:  fmt.Sprintf("expected string, got %s", val.Type()),
			}
		}
	}

	return settings, nil
}
