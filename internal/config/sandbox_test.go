package config

import (
	"testing"
)

func TestSandboxRemovesDangerousGlobals(t *testing.T) {
	L := newSandboxedVM()
	defer L.Close()

	tests := []struct {
		name string
		code string
	}{
		{"os removed", `return os.getenv("HOME")`},
		{"io removed", `return io.open("/etc/passwd")`},
		{"require removed", `return require("socket")`},
		{"dofile removed", `return dofile("/tmp/x.lua")`},
		{"loadfile removed", `return loadfile("/tmp/x.lua")`},
		{"load removed", `return load("return 1")`},
		{"loadstring removed", `return loadstring("return 1")`},
		{"debug removed", `return debug.getinfo(1)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := L.DoString(tt.code); err == nil {
				t.Errorf("expected %q to fail in the sandbox", tt.code)
			}
		})
	}
}

func TestSandboxKeepsSafeLibraries(t *testing.T) {
	L := newSandboxedVM()
	defer L.Close()

	if err := L.DoString(`
		assert(string.upper("lsp") == "LSP")
		assert(math.max(1, 2) == 2)
		local t = {}
		table.insert(t, "x")
		assert(#t == 1)
		assert(tostring(42) == "42")
	`); err != nil {
		t.Fatalf("safe libraries unavailable in sandbox: %v", err)
	}
}
