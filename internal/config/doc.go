// Package config loads the optional cambridge.lua settings file that
// picks a deployment policy for the language-server resolver.
//
// Settings are declarative Lua evaluated in a sandboxed VM: the os, io,
// require and debug facilities are removed, so a settings file can
// compute values but cannot touch the system. A read-only "platform"
// table is injected before user code runs, letting settings branch per
// host:
//
//	cambridge = {
//	    lsp = {
//	        strategy    = platform.is_linux and "path" or "download",
//	        version     = "0.1.0",
//	        install_dir = "~/.cambridge/bin",
//	    },
//	}
//
// Every field is optional; a missing file or a missing field falls back
// to defaults that match the prebuilt-release distribution policy.
package config
