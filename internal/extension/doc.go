// Package extension resolves a usable cambridge-lsp executable path for
// an editor host and reports coarse installation status while doing so.
//
// The resolver is the whole product: an editor embedding layer calls
// Resolve (or LanguageServerCommand) once per need and receives either a
// path it can spawn or a terminal error it should surface to the user.
// Resolution tries, in order:
//
//  1. an in-memory cached path, trusted only after an on-disk check
//  2. depending on the configured strategy, either a search-path lookup
//     (manual-build distribution) or a platform-specific download of a
//     prebuilt release asset (prebuilt distribution)
//
// The two strategies encode different distribution policies and are
// mutually exclusive per deployment; the Lua settings file picks one.
//
// Host effects (status reporting, search-path lookup, file fetching) are
// consumed through small interfaces so the package has no dependence on
// any specific editor. All defaults are production implementations.
//
// Resolution is synchronous and blocking. The host invokes at most one
// Resolve per resolver instance at a time, so the single cached-path
// field is not synchronized.
package extension
