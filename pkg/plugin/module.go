// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package plugin

// Exports every extension module must carry, resolved by fixed name.
const (
	SymbolInit     = "plugin_init"
	SymbolUninit   = "plugin_uninit"
	SymbolOnExecve = "on_shell_execve"
)

// Module is one opened extension module with its contract symbols already
// bound. The callables are valid only until Close releases the handle.
type Module interface {
	// Path is the filesystem path the module was opened from.
	Path() string

	// Init runs the module's plugin_init export.
	Init() int32

	// Uninit runs the module's plugin_uninit export.
	Uninit() int32

	// OnExecve runs the module's on_shell_execve export. A zero return
	// means "no objection"; anything else vetoes the pending command.
	OnExecve(caller string, shellLevel int, command string, argv []string) int32

	// Close releases the underlying handle. The bound callables must not
	// be used afterwards.
	Close() error
}

// OpenFunc opens path as a dynamically linked module and binds the three
// contract symbols. Implementations report ErrModuleOpen when the module
// cannot be opened and ErrSymbolMissing (with the handle already released)
// when any export is absent.
type OpenFunc func(path string) (Module, error)
