// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package plugin

import "errors"

var (
	// ErrModuleOpen marks a module that could not be opened by the
	// dynamic linker. Recoverable: the load phase skips the path.
	ErrModuleOpen = errors.New("module open failed")

	// ErrSymbolMissing marks a module missing one of the required
	// exports. Recoverable: the module is released and skipped.
	ErrSymbolMissing = errors.New("required symbol missing")

	// ErrAlreadyLoaded is returned when LoadAll is called more than once.
	ErrAlreadyLoaded = errors.New("load phase already ran")
)
