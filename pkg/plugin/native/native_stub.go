// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

//go:build !(darwin || freebsd || linux)

package native

import (
	"fmt"

	"github.com/plugsh/plugsh/pkg/plugin"
)

// Open always fails on platforms without dlopen. The host still runs; it
// just loads zero plugins.
func Open(path string) (plugin.Module, error) {
	return nil, fmt.Errorf("%w: %s: dynamic loading unsupported on this platform", plugin.ErrModuleOpen, path)
}
