// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package plugin

import (
	"github.com/plugsh/plugsh/pkg/logger"
)

// Loader turns module paths into registry descriptors. A descriptor exists
// only for modules that opened, carried all three contract exports, and had
// plugin_init run once.
type Loader struct {
	open OpenFunc
}

func NewLoader(open OpenFunc) *Loader {
	return &Loader{open: open}
}

// Load opens and validates the module at path. The open step owns contract
// validation: a module missing any export comes back as ErrSymbolMissing
// with its handle already released. plugin_init runs exactly once, before
// the descriptor can reach the registry; its return value is recorded but
// not interpreted.
func (l *Loader) Load(path string) (*Descriptor, error) {
	mod, err := l.open(path)
	if err != nil {
		return nil, err
	}

	if rc := mod.Init(); rc != 0 {
		logger.DebugCF("plugin", "plugin_init returned non-zero", map[string]any{
			"plugin": path,
			"status": rc,
		})
	}

	return newDescriptor(mod), nil
}
