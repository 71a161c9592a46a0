// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package plugin

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/plugsh/plugsh/pkg/logger"
)

// Descriptor is one validated, initialized module held by the registry.
// The registry never de-duplicates paths, so ID is what tells two loads of
// the same module apart in diagnostics. The descriptor exclusively owns the
// module handle; release is the only way it is given back.
type Descriptor struct {
	ID   string
	Path string

	module Module
}

func newDescriptor(mod Module) *Descriptor {
	return &Descriptor{
		ID:     uuid.NewString(),
		Path:   mod.Path(),
		module: mod,
	}
}

// OnExecve forwards one hook invocation to the module.
func (d *Descriptor) OnExecve(caller string, shellLevel int, command string, argv []string) int32 {
	return d.module.OnExecve(caller, shellLevel, command, argv)
}

// release runs plugin_uninit and then closes the handle. Both steps always
// run; failures are reported together and never abort the other step.
func (d *Descriptor) release() error {
	var errs []error

	rc, panicked := d.uninit()
	switch {
	case panicked:
		errs = append(errs, fmt.Errorf("plugin %s (%s): panic in %s", d.Path, d.ID, SymbolUninit))
	case rc != 0:
		errs = append(errs, fmt.Errorf("plugin %s (%s): %s returned %d", d.Path, d.ID, SymbolUninit, rc))
	}

	if err := d.module.Close(); err != nil {
		errs = append(errs, fmt.Errorf("plugin %s (%s): release: %w", d.Path, d.ID, err))
	}

	return errors.Join(errs...)
}

func (d *Descriptor) uninit() (rc int32, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			logger.ErrorCF("plugin", "panic in plugin_uninit", map[string]any{
				"plugin": d.Path,
				"id":     d.ID,
				"panic":  fmt.Sprintf("%v", r),
			})
		}
	}()
	return d.module.Uninit(), false
}
