// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

//go:build darwin || freebsd || linux

// Package native opens extension modules through the platform dynamic
// linker. It is the production plugin.OpenFunc; everything above it works
// against the plugin.Module interface and never sees a raw handle.
package native

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/plugsh/plugsh/pkg/plugin"
)

// Open loads path with deferred symbol binding and resolves the plugin
// contract. A module missing any required export is released before the
// error returns; a partial contract never leaves a handle held.
func Open(path string) (plugin.Module, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", plugin.ErrModuleOpen, path, err)
	}

	m := &module{path: path, handle: handle}
	if err := m.bind(); err != nil {
		purego.Dlclose(handle)
		return nil, err
	}
	return m, nil
}

type module struct {
	path   string
	handle uintptr
	closed bool

	initFn   func() int32
	uninitFn func() int32
	hookFn   func(caller string, shellLevel int32, command string, argv unsafe.Pointer) int32
}

func (m *module) bind() error {
	for _, sym := range []struct {
		name string
		fn   any
	}{
		{plugin.SymbolInit, &m.initFn},
		{plugin.SymbolUninit, &m.uninitFn},
		{plugin.SymbolOnExecve, &m.hookFn},
	} {
		addr, err := purego.Dlsym(m.handle, sym.name)
		if err != nil {
			return fmt.Errorf("%w: %s in %s", plugin.ErrSymbolMissing, sym.name, m.path)
		}
		purego.RegisterFunc(sym.fn, addr)
	}
	return nil
}

func (m *module) Path() string { return m.path }

func (m *module) Init() int32 { return m.initFn() }

func (m *module) Uninit() int32 { return m.uninitFn() }

func (m *module) OnExecve(caller string, shellLevel int, command string, argv []string) int32 {
	argvC := cStringArray(argv)
	rc := m.hookFn(caller, int32(shellLevel), command, unsafe.Pointer(&argvC[0]))
	runtime.KeepAlive(argvC)
	return rc
}

func (m *module) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	return purego.Dlclose(m.handle)
}

// cStringArray builds a NULL-terminated char** image of argv. The returned
// slice must stay reachable for the duration of the foreign call.
func cStringArray(values []string) []*byte {
	arr := make([]*byte, len(values)+1)
	for i, v := range values {
		b := make([]byte, len(v)+1)
		copy(b, v)
		arr[i] = &b[0]
	}
	return arr
}
