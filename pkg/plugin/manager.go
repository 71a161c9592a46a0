// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package plugin

import (
	"sync"

	"github.com/plugsh/plugsh/pkg/config"
	"github.com/plugsh/plugsh/pkg/logger"
)

// State is the registry's linear lifecycle.
type State int

const (
	// StateNew precedes the load phase.
	StateNew State = iota
	// StateLoaded holds from the end of LoadAll until teardown.
	StateLoaded
	// StateTornDown is terminal; the registry stays empty and inert.
	StateTornDown
)

// ModuleInfo identifies one loaded module for listings and diagnostics.
type ModuleInfo struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Manager owns the registry for its whole process lifetime and drives the
// three phases: load-all, dispatch, unload-all. The mutex serializes the
// public calls so a dispatch can never observe a registry mid-teardown.
type Manager struct {
	mu         sync.Mutex
	state      State
	registry   *Registry
	loader     *Loader
	dispatcher *Dispatcher
}

// NewManager builds a manager that opens modules through open
// (native.Open in production, a fake in tests).
func NewManager(open OpenFunc) *Manager {
	registry := NewRegistry()
	return &Manager{
		registry:   registry,
		loader:     NewLoader(open),
		dispatcher: NewDispatcher(registry),
	}
}

// LoadAll reads the plugin config at configPath and loads every module it
// names, in file order. Any number of missing or invalid modules is
// tolerated: each failure is logged and that path skipped, never aborting
// the phase. A missing config file loads zero plugins. The only error is
// calling LoadAll more than once.
func (m *Manager) LoadAll(configPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateNew {
		return ErrAlreadyLoaded
	}
	m.state = StateLoaded

	src := config.NewSource(configPath)
	err := src.Each(func(path string) bool {
		desc, err := m.loader.Load(path)
		if err != nil {
			logger.WarnCF("plugin", "skipping plugin", map[string]any{
				"plugin": path,
				"error":  err.Error(),
			})
			return true
		}
		m.registry.Append(desc)
		logger.InfoCF("plugin", "plugin loaded", map[string]any{
			"plugin": desc.Path,
			"id":     desc.ID,
		})
		return true
	})
	if err != nil {
		logger.WarnCF("plugin", "plugin config read stopped early", map[string]any{
			"config": configPath,
			"error":  err.Error(),
		})
	}

	logger.DebugCF("plugin", "load phase complete", map[string]any{
		"config": configPath,
		"loaded": m.registry.Len(),
	})
	return nil
}

// Dispatch runs the pre-exec hook chain for one pending command. The shell
// nesting level is read from the host environment at this moment, never
// cached. Returns 0 when every module (or no module) consents; otherwise
// the first vetoing module's status, verbatim.
func (m *Manager) Dispatch(caller, command string, argv []string) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateTornDown {
		logger.WarnC("plugin", "dispatch after teardown ignored")
		return 0
	}

	hostEnv, err := config.ReadHostEnv()
	if err != nil {
		logger.WarnCF("plugin", "host environment unreadable, using defaults", map[string]any{
			"error": err.Error(),
		})
	}

	return m.dispatcher.Dispatch(ExecContext{
		Caller:     caller,
		ShellLevel: hostEnv.ShellLevel,
		Command:    command,
		Argv:       argv,
	})
}

// UnloadAll tears down every module in load order: plugin_uninit first,
// then handle release, for each module regardless of earlier failures.
// The returned error is the joined teardown diagnostics; it is never fatal
// and the registry is empty afterwards either way. Idempotent.
func (m *Manager) UnloadAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateTornDown {
		return nil
	}
	m.state = StateTornDown

	err := m.registry.DrainAndRelease(func(d *Descriptor) error {
		logger.DebugCF("plugin", "plugin unloaded", map[string]any{
			"plugin": d.Path,
			"id":     d.ID,
		})
		return d.release()
	})
	if err != nil {
		logger.WarnCF("plugin", "teardown finished with diagnostics", map[string]any{
			"error": err.Error(),
		})
	}
	return err
}

// Count returns the number of loaded modules.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registry.Len()
}

// Snapshot lists the loaded modules in registration order.
func (m *Manager) Snapshot() []ModuleInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	infos := make([]ModuleInfo, 0, m.registry.Len())
	m.registry.ForEach(func(d *Descriptor) bool {
		infos = append(infos, ModuleInfo{ID: d.ID, Path: d.Path})
		return true
	})
	return infos
}
