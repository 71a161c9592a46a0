// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package plugin

import (
	"fmt"

	"github.com/plugsh/plugsh/pkg/logger"
)

// ExecContext carries one pre-exec hook invocation. It lives for exactly
// one dispatch and is owned by the caller.
type ExecContext struct {
	Caller     string
	ShellLevel int
	Command    string
	Argv       []string
}

// Dispatcher runs the pre-exec hook chain over the registry. The protocol
// is a veto, not an aggregation: the first non-zero status stops the
// traversal and is returned verbatim; remaining modules are not consulted.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch invokes on_shell_execve on every registered module in order.
// An empty registry is vacuous success. A module that panics is logged and
// treated as "no objection" so one broken plugin cannot block every command.
func (d *Dispatcher) Dispatch(ctx ExecContext) int32 {
	var status int32
	d.registry.ForEach(func(desc *Descriptor) bool {
		rc := invokeHook(desc, ctx)
		if rc != 0 {
			logger.InfoCF("plugin", "command vetoed by plugin", map[string]any{
				"plugin":  desc.Path,
				"id":      desc.ID,
				"command": ctx.Command,
				"caller":  ctx.Caller,
				"status":  rc,
			})
			status = rc
			return false
		}
		return true
	})
	return status
}

func invokeHook(desc *Descriptor, ctx ExecContext) (rc int32) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCF("plugin", "panic in on_shell_execve", map[string]any{
				"plugin": desc.Path,
				"id":     desc.ID,
				"panic":  fmt.Sprintf("%v", r),
			})
			rc = 0
		}
	}()
	return desc.OnExecve(ctx.Caller, ctx.ShellLevel, ctx.Command, ctx.Argv)
}
