// Plugsh - pluggable pre-exec hooks for interactive shells
// License: MIT
//
// Copyright (c) 2026 Plugsh contributors

package plugin

import "errors"

// Registry is the ordered, process-wide sequence of loaded modules.
// Insertion order is config-file order (minus skipped modules) and is also
// dispatch order and teardown order. Append-only during the load phase,
// read-only during dispatch, drained exactly once at teardown. The registry
// itself does no locking; the Manager serializes access.
type Registry struct {
	entries []*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Append adds d at the tail. Duplicate paths are kept as independent
// entries; loading the same module twice is two registrations.
func (r *Registry) Append(d *Descriptor) {
	r.entries = append(r.entries, d)
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ForEach visits every descriptor in registration order. visit returning
// false stops the traversal.
func (r *Registry) ForEach(visit func(*Descriptor) bool) {
	for _, d := range r.entries {
		if !visit(d) {
			return
		}
	}
}

// DrainAndRelease tears down every descriptor in registration order and
// empties the registry. One module's teardown failure never prevents the
// rest from being torn down; failures come back joined, as diagnostics.
// After this call the registry stays empty for the rest of the process.
func (r *Registry) DrainAndRelease(teardown func(*Descriptor) error) error {
	var errs []error
	for _, d := range r.entries {
		if err := teardown(d); err != nil {
			errs = append(errs, err)
		}
	}
	r.entries = nil
	return errors.Join(errs...)
}
