// Package registry maps command names to constructors. Commands are
// registered explicitly at startup; project registrations replace framework
// registrations of the same name.
package registry

import (
	"sort"

	"github.com/spf13/cobra"
)

// Factory constructs a cobra command.
type Factory func() *cobra.Command

// Registry is an ordered name-to-constructor map.
type Registry struct {
	order   []string
	entries map[string]Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Factory),
	}
}

// Register adds a framework command. Registering an existing name replaces
// the previous constructor and keeps the original position.
func (r *Registry) Register(name string, factory Factory) {
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = factory
}

// Override applies project registrations: same-name entries replace
// framework ones, new names are appended. This is the only override rule;
// there is no implicit scan order.
func (r *Registry) Override(overrides map[string]Factory) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r.Register(name, overrides[name])
	}
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the constructor for a name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.entries[name]
	return f, ok
}

// Commands builds every registered command in registration order.
func (r *Registry) Commands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.entries[name]())
	}
	return cmds
}
