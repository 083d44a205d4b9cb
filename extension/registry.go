// registry.go implements the extension registration system.
//
// Extensions self-register from init(), before main() runs. Registration
// order is preserved so commands and MCP tools appear in the same order on
// every run.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string // registration order
)

// Register adds an extension to the registry. Called from init() functions.
//
// A duplicate name panics, following database/sql.Register: registration
// happens before main() so a clash is a programmer error, not a runtime
// condition to handle.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Get returns a specific extension by name, or nil if not found.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered extensions.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}

// StandaloneCommands returns the set of top-level command names that every
// registered Standalone extension asks to run without Init.
func StandaloneCommands() map[string]bool {
	cmds := make(map[string]bool)
	for _, ext := range All() {
		if s, ok := ext.(Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}
