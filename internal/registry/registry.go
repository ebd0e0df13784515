package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/winbridge/internal/ctxlog"
)

// Module is the interface a loadable module implements to be registered.
type Module interface {
	// Name identifies the module within the host.
	Name() string

	// Exports returns the module's declared exports: prototype values keyed
	// by qualified export name (conventionally the value's package path and
	// type name). Implementations may panic; callers go through SafeExports.
	Exports() map[string]any
}

// Registry holds all modules registered for a single host instance.
type Registry struct {
	mu      sync.RWMutex
	modules []Module
	byName  map[string]Module
	exports map[string]any
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		byName:  make(map[string]Module),
		exports: make(map[string]any),
	}
}

// Register adds a module and indexes its declared exports. Registering two
// modules under the same name is a programmer error and panics. An export
// name already taken by an earlier module is kept; first registration wins.
func (r *Registry) Register(ctx context.Context, m Module) {
	logger := ctxlog.FromContext(ctx)
	name := m.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("module with name '%s' already registered", name))
	}
	r.byName[name] = m
	r.modules = append(r.modules, m)

	exports := SafeExports(ctx, m)
	for key, val := range exports {
		if _, taken := r.exports[key]; taken {
			logger.Warn("Export name already registered by an earlier module; keeping first.", "module", name, "export", key)
			continue
		}
		r.exports[key] = val
	}
	logger.Debug("Registered module.", "name", name, "exports", len(exports))
}

// Export returns the value indexed under a declared export name.
func (r *Registry) Export(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.exports[name]
	return v, ok
}

// Module returns a registered module by name.
func (r *Registry) Module(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]
	return m, ok
}

// Modules returns a snapshot of the registered modules in registration
// order. Scan order beyond that is whatever the host registered; nothing in
// the capability layer may depend on it.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// SafeExports enumerates a module's exports, tolerating a module that panics
// during enumeration. A panicking module contributes no exports.
func SafeExports(ctx context.Context, m Module) (exports map[string]any) {
	defer func() {
		if rec := recover(); rec != nil {
			ctxlog.FromContext(ctx).Warn("Module panicked during export enumeration; skipping it.", "panic", rec)
			exports = nil
		}
	}()
	return m.Exports()
}
