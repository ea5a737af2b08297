package collections

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Macro is a named operation added to collections through a [Registry].
// It receives the collection it is invoked on.
type Macro func(c *Collection, args ...any) any

// Registry holds the macros available to the collections bound to it.
// It is safe for concurrent use. A nil *Registry has no macros.
//
//	reg := collections.NewRegistry()
//	reg.Register("evens", func(c *collections.Collection, _ ...any) any {
//	    return c.Filter(func(v any, _ collections.Key) bool { return v.(int)%2 == 0 })
//	})
//
//	c := reg.Make([]any{1, 2, 3, 4})
//	res, _ := c.Macro("evens") // → {1: 2, 3: 4}
type Registry struct {
	mu     sync.RWMutex
	macros map[string]Macro
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger makes the registry log replaced macros at debug level.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{macros: make(map[string]Macro)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds fn under name, replacing any macro of that name.
func (r *Registry) Register(name string, fn Macro) *Registry {
	r.mu.Lock()
	_, replaced := r.macros[name]
	r.macros[name] = fn
	r.mu.Unlock()

	if replaced && r.logger != nil {
		r.logger.Debug("macro replaced", "name", name)
	}
	return r
}

// Has reports whether a macro is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Lookup returns the macro registered under name.
func (r *Registry) Lookup(name string) (Macro, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.macros[name]
	return fn, ok
}

// Names returns the registered macro names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.macros))
	for name := range r.macros {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Call runs the macro name on c. It returns ErrMacroNotFound when no such
// macro is registered.
func (r *Registry) Call(name string, c *Collection, args ...any) (any, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(c, args...), nil
}

// Make creates a collection bound to r.
func (r *Registry) Make(items any, opts ...Option) *Collection {
	return Make(items, append([]Option{WithRegistry(r)}, opts...)...)
}

// Macro runs the macro name from the registry bound to c.
func (c *Collection) Macro(name string, args ...any) (any, error) {
	return c.registry.Call(name, c, args...)
}
