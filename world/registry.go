package world

import (
	"sort"
	"strings"
	"sync"
)

// Resolver maps saved world names to loaded worlds.
type Resolver interface {
	// Resolve returns the canonical name of a loaded world.
	Resolve(name string) (string, bool)
	// Default is the world substituted for names that do not resolve.
	Default() string
}

// Registry is the set of loaded worlds. Lookups ignore case, the way world
// folders are matched on the server.
type Registry struct {
	mu       sync.RWMutex
	byKey    map[string]string
	fallback string
}

// NewRegistry creates a registry holding def and names. def is registered
// too, and becomes the fallback for unknown names.
func NewRegistry(def string, names ...string) *Registry {
	r := &Registry{byKey: make(map[string]string), fallback: def}
	if def != "" {
		r.Add(def)
	}
	for _, n := range names {
		r.Add(n)
	}
	return r
}

// Add registers a loaded world.
func (r *Registry) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byKey[strings.ToLower(name)] = name
	if r.fallback == "" {
		r.fallback = name
	}
}

// Remove unregisters a world. The default world cannot be removed.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if canonical, ok := r.byKey[key]; ok && canonical != r.fallback {
		delete(r.byKey, key)
	}
}

// Resolve implements Resolver.
func (r *Registry) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.byKey[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// Default implements Resolver.
func (r *Registry) Default() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Names returns the registered worlds sorted by name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byKey))
	for _, n := range r.byKey {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
