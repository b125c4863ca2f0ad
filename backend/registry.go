package backend

import "sync"

// Factory creates and initializes a backend instance bound to a window.
type Factory func(win Window, opts Options) (Backend, error)

// factory registry state.
var (
	registryMu sync.RWMutex
	factories  = make(map[Kind]Factory)
	// Priority order for Default selection (first constructible wins).
	// WGPU > Software (software is the always-available fallback).
	kindPriority = []Kind{KindWGPU, KindSoftware}
)

// Register registers a backend factory for the given kind.
// This is typically called from init() functions in backend packages.
// If a factory for the same kind is already registered, it is replaced.
func Register(kind Kind, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[kind] = factory
}

// Unregister removes a backend kind from the registry.
// This is useful for testing.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// Available returns the registered backend kinds.
func Available() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	return kinds
}

// IsRegistered checks if a backend of the given kind is registered.
func IsRegistered(kind Kind) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[kind]
	return ok
}

// lookup returns the factory for a kind, or nil.
func lookup(kind Kind) Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return factories[kind]
}

// priority returns the Default selection order restricted to
// registered kinds, followed by any remaining registered kinds.
func priority() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[Kind]bool, len(factories))
	order := make([]Kind, 0, len(factories))
	for _, kind := range kindPriority {
		if _, ok := factories[kind]; ok {
			order = append(order, kind)
			seen[kind] = true
		}
	}
	for kind := range factories {
		if !seen[kind] {
			order = append(order, kind)
		}
	}
	return order
}
