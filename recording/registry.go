package recording

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for names nobody registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory returns a fresh backend for one playback.
type BackendFactory func() Backend

// factories maps output format names ("png", "svg") to backend factories.
var factories = struct {
	sync.RWMutex
	byName map[string]BackendFactory
}{byName: make(map[string]BackendFactory)}

// Register makes a backend available under name. Backend packages call it
// from init, so a blank import is enough to enable an output format:
//
//	import _ "github.com/gogpu/ggseries/recording/backends/svg"
//
// Registering a nil factory or a name twice panics.
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("recording: nil factory for backend " + name)
	}
	factories.Lock()
	defer factories.Unlock()
	if _, taken := factories.byName[name]; taken {
		panic("recording: backend " + name + " registered twice")
	}
	factories.byName[name] = factory
}

// Unregister removes name. Tests use it to drop temporary backends.
func Unregister(name string) {
	factories.Lock()
	delete(factories.byName, name)
	factories.Unlock()
}

// NewBackend returns a new backend for the output format name. The error
// wraps ErrUnknownBackend and usually means the backend package was not
// imported.
func NewBackend(name string) (Backend, error) {
	factories.RLock()
	factory, ok := factories.byName[name]
	factories.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Backends returns the registered format names in sorted order.
func Backends() []string {
	factories.RLock()
	names := make([]string, 0, len(factories.byName))
	for name := range factories.byName {
		names = append(names, name)
	}
	factories.RUnlock()
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	factories.RLock()
	defer factories.RUnlock()
	_, ok := factories.byName[name]
	return ok
}
