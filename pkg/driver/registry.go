package driver

import (
	"io"
	"log/slog"
	"sort"
	"sync"
)

// Registry maps dialect keys to driver instances. It is constructed
// explicitly at startup and passed by reference to the query engine;
// there is no ambient package-level registry.
//
// Lifecycle: populated once at startup, read-only thereafter. The RWMutex
// makes that guarantee explicit rather than assumed.
type Registry struct {
	mu      sync.RWMutex
	logger  *slog.Logger
	drivers map[Key]Driver
}

// NewRegistry creates an empty registry. If logger is nil, a discard
// logger is used.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		logger:  logger,
		drivers: make(map[Key]Driver),
	}
}

// Register stores d under its Key. Re-registration overwrites, never
// merges.
func (r *Registry) Register(d Driver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.drivers[d.Key()]; exists {
		r.logger.Debug("overwriting dialect driver", slog.String("key", string(d.Key())))
	}
	r.drivers[d.Key()] = d
	r.logger.Debug("registered dialect driver",
		slog.String("key", string(d.Key())),
		slog.String("name", d.Name()))
}

// Get returns the driver registered under k, or *UnknownDialectError.
func (r *Registry) Get(k Key) (Driver, error) {
	r.mu.RLock()
	d, ok := r.drivers[k]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownDialectError{Key: k, Available: r.Keys()}
	}
	return d, nil
}

// Has reports whether a driver is registered under k.
func (r *Registry) Has(k Key) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.drivers[k]
	return ok
}

// Keys returns all registered dialect keys (sorted).
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]Key, 0, len(r.drivers))
	for k := range r.drivers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
