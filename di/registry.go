package di

import "sync"

// Registry is a keyed store of registrations.
//
// Keys are strings: either the canonical type name captured by the Strategy
// (Register) or an explicit caller-supplied key (RegisterAs). Multiple
// entries may coexist under different keys, including for the same type.
//
// The zero Registry is not usable; construct with New. All methods are safe
// for concurrent use; for LazyCached entries the producer still runs at
// most once even when several goroutines race the first resolve.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: map[string]*entry{}}
}

// Register stores s under its captured type name and returns the registry
// for chaining.
//
// An existing entry at that key is overwritten, and any value memoized by a
// previous LazyCached entry is discarded with it. Resolutions after
// Register returns observe the new entry, including fields that have not
// cached a value yet.
func (r *Registry) Register(s Strategy) *Registry {
	return r.RegisterAs(s.typeName, s)
}

// RegisterAs stores s under an explicit key and returns the registry for
// chaining.
//
// Overwrite semantics match Register.
func (r *Registry) RegisterAs(key string, s Strategy) *Registry {
	r.mu.Lock()
	r.entries[key] = &entry{strategy: s}
	r.mu.Unlock()
	return r
}

// Has reports whether an entry exists for the key (regardless of type).
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	_, ok := r.entries[key]
	r.mu.RUnlock()
	return ok
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.entries)
	r.mu.RUnlock()
	return n
}

// lookup returns the entry for key, or a MissingRegistrationError.
func (r *Registry) lookup(key string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, MissingRegistrationError{Key: key}
	}
	return e, nil
}

// Resolve returns the value registered under T's canonical type name.
//
// The strategy decides what "the value" is: the eager value itself, the
// memoized (first) producer result, or a fresh producer result. A missing
// key returns MissingRegistrationError; a type clash returns
// TypeMismatchError naming the key and both types.
func Resolve[T any](r *Registry) (T, error) {
	return ResolveAs[T](r, TypeName[T]())
}

// ResolveAs returns the value registered under an explicit key, typed as T.
//
// Error behavior matches Resolve.
func ResolveAs[T any](r *Registry, key string) (T, error) {
	var zero T

	e, err := r.lookup(key)
	if err != nil {
		return zero, err
	}
	if want := TypeName[T](); e.strategy.typeName != want {
		return zero, TypeMismatchError{Key: key, Want: want, Got: e.strategy.typeName}
	}

	// The type name check above guarantees assignability; the comma-ok form
	// keeps a registered nil interface value from turning into an
	// assertion panic.
	v, _ := e.value().(T)
	return v, nil
}

// MustResolve returns the value registered under T's canonical type name or
// panics with the resolution error.
//
// This is the fail-fast form: use it where a missing registration is a
// programming error that should halt the calling path immediately.
func MustResolve[T any](r *Registry) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// MustResolveAs returns the value registered under an explicit key or panics
// with the resolution error.
func MustResolveAs[T any](r *Registry, key string) T {
	v, err := ResolveAs[T](r, key)
	if err != nil {
		panic(err)
	}
	return v
}
