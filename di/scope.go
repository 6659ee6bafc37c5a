package di

import "sync"

// Ambient registry state: one process-wide default plus a stack of
// scope-delimited overrides.
var (
	defaultOnce sync.Once
	defaultReg  *Registry

	overrideMu sync.Mutex
	overrides  []*Registry
)

// Default returns the process-wide ambient Registry, creating it on first
// use.
//
// Default always returns the same instance; WithOverride substitutes what
// Current observes without touching it.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// Current returns the registry ambient for the calling code: the innermost
// active override, or Default when none is in effect.
//
// Current and WithOverride are meant for a single designated goroutine (the
// main context of an application, or one test). Overrides are process-wide,
// so independently scheduled goroutines that must not observe each other's
// overrides should carry a registry in a context instead (see NewContext).
func Current() *Registry {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	if n := len(overrides); n > 0 {
		return overrides[n-1]
	}
	return Default()
}

// WithOverride runs body with r as the ambient registry and returns body's
// error.
//
// The override holds for the dynamic extent of body, including everything
// body calls, and nests: an inner WithOverride shadows the outer one until
// it exits. The previous ambient registry is restored on every exit path,
// panics included.
func WithOverride(r *Registry, body func() error) error {
	overrideMu.Lock()
	overrides = append(overrides, r)
	overrideMu.Unlock()

	defer func() {
		overrideMu.Lock()
		overrides = overrides[:len(overrides)-1]
		overrideMu.Unlock()
	}()

	return body()
}
