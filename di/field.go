package di

import "sync"

// Timing selects when a Field resolves its value from the ambient registry.
type Timing int8

const (
	// Deferred resolves on first Get, against whatever registry is ambient
	// at that moment.
	Deferred Timing = iota

	// Immediate resolves during NewField, against the registry ambient at
	// construction time, and fails construction if resolution fails.
	Immediate
)

// fieldConfig collects per-field construction options.
type fieldConfig struct {
	key    string
	timing Timing
}

// FieldOption configures a Field at construction.
type FieldOption func(*fieldConfig)

// WithKey makes the field resolve an explicit registry key instead of the
// key derived from its type parameter.
func WithKey(key string) FieldOption {
	return func(c *fieldConfig) { c.key = key }
}

// WithTiming overrides the build-selected default resolution timing for one
// field.
func WithTiming(t Timing) FieldOption {
	return func(c *fieldConfig) { c.timing = t }
}

// Field is a per-property accessor for one dependency of type T.
//
// A Field stores no long-term reference to any Registry: it consults the
// ambient registry exactly once — at construction for Immediate timing, at
// the first Get otherwise — and caches the resolved value for its own
// lifetime. Later ambient changes, including overrides ending, never affect
// a field that has already cached.
//
// The zero Field is not usable; construct with NewField or MustNewField.
type Field[T any] struct {
	mu       sync.Mutex
	key      string
	resolved bool
	value    T
}

// NewField creates a Field for T.
//
// The field resolves by T's canonical type name unless WithKey supplies an
// explicit key. Timing defaults to the build-selected constant (see the
// injected_immediate build tag) and can be overridden per field with
// WithTiming. With Immediate timing a missing or mismatched registration
// fails construction with the resolution error; Deferred construction
// never fails.
func NewField[T any](opts ...FieldOption) (*Field[T], error) {
	cfg := fieldConfig{timing: defaultTiming}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Field[T]{key: cfg.key}
	if cfg.timing == Immediate {
		if _, err := f.Get(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// MustNewField creates a Field for T or panics with the construction error.
//
// Construction only fails for Immediate timing, so this is the natural form
// for eager fields wired in composition roots where a missing registration
// should halt immediately.
func MustNewField[T any](opts ...FieldOption) *Field[T] {
	f, err := NewField[T](opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Get returns the field's value.
//
// The first call resolves from the registry ambient at that moment and
// caches the result; every later call returns the cached value without
// touching any registry. Resolution failures are returned unchanged
// (MissingRegistrationError or TypeMismatchError) and leave the field
// unresolved, so a later Get retries against the then-ambient registry.
func (f *Field[T]) Get() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.resolved {
		return f.value, nil
	}

	var (
		v   T
		err error
	)
	if f.key != "" {
		v, err = ResolveAs[T](Current(), f.key)
	} else {
		v, err = Resolve[T](Current())
	}
	if err != nil {
		var zero T
		return zero, err
	}

	f.value = v
	f.resolved = true
	return v, nil
}

// MustGet returns the field's value or panics with the resolution error.
func (f *Field[T]) MustGet() T {
	v, err := f.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Resolved reports whether the field has cached a value.
//
// Useful in tests asserting that a deferred field has not resolved yet; not
// meant for normal control flow.
func (f *Field[T]) Resolved() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolved
}
