package di

import "context"

// ctxKey is the private context key for a task-carried registry.
type ctxKey struct{}

// NewContext returns a copy of ctx carrying r.
//
// This is the concurrency-safe counterpart to WithOverride: each logical
// task threads its own context, so registries attached this way are
// isolated between concurrently running tasks instead of being shared
// process-wide.
func NewContext(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// FromContext returns the registry carried by ctx, falling back to the
// ambient Current registry when ctx carries none (or is nil).
func FromContext(ctx context.Context) *Registry {
	if ctx != nil {
		if r, ok := ctx.Value(ctxKey{}).(*Registry); ok {
			return r
		}
	}
	return Current()
}
