// Package di provides a small keyed dependency registry with ambient
// scoping and lazily-resolving field accessors.
//
// The package has two halves:
//
//   - Registry: a keyed store of registrations, each built with one of
//     three strategies. Eager holds a pre-built value, LazyCached runs its
//     producer at most once and memoizes the result, Volatile runs its
//     producer on every resolve. Keys default to the canonical name of the
//     registered type, so interfaces can be registered and resolved
//     abstractly; explicit string keys allow several entries per type.
//
//   - Field[T]: a per-property accessor that pulls one dependency from the
//     ambient registry, either at construction (Immediate) or on first
//     read (Deferred), and caches it for its own lifetime.
//
// "Ambient" means the registry currently in effect for the calling code:
// the process-wide Default unless a WithOverride scope is active, in which
// case the innermost override wins for that scope's dynamic extent. This is
// the unit-test seam: override with a scratch registry, run the code under
// test, and the previous ambient registry comes back on every exit path.
// Concurrent tasks that need isolated registries carry one in a
// context.Context via NewContext/FromContext instead of sharing overrides.
//
// Resolution fails loudly: a missing key is MissingRegistrationError, a key
// registered for a different type is TypeMismatchError, and nothing ever
// falls back to a zero value. Resolve and Field.Get return these as
// errors; the Must* forms panic with them.
//
// Design goals:
//   - Lightweight: a map, three strategies, no container graph, no
//     reflection-based auto-wiring, no cycle detection.
//   - Explicit: registration happens intentionally in a composition root;
//     fields declare exactly one dependency each.
//   - Test-friendly: scoped overrides restore unconditionally, and fields
//     read the ambient registry on first use, not at construction.
package di
