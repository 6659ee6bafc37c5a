// Package injected is a minimal dependency-resolution registry for Go.
//
// The library lives in the di subpackage: a keyed store of value producers
// with three registration strategies (eager, lazy-cached, volatile), a
// process-wide ambient registry with scope-delimited overrides, and a
// Field accessor that resolves one dependency from the ambient registry
// and caches it.
//
// There is deliberately no container graph, no reflection-based
// auto-wiring and no cycle detection: registration stays explicit in your
// composition root, and the registry is the seam tests use to substitute
// dependencies.
//
// See subpackages:
//   - di: the registry, scoping and field accessor library
//   - examples/*: runnable end-to-end wiring examples
//
// Import
//
//	"github.com/damian-kolasinski/injected/di"
package injected
