package di

import (
	"reflect"
	"sync"
)

// Strategy describes how a registration produces its value.
//
// A Strategy is built by one of three constructors, each selecting a
// different producer-invocation and caching policy:
//
//   - Eager: a pre-built value, handed back unchanged on every resolve.
//   - LazyCached: a producer invoked at most once; its result is memoized
//     for the lifetime of the entry.
//   - Volatile: a producer invoked on every resolve, never cached.
//
// The constructors are generic so the registration captures the static type
// parameter, not the dynamic type of the value. That is what makes
// interface registration work: Eager[Painter](&Brush{}) keys and
// type-checks on Painter, and resolving the concrete *Brush type fails
// unless it was registered separately.
type Strategy struct {
	typeName string
	eager    any
	produce  func() any
	caching  bool
}

// TypeName returns the canonical name of T as used for derived registry keys.
//
// It is the stable identifier produced by the reflect package for T itself,
// including for interface types.
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Eager builds a Strategy around a pre-built value.
//
// Every resolve returns value itself; for reference types all resolvers
// share the one instance.
func Eager[T any](value T) Strategy {
	return Strategy{
		typeName: TypeName[T](),
		eager:    value,
	}
}

// LazyCached builds a memoizing Strategy around a producer.
//
// The producer runs at most once per registration, on the first resolve;
// every later resolve returns the memoized result without invoking the
// producer again. Re-registering the key discards the memo together with
// the entry.
func LazyCached[T any](produce func() T) Strategy {
	return Strategy{
		typeName: TypeName[T](),
		produce:  func() any { return produce() },
		caching:  true,
	}
}

// Volatile builds a non-caching Strategy around a producer.
//
// The producer runs on every resolve and each call may yield a distinct
// result.
func Volatile[T any](produce func() T) Strategy {
	return Strategy{
		typeName: TypeName[T](),
		produce:  func() any { return produce() },
	}
}

// entry is the stored, type-erased form of a registration.
//
// For LazyCached registrations the once/memo pair implements the
// producer-at-most-once guarantee; once.Do also orders the memo write
// before any read that observed the Do, so no further locking is needed
// around memo.
type entry struct {
	strategy Strategy
	once     sync.Once
	memo     any
}

// value applies the entry's strategy and returns the resolved value.
func (e *entry) value() any {
	s := &e.strategy
	switch {
	case s.produce == nil:
		return s.eager
	case s.caching:
		e.once.Do(func() { e.memo = s.produce() })
		return e.memo
	default:
		return s.produce()
	}
}
