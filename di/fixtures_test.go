package di_test

import "sync/atomic"

// Shared fixture types for the package tests.

// Store is an abstract dependency used for interface-key tests.
type Store interface {
	Kind() string
}

// MemStore is a concrete Store implementation.
type MemStore struct {
	ID int
}

// Kind implements Store.
func (s *MemStore) Kind() string { return "mem" }

// Conn stands in for a heavyweight reference-typed dependency.
type Conn struct {
	DSN string
}

// counter produces incrementing ints starting at 1 and records how many
// times it was invoked.
type counter struct {
	n atomic.Int64
}

// next is the producer function registered in tests.
func (c *counter) next() int {
	return int(c.n.Add(1))
}

// calls reports how many times next ran.
func (c *counter) calls() int {
	return int(c.n.Load())
}
