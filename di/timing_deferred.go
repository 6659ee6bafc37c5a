//go:build !injected_immediate

package di

// defaultTiming is the resolution timing for fields constructed without
// WithTiming. The injected_immediate build tag flips it for a whole build;
// it is fixed per compiled artifact.
const defaultTiming = Deferred
