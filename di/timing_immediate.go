//go:build injected_immediate

package di

// defaultTiming under the injected_immediate build tag: every field
// constructed without WithTiming resolves during construction.
const defaultTiming = Immediate
