package di_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/damian-kolasinski/injected/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests in this file exercise the process-wide ambient state, so none of
// them run in parallel.

//
// -----------------------------------------------------------------------------
// Default / Current
// -----------------------------------------------------------------------------

// TestDefault_StableInstance verifies Default always returns the same
// registry.
func TestDefault_StableInstance(t *testing.T) {
	require.NotNil(t, di.Default())
	assert.Same(t, di.Default(), di.Default())
}

// TestCurrent_FallsBackToDefault verifies Current resolves to Default when no
// override is active.
func TestCurrent_FallsBackToDefault(t *testing.T) {
	assert.Same(t, di.Default(), di.Current())
}

//
// -----------------------------------------------------------------------------
// WithOverride
// -----------------------------------------------------------------------------

// TestWithOverride_SubstitutesForDynamicExtent verifies resolution through
// Current observes the override, including from nested calls.
func TestWithOverride_SubstitutesForDynamicExtent(t *testing.T) {
	scoped := di.New().RegisterAs("who", di.Eager("scoped"))

	resolveWho := func() (string, error) {
		return di.ResolveAs[string](di.Current(), "who")
	}

	err := di.WithOverride(scoped, func() error {
		got, err := resolveWho()
		require.NoError(t, err)
		assert.Equal(t, "scoped", got)
		return nil
	})
	require.NoError(t, err)

	_, err = resolveWho()
	require.Error(t, err, "override must not outlive its scope")
}

// TestWithOverride_Nested verifies the inner scope shadows the outer, the
// outer comes back when the inner exits, and the original ambient registry
// comes back after both.
func TestWithOverride_Nested(t *testing.T) {
	outer := di.New().RegisterAs("who", di.Eager("outer"))
	inner := di.New().RegisterAs("who", di.Eager("inner"))

	err := di.WithOverride(outer, func() error {
		err := di.WithOverride(inner, func() error {
			assert.Equal(t, "inner", di.MustResolveAs[string](di.Current(), "who"))
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, "outer", di.MustResolveAs[string](di.Current(), "who"))
		return nil
	})
	require.NoError(t, err)

	assert.Same(t, di.Default(), di.Current())
}

// TestWithOverride_ReturnsBodyError verifies body's error is passed through
// and the ambient registry is still restored.
func TestWithOverride_ReturnsBodyError(t *testing.T) {
	sentinel := errors.New("boom")

	err := di.WithOverride(di.New(), func() error { return sentinel })
	require.ErrorIs(t, err, sentinel)
	assert.Same(t, di.Default(), di.Current())
}

// TestWithOverride_RestoresOnPanic verifies the previous ambient registry
// comes back even when body panics.
func TestWithOverride_RestoresOnPanic(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		_ = di.WithOverride(di.New(), func() error { panic("boom") })
	})
	assert.Same(t, di.Default(), di.Current())
}

//
// -----------------------------------------------------------------------------
// Context-carried registries
// -----------------------------------------------------------------------------

// TestFromContext_CarriedRegistry verifies NewContext/FromContext round-trip a
// registry through a context.
func TestFromContext_CarriedRegistry(t *testing.T) {
	r := di.New()
	ctx := di.NewContext(context.Background(), r)

	assert.Same(t, r, di.FromContext(ctx))
}

// TestFromContext_FallsBackToCurrent verifies a bare or nil context yields
// the ambient registry.
func TestFromContext_FallsBackToCurrent(t *testing.T) {
	assert.Same(t, di.Current(), di.FromContext(context.Background()))
	assert.Same(t, di.Current(), di.FromContext(nil)) //nolint:staticcheck
}

// TestFromContext_IsolatesConcurrentTasks verifies registries carried in
// contexts do not observe each other across goroutines.
func TestFromContext_IsolatesConcurrentTasks(t *testing.T) {
	ctxA := di.NewContext(context.Background(), di.New().RegisterAs("who", di.Eager("a")))
	ctxB := di.NewContext(context.Background(), di.New().RegisterAs("who", di.Eager("b")))

	var wg sync.WaitGroup
	for _, tc := range []struct {
		ctx  context.Context
		want string
	}{
		{ctx: ctxA, want: "a"},
		{ctx: ctxB, want: "b"},
	} {
		tc := tc
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := di.ResolveAs[string](di.FromContext(tc.ctx), "who")
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}()
	}
	wg.Wait()
}
