// Package builder_test contains unit tests for the WeightFn implementations
// and option constructors, covering both behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/csrgraph/builder"
	"github.com/stretchr/testify/assert"
)

// TestWeightFnConstructors verifies that WeightFn and option constructors
// panic on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() { builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"UniformIntWeightFn_maxLessThanMin", func() { builder.UniformIntWeightFn(5, 4) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tc.fn)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 3.5, builder.ConstantWeightFn(3.5)(rng))

	uni := builder.UniformWeightFn(2, 4)
	assert.Equal(t, builder.DefaultEdgeWeight, uni(nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(rng))
	for i := 0; i < 100; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)
	}

	ints := builder.UniformIntWeightFn(1, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, ints(nil))
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		w := ints(rng)
		assert.Equal(t, math.Trunc(w), w)
		seen[w] = true
	}
	assert.Equal(t, map[float64]bool{1: true, 2: true, 3: true}, seen)
}

// TestWithConstantWeight checks that the option reaches emitted edges.
func TestWithConstantWeight(t *testing.T) {
	t.Parallel()

	edges, _, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithConstantWeight(9)},
		builder.Path(3),
	)
	assert.NoError(t, err)
	for _, e := range edges {
		assert.Equal(t, 9.0, e.Weight)
	}
}
