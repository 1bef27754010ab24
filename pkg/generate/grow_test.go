package generate

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/program_corpus/pkg/alphabet"
	"github.com/wildfunctions/program_corpus/pkg/expr"
)

// mixedAlphabet has both arities, 2 variables and 3 constants.
func mixedAlphabet(t *testing.T, seed int64) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New(
		[]*expr.Func{expr.Add, expr.Sub, expr.Mul, expr.AQ, expr.Sin, expr.Tanh},
		2, 3, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return a
}

// binaryAlphabet has only arity-2 functions and a single variable.
func binaryAlphabet(t *testing.T) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New([]*expr.Func{expr.Add, expr.Sub}, 1, 2,
		rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	return a
}

func TestGrowBoundInvariant(t *testing.T) {
	a := mixedAlphabet(t, 37)

	cases := []Bounds{
		{MinDepth: 1, MaxDepth: 3, MinSize: 1, MaxSize: 4},
		{MinDepth: 1, MaxDepth: 3, MinSize: 5, MaxSize: 8},
		{MinDepth: 1, MaxDepth: 3, MinSize: 13, MaxSize: 15},
		{MinDepth: 0, MaxDepth: 5, MinSize: 1, MaxSize: 63},
		{MinDepth: 2, MaxDepth: 4, MinSize: 4, MaxSize: 10},
	}

	for _, b := range cases {
		built, infeasible := 0, 0
		for seed := int64(0); seed < 200; seed++ {
			rng := rand.New(rand.NewSource(seed))
			tree, err := Grow(a, b, BySize, rng)
			if errors.Is(err, ErrInfeasible) {
				infeasible++
				continue
			}
			require.NoError(t, err, "bounds %+v seed %d", b, seed)
			built++

			size, depth := tree.Size(), tree.Depth()
			assert.GreaterOrEqual(t, size, b.MinSize, "bounds %+v seed %d", b, seed)
			assert.LessOrEqual(t, size, b.MaxSize, "bounds %+v seed %d", b, seed)
			assert.LessOrEqual(t, depth, b.MaxDepth, "bounds %+v seed %d", b, seed)
			// The size target outranks the depth floor: only a bare
			// terminal may stop short of MinDepth.
			if size > 1 {
				assert.GreaterOrEqual(t, depth, min(b.MinDepth, 1), "bounds %+v seed %d", b, seed)
			}
		}
		assert.Positive(t, built, "bounds %+v never produced a tree", b)
		t.Logf("bounds %+v: %d built, %d infeasible", b, built, infeasible)
	}
}

func TestGrowDeterminism(t *testing.T) {
	b := Bounds{MinDepth: 1, MaxDepth: 4, MinSize: 3, MaxSize: 20}

	render := func() []string {
		// Alphabet and builder share one seeded stream, as in a real
		// run: the pool draw order is part of the reproducibility
		// contract.
		rng := rand.New(rand.NewSource(99))
		a, err := alphabet.New(
			[]*expr.Func{expr.Add, expr.Sub, expr.Mul, expr.AQ, expr.Sin, expr.Tanh},
			2, 3, rng)
		require.NoError(t, err)

		var out []string
		for i := 0; i < 50; i++ {
			tree, err := Grow(a, b, BySize, rng)
			if err != nil {
				out = append(out, "infeasible")
				continue
			}
			out = append(out, tree.String())
		}
		return out
	}

	assert.Equal(t, render(), render(), "same seed must reproduce the same trees")
}

func TestGrowInfeasible(t *testing.T) {
	a := binaryAlphabet(t)

	// Size 2 is unreachable with only binary functions: any function
	// overshoots the ceiling, and the forced terminal undershoots the
	// floor.
	b := Bounds{MinDepth: 0, MaxDepth: 3, MinSize: 2, MaxSize: 2}
	for seed := int64(0); seed < 50; seed++ {
		_, err := Grow(a, b, BySize, rand.New(rand.NewSource(seed)))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInfeasible), "got %v", err)
	}

	// A depth floor that the size ceiling cannot accommodate: under
	// ByDepth the floor is enforced, so the forced bare terminal is
	// reported infeasible.
	b = Bounds{MinDepth: 3, MaxDepth: 3, MinSize: 1, MaxSize: 2}
	for seed := int64(0); seed < 50; seed++ {
		_, err := Grow(a, b, ByDepth, rand.New(rand.NewSource(seed)))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInfeasible), "got %v", err)
	}

	// Under BySize the same bounds succeed with a bare terminal: the
	// size target outranks the depth floor, which only steers the
	// decision predicate there.
	for seed := int64(0); seed < 50; seed++ {
		tree, err := Grow(a, b, BySize, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, 1, tree.Size(), "seed %d", seed)
		assert.Equal(t, 0, tree.Depth(), "seed %d", seed)
	}
}

func TestGrowConfigErrors(t *testing.T) {
	a := mixedAlphabet(t, 1)
	rng := rand.New(rand.NewSource(1))

	_, err := Grow(a, Bounds{MinDepth: 2, MaxDepth: 1, MinSize: 1, MaxSize: 5}, BySize, rng)
	assert.True(t, errors.Is(err, ErrInvalidBounds), "got %v", err)

	_, err = Grow(a, Bounds{MinDepth: 0, MaxDepth: 1, MinSize: 0, MaxSize: 5}, BySize, rng)
	assert.True(t, errors.Is(err, ErrInvalidBounds), "got %v", err)

	_, err = Grow(a, Bounds{MinDepth: 0, MaxDepth: 1, MinSize: 4, MaxSize: 2}, BySize, rng)
	assert.True(t, errors.Is(err, ErrInvalidBounds), "got %v", err)

	_, err = Grow(a, Bounds{MinDepth: 0, MaxDepth: 1, MinSize: 1, MaxSize: 2}, BySize, nil)
	assert.True(t, errors.Is(err, ErrNeedRand), "got %v", err)
}

func TestGrowByDepth(t *testing.T) {
	a := mixedAlphabet(t, 5)
	b := Bounds{MinDepth: 2, MaxDepth: 4, MinSize: 1, MaxSize: MaxSize(2, 4)}

	for seed := int64(0); seed < 100; seed++ {
		tree, err := Grow(a, b, ByDepth, rand.New(rand.NewSource(seed)))
		if errors.Is(err, ErrInfeasible) {
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assert.GreaterOrEqual(t, tree.Depth(), 2, "seed %d", seed)
		assert.LessOrEqual(t, tree.Depth(), 4, "seed %d", seed)
	}
}

func TestFullSaturatesBinaryTrees(t *testing.T) {
	a := binaryAlphabet(t)

	// With every function binary, the full strategy at a pinned depth
	// produces the saturated tree: size 2^(d+1) - 1.
	for seed := int64(0); seed < 30; seed++ {
		tree, err := Full(a, 3, 3, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, 3, tree.Depth(), "seed %d", seed)
		assert.Equal(t, 15, tree.Size(), "seed %d", seed)
	}

	// A drawn target in [1, 3] still saturates at whatever depth it drew.
	for seed := int64(0); seed < 30; seed++ {
		tree, err := Full(a, 1, 3, rand.New(rand.NewSource(seed)))
		require.NoError(t, err, "seed %d", seed)
		d := tree.Depth()
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 3)
		assert.Equal(t, MaxSize(2, d), tree.Size(), "seed %d", seed)
	}
}

func TestHalfAndHalf(t *testing.T) {
	a := mixedAlphabet(t, 8)

	for seed := int64(0); seed < 100; seed++ {
		tree, err := HalfAndHalf(a, 1, 3, rand.New(rand.NewSource(seed)))
		if errors.Is(err, ErrInfeasible) {
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assert.GreaterOrEqual(t, tree.Depth(), 1, "seed %d", seed)
		assert.LessOrEqual(t, tree.Depth(), 3, "seed %d", seed)
		assert.LessOrEqual(t, tree.Size(), MaxSize(2, 3), "seed %d", seed)
	}

	_, err := HalfAndHalf(a, 1, 3, nil)
	assert.True(t, errors.Is(err, ErrNeedRand), "got %v", err)
}

// TestRunningSizeMatchesRecount exercises the carry-forward rule: the
// builder cross-checks its running size counter against the recounted
// tree on every completion and reports ErrBoundsViolated on any
// divergence, so a large mixed-arity sweep passing without that error
// is the regression guard for sibling size bookkeeping.
func TestRunningSizeMatchesRecount(t *testing.T) {
	a := mixedAlphabet(t, 21)

	for seed := int64(0); seed < 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := Bounds{
			MinDepth: 1,
			MaxDepth: 2 + int(seed%4),
			MinSize:  1 + int(seed%7),
			MaxSize:  8 + int(seed%23),
		}
		if b.MinSize > b.MaxSize {
			b.MinSize = b.MaxSize
		}
		_, err := Grow(a, b, BySize, rng)
		if err != nil {
			assert.False(t, errors.Is(err, ErrBoundsViolated),
				"seed %d bounds %+v: %v", seed, b, err)
		}
	}
}
