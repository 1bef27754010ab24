package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxSize(t *testing.T) {
	tests := []struct {
		arity, depth, want int
	}{
		{1, 0, 1},
		{1, 4, 5},  // a chain of depth 4
		{2, 0, 1},
		{2, 1, 3},
		{2, 3, 15}, // saturated binary tree
		{3, 2, 13}, // 1 + 3 + 9
		{2, 7, 255},
		{4, 3, 85}, // 1 + 4 + 16 + 64
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MaxSize(tc.arity, tc.depth),
			"MaxSize(%d, %d)", tc.arity, tc.depth)
	}

	// Negative remaining depth means no tree fits at all.
	assert.Equal(t, 0, MaxSize(1, -1))
	assert.Equal(t, 0, MaxSize(2, -1))
}

func TestStackBudget(t *testing.T) {
	// Empty stack contributes nothing.
	assert.Equal(t, 0, stackBudget(nil, 2, 5))

	// One pending node at depth 2 under maxDepth 3: it can become the
	// root of a saturated binary subtree of depth 1 (3 nodes), minus
	// itself, already counted in the running size.
	stack := []obligation{{depth: 2, size: 4}}
	assert.Equal(t, 2, stackBudget(stack, 2, 3))

	// Two pending nodes at different depths sum independently.
	stack = []obligation{{depth: 1, size: 3}, {depth: 3, size: 5}}
	// depth 1: MaxSize(2, 2)-1 = 6; depth 3: MaxSize(2, 0)-1 = 0.
	assert.Equal(t, 6, stackBudget(stack, 2, 3))
}
