// Package generate builds random expression trees under simultaneous
// hard bounds on depth and size. The builder reasons about the maximum
// size of entire subtrees before committing to a function choice, so a
// returned tree never violates its bounds; when no feasible completion
// exists it reports ErrInfeasible instead.
package generate

import (
	"fmt"
	"math/rand"

	"github.com/wildfunctions/program_corpus/pkg/alphabet"
	"github.com/wildfunctions/program_corpus/pkg/expr"
)

// TargetMode selects which trait the builder draws a target value for.
type TargetMode int

const (
	// ByDepth targets a depth drawn uniformly from [MinDepth, MaxDepth].
	ByDepth TargetMode = iota
	// BySize targets a size drawn uniformly from [MinSize, MaxSize].
	BySize
)

// Bounds are the hard limits a completed tree must satisfy.
type Bounds struct {
	MinDepth int
	MaxDepth int
	MinSize  int
	MaxSize  int
}

func (b Bounds) validate() error {
	if b.MinDepth < 0 || b.MinDepth > b.MaxDepth {
		return fmt.Errorf("depth bounds [%d, %d]: %w", b.MinDepth, b.MaxDepth, ErrInvalidBounds)
	}
	if b.MinSize < 1 || b.MinSize > b.MaxSize {
		return fmt.Errorf("size bounds [%d, %d]: %w", b.MinSize, b.MaxSize, ErrInvalidBounds)
	}
	return nil
}

// placed is one resolved slot of the prefix-order node list: either a
// materialized leaf or a function symbol awaiting its children.
type placed struct {
	leaf expr.Node
	fn   *expr.Func
}

// Grow builds one tree with the grow strategy: function versus terminal
// is decided per node, with a weighted bias toward terminals once both
// minimum bounds are met. Exactly one target draw is consumed first,
// then one draw per decision, so a fixed rng seed reproduces the tree.
func Grow(a *alphabet.Alphabet, b Bounds, mode TargetMode, rng *rand.Rand) (expr.Node, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNeedRand
	}

	var desired int
	if mode == ByDepth {
		desired = b.MinDepth + rng.Intn(b.MaxDepth-b.MinDepth+1)
	} else {
		desired = b.MinSize + rng.Intn(b.MaxSize-b.MinSize+1)
	}

	cond := func(stack []obligation, ob obligation) bool {
		valid := arityFeasible(a.Functions(), ob.size, b.MaxSize)
		maxAr := 1
		if len(valid) > 0 {
			maxAr = maxArity(valid)
		}
		// Best case if this node becomes a terminal: every outstanding
		// obligation grows into a full maxAr-ary subtree of maximal depth.
		possible := ob.size + stackBudget(stack, maxAr, b.MaxDepth)

		switch {
		case len(valid) == 0, ob.depth == b.MaxDepth, ob.size == b.MaxSize:
			return true
		case mode == ByDepth && ob.depth == desired:
			return true
		case mode == BySize && ob.size >= desired:
			return true
		case ob.depth >= b.MinDepth && ob.size >= b.MinSize &&
			(mode == ByDepth || possible >= desired):
			return rng.Float64() < a.TerminalRatio()
		}
		return false
	}

	return build(a, b, mode, desired, cond, rng)
}

// Full builds one tree with the full strategy: every branch is extended
// with functions until the drawn target depth, then closed with
// terminals. Size bounds do not apply; the implicit cap is the maximum
// possible size at maxDepth.
func Full(a *alphabet.Alphabet, minDepth, maxDepth int, rng *rand.Rand) (expr.Node, error) {
	b := Bounds{
		MinDepth: minDepth,
		MaxDepth: maxDepth,
		MinSize:  1,
		MaxSize:  MaxSize(a.MaxArity(), maxDepth),
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNeedRand
	}

	desired := minDepth + rng.Intn(maxDepth-minDepth+1)

	cond := func(stack []obligation, ob obligation) bool {
		return ob.depth == desired ||
			len(arityFeasible(a.Functions(), ob.size, b.MaxSize)) == 0
	}

	return build(a, b, ByDepth, desired, cond, rng)
}

// HalfAndHalf builds one tree with the ramped half-and-half strategy:
// an even coin flip between Grow (depth-targeted) and Full.
func HalfAndHalf(a *alphabet.Alphabet, minDepth, maxDepth int, rng *rand.Rand) (expr.Node, error) {
	if rng == nil {
		return nil, ErrNeedRand
	}
	if rng.Intn(2) == 0 {
		b := Bounds{
			MinDepth: minDepth,
			MaxDepth: maxDepth,
			MinSize:  1,
			MaxSize:  MaxSize(a.MaxArity(), maxDepth),
		}
		return Grow(a, b, ByDepth, rng)
	}
	return Full(a, minDepth, maxDepth, rng)
}

// build runs the stack-driven construction loop shared by all
// strategies. cond decides terminal versus function for each popped
// obligation; the BySize feasibility filter prunes function choices
// that make the desired total size unreachable.
func build(a *alphabet.Alphabet, b Bounds, mode TargetMode, desired int,
	cond func(stack []obligation, ob obligation) bool, rng *rand.Rand) (expr.Node, error) {

	var prefix []placed
	stack := []obligation{{depth: 0, size: 1}}
	running := 1

	for len(stack) != 0 {
		ob := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cond(stack, ob) {
			prefix = append(prefix, placed{leaf: a.RandomTerminal(rng)})
			running = ob.size

			// Carry the resolved size forward to the next obligation:
			// its own size field may be stale (never larger), because a
			// leaf contributes exactly one node regardless of what the
			// sibling bookkeeping assumed when it was pushed.
			if len(stack) != 0 {
				next := stack[len(stack)-1]
				stack[len(stack)-1] = obligation{depth: next.depth, size: ob.size}
			}
			continue
		}

		valid := arityFeasible(a.Functions(), ob.size, b.MaxSize)

		if mode == BySize && len(valid) > 0 {
			// Keep only functions for which some completion can still
			// reach the desired size, assuming every other outstanding
			// obligation expands maximally.
			maxAr := maxArity(valid)
			budget := stackBudget(stack, maxAr, b.MaxDepth)
			kept := make([]*expr.Func, 0, len(valid))
			for _, f := range valid {
				possible := ob.size + f.Arity*MaxSize(maxAr, b.MaxDepth-(ob.depth+1)) + budget
				if possible >= desired {
					kept = append(kept, f)
				}
			}
			valid = kept
		}

		if len(valid) == 0 {
			return nil, fmt.Errorf("at depth %d, size %d (target %d): %w",
				ob.depth, ob.size, desired, ErrInfeasible)
		}

		f := valid[rng.Intn(len(valid))]
		prefix = append(prefix, placed{fn: f})
		for i := 0; i < f.Arity; i++ {
			stack = append(stack, obligation{depth: ob.depth + 1, size: ob.size + f.Arity})
		}
	}

	tree, next := assemble(prefix, 0)
	if next != len(prefix) {
		return nil, fmt.Errorf("prefix list has %d nodes, consumed %d: %w",
			len(prefix), next, ErrBoundsViolated)
	}

	// Recompute size and depth from the finished tree and validate the
	// bounds the builder promised. Exceeding a maximum, or a running
	// size that disagrees with the recount, means the feasibility
	// arithmetic is unsound and must surface loudly. Falling short of a
	// minimum is an ordinary dead end: a hard ceiling can force a
	// terminal before the minimums are met, so the attempt is reported
	// infeasible and the caller redraws.
	size, depth := tree.Size(), tree.Depth()
	if size != running {
		return nil, fmt.Errorf("running size %d, actual size %d: %w",
			running, size, ErrBoundsViolated)
	}
	if size > b.MaxSize || depth > b.MaxDepth {
		return nil, fmt.Errorf("got size=%d depth=%d, want size <= %d and depth <= %d: %w",
			size, depth, b.MaxSize, b.MaxDepth, ErrBoundsViolated)
	}
	if size < b.MinSize {
		return nil, fmt.Errorf("got size=%d, want size >= %d: %w", size, b.MinSize, ErrInfeasible)
	}
	// Under BySize the size target outranks the depth floor: reaching
	// the desired size forces a terminal even at depth 0, so MinDepth
	// only steers the decision predicate there.
	if mode == ByDepth && depth < b.MinDepth {
		return nil, fmt.Errorf("got depth=%d, want depth >= %d: %w", depth, b.MinDepth, ErrInfeasible)
	}

	return tree, nil
}

// assemble rebuilds a tree from its prefix-order node list, returning
// the root and the index one past the consumed slots.
func assemble(prefix []placed, pos int) (expr.Node, int) {
	p := prefix[pos]
	if p.fn == nil {
		return p.leaf, pos + 1
	}
	args := make([]expr.Node, p.fn.Arity)
	next := pos + 1
	for i := range args {
		args[i], next = assemble(prefix, next)
	}
	return &expr.FuncNode{Fn: p.fn, Args: args}, next
}

// arityFeasible returns the functions whose arity still fits under the
// size ceiling at the current running size.
func arityFeasible(funcs []*expr.Func, size, maxSize int) []*expr.Func {
	valid := make([]*expr.Func, 0, len(funcs))
	for _, f := range funcs {
		if size+f.Arity <= maxSize {
			valid = append(valid, f)
		}
	}
	return valid
}

func maxArity(funcs []*expr.Func) int {
	max := 0
	for _, f := range funcs {
		if f.Arity > max {
			max = f.Arity
		}
	}
	return max
}
