package generate

// MaxSize returns the maximum node count of a tree whose branching
// factor is at most arity and whose depth does not exceed depth: the
// geometric sum 1 + arity + arity^2 + ... + arity^depth, computed in
// integer arithmetic because callers compare it against integer size
// budgets. A negative depth yields 0 (no tree fits).
func MaxSize(arity, depth int) int {
	if arity == 1 {
		if depth < 0 {
			return 0
		}
		return depth + 1
	}
	total := 0
	pow := 1
	for i := 0; i <= depth; i++ {
		total += pow
		pow *= arity
	}
	return total
}

// obligation is one not-yet-materialized node on the builder's work
// stack: the depth it will occupy and the running program size as of
// when it was pushed (placeholder included).
type obligation struct {
	depth int
	size  int
}

// stackBudget returns the maximum number of additional nodes the
// pending obligations could still contribute, if every one of them
// became the root of a full arity-ary subtree reaching exactly
// maxDepth. The -1 excludes the obligation node itself, which the
// running size already counts.
func stackBudget(stack []obligation, arity, maxDepth int) int {
	total := 0
	for _, ob := range stack {
		total += MaxSize(arity, maxDepth-ob.depth) - 1
	}
	return total
}
