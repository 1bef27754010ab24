package expr

// Node is the interface for all expression tree nodes.
type Node interface {
	// String renders the canonical prefix form used for dedup and output.
	String() string
	// Size is the total node count, root inclusive.
	Size() int
	// Depth is the longest root-to-leaf edge count (a leaf has depth 0).
	Depth() int
	// EvalF64 evaluates the tree over the given variable vector.
	EvalF64(vars []float64) float64
	Clone() Node
}

// Func describes a function symbol: a name, a fixed arity, and the
// operation applied to its evaluated arguments.
type Func struct {
	Name  string
	Arity int
	Apply func(args ...float64) float64
}

// VarNode references an input variable by index.
type VarNode struct {
	Index int
}

// ConstNode references a constant from an alphabet's fixed pool.
// Index identifies the pool slot; Val is the materialized value.
type ConstNode struct {
	Index int
	Val   float64
}

// FuncNode applies a function symbol to exactly Fn.Arity ordered children.
type FuncNode struct {
	Fn   *Func
	Args []Node
}

func (v *VarNode) Clone() Node { return &VarNode{Index: v.Index} }

func (c *ConstNode) Clone() Node { return &ConstNode{Index: c.Index, Val: c.Val} }

func (f *FuncNode) Clone() Node {
	args := make([]Node, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Clone()
	}
	return &FuncNode{Fn: f.Fn, Args: args}
}
