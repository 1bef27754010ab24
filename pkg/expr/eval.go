package expr

// EvalF64 for VarNode returns the referenced variable.
func (v *VarNode) EvalF64(vars []float64) float64 {
	return vars[v.Index]
}

// EvalF64 for ConstNode returns the materialized constant.
func (c *ConstNode) EvalF64(vars []float64) float64 {
	return c.Val
}

// EvalF64 for FuncNode evaluates the arguments left to right and
// applies the function symbol's operation.
func (f *FuncNode) EvalF64(vars []float64) float64 {
	args := make([]float64, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.EvalF64(vars)
	}
	return f.Fn.Apply(args...)
}
