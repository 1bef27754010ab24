package expr

func (v *VarNode) Size() int   { return 1 }
func (c *ConstNode) Size() int { return 1 }
func (f *FuncNode) Size() int {
	n := 1
	for _, a := range f.Args {
		n += a.Size()
	}
	return n
}

func (v *VarNode) Depth() int   { return 0 }
func (c *ConstNode) Depth() int { return 0 }
func (f *FuncNode) Depth() int {
	max := 0
	for _, a := range f.Args {
		if d := a.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// Walk visits every node in depth-first prefix order.
func Walk(root Node, visit func(Node)) {
	visit(root)
	if f, ok := root.(*FuncNode); ok {
		for _, a := range f.Args {
			Walk(a, visit)
		}
	}
}
