package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatConst renders a constant value the same way everywhere a
// constant appears (canonical strings, constants files), so that
// string equality on trees is equality of constant slots.
func FormatConst(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String methods render the canonical prefix form: functions as
// name(arg0, arg1, ...), variables as v<index>, constants as their
// shortest round-trip decimal form.

func (v *VarNode) String() string {
	return fmt.Sprintf("v%d", v.Index)
}

func (c *ConstNode) String() string {
	return FormatConst(c.Val)
}

func (f *FuncNode) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Fn.Name, strings.Join(args, ", "))
}
