package alphabet

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/program_corpus/pkg/expr"
)

// SetSpec describes a named function set together with the depth bound
// and bin width its corpus is sampled with.
type SetSpec struct {
	Funcs    []*expr.Func
	MaxDepth int
	BinSize  int
}

// DefaultOpcodeWidth sizes the terminal space: with w-bit opcodes the
// constant pool gets 2^w - (numFuncs+1) - numVariables slots.
const DefaultOpcodeWidth = 8

var registry = map[string]SetSpec{}

// RegisterSet adds a named function set to the registry.
func RegisterSet(name string, spec SetSpec) {
	registry[name] = spec
}

// GetSet returns a registered function set by name.
func GetSet(name string) (SetSpec, error) {
	spec, ok := registry[name]
	if !ok {
		return SetSpec{}, fmt.Errorf("unknown function set: %s", name)
	}
	return spec, nil
}

// SetNames returns all registered set names, sorted.
func SetNames() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NewFromSet builds an alphabet for a registered set, deriving the
// terminal counts from the opcode width: one opcode per function, one
// per variable, one reserved, and the remainder for constants. The
// variable count is one fewer than the function count.
func NewFromSet(spec SetSpec, opcodeWidth int, rng *rand.Rand) (*Alphabet, error) {
	if opcodeWidth < 1 {
		return nil, fmt.Errorf("alphabet: opcode width must be positive, got %d", opcodeWidth)
	}
	numFuncs := len(spec.Funcs)
	numVariables := numFuncs - 1
	numConstants := (1 << uint(opcodeWidth)) - (numFuncs + 1) - numVariables
	if numConstants < 0 {
		return nil, fmt.Errorf("alphabet: opcode width %d too small for %d functions", opcodeWidth, numFuncs)
	}
	return New(spec.Funcs, numVariables, numConstants, rng)
}

func init() {
	binary := []*expr.Func{expr.Add, expr.Sub, expr.Mul, expr.AQ}

	RegisterSet("nicolau_a", SetSpec{
		Funcs:    binary,
		MaxDepth: 7,
		BinSize:  2,
	})
	RegisterSet("nicolau_b", SetSpec{
		Funcs:    append([]*expr.Func{expr.Sin, expr.Tanh}, binary...),
		MaxDepth: 5,
		BinSize:  1,
	})
	RegisterSet("nicolau_c", SetSpec{
		Funcs:    append([]*expr.Func{expr.Exp, expr.Log, expr.Sqrt, expr.Sin, expr.Tanh}, binary...),
		MaxDepth: 5,
		BinSize:  1,
	})
}
