// Package alphabet defines the primitive sets that random programs are
// built from: function symbols, variable terminals, and a fixed pool of
// pre-sampled constants shared by every tree built from one alphabet.
package alphabet

import (
	"fmt"
	"math/rand"

	"github.com/wildfunctions/program_corpus/pkg/expr"
)

// Alphabet holds the symbols available to the tree builder. It is
// read-only after construction: the constant pool in particular is
// sampled exactly once, so identical constant values recur across
// distinct trees and a corpus is reproducible from its seed.
type Alphabet struct {
	funcs     []*expr.Func
	numVars   int
	constants []float64
	maxArity  int
	ratio     float64
}

// New constructs an alphabet from a function list, a variable count,
// and a constant-pool size. The pool is filled with numConstants draws
// from uniform(-1, 1) consumed from rng at construction time.
func New(funcs []*expr.Func, numVariables, numConstants int, rng *rand.Rand) (*Alphabet, error) {
	if len(funcs) == 0 {
		return nil, fmt.Errorf("alphabet: no functions")
	}
	if numVariables < 0 || numConstants < 0 {
		return nil, fmt.Errorf("alphabet: negative terminal count (variables=%d, constants=%d)",
			numVariables, numConstants)
	}
	if numVariables == 0 && numConstants == 0 {
		return nil, fmt.Errorf("alphabet: no terminals")
	}
	if rng == nil {
		return nil, fmt.Errorf("alphabet: rng is required")
	}

	maxArity := 0
	for _, f := range funcs {
		if f.Arity < 1 {
			return nil, fmt.Errorf("alphabet: function %s has arity %d", f.Name, f.Arity)
		}
		if f.Arity > maxArity {
			maxArity = f.Arity
		}
	}

	constants := make([]float64, numConstants)
	for i := range constants {
		constants[i] = rng.Float64()*2 - 1
	}

	// One terminal slot per variable plus one slot for the constant
	// generator (when a pool exists). The ratio biases the builder
	// toward terminals once minimum bounds are met.
	slots := numVariables
	if numConstants > 0 {
		slots++
	}

	return &Alphabet{
		funcs:     funcs,
		numVars:   numVariables,
		constants: constants,
		maxArity:  maxArity,
		ratio:     float64(slots) / float64(slots+len(funcs)),
	}, nil
}

// Functions returns the function symbols. Callers must not mutate.
func (a *Alphabet) Functions() []*expr.Func { return a.funcs }

// NumVariables returns the number of variable terminals.
func (a *Alphabet) NumVariables() int { return a.numVars }

// Constants returns the fixed constant pool. Callers must not mutate.
func (a *Alphabet) Constants() []float64 { return a.constants }

// MaxArity returns the largest function arity in the alphabet.
func (a *Alphabet) MaxArity() int { return a.maxArity }

// TerminalRatio is the probability weight used by the builder to pick
// a terminal over a function once minimum bounds are satisfied.
func (a *Alphabet) TerminalRatio() float64 { return a.ratio }

// RandomTerminal draws one terminal: a uniform choice over the variable
// slots plus the constant-generator slot, which materializes a constant
// by uniform index into the fixed pool. Two rng draws when a constant
// is chosen, one otherwise.
func (a *Alphabet) RandomTerminal(rng *rand.Rand) expr.Node {
	slots := a.numVars
	if len(a.constants) > 0 {
		slots++
	}
	i := rng.Intn(slots)
	if i < a.numVars {
		return &expr.VarNode{Index: i}
	}
	ci := rng.Intn(len(a.constants))
	return &expr.ConstNode{Index: ci, Val: a.constants[ci]}
}
