// Package corpus collects a size-stratified sample of random programs:
// successive size ranges ("bins") are each filled with syntactically
// distinct trees, with per-symbol usage statistics accumulated as trees
// are accepted.
package corpus

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/wildfunctions/program_corpus/pkg/alphabet"
	"github.com/wildfunctions/program_corpus/pkg/expr"
	"github.com/wildfunctions/program_corpus/pkg/generate"
)

// Config holds the sampling parameters for one corpus.
type Config struct {
	// MaxDepth bounds every sampled tree.
	MaxDepth int
	// BinSize is the width of each size stratum.
	BinSize int
	// PerBin is the target number of distinct programs per bin.
	PerBin int
	// MaxAttempts bounds the construction attempts per requested
	// sample; infeasible draws within the budget are retried.
	MaxAttempts int
}

func (c Config) validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("corpus: max depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.BinSize < 1 {
		return fmt.Errorf("corpus: bin size must be at least 1, got %d", c.BinSize)
	}
	if c.PerBin < 1 {
		return fmt.Errorf("corpus: per-bin target must be at least 1, got %d", c.PerBin)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("corpus: attempt budget must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

// Program is one accepted tree with its canonical form and measured
// traits.
type Program struct {
	Tree      expr.Node
	Canonical string
	Depth     int
	Size      int
}

// BinResult is the outcome for one size stratum. The count slices are
// indexed like the alphabet: FunctionCounts by function position,
// VariableCounts by variable index, ConstantCounts by pool index.
type BinResult struct {
	MinSize int
	MaxSize int

	Programs []Program
	Filled   bool

	FunctionCounts []int
	VariableCounts []int
	ConstantCounts []int

	// Infeasible counts construction attempts that reported no
	// feasible completion for this bin.
	Infeasible int
	// Duplicates counts completed trees rejected by canonical-form
	// dedup within this bin.
	Duplicates int
}

// Result is the full stratified sample.
type Result struct {
	MaxPossibleSize int
	Bins            []BinResult
}

// AllFilled reports whether every bin reached its target count.
func (r *Result) AllFilled() bool {
	for i := range r.Bins {
		if !r.Bins[i].Filled {
			return false
		}
	}
	return true
}

// Sample fills size bins [i*BinSize+1, min((i+1)*BinSize, maxPossible)]
// with distinct trees built by the grow strategy targeting size. All
// randomness flows through rng in a fixed order, so a fixed seed
// reproduces the corpus exactly.
//
// Infeasible constructions are counted and retried within the attempt
// budget; a bin that still misses its target is reported with
// Filled=false. A bounds-violation from the builder aborts the whole
// sample: it signals unsound feasibility arithmetic, and every
// downstream statistic would be invalid.
func Sample(a *alphabet.Alphabet, cfg Config, rng *rand.Rand) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("corpus: rng is required")
	}

	funcIndex := make(map[string]int, len(a.Functions()))
	for i, f := range a.Functions() {
		funcIndex[f.Name] = i
	}

	maxPossible := generate.MaxSize(a.MaxArity(), cfg.MaxDepth)
	numBins := (maxPossible + cfg.BinSize - 1) / cfg.BinSize

	res := &Result{
		MaxPossibleSize: maxPossible,
		Bins:            make([]BinResult, numBins),
	}

	for i := 0; i < numBins; i++ {
		bin := &res.Bins[i]
		bin.MinSize = i*cfg.BinSize + 1
		bin.MaxSize = (i + 1) * cfg.BinSize
		if bin.MaxSize > maxPossible {
			bin.MaxSize = maxPossible
		}
		bin.FunctionCounts = make([]int, len(a.Functions()))
		bin.VariableCounts = make([]int, a.NumVariables())
		bin.ConstantCounts = make([]int, len(a.Constants()))

		bounds := generate.Bounds{
			MinDepth: 1,
			MaxDepth: cfg.MaxDepth,
			MinSize:  bin.MinSize,
			MaxSize:  bin.MaxSize,
		}

		seen := make(map[string]struct{}, cfg.PerBin)

		for j := 0; j < cfg.PerBin; j++ {
			for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
				tree, err := generate.Grow(a, bounds, generate.BySize, rng)
				if errors.Is(err, generate.ErrInfeasible) {
					bin.Infeasible++
					continue
				}
				if err != nil {
					return nil, fmt.Errorf("corpus: bin %d: %w", i, err)
				}

				if len(bin.Programs) >= cfg.PerBin {
					break
				}
				canonical := tree.String()
				if _, dup := seen[canonical]; dup {
					bin.Duplicates++
					continue
				}

				seen[canonical] = struct{}{}
				bin.Programs = append(bin.Programs, Program{
					Tree:      tree,
					Canonical: canonical,
					Depth:     tree.Depth(),
					Size:      tree.Size(),
				})
				tally(bin, tree, funcIndex)
				break
			}
		}

		bin.Filled = len(bin.Programs) == cfg.PerBin
	}

	return res, nil
}

// tally adds one accepted tree's symbol usage to the bin's running
// counts.
func tally(bin *BinResult, tree expr.Node, funcIndex map[string]int) {
	expr.Walk(tree, func(n expr.Node) {
		switch node := n.(type) {
		case *expr.FuncNode:
			bin.FunctionCounts[funcIndex[node.Fn.Name]]++
		case *expr.VarNode:
			bin.VariableCounts[node.Index]++
		case *expr.ConstNode:
			bin.ConstantCounts[node.Index]++
		}
	})
}
