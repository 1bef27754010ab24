// Package bench profiles program evaluation over a sampled corpus:
// every program in a bin is evaluated against a shared set of random
// fitness cases, timed, and scored, yielding per-bin throughput
// figures (node evaluations per second).
package bench

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/wildfunctions/program_corpus/pkg/corpus"
)

// Cases is a shared evaluation workload: one input vector per fitness
// case plus the target vector programs are scored against.
type Cases struct {
	Inputs [][]float64
	Target []float64
}

// RandomCases draws numCases input vectors of numVariables uniform
// [0,1) values and a matching uniform target vector from rng.
func RandomCases(numCases, numVariables int, rng *rand.Rand) Cases {
	inputs := make([][]float64, numCases)
	for i := range inputs {
		row := make([]float64, numVariables)
		for j := range row {
			row[j] = rng.Float64()
		}
		inputs[i] = row
	}
	target := make([]float64, numCases)
	for i := range target {
		target[i] = rng.Float64()
	}
	return Cases{Inputs: inputs, Target: target}
}

// RSquared returns the coefficient of determination of estimated
// against target: 1 - SS_res/SS_tot. A constant target yields -Inf
// unless the estimate is exact.
func RSquared(target, estimated []float64) float64 {
	mean := 0.0
	for _, t := range target {
		mean += t
	}
	mean /= float64(len(target))

	ssRes, ssTot := 0.0, 0.0
	for i, t := range target {
		d := t - estimated[i]
		ssRes += d * d
		m := t - mean
		ssTot += m * m
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return math.Inf(-1)
	}
	return 1 - ssRes/ssTot
}

// BinStats summarizes one bin's evaluation run.
type BinStats struct {
	BinIndex int     `json:"bin"`
	Programs int     `json:"programs"`
	Runtime  float64 `json:"runtime_seconds"`
	// NodeEvals is total nodes evaluated: Σ size × cases per program.
	NodeEvals int64 `json:"node_evals"`
	// NodeEvalsPerSec is NodeEvals / Runtime.
	NodeEvalsPerSec float64 `json:"node_evals_per_sec"`
	// BestR2 is the best coefficient of determination in the bin.
	BestR2 float64 `json:"best_r2"`
}

// Profile evaluates every program of every bin against the shared
// cases, distributing programs across workers, and reports per-bin
// runtime and throughput.
func Profile(res *corpus.Result, cases Cases, workers int) ([]BinStats, error) {
	if len(cases.Inputs) == 0 || len(cases.Inputs) != len(cases.Target) {
		return nil, fmt.Errorf("bench: need a non-empty case set with matching target")
	}
	if workers <= 0 {
		workers = 1
	}

	stats := make([]BinStats, len(res.Bins))
	for bi := range res.Bins {
		bin := &res.Bins[bi]
		st := &stats[bi]
		st.BinIndex = bi
		st.Programs = len(bin.Programs)
		st.BestR2 = math.Inf(-1)
		if len(bin.Programs) == 0 {
			continue
		}

		scores := make([]float64, len(bin.Programs))
		jobs := make(chan int, len(bin.Programs))
		var wg sync.WaitGroup

		start := time.Now()
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				estimated := make([]float64, len(cases.Inputs))
				for pi := range jobs {
					tree := bin.Programs[pi].Tree
					for ci, in := range cases.Inputs {
						estimated[ci] = tree.EvalF64(in)
					}
					scores[pi] = RSquared(cases.Target, estimated)
				}
			}()
		}
		for pi := range bin.Programs {
			jobs <- pi
		}
		close(jobs)
		wg.Wait()
		st.Runtime = time.Since(start).Seconds()

		for pi, p := range bin.Programs {
			st.NodeEvals += int64(p.Size) * int64(len(cases.Inputs))
			if scores[pi] > st.BestR2 {
				st.BestR2 = scores[pi]
			}
		}
		if st.Runtime > 0 {
			st.NodeEvalsPerSec = float64(st.NodeEvals) / st.Runtime
		}
	}

	return stats, nil
}
