// Package engine wires an alphabet, the stratified sampler, and the
// optional evaluation profiler into one reproducible corpus run.
package engine

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/wildfunctions/program_corpus/pkg/alphabet"
	"github.com/wildfunctions/program_corpus/pkg/bench"
	"github.com/wildfunctions/program_corpus/pkg/corpus"
)

// Engine runs corpus generation for one function set.
type Engine struct {
	cfg      Config
	spec     alphabet.SetSpec
	maxDepth int
	binSize  int
	rng      *rand.Rand
}

// New creates an engine from the given config.
func New(cfg Config) (*Engine, error) {
	spec, err := alphabet.GetSet(cfg.Set)
	if err != nil {
		return nil, err
	}

	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = spec.MaxDepth
	}
	binSize := cfg.BinSize
	if binSize == 0 {
		binSize = spec.BinSize
	}

	// Resolve a random seed into the config so the narration and the
	// report carry the value that actually reproduces the run.
	if cfg.Seed == 0 {
		cfg.Seed = rand.Int63()
	}

	return &Engine{
		cfg:      cfg,
		spec:     spec,
		maxDepth: maxDepth,
		binSize:  binSize,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run generates the corpus, optionally profiles it, writes output
// files, and returns the report.
func (e *Engine) Run() (Report, error) {
	a, err := alphabet.NewFromSet(e.spec, e.cfg.OpcodeWidth, e.rng)
	if err != nil {
		return Report{}, err
	}

	fmt.Fprintf(os.Stderr, "Sampling set %s: %d functions, %d variables, %d constants, max depth %d, bin size %d, %d per bin, seed %d\n",
		e.cfg.Set, len(a.Functions()), a.NumVariables(), len(a.Constants()),
		e.maxDepth, e.binSize, e.cfg.PerBin, e.cfg.Seed)

	res, err := corpus.Sample(a, corpus.Config{
		MaxDepth:    e.maxDepth,
		BinSize:     e.binSize,
		PerBin:      e.cfg.PerBin,
		MaxAttempts: e.cfg.Attempts,
	}, e.rng)
	if err != nil {
		return Report{}, err
	}

	report := NewReport(e.cfg, a, res)

	if e.cfg.Bench {
		cases := bench.RandomCases(e.cfg.Cases, a.NumVariables(), e.rng)
		stats, err := bench.Profile(res, cases, e.cfg.Workers)
		if err != nil {
			return Report{}, err
		}
		report.Bench = stats
	}

	if e.cfg.OutDir != "" {
		if err := e.writeFiles(a, res); err != nil {
			return Report{}, err
		}
	}

	return report, nil
}

// writeFiles preserves the constant pool for reference, and the full
// program listing once every bin reached its target count.
func (e *Engine) writeFiles(a *alphabet.Alphabet, res *corpus.Result) error {
	constPath := filepath.Join(e.cfg.OutDir, "constants.txt")
	cf, err := os.Create(constPath)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	WriteConstants(cf, a)
	if err := cf.Close(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if !res.AllFilled() {
		fmt.Fprintf(os.Stderr, "Not all bins filled; skipping program listing\n")
		return nil
	}

	progPath := filepath.Join(e.cfg.OutDir, "programs.txt")
	pf, err := os.Create(progPath)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	WritePrograms(pf, res)
	if err := pf.Close(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s and %s\n", constPath, progPath)
	return nil
}
