package engine

import (
	"runtime"

	"github.com/wildfunctions/program_corpus/pkg/alphabet"
)

// Config holds all parameters for a corpus generation run.
type Config struct {
	Set         string // registered function set name
	OpcodeWidth int
	MaxDepth    int // 0 = use the set's default
	BinSize     int // 0 = use the set's default
	PerBin      int
	Attempts    int    // construction attempts per requested sample
	Seed        int64  // 0 = random
	Format      string // "text" or "json"
	Verbose     bool
	Workers     int
	OutDir      string

	Bench bool // profile evaluation throughput after sampling
	Cases int  // fitness cases per program when benchmarking
}

// DefaultConfig returns a config with sensible defaults. The seed
// matches the reference experiment, so a default run reproduces the
// reference corpus.
func DefaultConfig() Config {
	return Config{
		Set:         "nicolau_a",
		OpcodeWidth: alphabet.DefaultOpcodeWidth,
		PerBin:      1,
		Attempts:    100,
		Seed:        37,
		Format:      "text",
		Verbose:     false,
		Workers:     runtime.NumCPU(),
		Bench:       false,
		Cases:       1000,
	}
}
