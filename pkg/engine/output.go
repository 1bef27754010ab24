package engine

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wildfunctions/program_corpus/pkg/alphabet"
	"github.com/wildfunctions/program_corpus/pkg/bench"
	"github.com/wildfunctions/program_corpus/pkg/corpus"
	"github.com/wildfunctions/program_corpus/pkg/expr"
)

// BinReport summarizes one size bin for output.
type BinReport struct {
	Bin        int      `json:"bin"`
	MinSize    int      `json:"min_size"`
	MaxSize    int      `json:"max_size"`
	Count      int      `json:"count"`
	Filled     bool     `json:"filled"`
	Infeasible int      `json:"infeasible"`
	Duplicates int      `json:"duplicates"`
	Depths     []int    `json:"depths,omitempty"`
	Sizes      []int    `json:"sizes,omitempty"`
	Programs   []string `json:"programs,omitempty"`
}

// Report summarizes the entire run.
type Report struct {
	Config          Config           `json:"config"`
	MaxPossibleSize int              `json:"max_possible_size"`
	NumBins         int              `json:"num_bins"`
	AllFilled       bool             `json:"all_filled"`
	Bins            []BinReport      `json:"bins"`
	Bench           []bench.BinStats `json:"bench,omitempty"`
}

// NewReport flattens a sampled corpus into the output report. Program
// listings are included only in verbose mode.
func NewReport(cfg Config, a *alphabet.Alphabet, res *corpus.Result) Report {
	r := Report{
		Config:          cfg,
		MaxPossibleSize: res.MaxPossibleSize,
		NumBins:         len(res.Bins),
		AllFilled:       res.AllFilled(),
	}
	for i := range res.Bins {
		bin := &res.Bins[i]
		br := BinReport{
			Bin:        i,
			MinSize:    bin.MinSize,
			MaxSize:    bin.MaxSize,
			Count:      len(bin.Programs),
			Filled:     bin.Filled,
			Infeasible: bin.Infeasible,
			Duplicates: bin.Duplicates,
		}
		for _, p := range bin.Programs {
			br.Depths = append(br.Depths, p.Depth)
			br.Sizes = append(br.Sizes, p.Size)
			if cfg.Verbose {
				br.Programs = append(br.Programs, p.Canonical)
			}
		}
		r.Bins = append(r.Bins, br)
	}
	return r
}

// WriteTextReport writes the run report in human-readable form.
func WriteTextReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "Set %s: max possible size %d, %d bins\n",
		r.Config.Set, r.MaxPossibleSize, r.NumBins)
	for _, b := range r.Bins {
		status := "filled"
		if !b.Filled {
			status = "UNDER-FILLED"
		}
		fmt.Fprintf(w, "  bin %2d [%3d, %3d]: %d/%d %s (infeasible %d, duplicates %d)\n",
			b.Bin, b.MinSize, b.MaxSize, b.Count, r.Config.PerBin, status,
			b.Infeasible, b.Duplicates)
		for _, p := range b.Programs {
			fmt.Fprintf(w, "    %s\n", p)
		}
	}
	for _, s := range r.Bench {
		fmt.Fprintf(w, "  bench bin %2d: %d programs, %.6fs, %.0f node evals/s, best R2 %.4f\n",
			s.BinIndex, s.Programs, s.Runtime, s.NodeEvalsPerSec, s.BestR2)
	}
	if r.AllFilled {
		fmt.Fprintln(w, "All bins filled")
	} else {
		fmt.Fprintln(w, "Some bins under-filled")
	}
}

// WriteJSONReport writes the run report as indented JSON.
func WriteJSONReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteConstants writes the alphabet's fixed constant pool, one value
// per line, in the same rendering the canonical form uses.
func WriteConstants(w io.Writer, a *alphabet.Alphabet) {
	for _, c := range a.Constants() {
		fmt.Fprintln(w, expr.FormatConst(c))
	}
}

// WritePrograms writes every accepted program, bin by bin, one
// canonical form per line.
func WritePrograms(w io.Writer, res *corpus.Result) {
	for i := range res.Bins {
		for _, p := range res.Bins[i].Programs {
			fmt.Fprintln(w, p.Canonical)
		}
	}
}
