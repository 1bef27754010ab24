package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wildfunctions/program_corpus/pkg/alphabet"
	"github.com/wildfunctions/program_corpus/pkg/engine"
)

func main() {
	cfg := engine.DefaultConfig()
	outdir := "."

	flag.StringVar(&cfg.Set, "set", cfg.Set, "function set ("+strings.Join(alphabet.SetNames(), ", ")+")")
	flag.IntVar(&cfg.OpcodeWidth, "opcodewidth", cfg.OpcodeWidth, "opcode width in bits (sizes the constant pool)")
	flag.IntVar(&cfg.MaxDepth, "maxdepth", cfg.MaxDepth, "max tree depth (0 = set default)")
	flag.IntVar(&cfg.BinSize, "binsize", cfg.BinSize, "size bin width (0 = set default)")
	flag.IntVar(&cfg.PerBin, "perbin", cfg.PerBin, "target programs per size bin")
	flag.IntVar(&cfg.Attempts, "attempts", cfg.Attempts, "construction attempts per requested sample")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "include program listings in the report")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel workers for benchmarking")
	flag.BoolVar(&cfg.Bench, "bench", cfg.Bench, "profile evaluation throughput after sampling")
	flag.IntVar(&cfg.Cases, "cases", cfg.Cases, "fitness cases per program when benchmarking")
	flag.StringVar(&outdir, "outdir", outdir, "output directory for generated files")
	flag.Parse()

	if err := os.MkdirAll(outdir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}
	cfg.OutDir = outdir

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report, err := e.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	switch cfg.Format {
	case "json":
		if err := engine.WriteJSONReport(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		engine.WriteTextReport(os.Stdout, report)
	}

	if !report.AllFilled {
		os.Exit(2)
	}
}
