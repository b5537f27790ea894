// internal/samplecli/options.go
package samplecli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"sigchunk/internal/clibase"
)

// Options holds all flags for the random-sampling tool.
type Options struct {
	clibase.Common

	Chunks         int     // target accepted chunk count
	MinSeqLen      int     // inclusive lower bound on drawn reference span
	MaxSeqLen      int     // exclusive upper bound on drawn reference span
	SamplesPerRead float64 // draws per reference base
	Seed           int64   // seeds the permutation and every draw
}

// NewFlagSet returns a configured FlagSet with the shared usage handler.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --chunks 100000 -o chunks.hdf5 run1.reads\n", name)

		fmt.Fprintln(out, "\nSampling:")
		fmt.Fprintf(out, "  -n, --chunks int            Target accepted chunk count [%s]\n", def("chunks"))
		fmt.Fprintf(out, "      --min-seq-len int       Min reference span (inclusive) [%s]\n", def("min-seq-len"))
		fmt.Fprintf(out, "      --max-seq-len int       Max reference span (exclusive) [%s]\n", def("max-seq-len"))
		fmt.Fprintf(out, "      --samples-per-read float  Draws per reference base [%s]\n", def("samples-per-read"))
		fmt.Fprintf(out, "      --seed int              RNG seed for reproducible runs [%s]\n", def("seed"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returning a validated Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)

	fs.IntVar(&o.Chunks, "chunks", 1000, "target accepted chunk count [1000]")
	fs.IntVar(&o.Chunks, "n", 1000, "alias of --chunks")
	fs.IntVar(&o.MinSeqLen, "min-seq-len", 16, "min reference span, inclusive [16]")
	fs.IntVar(&o.MaxSeqLen, "max-seq-len", 100, "max reference span, exclusive [100]")
	fs.Float64Var(&o.SamplesPerRead, "samples-per-read", 0.5, "draws per reference base [0.5]")
	fs.Int64Var(&o.Seed, "seed", 42, "RNG seed [42]")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}

	if o.Chunks < 0 {
		return o, errors.New("--chunks must be ≥ 0")
	}
	if o.MinSeqLen <= 0 {
		return o, errors.New("--min-seq-len must be > 0")
	}
	if o.MinSeqLen >= o.MaxSeqLen {
		return o, errors.New("--min-seq-len must be < --max-seq-len")
	}
	if o.SamplesPerRead <= 0 {
		return o, errors.New("--samples-per-read must be > 0")
	}
	return o, clibase.AfterParse(&o.Common, fs.Args())
}
