// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"sigchunk/internal/clibase"
)

// Options holds all flags for the tiling tool.
type Options struct {
	clibase.Common

	Chunksize int // window width in signal samples
	MaxDiff   int // edge/gap tolerance in samples
	MaxReads  int // cap on reads scanned (0 = all)
}

// NewFlagSet returns a configured FlagSet with the shared usage handler.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] -o chunks.hdf5 run1.reads\n", name)

		fmt.Fprintln(out, "\nTiling:")
		fmt.Fprintf(out, "      --chunksize int         Window width in samples [%s]\n", def("chunksize"))
		fmt.Fprintf(out, "      --max-diff int          Edge/gap tolerance in samples [%s]\n", def("max-diff"))
		fmt.Fprintf(out, "      --max-reads int         Stop after N reads (0 = all) [%s]\n", def("max-reads"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returning a validated Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	clibase.Register(fs, &o.Common)

	fs.IntVar(&o.Chunksize, "chunksize", 4000, "window width in samples [4000]")
	fs.IntVar(&o.MaxDiff, "max-diff", 50, "edge/gap tolerance in samples [50]")
	fs.IntVar(&o.MaxReads, "max-reads", 0, "stop after N reads (0 = all) [0]")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}

	if o.Chunksize <= 0 {
		return o, errors.New("--chunksize must be > 0")
	}
	if o.MaxDiff <= 0 {
		return o, errors.New("--max-diff must be > 0")
	}
	if o.MaxReads < 0 {
		return o, errors.New("--max-reads must be ≥ 0")
	}
	return o, clibase.AfterParse(&o.Common, fs.Args())
}
