// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"sigchunk-core/chunk"
	"sigchunk-core/read"
	"sigchunk/internal/appcore"
	"sigchunk/internal/cli"
	"sigchunk/internal/version"
)

// RunContext parses argv and runs the tiling pipeline.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("sigchunk")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "sigchunk version %s\n", version.Version)
		return 0
	}

	tiling := chunk.Tiling{Chunksize: opts.Chunksize, MaxDiff: opts.MaxDiff}
	return appcore.Run(parent, stdout, stderr,
		appcore.Options{
			ReadsFile: opts.ReadsFile,
			OutFile:   opts.OutFile,
			MaxReads:  opts.MaxReads,
			Quiet:     opts.Quiet,
		},
		appcore.Pipeline{
			Name:       "tiling",
			Strategy:   tiling,
			Encoder:    chunk.Encoder{},
			ChunkWidth: opts.Chunksize,
			// Label width is the widest accepted span, known only at the
			// end of the run.
			LabelWidth:  0,
			EmitSigLens: false,
			// Exact upfront total: every read contributes its full window
			// count, whether or not the filters later reject some.
			Capacity: func(reads []*read.Read) int {
				total := 0
				for _, r := range reads {
					total += r.Duration() / opts.Chunksize
				}
				return total
			},
		})
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
