// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"

	"sigchunk/internal/cliutil"
)

// Common holds CLI fields shared by sigchunk and sigchunk-sample.
type Common struct {
	ReadsFile string // input .reads file, or "-" for stdin
	OutFile   string // output HDF5 file

	Quiet   bool
	Version bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.ReadsFile, "reads", "", "input .reads file or '-' for STDIN [*]")
	fs.StringVar(&c.ReadsFile, "i", "", "alias of --reads")
	fs.StringVar(&c.OutFile, "out", "", "output HDF5 file [*]")
	fs.StringVar(&c.OutFile, "o", "", "alias of --out")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress progress bar and info logging [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse folds positional arguments into the reads path (globs expanded)
// and runs shared validation. A single positional is accepted as the input
// file, so `sigchunk -o out.hdf5 run1.reads` works.
func AfterParse(c *Common, posArgs []string) error {
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		if len(exp) > 1 {
			return errors.New("only one input reads file is supported")
		}
		if c.ReadsFile != "" {
			return errors.New("positional input conflicts with --reads")
		}
		c.ReadsFile = exp[0]
	}
	return Validate(c)
}

// Validate applies the shared CLI invariants used by both tools.
func Validate(c *Common) error {
	if c.ReadsFile == "" {
		return errors.New("an input reads file is required (--reads or positional)")
	}
	if c.OutFile == "" {
		return errors.New("--out is required")
	}
	return nil
}
