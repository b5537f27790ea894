// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"sigchunk/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific sections (usage line, strategy flags).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – nanopore training-chunk extraction\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput / output:")
		fmt.Fprintln(out, "  -i, --reads file            Input .reads file or '-' for STDIN [*]")
		fmt.Fprintln(out, "  -o, --out file              Output HDF5 chunk file [*]")

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintln(out, "  -q, --quiet                 Suppress progress bar and info logging")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h                          Show this help")
		fmt.Fprintln(out, "\n[*] required")
	}
}
