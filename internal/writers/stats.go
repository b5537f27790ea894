// internal/writers/stats.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"sigchunk-core/chunk"
)

// StatsHeader is the canonical header row for the run summary TSV. Keep this
// as the single source of truth for column names.
const StatsHeader = "metric\tcount"

// WriteStats emits the run summary as TSV: totals first, then the
// per-reason rejection tallies in lexical order for deterministic output.
func WriteStats(w io.Writer, rep *chunk.Report) error {
	rows := [][2]interface{}{
		{"reads", rep.Reads},
		{"skipped_reads", rep.SkippedReads},
		{"candidates", rep.Candidates},
		{"accepted", rep.Accepted},
	}
	if _, err := fmt.Fprintln(w, StatsHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%v\t%v\n", row[0], row[1]); err != nil {
			return err
		}
	}

	reasons := make([]string, 0, len(rep.Rejected))
	for r := range rep.Rejected {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		if _, err := fmt.Fprintf(w, "rejected.%s\t%d\n", r, rep.Rejected[chunk.Reason(r)]); err != nil {
			return err
		}
	}
	return nil
}
