// core/chunk/tiling.go
package chunk

import (
	"sort"

	"sigchunk-core/read"
)

// Tiling partitions a read's signal into contiguous, non-overlapping windows
// of exactly Chunksize samples. Remainder samples at the end of the read
// never form a partial window. The reference span for each window is found
// by binary search over the alignment pointers.
type Tiling struct {
	Chunksize int // window width in samples, > 0
	MaxDiff   int // edge/gap tolerance in samples, > 0
}

// Cutoff is the minimum reference span an accepted window may carry. Never
// below one base, so an empty span can't pass coverage at tiny chunk sizes.
func (t Tiling) Cutoff() int {
	if c := t.Chunksize / 20; c > 0 {
		return c
	}
	return 1
}

// Plan emits floor(duration/Chunksize) windows with their reference spans.
func (t Tiling) Plan(r *read.Read) []Candidate {
	n := r.Duration() / t.Chunksize
	if n <= 0 {
		return nil
	}
	out := make([]Candidate, 0, n)
	for k := 0; k < n; k++ {
		c := Candidate{SigStart: k * t.Chunksize, SigEnd: (k + 1) * t.Chunksize}
		c.RefStart, c.RefEnd = refSpan(r.Pointers, c.SigStart, c.SigEnd, r.RefLen())
		out = append(out, c)
	}
	return out
}

// refSpan locates the minimal contiguous base range whose mapped sample
// interval covers [sigStart,sigEnd): one base of slack on the left
// guarantees coverage of the window start.
func refSpan(pointers []int, sigStart, sigEnd, refLen int) (int, int) {
	lo := sort.SearchInts(pointers, sigStart) - 1
	if lo < 0 {
		lo = 0
	}
	hi := sort.SearchInts(pointers, sigEnd)
	if hi > refLen {
		hi = refLen
	}
	return lo, hi
}

// Validate applies the tiling filters in order: coverage, edge alignment,
// gap. The first failing rule decides the tallied reason.
func (t Tiling) Validate(r *read.Read, c Candidate) Reason {
	if c.RefLen() < t.Cutoff() {
		return RejectCoverage
	}
	if abs(c.SigStart-r.Pointers[c.RefStart]) >= t.MaxDiff ||
		abs(c.SigEnd-r.Pointers[c.RefEnd]) >= t.MaxDiff {
		return RejectEdge
	}
	// Per-base sample spans, expanded to per-sample resolution: a span of d
	// samples contributes d copies of d. A single base occupying >= MaxDiff
	// samples (a stall) invalidates the whole window.
	var expanded []int
	for j := c.RefStart; j < c.RefEnd; j++ {
		d := r.Pointers[j+1] - r.Pointers[j]
		for i := 0; i < d; i++ {
			expanded = append(expanded, d)
		}
	}
	for _, d := range expanded {
		if d >= t.MaxDiff {
			return RejectGap
		}
	}
	return Accepted
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
