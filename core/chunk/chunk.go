// core/chunk/chunk.go
package chunk

import "sigchunk-core/read"

// Candidate is one proposed training chunk: a half-open signal sample span
// [SigStart,SigEnd) paired with the half-open reference base span
// [RefStart,RefEnd) it is aligned to. Candidates are ephemeral; only the
// ones a Strategy accepts are encoded and written to the Dataset.
type Candidate struct {
	SigStart, SigEnd int
	RefStart, RefEnd int
}

// SigLen returns the signal span width in samples.
func (c Candidate) SigLen() int { return c.SigEnd - c.SigStart }

// RefLen returns the reference span width in bases.
func (c Candidate) RefLen() int { return c.RefEnd - c.RefStart }

// Reason names a quality-filter rejection. Rejections are tallied, never
// raised as errors. The empty Reason means "accepted".
type Reason string

const (
	Accepted Reason = ""

	// Tiling filters.
	RejectCoverage Reason = "coverage" // reference span shorter than chunksize/20
	RejectEdge     Reason = "edge"     // window boundary too far from mapped base boundary
	RejectGap      Reason = "gap"      // a single base stalls for >= max-diff samples

	// Random-sampling filters.
	RejectRefBounds Reason = "ref_bounds" // span runs past the end of the reference
	RejectRate      Reason = "rate"       // samples-per-base outside [min,max]
	RejectSigBounds Reason = "sig_bounds" // signal span runs past the end of the read
)

// Strategy generates candidate chunks for one read and judges each one.
// Plan never filters; Validate returns the first failing rule's Reason, or
// Accepted. The two implementations (Tiling, Random) share this contract so
// the pipeline is written once.
type Strategy interface {
	Plan(r *read.Read) []Candidate
	Validate(r *read.Read, c Candidate) Reason
}
