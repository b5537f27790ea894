// core/chunk/random.go
package chunk

import (
	"math"
	"math/rand"

	"sigchunk-core/read"
)

// Event-rate bounds for the random-sampling filters, in signal samples per
// reference base.
const (
	MinSamplesPerBase = 8
	MaxSamplesPerBase = 16
)

// Random draws random reference-space subsequences of bounded length and maps
// them directly into signal space through the alignment pointers. All
// randomness comes from Rand, so a run is reproducible given the same seed.
type Random struct {
	Rand           *rand.Rand
	SamplesPerRead float64 // draw density per reference base, > 0
	MinSeqLen      int     // inclusive lower bound on drawn span length
	MaxSeqLen      int     // exclusive upper bound on drawn span length
}

// Plan draws round(L*SamplesPerRead) spans: start uniform over [0,L), length
// uniform over [MinSeqLen,MaxSeqLen). The signal span is looked up only when
// the base span stays inside the reference; out-of-bounds draws are kept as
// candidates so Validate can tally them.
func (s Random) Plan(r *read.Read) []Candidate {
	l := r.RefLen()
	if l == 0 {
		return nil
	}
	n := int(math.Round(float64(l) * s.SamplesPerRead))
	out := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		start := s.Rand.Intn(l)
		length := s.MinSeqLen + s.Rand.Intn(s.MaxSeqLen-s.MinSeqLen)
		c := Candidate{RefStart: start, RefEnd: start + length}
		if c.RefEnd <= l {
			c.SigStart = r.Pointers[c.RefStart]
			c.SigEnd = r.Pointers[c.RefEnd]
		}
		out = append(out, c)
	}
	return out
}

// Validate applies the random-sampling filters in order: reference bounds,
// rate bounds, signal bounds.
func (s Random) Validate(r *read.Read, c Candidate) Reason {
	if c.RefEnd > r.RefLen() {
		return RejectRefBounds
	}
	// An empty base span has an effectively infinite rate; reject it here
	// rather than dividing by zero.
	if c.RefLen() == 0 {
		return RejectRate
	}
	rate := float64(c.SigLen()) / float64(c.RefLen())
	if rate < MinSamplesPerBase || rate > MaxSamplesPerBase {
		return RejectRate
	}
	if c.SigEnd > r.Duration() {
		return RejectSigBounds
	}
	return Accepted
}

// Perm returns the seeded read-visitation order for n reads.
func (s Random) Perm(n int) []int { return s.Rand.Perm(n) }
