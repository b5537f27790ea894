// core/read/read.go
package read

import (
	"errors"
	"fmt"
)

// Input-integrity errors. A read failing Check is skipped and counted by the
// caller; it never aborts the run.
var (
	ErrMissingMetadata = errors.New("read: missing scaling metadata")
	ErrPointerLength   = errors.New("read: pointer array length != reference length + 1")
	ErrPointerOrder    = errors.New("read: pointer array is not non-decreasing")
	ErrPointerBounds   = errors.New("read: pointer exceeds signal duration")
)

// Read is one sequencing event's normalized signal plus its reference
// alignment. Immutable after NewRead.
type Read struct {
	ID        string
	Samples   []float32
	Reference []byte // ASCII bases, alphabet N/A/C/G/T
	Pointers  []int  // Pointers[i] = sample index where base i begins; len = len(Reference)+1
}

// Duration returns the number of signal samples.
func (r *Read) Duration() int { return len(r.Samples) }

// RefLen returns the number of reference bases.
func (r *Read) RefLen() int { return len(r.Reference) }

// Check validates the alignment invariants:
//
//	len(Pointers) == len(Reference)+1
//	0 <= Pointers[i] <= Pointers[i+1] <= len(Samples)
func (r *Read) Check() error {
	if len(r.Pointers) != len(r.Reference)+1 {
		return fmt.Errorf("%w: %d pointers for %d bases (read %s)",
			ErrPointerLength, len(r.Pointers), len(r.Reference), r.ID)
	}
	prev := 0
	for i, p := range r.Pointers {
		if p < prev {
			return fmt.Errorf("%w: pointer %d at base %d after %d (read %s)",
				ErrPointerOrder, p, i, prev, r.ID)
		}
		prev = p
	}
	if prev > len(r.Samples) {
		return fmt.Errorf("%w: pointer %d > duration %d (read %s)",
			ErrPointerBounds, prev, len(r.Samples), r.ID)
	}
	return nil
}
