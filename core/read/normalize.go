// core/read/normalize.go
package read

import "fmt"

// Scaling holds the per-read scaling metadata recorded by the sequencer.
// Shift/Scale are optional read-level normalization parameters; Scale == 0
// means normalization was not requested for this read.
type Scaling struct {
	Range        float64
	Digitisation float64
	Offset       float64
	Shift        float64
	Scale        float64
}

// scaleSignal converts raw DAC values to physical units (pA), then applies
// the optional read normalization.
func scaleSignal(raw []int16, sc Scaling) ([]float32, error) {
	if sc.Digitisation == 0 || sc.Range == 0 {
		return nil, fmt.Errorf("%w: range=%v digitisation=%v",
			ErrMissingMetadata, sc.Range, sc.Digitisation)
	}
	step := sc.Range / sc.Digitisation
	out := make([]float32, len(raw))
	for i, v := range raw {
		phys := step * (float64(v) + sc.Offset)
		if sc.Scale != 0 {
			phys = (phys - sc.Shift) / sc.Scale
		}
		out[i] = float32(phys)
	}
	return out, nil
}

// NewRead scales the raw signal and left-aligns the alignment: samples before
// pointers[0] are dropped and every pointer is shifted down so the returned
// read always has Pointers[0] == 0. Pure transform, no quality filtering.
func NewRead(id string, raw []int16, reference []byte, pointers []int, sc Scaling) (*Read, error) {
	samples, err := scaleSignal(raw, sc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", id, err)
	}
	r := &Read{ID: id, Samples: samples, Reference: reference, Pointers: pointers}
	if err := r.Check(); err != nil {
		return nil, err
	}
	lead := pointers[0]
	r.Samples = samples[lead:]
	shifted := make([]int, len(pointers))
	for i, p := range pointers {
		shifted[i] = p - lead
	}
	r.Pointers = shifted
	return r, nil
}
