// core/chunk/dataset.go
package chunk

import "fmt"

// Report carries the per-run acceptance and rejection tallies. It is owned
// by the Dataset and threaded explicitly through the pipeline; there is no
// ambient counter state.
type Report struct {
	Reads        int // reads whose candidates were processed
	SkippedReads int // reads dropped for input-integrity failures
	Candidates   int // candidates generated, accepted + rejected
	Accepted     int
	Rejected     map[Reason]int
}

// NewReport returns an empty report.
func NewReport() *Report { return &Report{Rejected: make(map[Reason]int)} }

// Count tallies one validator verdict.
func (p *Report) Count(reason Reason) {
	p.Candidates++
	if reason == Accepted {
		p.Accepted++
		return
	}
	p.Rejected[reason]++
}

// Arrays is the finalized output of a run: four dense arrays with exactly one
// row per accepted chunk. Matrices are flat row-major.
type Arrays struct {
	Rows       int
	ChunkWidth int      // signal columns
	LabelWidth int      // label columns
	Signals    []float32
	SigLens    []uint32 // true window length per row
	Labels     []uint8
	RefLens    []uint32 // true label length per row
}

// Dataset assembles accepted chunks into the output arrays. Storage is
// allocated once from an upfront capacity; a fill cursor advances per
// accepted chunk and Finalize trims to the cursor, so capacity is an upper
// bound, never a delivered guarantee.
//
// The signal matrix is dense from the start (its width is fixed by the
// strategy). Label rows stay ragged until Finalize because the tiling label
// width is only known once the whole run has been seen; random-sampling
// datasets pass their fixed width up front instead.
type Dataset struct {
	chunkWidth int
	labelWidth int // 0 = widest accepted row, decided at Finalize
	capacity   int

	signals []float32
	sigLens []uint32
	labels  [][]uint8
	refLens []uint32
	n       int

	report *Report
}

// NewDataset allocates storage for at most capacity chunks of chunkWidth
// signal samples. labelWidth fixes the label columns; pass 0 to defer the
// width to the widest accepted row.
func NewDataset(capacity, chunkWidth, labelWidth int) *Dataset {
	return &Dataset{
		chunkWidth: chunkWidth,
		labelWidth: labelWidth,
		capacity:   capacity,
		signals:    make([]float32, capacity*chunkWidth),
		sigLens:    make([]uint32, 0, capacity),
		labels:     make([][]uint8, 0, capacity),
		refLens:    make([]uint32, 0, capacity),
		report:     NewReport(),
	}
}

// Report exposes the running tallies.
func (d *Dataset) Report() *Report { return d.report }

// Len returns the fill cursor (accepted chunks so far).
func (d *Dataset) Len() int { return d.n }

// Full reports whether the capacity has been reached.
func (d *Dataset) Full() bool { return d.n >= d.capacity }

// Append writes one accepted chunk at the next free row. The signal window
// is zero-padded to the chunk width; the label row is stored unpadded.
func (d *Dataset) Append(sig []float32, label []uint8) error {
	if d.Full() {
		return fmt.Errorf("chunk: dataset capacity %d exceeded", d.capacity)
	}
	if len(sig) > d.chunkWidth {
		return fmt.Errorf("chunk: signal window %d wider than %d", len(sig), d.chunkWidth)
	}
	if d.labelWidth > 0 && len(label) > d.labelWidth {
		return fmt.Errorf("chunk: label row %d wider than %d", len(label), d.labelWidth)
	}
	copy(d.signals[d.n*d.chunkWidth:], sig)
	d.sigLens = append(d.sigLens, uint32(len(sig)))
	d.labels = append(d.labels, label)
	d.refLens = append(d.refLens, uint32(len(label)))
	d.n++
	return nil
}

// Finalize trims every array to the fill cursor and densifies the label
// matrix, zero-padding each row to the label width. Call exactly once.
func (d *Dataset) Finalize() *Arrays {
	w := d.labelWidth
	if w == 0 {
		for _, row := range d.labels {
			if len(row) > w {
				w = len(row)
			}
		}
	}
	labels := make([]uint8, d.n*w)
	for i, row := range d.labels {
		copy(labels[i*w:], row)
	}
	return &Arrays{
		Rows:       d.n,
		ChunkWidth: d.chunkWidth,
		LabelWidth: w,
		Signals:    d.signals[:d.n*d.chunkWidth],
		SigLens:    d.sigLens[:d.n],
		Labels:     labels,
		RefLens:    d.refLens[:d.n],
	}
}
