// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"sigchunk-core/chunk"
	"sigchunk-core/read"
	"sigchunk/internal/logging"
	"sigchunk/internal/readsfile"
	"sigchunk/internal/writers"
)

// Options are the strategy-independent run parameters.
type Options struct {
	ReadsFile string
	OutFile   string
	MaxReads  int // cap on reads scanned (0 = all)
	Quiet     bool
}

// Pipeline binds one windowing strategy to the shared run loop. The loop
// itself is strictly sequential: reads in Order, candidates in Plan order,
// one verdict per candidate, accepted rows appended under the fill cursor.
type Pipeline struct {
	Name     string
	Strategy chunk.Strategy
	Encoder  chunk.Encoder

	// ChunkWidth fixes the signal columns of the output matrix; LabelWidth
	// fixes the label columns (0 = widest accepted row, decided at the end).
	ChunkWidth int
	LabelWidth int

	// EmitSigLens writes the per-row signal length vector; only variable
	// width windows carry information there.
	EmitSigLens bool

	// Capacity sizes the dataset upfront from the normalized reads. Order
	// returns the read-visitation order (nil = file order).
	Capacity func(reads []*read.Read) int
	Order    func(n int) []int
}

// Run executes the pipeline: load, normalize, plan/validate/encode/append,
// finalize, persist, report. Returns a process exit code.
func Run(ctx context.Context, stdout, stderr io.Writer, o Options, p Pipeline) int {
	log := logging.New(stderr, o.Quiet)
	log.Info().
		Str("strategy", p.Name).
		Str("reads", o.ReadsFile).
		Str("out", o.OutFile).
		Msg("starting run")

	records, err := readsfile.ReadAll(ctx, o.ReadsFile, o.MaxReads)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	reads, skipped := normalizeAll(records, log)

	ds := chunk.NewDataset(p.Capacity(reads), p.ChunkWidth, p.LabelWidth)
	rep := ds.Report()
	rep.SkippedReads = skipped

	order := make([]int, len(reads))
	for i := range order {
		order[i] = i
	}
	if p.Order != nil {
		order = p.Order(len(reads))
	}

	bar := newBar(stderr, len(order), o.Quiet)

	for _, idx := range order {
		if ctx.Err() != nil {
			return 130
		}
		if ds.Full() {
			break
		}
		r := reads[idx]
		rep.Reads++
		for _, c := range p.Strategy.Plan(r) {
			if ds.Full() {
				break
			}
			reason := p.Strategy.Validate(r, c)
			rep.Count(reason)
			if reason != chunk.Accepted {
				continue
			}
			label := p.Encoder.Encode(r, c)
			if err := ds.Append(r.Samples[c.SigStart:c.SigEnd], label); err != nil {
				fmt.Fprintln(stderr, err)
				return 3
			}
		}
		bar.increment()
	}
	bar.finish()

	arrays := ds.Finalize()
	if err := writers.WriteDataset(o.OutFile, arrays, p.EmitSigLens); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	if err := writers.WriteStats(stdout, rep); err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return 3
	}

	log.Info().
		Int("reads", rep.Reads).
		Int("skipped_reads", rep.SkippedReads).
		Int("candidates", rep.Candidates).
		Int("accepted", rep.Accepted).
		Int("rows", arrays.Rows).
		Msg("run complete")
	return 0
}

// normalizeAll converts raw records into normalized reads. Reads failing the
// integrity checks are skipped and counted; they never abort the run.
func normalizeAll(records []readsfile.Record, log zerolog.Logger) ([]*read.Read, int) {
	reads := make([]*read.Read, 0, len(records))
	skipped := 0
	for _, rec := range records {
		pointers := make([]int, len(rec.Pointers))
		for i, p := range rec.Pointers {
			pointers[i] = int(p)
		}
		r, err := read.NewRead(rec.ID, rec.Signal, rec.Reference, pointers, read.Scaling{
			Range:        rec.Range,
			Digitisation: rec.Digitisation,
			Offset:       rec.Offset,
			Shift:        rec.Shift,
			Scale:        rec.Scale,
		})
		if err != nil {
			skipped++
			log.Warn().Str("read", rec.ID).Err(err).Msg("skipping read")
			continue
		}
		reads = append(reads, r)
	}
	return reads, skipped
}

// progressBar wraps mpb so the run loop stays free of nil checks.
type progressBar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newBar(w io.Writer, total int, quiet bool) *progressBar {
	if quiet {
		return &progressBar{}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("reads: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)
	return &progressBar{p: p, bar: bar}
}

func (b *progressBar) increment() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

func (b *progressBar) finish() {
	if b.p == nil {
		return
	}
	b.bar.SetTotal(-1, true) // complete even when the run stopped early
	b.p.Wait()
}
