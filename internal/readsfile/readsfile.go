// internal/readsfile/readsfile.go
package readsfile

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
)

// Record is one raw read as stored on disk: the DAC signal, its alignment
// and the sequencer's scaling metadata. A .reads file is a snappy-framed gob
// stream of Records.
type Record struct {
	ID        string
	Signal    []int16
	Pointers  []int64
	Reference []byte

	Digitisation float64
	Offset       float64
	Range        float64
	Shift        float64
	Scale        float64
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// Stream decodes records from path ("-" = stdin) and hands each to fn.
// Decoding stops at EOF, on the first fn error, or when ctx is done.
func Stream(ctx context.Context, path string, fn func(Record) error) error {
	rc, err := open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	dec := gob.NewDecoder(snappy.NewReader(rc))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("readsfile: decode %s: %w", path, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// ReadAll collects up to max records (0 = unlimited).
func ReadAll(ctx context.Context, path string, max int) ([]Record, error) {
	var out []Record
	err := Stream(ctx, path, func(rec Record) error {
		out = append(out, rec)
		if max > 0 && len(out) >= max {
			return errStopEarly
		}
		return nil
	})
	if errors.Is(err, errStopEarly) {
		err = nil
	}
	return out, err
}

var errStopEarly = errors.New("readsfile: stop")

// Writer appends records to a .reads file. Used by upstream preparation
// tooling and by tests to build fixtures.
type Writer struct {
	f   *os.File
	sz  *snappy.Writer
	enc *gob.Encoder
}

// Create truncates path and returns a Writer for it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	sz := snappy.NewBufferedWriter(f)
	return &Writer{f: f, sz: sz, enc: gob.NewEncoder(sz)}, nil
}

// Write appends one record.
func (w *Writer) Write(rec Record) error { return w.enc.Encode(rec) }

// Close flushes the snappy frames and closes the file.
func (w *Writer) Close() error {
	if err := w.sz.Close(); err != nil {
		_ = w.f.Close()
		return err
	}
	return w.f.Close()
}
