// internal/writers/hdf5.go
package writers

import (
	"fmt"

	"gonum.org/v1/hdf5"

	"sigchunk-core/chunk"
)

// Dataset names inside the output file. They match what downstream training
// loaders expect.
const (
	DsetChunks    = "chunks"
	DsetChunkLens = "chunk_lengths"
	DsetRefs      = "references"
	DsetRefLens   = "reference_lengths"
)

// WriteDataset persists the finalized arrays as one HDF5 file. The
// chunk_lengths dataset is only emitted when withSigLens is set: tiling
// windows are uniform width, so their length vector carries no information.
func WriteDataset(path string, a *chunk.Arrays, withSigLens bool) (err error) {
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return fmt.Errorf("writers: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("writers: close %s: %w", path, cerr)
		}
	}()

	if err = writeMatrix(f, DsetChunks, a.Signals, a.Rows, a.ChunkWidth); err != nil {
		return err
	}
	if withSigLens {
		if err = writeVector(f, DsetChunkLens, a.SigLens); err != nil {
			return err
		}
	}
	if err = writeMatrix(f, DsetRefs, a.Labels, a.Rows, a.LabelWidth); err != nil {
		return err
	}
	return writeVector(f, DsetRefLens, a.RefLens)
}

func writeMatrix[T any](f *hdf5.File, name string, data []T, rows, cols int) error {
	return writeDset(f, name, data, []uint{uint(rows), uint(cols)})
}

func writeVector[T any](f *hdf5.File, name string, data []T) error {
	return writeDset(f, name, data, []uint{uint(len(data))})
}

func writeDset[T any](f *hdf5.File, name string, data []T, dims []uint) error {
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return fmt.Errorf("writers: dataspace %s: %w", name, err)
	}
	defer func() { _ = space.Close() }()

	var zero T
	dtype, err := hdf5.NewDatatypeFromValue(zero)
	if err != nil {
		return fmt.Errorf("writers: datatype %s: %w", name, err)
	}
	defer func() { _ = dtype.Close() }()

	dset, err := f.CreateDataset(name, dtype, space)
	if err != nil {
		return fmt.Errorf("writers: dataset %s: %w", name, err)
	}
	defer func() { _ = dset.Close() }()

	if len(data) == 0 {
		return nil
	}
	if err := dset.Write(&data); err != nil {
		return fmt.Errorf("writers: write %s: %w", name, err)
	}
	return nil
}
