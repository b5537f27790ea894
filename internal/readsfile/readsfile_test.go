package readsfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, recs ...Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.reads")
	w, err := Create(path)
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())
	return path
}

func rec(id string, n int) Record {
	sig := make([]int16, n)
	for i := range sig {
		sig[i] = int16(i)
	}
	return Record{
		ID:           id,
		Signal:       sig,
		Pointers:     []int64{0, int64(n)},
		Reference:    []byte("A"),
		Digitisation: 8192,
		Range:        1400,
		Offset:       10,
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	want := []Record{rec("r1", 40), rec("r2", 80)}
	path := fixture(t, want...)

	got, err := ReadAll(context.Background(), path, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadAllMax(t *testing.T) {
	path := fixture(t, rec("r1", 10), rec("r2", 10), rec("r3", 10))

	got, err := ReadAll(context.Background(), path, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, "r2", got[1].ID)
}

func TestStreamPropagatesCallbackError(t *testing.T) {
	path := fixture(t, rec("r1", 10), rec("r2", 10))

	boom := errors.New("boom")
	err := Stream(context.Background(), path, func(Record) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStreamHonorsContext(t *testing.T) {
	path := fixture(t, rec("r1", 10))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Stream(ctx, path, func(Record) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamMissingFile(t *testing.T) {
	err := Stream(context.Background(), filepath.Join(t.TempDir(), "nope.reads"), func(Record) error { return nil })
	assert.Error(t, err)
}

func TestReadAllEmptyFile(t *testing.T) {
	path := fixture(t)
	got, err := ReadAll(context.Background(), path, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
