package read

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReadScalesToPhysicalUnits(t *testing.T) {
	raw := []int16{0, 100}
	sc := Scaling{Range: 2000, Digitisation: 1000, Offset: 10}

	r, err := NewRead("r1", raw, []byte("A"), []int{0, 2}, sc)
	require.NoError(t, err)

	// physical = (range/digitisation) * (raw + offset)
	assert.InDelta(t, 20.0, r.Samples[0], 1e-6)
	assert.InDelta(t, 220.0, r.Samples[1], 1e-6)
}

func TestNewReadAppliesShiftScale(t *testing.T) {
	raw := []int16{0, 100}
	sc := Scaling{Range: 2000, Digitisation: 1000, Offset: 10, Shift: 10, Scale: 2}

	r, err := NewRead("r1", raw, []byte("A"), []int{0, 2}, sc)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, r.Samples[0], 1e-6)
	assert.InDelta(t, 105.0, r.Samples[1], 1e-6)
}

func TestNewReadLeftAlignsPointers(t *testing.T) {
	raw := []int16{1, 2, 3, 4, 5, 6}
	sc := Scaling{Range: 1, Digitisation: 1}

	r, err := NewRead("r1", raw, []byte("AC"), []int{2, 3, 5}, sc)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3}, r.Pointers)
	assert.Equal(t, 4, r.Duration())
	// The dropped lead samples are the ones before the first mapped base.
	assert.InDelta(t, 3.0, r.Samples[0], 1e-6)
}

func TestNewReadMissingMetadata(t *testing.T) {
	_, err := NewRead("r1", []int16{1}, []byte("A"), []int{0, 1}, Scaling{Range: 100})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingMetadata))
}

func TestCheckRejectsLengthMismatch(t *testing.T) {
	r := &Read{ID: "r", Samples: make([]float32, 4), Reference: []byte("ACG"), Pointers: []int{0, 1, 2}}
	assert.True(t, errors.Is(r.Check(), ErrPointerLength))
}

func TestCheckRejectsDecreasingPointers(t *testing.T) {
	r := &Read{ID: "r", Samples: make([]float32, 4), Reference: []byte("AC"), Pointers: []int{0, 3, 2}}
	assert.True(t, errors.Is(r.Check(), ErrPointerOrder))
}

func TestCheckRejectsPointerPastDuration(t *testing.T) {
	r := &Read{ID: "r", Samples: make([]float32, 4), Reference: []byte("AC"), Pointers: []int{0, 2, 5}}
	assert.True(t, errors.Is(r.Check(), ErrPointerBounds))
}

func TestCheckAcceptsValidRead(t *testing.T) {
	r := &Read{ID: "r", Samples: make([]float32, 4), Reference: []byte("AC"), Pointers: []int{0, 2, 4}}
	assert.NoError(t, r.Check())
}
