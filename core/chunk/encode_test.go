package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigchunk-core/read"
)

func refRead(bases string) *read.Read {
	ptr := make([]int, len(bases)+1)
	for i := range ptr {
		ptr[i] = i * 10
	}
	return &read.Read{
		ID:        "enc",
		Samples:   make([]float32, len(bases)*10),
		Reference: []byte(bases),
		Pointers:  ptr,
	}
}

func TestEncodeDirectAlphabetIndex(t *testing.T) {
	r := refRead("NACGT")
	row := Encoder{}.Encode(r, Candidate{RefStart: 0, RefEnd: 5})
	assert.Equal(t, []uint8{0, 1, 2, 3, 4}, row)
}

func TestEncodeBlankShift(t *testing.T) {
	r := refRead("ACGT")
	row := Encoder{BlankShift: true}.Encode(r, Candidate{RefStart: 0, RefEnd: 4})
	// Valid bases occupy 1..4; label 0 stays reserved for the blank.
	assert.Equal(t, []uint8{1, 2, 3, 4}, row)
}

func TestEncodeLowercase(t *testing.T) {
	r := refRead("acgt")
	row := Encoder{}.Encode(r, Candidate{RefStart: 0, RefEnd: 4})
	assert.Equal(t, []uint8{1, 2, 3, 4}, row)
}

func TestEncodeSubSpan(t *testing.T) {
	r := refRead("AACCGGTT")
	row := Encoder{}.Encode(r, Candidate{RefStart: 2, RefEnd: 6})
	assert.Equal(t, []uint8{2, 2, 3, 3}, row)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, enc := range []Encoder{{}, {BlankShift: true}} {
		r := refRead("GATTACACGT")
		c := Candidate{RefStart: 0, RefEnd: r.RefLen()}

		row := enc.Encode(r, c)
		// Pad the row as the assembler would; Decode must strip it again.
		padded := make([]uint8, 32)
		copy(padded, row)

		got := enc.Decode(padded, len(row))
		require.Equal(t, r.Reference, got)
	}
}
