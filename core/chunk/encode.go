// core/chunk/encode.go
package chunk

import "sigchunk-core/read"

// Fixed alphabet, ordered: index 0 is the placeholder, then A,C,G,T.
const Alphabet = "NACGT"

// nacgtCode maps an ASCII base to its full-alphabet index (N=0, A=1 .. T=4).
// acgtCode maps to the A..T index (A=0 .. T=3); bases without an A..T index
// map to 0xFF so that the +1 blank shift lands them on the blank label.
var nacgtCode, acgtCode = func() ([256]uint8, [256]uint8) {
	var full, acgt [256]uint8
	for i := range acgt {
		acgt[i] = 0xFF
	}
	for i, b := range []byte(Alphabet) {
		full[b] = uint8(i)
		full[b|0x20] = uint8(i)
		if i > 0 {
			acgt[b] = uint8(i - 1)
			acgt[b|0x20] = uint8(i - 1)
		}
	}
	return full, acgt
}()

// Encoder turns the reference span of an accepted candidate into integer
// labels. Tiling rows use the direct alphabet index. Blank-shifted rows
// (random sampling) use the A..T index plus one, so label 0 is reserved
// exclusively for the alignment-loss blank, independent of the placeholder
// symbol.
type Encoder struct {
	BlankShift bool
}

// Encode returns the label row for c, unpadded.
func (e Encoder) Encode(r *read.Read, c Candidate) []uint8 {
	out := make([]uint8, c.RefLen())
	for i := 0; i < c.RefLen(); i++ {
		b := r.Reference[c.RefStart+i]
		if e.BlankShift {
			out[i] = acgtCode[b] + 1
		} else {
			out[i] = nacgtCode[b]
		}
	}
	return out
}

// Decode reverses Encode for a padded label row given its true length. Both
// encodings assign A..T the values 1..4, so one reverse mapping serves.
func (e Encoder) Decode(row []uint8, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Alphabet[row[i]]
	}
	return out
}
