// internal/motif/bases.go
package motif

/* --------------------------- base lookup tables --------------------------- */

// baseCol maps a sequence byte to its weight-matrix column (A,C,G,T = 0..3).
// Every other byte maps to -1 and never scores.
var baseCol [256]int8

// complement pairs IUPAC symbols; zero means "not a base".
var complement [256]byte

func init() {
	for i := range baseCol {
		baseCol[i] = -1
	}
	for i, b := range []byte("ACGT") {
		baseCol[b] = int8(i)
		baseCol[b+'a'-'A'] = int8(i)
	}

	for _, p := range []string{"AT", "CG", "GC", "TA", "RY", "YR", "SS", "WW", "KM", "MK", "BV", "VB", "DH", "HD", "NN"} {
		complement[p[0]] = p[1]
	}
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// RevComp returns the reverse complement of seq. Lower-case input is
// upper-cased; symbols outside the IUPAC alphabet become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[upper(seq[n-1-i])]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
