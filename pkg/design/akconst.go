package design

import (
	"fmt"

	"github.com/Davincible/oagen/pkg/galois"
)

// correction holds the Addelman-Kempthorne constants kay, b, c and k of one
// field. It is computed once per construction and shared, read-only, by the
// row blocks that need it. Index 0 of b, c and k is unused and stays 0.
type correction struct {
	kay int
	b   []int
	c   []int
	k   []int
}

func newCorrection(gf *galois.Field) (correction, error) {
	if gf.P == 2 {
		return evenCorrection(gf)
	}
	return oddCorrection(gf)
}

// oddCorrection derives the constants for odd characteristic. kay is a
// non-residue; 4 is replaced by 1 in characteristic 3 where 4 = 1.
func oddCorrection(gf *galois.Field) (correction, error) {
	q := gf.Q
	four := 4
	if gf.P == 3 {
		four = 1
	}

	kay := 0
	for i := 2; i < q; i++ {
		if gf.Root[i] == galois.NoRoot {
			kay = i
		}
	}
	if kay == 0 {
		return correction{}, fmt.Errorf("%w: GF(%d) has no non-residue", galois.ErrInconsistentField, q)
	}

	cr := correction{kay: kay, b: make([]int, q), c: make([]int, q), k: make([]int, q)}
	num := gf.Add(kay, gf.P-1) // kay - 1
	invFour := gf.Inv[four]
	for i := 1; i < q; i++ {
		den := gf.Times(gf.Times(kay, four), i)
		cr.b[i] = gf.Times(num, gf.Inv[den])
		cr.k[i] = gf.Times(kay, i)
		cr.c[i] = gf.Times(gf.Times(gf.Times(i, i), num), invFour)
	}
	return cr, nil
}

// evenCorrection covers the tabulated even fields GF(2) and GF(4).
func evenCorrection(gf *galois.Field) (correction, error) {
	q := gf.Q
	cr := correction{kay: 1, b: make([]int, q), c: make([]int, q), k: make([]int, q)}
	switch q {
	case 2:
		cr.b[1], cr.c[1] = 1, 1
	case 4:
		copy(cr.b, []int{0, 2, 1, 3})
		copy(cr.c, []int{0, 2, 1, 3})
	default:
		return correction{}, fmt.Errorf("%w: q=%d, Addelman-Kempthorne constants exist for even q <= 4 only", ErrUnsupportedParameter, q)
	}
	for i := 1; i < q; i++ {
		cr.k[i] = i
	}
	return cr, nil
}
