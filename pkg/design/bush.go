package design

import (
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
)

// BuildBush returns OA(q^t, ncol, q, t) for t <= ncol <= q+1. Row r reads
// its t base-q digits as the coefficients of a polynomial of degree t-1;
// column 0 is the leading coefficient and column c >= 1 the polynomial
// evaluated at field element c-1.
func BuildBush(gf *galois.Field, t, ncol int) (*matrix.Dense, error) {
	f := BushT
	if t == 3 {
		f = Bush
	}
	s, err := prepare(f, gf, ncol, Params{Strength: t})
	if err != nil {
		return nil, err
	}

	a := newArray(s, ncol)
	coef := make([]int, t)
	for r := 0; r < s.Rows; r++ {
		galois.IntToPoly(r, gf.Q, coef)
		w := writeRow(a, r)
		w.put(coef[t-1])
		for x := 0; x < ncol-1; x++ {
			w.put(gf.Eval(coef, x))
		}
	}
	return a, nil
}
