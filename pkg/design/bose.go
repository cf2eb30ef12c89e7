package design

import (
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
)

// BuildBose returns OA(q^2, ncol, q, 2) for 1 <= ncol <= q+1. Row (i,j)
// holds i, j and then j + i*(c-1) for every further column c.
func BuildBose(gf *galois.Field, ncol int) (*matrix.Dense, error) {
	s, err := prepare(Bose, gf, ncol, Params{})
	if err != nil {
		return nil, err
	}

	a := newArray(s, ncol)
	r := 0
	for i := 0; i < gf.Q; i++ {
		for j := 0; j < gf.Q; j++ {
			w := writeRow(a, r)
			w.put(i)
			w.put(j)
			for c := 2; c < ncol; c++ {
				w.put(gf.Add(j, gf.Times(i, c-1)))
			}
			r++
		}
	}
	return a, nil
}
