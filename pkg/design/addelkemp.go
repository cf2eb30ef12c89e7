package design

import (
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
)

// BuildAddelKemp returns OA(2q^2, ncol, q, 2) for ncol <= 2q+1, using the
// n=2 construction of Addelman and Kempthorne (1961). q must be an odd
// prime power, 2 or 4. Up to 2q columns are free of coincidence defects.
//
// Row (i,j) of the first block holds
//
//	j, i+m*j (m=1..q-1), j+m*i+i^2 (m=0..q-1), i
//
// and the second block shifts those by the correction constants.
func BuildAddelKemp(gf *galois.Field, ncol int) (*matrix.Dense, error) {
	s, err := prepare(AddelKemp, gf, ncol, Params{})
	if err != nil {
		return nil, err
	}
	cr, err := newCorrection(gf)
	if err != nil {
		return nil, err
	}

	q := gf.Q
	a := newArray(s, ncol)
	for i := 0; i < q; i++ {
		square := gf.Times(i, i)
		for j := 0; j < q; j++ {
			w := writeRow(a, i*q+j)
			w.put(j)
			for m := 1; m < q; m++ {
				w.put(gf.Add(i, gf.Times(m, j)))
			}
			for m := 0; m < q; m++ {
				w.put(gf.Add(gf.Add(j, gf.Times(m, i)), square))
			}
			w.put(i)
		}
	}

	for i := 0; i < q; i++ {
		ksquare := gf.Times(cr.kay, gf.Times(i, i))
		for j := 0; j < q; j++ {
			w := writeRow(a, q*q+i*q+j)
			w.put(j)
			for m := 1; m < q; m++ {
				w.put(gf.Add(gf.Add(i, gf.Times(m, j)), cr.b[m]))
			}
			w.put(gf.Add(ksquare, j))
			for m := 1; m < q; m++ {
				v := gf.Add(j, gf.Add(ksquare, gf.Times(i, cr.k[m])))
				w.put(gf.Add(v, cr.c[m]))
			}
			w.put(i)
		}
	}
	return a, nil
}
