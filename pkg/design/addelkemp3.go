package design

import (
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
)

// BuildAddelKemp3 returns OA(2q^3, ncol, q, 2) for ncol <= 2q^2+2q+1, using
// the n=3 construction of Addelman and Kempthorne (1961) with coordinates
// (x, y, z) = (i1, i2, i3). The layout follows their OA(54, 25, 3, 2)
// example. Triple coincidences occur well below the maximal column count.
func BuildAddelKemp3(gf *galois.Field, ncol int) (*matrix.Dense, error) {
	s, err := prepare(AddelKemp3, gf, ncol, Params{})
	if err != nil {
		return nil, err
	}
	cr, err := newCorrection(gf)
	if err != nil {
		return nil, err
	}

	q := gf.Q
	a := newArray(s, ncol)
	half := q * q * q
	for i1 := 0; i1 < q; i1++ {
		square := gf.Times(i1, i1)
		ksquare := gf.Times(cr.kay, square)
		for i2 := 0; i2 < q; i2++ {
			for i3 := 0; i3 < q; i3++ {
				r := i3 + q*i2 + q*q*i1
				ak3Plain(gf, writeRow(a, r), i1, i2, i3, square)
				ak3Shifted(gf, cr, writeRow(a, half+r), i1, i2, i3, ksquare)
			}
		}
	}
	return a, nil
}

func ak3Plain(gf *galois.Field, w *rowWriter, i1, i2, i3, square int) {
	q := gf.Q
	w.put(i2) // y
	for m := 1; m < q; m++ {
		w.put(gf.Add(i1, gf.Times(m, i2))) // x + my
	}
	w.put(i3) // z
	for m := 1; m < q; m++ {
		w.put(gf.Add(i1, gf.Times(m, i3))) // x + mz
	}
	for m := 1; m < q; m++ {
		w.put(gf.Add(i2, gf.Times(m, i3))) // y + mz
	}
	for m1 := 1; m1 < q; m1++ {
		for m2 := 1; m2 < q; m2++ {
			w.put(gf.Add(i1, gf.Add(gf.Times(m1, i2), gf.Times(m2, i3)))) // x + m1 y + m2 z
		}
	}
	for m := 0; m < q; m++ {
		w.put(gf.Add(square, gf.Add(i2, gf.Times(m, i1)))) // x^2 + y + mx
	}
	for m := 0; m < q; m++ {
		w.put(gf.Add(square, gf.Add(i3, gf.Times(m, i1)))) // x^2 + z + mx
	}
	for m1 := 0; m1 < q; m1++ {
		for m2 := 1; m2 < q; m2++ {
			w.put(gf.Add(square, gf.Add(i2, gf.Add(gf.Times(m2, i3), gf.Times(m1, i1))))) // x^2 + y + m2 z + m1 x
		}
	}
	w.put(i1) // x
}

func ak3Shifted(gf *galois.Field, cr correction, w *rowWriter, i1, i2, i3, ksquare int) {
	q := gf.Q
	w.put(i2)
	for m := 1; m < q; m++ {
		w.put(gf.Add(gf.Add(i1, gf.Times(m, i2)), cr.b[m]))
	}
	w.put(i3)
	for m := 1; m < q; m++ {
		w.put(gf.Add(gf.Add(i1, gf.Times(m, i3)), cr.b[m]))
	}
	for m := 1; m < q; m++ {
		w.put(gf.Add(i2, gf.Times(m, i3)))
	}
	for m1 := 1; m1 < q; m1++ {
		for m2 := 1; m2 < q; m2++ {
			v := gf.Add(i1, gf.Add(gf.Times(m1, i2), gf.Times(m2, i3)))
			w.put(gf.Add(v, cr.b[m1]))
		}
	}
	for m := 0; m < q; m++ {
		v := gf.Add(ksquare, gf.Add(i2, gf.Times(cr.k[m], i1)))
		w.put(gf.Add(v, cr.c[m]))
	}
	for m := 0; m < q; m++ {
		v := gf.Add(ksquare, gf.Add(i3, gf.Times(cr.k[m], i1)))
		w.put(gf.Add(v, cr.c[m]))
	}
	for m1 := 0; m1 < q; m1++ {
		for m2 := 1; m2 < q; m2++ {
			v := gf.Add(ksquare, gf.Add(i2, gf.Add(gf.Times(m2, i3), gf.Times(cr.k[m1], i1))))
			w.put(gf.Add(v, cr.c[m1]))
		}
	}
	w.put(i1)
}
