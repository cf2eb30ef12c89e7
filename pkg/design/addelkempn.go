package design

import (
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
)

// BuildAddelKempN returns OA(2q^n, ncol, q, 2) for n >= 2 and
// ncol <= 2(q^n-1)/(q-1)-1, generalizing BuildAddelKemp to n coordinates
// x0..x{n-1}.
//
// The first group of columns has one column per nonempty subset S of the
// coordinates and per choice of nonzero coefficients on S minus its first
// member: x_first + sum(coef_i x_i). The second group has, for every
// nonempty subset S of x1..x{n-1} and every c0 in GF(q), the columns
// x0^2 + c0 x0 + x_first + sum(coef_i x_i). The second block of rows
// applies the correction constants exactly as BuildAddelKemp does.
func BuildAddelKempN(gf *galois.Field, n, ncol int) (*matrix.Dense, error) {
	s, err := prepare(AddelKempN, gf, ncol, Params{Exponent: n})
	if err != nil {
		return nil, err
	}
	cr, err := newCorrection(gf)
	if err != nil {
		return nil, err
	}

	half := s.Rows / 2
	a := newArray(s, ncol)
	x := make([]int, n)
	sets := coordinateSubsets(n)
	for r := 0; r < half; r++ {
		digits(r, gf.Q, x)
		akn(gf, cr, sets, writeRow(a, r), x, false)
		akn(gf, cr, sets, writeRow(a, half+r), x, true)
	}
	return a, nil
}

type subset struct {
	first int   // lowest member, taken with coefficient 1
	rest  []int // remaining members, taken with coefficients 1..q-1
}

type subsets struct {
	linear    []subset // nonempty subsets of 0..n-1
	quadratic []subset // nonempty subsets of 1..n-1
}

// coordinateSubsets lists subsets in binary counting order, bit i standing
// for coordinate i.
func coordinateSubsets(n int) subsets {
	var out subsets
	for mask := 1; mask < 1<<n; mask++ {
		out.linear = append(out.linear, subsetOf(mask, 0, n))
	}
	for mask := 1; mask < 1<<(n-1); mask++ {
		out.quadratic = append(out.quadratic, subsetOf(mask, 1, n-1))
	}
	return out
}

func subsetOf(mask, offset, width int) subset {
	var members []int
	for i := 0; i < width; i++ {
		if mask&(1<<i) != 0 {
			members = append(members, i+offset)
		}
	}
	return subset{first: members[0], rest: members[1:]}
}

func akn(gf *galois.Field, cr correction, sets subsets, w *rowWriter, x []int, shifted bool) {
	q := gf.Q

	for _, set := range sets.linear {
		coef := make([]int, len(set.rest))
		resetCoefficients(coef)
		for {
			v := x[set.first]
			if shifted && set.first == 0 && len(coef) > 0 {
				v = gf.Add(v, cr.b[coef[0]])
			}
			v = gf.Add(v, combination(gf, coef, set.rest, x))
			w.put(v)
			if w.full() || !nextCoefficients(coef, q) {
				break
			}
		}
		if w.full() {
			return
		}
	}

	square := gf.Times(x[0], x[0])
	ksquare := gf.Times(cr.kay, square)
	for _, set := range sets.quadratic {
		coef := make([]int, len(set.rest))
		for c0 := 0; c0 < q; c0++ {
			resetCoefficients(coef)
			for {
				var v int
				if shifted {
					v = gf.Add(gf.Add(gf.Add(ksquare, gf.Times(x[0], cr.k[c0])), x[set.first]), cr.c[c0])
				} else {
					v = gf.Add(gf.Add(square, gf.Times(x[0], c0)), x[set.first])
				}
				v = gf.Add(v, combination(gf, coef, set.rest, x))
				w.put(v)
				if w.full() || !nextCoefficients(coef, q) {
					break
				}
			}
			if w.full() {
				return
			}
		}
	}
}

// combination returns sum(coef[i] * x[members[i]]).
func combination(gf *galois.Field, coef, members, x []int) int {
	v := 0
	for i, m := range members {
		v = gf.Add(v, gf.Times(coef[i], x[m]))
	}
	return v
}
