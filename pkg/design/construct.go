// Package design implements the orthogonal array constructions of Bose,
// Bush, Bose and Bush, and Addelman and Kempthorne over tabulated Galois
// fields.
//
// Every constructor is a pure function of a field and a column count. The
// result is a matrix.Dense of symbols 0..q-1 with one row per run. Requests
// that a family cannot honour fail with ErrInvalidColumnCount or
// ErrUnsupportedParameter before any array is allocated.
package design

import (
	"fmt"

	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
)

// Warning is a non-fatal defect of a successfully constructed array.
type Warning struct {
	Family  Family
	Levels  int
	Columns int
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Construct builds an array of family f over gf. A column count below 2
// selects the family maximum. The maximal column count of the Bose-Bush and
// Addelman-Kempthorne families is accepted but reported as a Warning.
func Construct(f Family, gf *galois.Field, ncol int, p Params) (*matrix.Dense, []Warning, error) {
	if gf == nil {
		return nil, nil, fmt.Errorf("%s: %w: nil field", f, ErrUnsupportedParameter)
	}
	q, err := levels(f, gf, p)
	if err != nil {
		return nil, nil, err
	}
	s, err := ShapeOf(f, q, p)
	if err != nil {
		return nil, nil, err
	}
	if ncol, err = s.Columns(ncol); err != nil {
		return nil, nil, err
	}

	var a *matrix.Dense
	switch f {
	case Bose:
		a, err = BuildBose(gf, ncol)
	case Bush:
		a, err = BuildBush(gf, 3, ncol)
	case BushT:
		a, err = BuildBush(gf, p.Strength, ncol)
	case BoseBush:
		a, err = BuildBoseBush(gf, ncol)
	case BoseBushLambda:
		a, err = BuildBoseBushLambda(gf, p.Lambda, ncol)
	case AddelKemp:
		a, err = BuildAddelKemp(gf, ncol)
	case AddelKemp3:
		a, err = BuildAddelKemp3(gf, ncol)
	case AddelKempN:
		a, err = BuildAddelKempN(gf, p.Exponent, ncol)
	}
	if err != nil {
		return nil, nil, err
	}
	return a, s.Warnings(ncol), nil
}

// Warnings returns the known defects of an array of this shape with k columns.
func (s Shape) Warnings(k int) []Warning {
	if k != s.MaxColumns {
		return nil
	}
	var msg string
	switch s.Family {
	case BoseBush, AddelKemp:
		msg = fmt.Sprintf("%s: k=%d is the maximal column count for q=%d; some triples of columns contain duplicate rows (coincidence defect), k <= %d avoids it",
			s.Family, k, s.Levels, k-1)
	case BoseBushLambda, AddelKemp3, AddelKempN:
		msg = fmt.Sprintf("%s: k=%d is the maximal column count for q=%d; some triples of columns contain duplicate rows (coincidence defect)",
			s.Family, k, s.Levels)
	default:
		return nil
	}
	return []Warning{{Family: s.Family, Levels: s.Levels, Columns: k, Message: msg}}
}

// levels recovers the number of symbols from the field a family runs in.
func levels(f Family, gf *galois.Field, p Params) (int, error) {
	switch f {
	case BoseBush:
		if gf.P != 2 {
			return 0, fmt.Errorf("%s: %w: GF(%d) is not of characteristic 2", f, ErrUnsupportedParameter, gf.Q)
		}
		return gf.Q / 2, nil
	case BoseBushLambda:
		if p.Lambda < 2 || gf.Q%p.Lambda != 0 || gf.Q == p.Lambda {
			return 0, fmt.Errorf("%s: %w: lambda=%d does not split GF(%d)", f, ErrUnsupportedParameter, p.Lambda, gf.Q)
		}
		return gf.Q / p.Lambda, nil
	}
	return gf.Q, nil
}

// prepare validates a direct constructor call without clamping.
func prepare(f Family, gf *galois.Field, ncol int, p Params) (Shape, error) {
	if gf == nil {
		return Shape{}, fmt.Errorf("%s: %w: nil field", f, ErrUnsupportedParameter)
	}
	q, err := levels(f, gf, p)
	if err != nil {
		return Shape{}, err
	}
	s, err := ShapeOf(f, q, p)
	if err != nil {
		return Shape{}, err
	}
	if s.FieldOrder != gf.Q {
		return Shape{}, fmt.Errorf("%s: %w: needs GF(%d), got GF(%d)", f, ErrUnsupportedParameter, s.FieldOrder, gf.Q)
	}
	if err := s.checkColumns(ncol); err != nil {
		return Shape{}, err
	}
	return s, nil
}
