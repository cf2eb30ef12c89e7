package design

import (
	"fmt"
	"math"

	"github.com/Davincible/oagen/pkg/galois"
)

// MaxRows bounds the row count of any array built here.
const MaxRows = math.MaxInt32

// Params carries the family specific parameter. Only the field matching the
// family is read.
type Params struct {
	Strength int // busht
	Lambda   int // bosebushl
	Exponent int // addelkempn
}

// Shape is the closed form geometry of a family at a given number of levels.
type Shape struct {
	Family     Family
	Levels     int // q, the symbols are 0..q-1
	FieldOrder int // order of the Galois field the construction runs in
	Rows       int
	MaxColumns int
	Strength   int // strength guaranteed below the defect column count
}

// ShapeOf validates the parameters of f at q levels and returns the array
// geometry. It fails before any field or array is built.
func ShapeOf(f Family, q int, p Params) (Shape, error) {
	if !f.Valid() {
		return Shape{}, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}
	if q < 2 {
		return Shape{}, fmt.Errorf("%s: %w: q=%d", f, galois.ErrInvalidOrder, q)
	}
	prime, _, ok := galois.PrimePower(q)
	if !ok {
		return Shape{}, fmt.Errorf("%s: %w: q=%d", f, galois.ErrNotPrimePower, q)
	}

	s := Shape{Family: f, Levels: q, FieldOrder: q, Strength: 2}
	var err error
	switch f {
	case Bose:
		s.Rows, err = rows(1, q, 2)
		s.MaxColumns = q + 1

	case Bush:
		s.Strength = 3
		s.Rows, err = rows(1, q, 3)
		s.MaxColumns = q + 1

	case BushT:
		t := p.Strength
		if t < 2 {
			return Shape{}, fmt.Errorf("%s: %w: strength %d, Bush designs need strength >= 2", f, ErrUnsupportedParameter, t)
		}
		if t > q+1 {
			return Shape{}, fmt.Errorf("%s: %w: strength %d needs more than the q+1=%d available columns", f, ErrUnsupportedParameter, t, q+1)
		}
		s.Strength = t
		s.Rows, err = rows(1, q, t)
		s.MaxColumns = q + 1

	case BoseBush:
		if prime != 2 {
			return Shape{}, fmt.Errorf("%s: %w: q=%d, this construction needs q=2^r", f, ErrUnsupportedParameter, q)
		}
		s.FieldOrder = 2 * q
		s.Rows, err = rows(2, q, 2)
		s.MaxColumns = 2*q + 1

	case BoseBushLambda:
		lam := p.Lambda
		lp, _, ok := galois.PrimePower(lam)
		if lam < 2 || !ok {
			return Shape{}, fmt.Errorf("%s: %w: lambda=%d must be a prime power > 1", f, ErrUnsupportedParameter, lam)
		}
		if lp != prime {
			return Shape{}, fmt.Errorf("%s: %w: lambda=%d and q=%d must be powers of the same prime", f, ErrUnsupportedParameter, lam, q)
		}
		if lam > MaxRows/q {
			return Shape{}, fmt.Errorf("%s: %w: field order lambda*q too large", f, ErrUnsupportedParameter)
		}
		s.FieldOrder = lam * q
		s.Rows, err = rows(lam, q, 2)
		s.MaxColumns = lam*q + 1

	case AddelKemp, AddelKemp3, AddelKempN:
		if prime == 2 && q > 4 {
			return Shape{}, fmt.Errorf("%s: %w: q=%d, only odd prime powers and q <= 4 are available; use bosebush for q=2^r", f, ErrUnsupportedParameter, q)
		}
		n := 2
		switch f {
		case AddelKemp3:
			n = 3
		case AddelKempN:
			n = p.Exponent
			if n < 2 {
				return Shape{}, fmt.Errorf("%s: %w: exponent %d, need n >= 2", f, ErrUnsupportedParameter, n)
			}
		}
		s.Rows, err = rows(2, q, n)
		if err == nil {
			// 2(q^n-1)/(q-1) - 1, and q^n = Rows/2 fits
			s.MaxColumns = 2*(s.Rows/2-1)/(q-1) - 1
		}
	}
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %w", f, err)
	}

	if !galois.Supported(s.FieldOrder) {
		return Shape{}, fmt.Errorf("%s: %w: GF(%d)", f, galois.ErrUnsupportedField, s.FieldOrder)
	}
	return s, nil
}

// Columns resolves a requested column count: k < 2 selects the maximum.
func (s Shape) Columns(k int) (int, error) {
	if k < 2 {
		k = s.MaxColumns
	}
	if err := s.checkColumns(k); err != nil {
		return 0, err
	}
	return k, nil
}

func (s Shape) checkColumns(k int) error {
	if k < 1 || k > s.MaxColumns {
		return fmt.Errorf("%s: %w: k=%d, need 1 <= k <= %d for q=%d", s.Family, ErrInvalidColumnCount, k, s.MaxColumns, s.Levels)
	}
	if (s.Family == Bush || s.Family == BushT) && k < s.Strength {
		return fmt.Errorf("%s: %w: strength %d needs at least %d columns, got %d", s.Family, ErrInvalidColumnCount, s.Strength, s.Strength, k)
	}
	return nil
}

// rows returns factor * q^e, or an error when it exceeds MaxRows.
func rows(factor, q, e int) (int, error) {
	v, ok := galois.CheckedPow(q, e, MaxRows/factor)
	if !ok {
		return 0, fmt.Errorf("%w: %d*%d^%d rows exceed %d", ErrUnsupportedParameter, factor, q, e, MaxRows)
	}
	return factor * v, nil
}
