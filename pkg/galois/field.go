// Package galois builds finite fields GF(p^n) as explicit lookup tables.
//
// Elements are coded as integers 0..q-1. Element i corresponds to the
// polynomial whose base-p digits (least significant first) are the digits of
// i, so 0 and 1 are the additive and multiplicative identities. Extension
// fields are reduced with a tabulated characteristic polynomial; the table
// covers every prime p <= 47 up to the exponents keeping q below about 10^9.
package galois

import "fmt"

// NoRoot marks an element without a square root in Field.Root, and the
// missing reciprocal of 0 in Field.Inv.
const NoRoot = -1

type order struct {
	P, N int
}

// Field is an immutable GF(q) with q = P^N. All slices are read-only once
// New returns.
type Field struct {
	P int // characteristic
	N int // extension degree
	Q int // order, P^N

	Xton []int   // x^N reduction vector, length N
	Poly [][]int // Q x N base-P digits, least significant first
	Plus [][]int // Q x Q sum codes
	Mul  [][]int // Q x Q product codes
	Inv  []int   // multiplicative inverse; Inv[0] == NoRoot
	Neg  []int   // additive inverse
	Root []int   // square root or NoRoot
}

// Characteristic returns the reduction vector tabulated for GF(p^n).
func Characteristic(p, n int) ([]int, bool) {
	if n == 1 {
		return []int{0}, true
	}
	xton, ok := characteristic[order{p, n}]
	if !ok {
		return nil, false
	}
	out := make([]int, len(xton))
	copy(out, xton)
	return out, true
}

// Supported reports whether New can build a field of order q.
func Supported(q int) bool {
	p, n, ok := PrimePower(q)
	if !ok {
		return false
	}
	_, ok = Characteristic(p, n)
	return ok
}

// New builds the field of order q.
func New(q int) (*Field, error) {
	if q < 2 {
		return nil, fmt.Errorf("%w: q=%d", ErrInvalidOrder, q)
	}

	p, n, ok := PrimePower(q)
	if !ok {
		return nil, fmt.Errorf("%w: q=%d", ErrNotPrimePower, q)
	}

	xton, ok := Characteristic(p, n)
	if !ok {
		return nil, fmt.Errorf("%w: GF(%d) = GF(%d^%d)", ErrUnsupportedField, q, p, n)
	}

	gf := &Field{P: p, N: n, Q: q, Xton: xton}
	gf.fillPolynomials()
	gf.fillSumsAndProducts()
	if err := gf.fillInverses(); err != nil {
		return nil, err
	}
	if err := gf.fillNegatives(); err != nil {
		return nil, err
	}
	gf.fillRoots()

	return gf, nil
}

// MustNew is New for orders known to be supported, such as constants in tests.
func MustNew(q int) *Field {
	gf, err := New(q)
	if err != nil {
		panic(err)
	}
	return gf
}

// Add returns the code of a+b.
func (gf *Field) Add(a, b int) int {
	return gf.Plus[a][b]
}

// Times returns the code of a*b.
func (gf *Field) Times(a, b int) int {
	return gf.Mul[a][b]
}

// Eval evaluates the polynomial coef[0] + coef[1]*x + ... + coef[d]*x^d at x
// with Horner's rule, all arithmetic in the field.
func (gf *Field) Eval(coef []int, x int) int {
	ans := 0
	for i := len(coef) - 1; i >= 0; i-- {
		ans = gf.Plus[gf.Mul[ans][x]][coef[i]]
	}
	return ans
}

// fillPolynomials enumerates the elements as a base-P counter over N digits,
// least significant digit first, starting at the all-zero row.
func (gf *Field) fillPolynomials() {
	gf.Poly = make([][]int, gf.Q)
	gf.Poly[0] = make([]int, gf.N)
	for i := 1; i < gf.Q; i++ {
		row := make([]int, gf.N)
		copy(row, gf.Poly[i-1])
		click := 0
		for row[click] == gf.P-1 {
			row[click] = 0
			click++
		}
		row[click]++
		gf.Poly[i] = row
	}
}

func (gf *Field) fillSumsAndProducts() {
	gf.Plus = make([][]int, gf.Q)
	gf.Mul = make([][]int, gf.Q)
	tmp := make([]int, gf.N)
	long := make([]int, 2*gf.N-1)

	for i := 0; i < gf.Q; i++ {
		gf.Plus[i] = make([]int, gf.Q)
		gf.Mul[i] = make([]int, gf.Q)
		for j := 0; j < gf.Q; j++ {
			PolySum(gf.P, gf.Poly[i], gf.Poly[j], tmp)
			gf.Plus[i][j] = PolyToInt(gf.P, tmp)
			polyProd(gf.P, gf.Xton, gf.Poly[i], gf.Poly[j], tmp, long)
			gf.Mul[i][j] = PolyToInt(gf.P, tmp)
		}
	}
}

func (gf *Field) fillInverses() error {
	gf.Inv = make([]int, gf.Q)
	for i := 0; i < gf.Q; i++ {
		gf.Inv[i] = NoRoot
		for j := 0; j < gf.Q; j++ {
			if gf.Mul[i][j] == 1 {
				gf.Inv[i] = j
			}
		}
		if i > 0 && gf.Inv[i] <= 0 {
			return fmt.Errorf("%w: GF(%d) element %d has no reciprocal", ErrInconsistentField, gf.Q, i)
		}
	}
	return nil
}

func (gf *Field) fillNegatives() error {
	gf.Neg = make([]int, gf.Q)
	for i := 0; i < gf.Q; i++ {
		gf.Neg[i] = NoRoot
		for j := 0; j < gf.Q; j++ {
			if gf.Plus[i][j] == 0 {
				gf.Neg[i] = j
			}
		}
		if i > 0 && gf.Neg[i] <= 0 {
			return fmt.Errorf("%w: GF(%d) element %d has no negative", ErrInconsistentField, gf.Q, i)
		}
	}
	return nil
}

func (gf *Field) fillRoots() {
	gf.Root = make([]int, gf.Q)
	for i := range gf.Root {
		gf.Root[i] = NoRoot
	}
	// the last j with j*j == i wins, matching a full scan per element
	for j := 0; j < gf.Q; j++ {
		gf.Root[gf.Mul[j][j]] = j
	}
}
