package design

import "github.com/Davincible/oagen/pkg/matrix"

// rowWriter fills one matrix row left to right and silently drops values
// past the requested column count, so the constructors can be written as
// if every column were wanted.
type rowWriter struct {
	row []int
	col int
}

func writeRow(a *matrix.Dense, r int) *rowWriter {
	return &rowWriter{row: a.Row(r)}
}

func (w *rowWriter) put(v int) {
	if w.col < len(w.row) {
		w.row[w.col] = v
		w.col++
	}
}

func (w *rowWriter) full() bool {
	return w.col >= len(w.row)
}

// nextCoefficients advances a counter whose digits run over 1..q-1 with
// the last digit fastest. It returns false after the last tuple and leaves
// the counter reset.
func nextCoefficients(coef []int, q int) bool {
	for i := len(coef) - 1; i >= 0; i-- {
		if coef[i] < q-1 {
			coef[i]++
			return true
		}
		coef[i] = 1
	}
	return false
}

func resetCoefficients(coef []int) {
	for i := range coef {
		coef[i] = 1
	}
}

// digits writes r as len(x) base-q digits, most significant first.
func digits(r, q int, x []int) {
	for i := len(x) - 1; i >= 0; i-- {
		x[i] = r % q
		r /= q
	}
}

func newArray(s Shape, ncol int) *matrix.Dense {
	a, err := matrix.New(s.Rows, ncol)
	if err != nil {
		// shape and column count were validated by the caller
		panic(err)
	}
	return a
}
