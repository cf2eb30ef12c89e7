// Package strength certifies the combinatorial strength of a symbol matrix.
//
// An n x k matrix over q symbols has strength t when, in every choice of t
// columns, each of the q^t symbol tuples occurs exactly n/q^t times. The
// verifier checks t = 0, 1, 2, ... by exhaustive enumeration of column
// tuples and stops at the first level that fails.
package strength

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/Davincible/oagen/pkg/matrix"
)

const (
	// DefaultMediumWork is the work estimate above which progress is logged.
	DefaultMediumWork = 1e7

	// DefaultBigWork is the work estimate above which a check is reported
	// as expensive.
	DefaultBigWork = 1e8
)

var (
	// ErrCheckTooExpensive marks an advisory in Result.Advisories. It is
	// never returned as an error: the check runs to completion regardless.
	ErrCheckTooExpensive = errors.New("strength: check is expensive")

	// ErrInvalidStrength is returned for a negative strength or a symbol
	// count below 1.
	ErrInvalidStrength = errors.New("strength: invalid strength parameters")
)

// Options tune Verify and Check. The zero value is usable.
type Options struct {
	MaxStrength int     // highest t attempted; 0 means the column count
	MediumWork  float64 // 0 means DefaultMediumWork
	BigWork     float64 // 0 means DefaultBigWork
	Logger      *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MediumWork <= 0 {
		o.MediumWork = DefaultMediumWork
	}
	if o.BigWork <= 0 {
		o.BigWork = DefaultBigWork
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Violation describes why a strength level failed. For a counting failure
// Columns and Symbols name the first offending combination in lexicographic
// order; structural failures only set Reason.
type Violation struct {
	Strength int
	Columns  []int
	Symbols  []int
	Observed int
	Expected int
	Reason   string
}

func (v *Violation) String() string {
	if v.Reason != "" {
		return fmt.Sprintf("strength %d fails: %s", v.Strength, v.Reason)
	}
	return fmt.Sprintf("strength %d fails: columns %v take values %v in %d rows, expected %d",
		v.Strength, v.Columns, v.Symbols, v.Observed, v.Expected)
}

// Result of Verify.
type Result struct {
	// Strength is the highest certified t, or -1 when some symbol lies
	// outside 0..q-1.
	Strength int
	// Index is rows/q^Strength, the number of times each tuple occurs.
	Index int
	// Violation explains the failure at Strength+1. It is nil when the
	// check stopped at MaxStrength or at the column count.
	Violation *Violation
	// Advisories wrap ErrCheckTooExpensive for every level whose work
	// estimate exceeded BigWork.
	Advisories []error
}

// Verify certifies the strength of a over q symbols. The only errors are
// invalid arguments and ctx cancellation.
func Verify(ctx context.Context, q int, a *matrix.Dense, opts Options) (Result, error) {
	if err := checkArgs(q, a, 0); err != nil {
		return Result{}, err
	}
	opts = opts.withDefaults()
	maxT := opts.MaxStrength
	if maxT <= 0 || maxT > a.Cols() {
		maxT = a.Cols()
	}

	res := Result{Strength: -1}
	if v := checkRange(q, a); v != nil {
		res.Violation = v
		return res, nil
	}
	res.Strength, res.Index = 0, a.Rows()

	for t := 1; t <= maxT; t++ {
		if adv := advise(a, q, t, opts); adv != nil {
			res.Advisories = append(res.Advisories, adv)
		}
		v, err := check(ctx, q, a, t, opts)
		if err != nil {
			return res, err
		}
		if v != nil {
			res.Violation = v
			break
		}
		res.Strength = t
		res.Index = a.Rows() / pow(q, t)
		opts.Logger.Debug("strength certified", "strength", t, "index", res.Index)
	}
	return res, nil
}

// Check reports whether a has strength t over q symbols. A nil Violation
// means it does.
func Check(ctx context.Context, q int, a *matrix.Dense, t int, opts Options) (*Violation, error) {
	if err := checkArgs(q, a, t); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if v := checkRange(q, a); v != nil || t == 0 {
		return v, nil
	}
	advise(a, q, t, opts)
	return check(ctx, q, a, t, opts)
}

// Work estimates the cost of checking strength t: rows * C(cols, t) * q^t.
func Work(rows, cols, q, t int) float64 {
	if t < 0 || t > cols {
		return 0
	}
	// lgamma based, rounded so small cases are exact
	tuples := math.Round(combin.GeneralizedBinomial(float64(cols), float64(t)))
	return float64(rows) * tuples * math.Pow(float64(q), float64(t))
}

func checkArgs(q int, a *matrix.Dense, t int) error {
	if a == nil {
		return fmt.Errorf("%w: nil array", ErrInvalidStrength)
	}
	if q < 1 {
		return fmt.Errorf("%w: q=%d", ErrInvalidStrength, q)
	}
	if t < 0 {
		return fmt.Errorf("%w: t=%d", ErrInvalidStrength, t)
	}
	return nil
}

func advise(a *matrix.Dense, q, t int, opts Options) error {
	work := Work(a.Rows(), a.Cols(), q, t)
	switch {
	case work > opts.BigWork:
		opts.Logger.Warn("strength check may take a long time", "strength", t, "work", work)
		return fmt.Errorf("%w: strength %d needs about %.3g operations", ErrCheckTooExpensive, t, work)
	case work > opts.MediumWork:
		opts.Logger.Info("strength check will report progress", "strength", t, "work", work)
	}
	return nil
}

func checkRange(q int, a *matrix.Dense) *Violation {
	for i := 0; i < a.Rows(); i++ {
		for j, v := range a.Row(i) {
			if v < 0 || v >= q {
				return &Violation{
					Strength: 0,
					Columns:  []int{j},
					Symbols:  []int{v},
					Observed: 1,
					Reason:   fmt.Sprintf("row %d column %d holds %d, outside 0..%d", i, j, v, q-1),
				}
			}
		}
	}
	return nil
}

// check assumes every symbol is in range.
func check(ctx context.Context, q int, a *matrix.Dense, t int, opts Options) (*Violation, error) {
	nrow, ncol := a.Rows(), a.Cols()
	if ncol < t {
		return &Violation{Strength: t, Reason: fmt.Sprintf("only %d columns", ncol)}, nil
	}
	cells := pow(q, t)
	if cells == 0 || cells > nrow || nrow%cells != 0 {
		return &Violation{Strength: t, Reason: fmt.Sprintf("%d rows are not a multiple of q^%d", nrow, t)}, nil
	}
	lambda := nrow / cells
	progress := Work(nrow, ncol, q, t) > opts.MediumWork

	counts := make([]int, cells)
	gen := combin.NewCombinationGenerator(ncol, t)
	cols := make([]int, t)
	lead := 0
	for gen.Next() {
		gen.Combination(cols)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if progress && cols[0] != lead {
			opts.Logger.Info("no violation involves column", "strength", t, "column", lead)
			lead = cols[0]
		}

		for i := range counts {
			counts[i] = 0
		}
		for r := 0; r < nrow; r++ {
			row := a.Row(r)
			code := 0
			for _, c := range cols {
				code = code*q + row[c]
			}
			counts[code]++
		}
		for code, n := range counts {
			if n != lambda {
				return &Violation{
					Strength: t,
					Columns:  append([]int(nil), cols...),
					Symbols:  decode(code, q, t),
					Observed: n,
					Expected: lambda,
				}, nil
			}
		}
	}
	return nil, nil
}

func decode(code, q, t int) []int {
	out := make([]int, t)
	for i := t - 1; i >= 0; i-- {
		out[i] = code % q
		code /= q
	}
	return out
}

// pow returns q^t, or 0 when it exceeds math.MaxInt32.
func pow(q, t int) int {
	v := 1
	for i := 0; i < t; i++ {
		if v > math.MaxInt32/q {
			return 0
		}
		v *= q
	}
	return v
}
