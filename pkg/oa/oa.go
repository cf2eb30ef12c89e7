// Package oa is the entry point for building and inspecting orthogonal
// arrays. A Generator resolves a Request to a Galois field and a design
// family; the resulting OrthogonalArray owns its field and its symbols and
// exposes the strength and coincidence diagnostics.
package oa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Davincible/oagen/pkg/design"
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
	"github.com/Davincible/oagen/pkg/random"
	"github.com/Davincible/oagen/pkg/strength"
)

// ErrLimitExceeded is returned when a request is valid but larger than the
// generator limits allow.
var ErrLimitExceeded = errors.New("oa: request exceeds configured limits")

// Request selects a family and its parameters.
type Request struct {
	Family   design.Family
	Levels   int // q, number of symbols
	Columns  int // values below 2 select the family maximum
	Strength int // busht
	Lambda   int // bosebushl
	Exponent int // addelkempn
}

// Params returns the family specific part of the request.
func (r Request) Params() design.Params {
	return design.Params{Strength: r.Strength, Lambda: r.Lambda, Exponent: r.Exponent}
}

// Generator builds arrays and caches the fields it creates. The zero value
// is ready to use and safe for concurrent use.
type Generator struct {
	// MaxRows and MaxFieldOrder bound requests; zero means unbounded.
	MaxRows       int
	MaxFieldOrder int
	Logger        *slog.Logger

	mu     sync.Mutex
	fields map[int]*galois.Field
}

// Field returns the field of order q, building it on first use.
func (g *Generator) Field(q int) (*galois.Field, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gf, ok := g.fields[q]; ok {
		return gf, nil
	}
	gf, err := galois.New(q)
	if err != nil {
		return nil, err
	}
	if g.fields == nil {
		g.fields = make(map[int]*galois.Field)
	}
	g.fields[q] = gf
	g.logger().Debug("built field", "q", q, "p", gf.P, "n", gf.N)
	return gf, nil
}

// Shape validates req against its family and the generator limits without
// building anything.
func (g *Generator) Shape(req Request) (design.Shape, error) {
	s, err := design.ShapeOf(req.Family, req.Levels, req.Params())
	if err != nil {
		return design.Shape{}, err
	}
	if g.MaxFieldOrder > 0 && s.FieldOrder > g.MaxFieldOrder {
		return design.Shape{}, fmt.Errorf("%w: GF(%d) above max field order %d", ErrLimitExceeded, s.FieldOrder, g.MaxFieldOrder)
	}
	if g.MaxRows > 0 && s.Rows > g.MaxRows {
		return design.Shape{}, fmt.Errorf("%w: %d rows above max rows %d", ErrLimitExceeded, s.Rows, g.MaxRows)
	}
	return s, nil
}

// Build validates req, builds its field and constructs the array. Defect
// warnings travel with the returned array.
func (g *Generator) Build(req Request) (*OrthogonalArray, error) {
	s, err := g.Shape(req)
	if err != nil {
		return nil, err
	}
	gf, err := g.Field(s.FieldOrder)
	if err != nil {
		return nil, err
	}
	a, warnings, err := design.Construct(req.Family, gf, req.Columns, req.Params())
	if err != nil {
		return nil, err
	}

	g.logger().Debug("constructed array",
		"family", req.Family.String(), "q", s.Levels, "rows", a.Rows(), "cols", a.Cols())
	for _, w := range warnings {
		g.logger().Info("array has a known defect", "family", w.Family.String(), "columns", w.Columns)
	}
	return &OrthogonalArray{
		family:   req.Family,
		levels:   s.Levels,
		field:    gf,
		array:    a,
		warnings: warnings,
	}, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// OrthogonalArray is a constructed or loaded array over Levels() symbols.
type OrthogonalArray struct {
	family   design.Family
	levels   int
	field    *galois.Field // nil for loaded arrays
	array    *matrix.Dense
	warnings []design.Warning
}

// FromMatrix wraps an existing array over q symbols, for example one read
// from a file. It has no family and no field.
func FromMatrix(q int, a *matrix.Dense) (*OrthogonalArray, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil array", strength.ErrInvalidStrength)
	}
	if q < 1 {
		return nil, fmt.Errorf("%w: q=%d", strength.ErrInvalidStrength, q)
	}
	return &OrthogonalArray{levels: q, array: a}, nil
}

// Family is zero for arrays created with FromMatrix.
func (o *OrthogonalArray) Family() design.Family { return o.family }

// Levels returns q.
func (o *OrthogonalArray) Levels() int { return o.levels }

// Field is nil for arrays created with FromMatrix.
func (o *OrthogonalArray) Field() *galois.Field { return o.field }

// Rows returns the number of runs.
func (o *OrthogonalArray) Rows() int { return o.array.Rows() }

// Cols returns the number of factors.
func (o *OrthogonalArray) Cols() int { return o.array.Cols() }

// Matrix returns the array itself. Callers must not modify it; use
// Randomize or take a Clone.
func (o *OrthogonalArray) Matrix() *matrix.Dense { return o.array }

// Warnings returns the known defects reported at construction.
func (o *OrthogonalArray) Warnings() []design.Warning {
	out := make([]design.Warning, len(o.warnings))
	copy(out, o.warnings)
	return out
}

// Strength certifies the strength of the array.
func (o *OrthogonalArray) Strength(ctx context.Context, opts strength.Options) (strength.Result, error) {
	return strength.Verify(ctx, o.levels, o.array, opts)
}

// CheckStrength checks a single strength t.
func (o *OrthogonalArray) CheckStrength(ctx context.Context, t int, opts strength.Options) (*strength.Violation, error) {
	return strength.Check(ctx, o.levels, o.array, t, opts)
}

// Agreement returns the maximum column agreement of two distinct rows.
func (o *OrthogonalArray) Agreement() strength.Agreement {
	return strength.Pairwise(o.array)
}

// Triples counts the column triples that repeat a row.
func (o *OrthogonalArray) Triples() int {
	return strength.Triples(o.array)
}

// Randomize relabels the symbols of each column with a random permutation
// drawn from src.
func (o *OrthogonalArray) Randomize(src random.Source) error {
	return random.Randomize(o.array, o.levels, src)
}
