package oa

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/oagen/pkg/design"
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
	"github.com/Davincible/oagen/pkg/random"
	"github.com/Davincible/oagen/pkg/strength"
)

func newGenerator() *Generator {
	return &Generator{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func quiet() strength.Options {
	return strength.Options{MaxStrength: 4, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestBuildBose(t *testing.T) {
	g := newGenerator()
	o, err := g.Build(Request{Family: design.Bose, Levels: 5, Columns: 6})
	require.NoError(t, err)

	assert.Equal(t, 25, o.Rows())
	assert.Equal(t, 6, o.Cols())
	assert.Equal(t, 5, o.Levels())
	assert.Equal(t, design.Bose, o.Family())
	assert.Empty(t, o.Warnings())
	require.NotNil(t, o.Field())
	assert.Equal(t, 5, o.Field().Q)

	res, err := o.Strength(context.Background(), quiet())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Strength, 2)
	assert.Equal(t, 1, res.Index)
}

func TestBuildBush(t *testing.T) {
	o, err := newGenerator().Build(Request{Family: design.Bush, Levels: 3, Columns: 4})
	require.NoError(t, err)
	assert.Equal(t, 27, o.Rows())

	res, err := o.Strength(context.Background(), quiet())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Strength, 3)
}

func TestStrengthIsMonotone(t *testing.T) {
	ctx := context.Background()
	g := newGenerator()
	requests := []Request{
		{Family: design.Bush, Levels: 3, Columns: 4},
		{Family: design.AddelKemp, Levels: 3},
		{Family: design.BoseBush, Levels: 2, Columns: 4},
	}
	for _, req := range requests {
		o, err := g.Build(req)
		require.NoError(t, err)

		res, err := o.Strength(ctx, quiet())
		require.NoError(t, err)
		for s := 0; s <= res.Strength; s++ {
			v, err := o.CheckStrength(ctx, s, quiet())
			require.NoError(t, err)
			assert.Nil(t, v, "%s strength %d", req.Family, s)
		}
		v, err := o.CheckStrength(ctx, res.Strength+1, quiet())
		require.NoError(t, err)
		assert.NotNil(t, v, "%s strength %d", req.Family, res.Strength+1)
	}
}

func TestMaximalColumnsWarn(t *testing.T) {
	g := newGenerator()
	for _, req := range []Request{
		{Family: design.AddelKemp, Levels: 3},
		{Family: design.AddelKemp, Levels: 5, Columns: 11},
		{Family: design.BoseBush, Levels: 4},
		{Family: design.BoseBushLambda, Levels: 3, Lambda: 3},
	} {
		o, err := g.Build(req)
		require.NoError(t, err)
		require.Len(t, o.Warnings(), 1, "%s q=%d", req.Family, req.Levels)
		assert.Equal(t, o.Cols(), o.Warnings()[0].Columns)
		assert.Positive(t, o.Triples(), "%s q=%d", req.Family, req.Levels)
	}

	o, err := g.Build(Request{Family: design.AddelKemp, Levels: 5, Columns: 10})
	require.NoError(t, err)
	assert.Empty(t, o.Warnings())
	assert.Zero(t, o.Triples())
}

func TestUnsupportedRequests(t *testing.T) {
	g := newGenerator()
	tests := []struct {
		name string
		req  Request
		err  error
	}{
		{name: "addelkemp even above 4", req: Request{Family: design.AddelKemp, Levels: 8, Columns: 5}, err: design.ErrUnsupportedParameter},
		{name: "too many columns", req: Request{Family: design.Bose, Levels: 3, Columns: 5}, err: design.ErrInvalidColumnCount},
		{name: "not a prime power", req: Request{Family: design.Bose, Levels: 10}, err: galois.ErrNotPrimePower},
		{name: "order below two", req: Request{Family: design.Bose, Levels: 1}, err: galois.ErrInvalidOrder},
		{name: "unknown family", req: Request{Levels: 3}, err: design.ErrUnknownFamily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := g.Build(tt.req)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, o)
		})
	}
	// rejected before a field was built
	assert.NotContains(t, g.fields, 8)
}

func TestGeneratorLimits(t *testing.T) {
	g := newGenerator()
	g.MaxRows = 100
	g.MaxFieldOrder = 16

	_, err := g.Build(Request{Family: design.Bush, Levels: 5})
	assert.ErrorIs(t, err, ErrLimitExceeded)

	_, err = g.Build(Request{Family: design.BoseBush, Levels: 16, Columns: 3})
	assert.ErrorIs(t, err, ErrLimitExceeded)

	_, err = g.Build(Request{Family: design.Bose, Levels: 7})
	assert.NoError(t, err)
}

func TestFieldCache(t *testing.T) {
	g := newGenerator()
	a, err := g.Field(9)
	require.NoError(t, err)
	b, err := g.Field(9)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = g.Field(12)
	assert.ErrorIs(t, err, galois.ErrNotPrimePower)
}

func TestBuildReturnsFreshArrays(t *testing.T) {
	g := newGenerator()
	req := Request{Family: design.Bose, Levels: 3}
	a, err := g.Build(req)
	require.NoError(t, err)
	b, err := g.Build(req)
	require.NoError(t, err)

	assert.True(t, a.Matrix().Equal(b.Matrix()))
	b.Matrix().Set(0, 0, 2)
	assert.Equal(t, 0, a.Matrix().At(0, 0))
}

func TestRandomize(t *testing.T) {
	ctx := context.Background()
	o, err := newGenerator().Build(Request{Family: design.AddelKemp, Levels: 5, Columns: 10})
	require.NoError(t, err)

	tally := func() [][]int {
		out := make([][]int, o.Cols())
		for j := range out {
			out[j] = make([]int, o.Levels())
			for _, v := range o.Matrix().Col(j) {
				out[j][v]++
			}
		}
		return out
	}
	before := tally()
	orig := o.Matrix().Clone()

	src, err := random.NewMarsaglia(random.DefaultSeed)
	require.NoError(t, err)
	require.NoError(t, o.Randomize(src))

	assert.Equal(t, before, tally())
	assert.False(t, orig.Equal(o.Matrix()))

	res, err := o.Strength(ctx, quiet())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Strength, 2)
	assert.Zero(t, o.Triples())
}

func TestFromMatrix(t *testing.T) {
	m, err := matrix.FromRows([][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	require.NoError(t, err)

	o, err := FromMatrix(2, m)
	require.NoError(t, err)
	assert.Nil(t, o.Field())
	assert.Equal(t, design.Family(0), o.Family())
	assert.Equal(t, strength.Agreement{Max: 1, Row1: 0, Row2: 1}, o.Agreement())

	res, err := o.Strength(context.Background(), quiet())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Strength)

	bad, err := matrix.FromRows([][]int{{0, 0}, {1, 1}, {0, 5}, {1, 1}})
	require.NoError(t, err)
	wrapped, err := FromMatrix(2, bad)
	require.NoError(t, err)
	v, err := wrapped.CheckStrength(context.Background(), 1, quiet())
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 0, v.Strength)

	_, err = FromMatrix(0, m)
	assert.ErrorIs(t, err, strength.ErrInvalidStrength)
	_, err = FromMatrix(2, nil)
	assert.ErrorIs(t, err, strength.ErrInvalidStrength)
}
