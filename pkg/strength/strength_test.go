package strength

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/oagen/pkg/matrix"
)

func quiet() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func dense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// OA(4, 3, 2, 2)
var smallOA = [][]int{
	{0, 0, 0},
	{0, 1, 1},
	{1, 0, 1},
	{1, 1, 0},
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		q         int
		rows      [][]int
		opts      Options
		strength  int
		index     int
		violation bool
	}{
		{name: "strength two", q: 2, rows: smallOA, strength: 2, index: 1, violation: true},
		{name: "capped", q: 2, rows: smallOA, opts: Options{MaxStrength: 1}, strength: 1, index: 2},
		{name: "full factorial", q: 2, rows: [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, strength: 2, index: 1},
		{name: "unbalanced column", q: 2, rows: [][]int{{0, 0}, {0, 1}, {1, 0}, {0, 0}}, strength: 0, index: 4, violation: true},
		{name: "symbol out of range", q: 2, rows: [][]int{{0, 2}, {1, 0}}, strength: -1, violation: true},
		{name: "negative symbol", q: 3, rows: [][]int{{0, -1}}, strength: -1, violation: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Logger = quiet().Logger
			res, err := Verify(ctx, tt.q, dense(t, tt.rows), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.strength, res.Strength)
			if tt.strength >= 0 {
				assert.Equal(t, tt.index, res.Index)
			}
			assert.Equal(t, tt.violation, res.Violation != nil)
			assert.Empty(t, res.Advisories)
		})
	}
}

func TestVerifyReportsFirstViolation(t *testing.T) {
	res, err := Verify(context.Background(), 2, dense(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {0, 0}}), quiet())
	require.NoError(t, err)
	require.NotNil(t, res.Violation)

	v := res.Violation
	assert.Equal(t, 1, v.Strength)
	assert.Equal(t, []int{0}, v.Columns)
	assert.Equal(t, []int{0}, v.Symbols)
	assert.Equal(t, 3, v.Observed)
	assert.Equal(t, 2, v.Expected)
	assert.Contains(t, v.String(), "columns [0] take values [0] in 3 rows, expected 2")

	res, err = Verify(context.Background(), 2, dense(t, smallOA), quiet())
	require.NoError(t, err)
	require.NotNil(t, res.Violation)
	assert.Equal(t, 3, res.Violation.Strength)
	assert.Contains(t, res.Violation.Reason, "not a multiple of q^3")
}

func TestCheckIsMonotone(t *testing.T) {
	ctx := context.Background()
	a := dense(t, smallOA)

	for s := 0; s <= 2; s++ {
		v, err := Check(ctx, 2, a, s, quiet())
		require.NoError(t, err)
		assert.Nil(t, v, "strength %d", s)
	}
	v, err := Check(ctx, 2, a, 3, quiet())
	require.NoError(t, err)
	assert.NotNil(t, v)

	v, err = Check(ctx, 2, a, 4, quiet())
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "strength 4 fails: only 3 columns", v.String())
}

func TestCheckArguments(t *testing.T) {
	ctx := context.Background()
	a := dense(t, smallOA)

	_, err := Check(ctx, 2, a, -1, quiet())
	assert.ErrorIs(t, err, ErrInvalidStrength)
	_, err = Check(ctx, 0, a, 1, quiet())
	assert.ErrorIs(t, err, ErrInvalidStrength)
	_, err = Verify(ctx, 2, nil, quiet())
	assert.ErrorIs(t, err, ErrInvalidStrength)
}

func TestCheckRejectsOutOfRangeSymbols(t *testing.T) {
	ctx := context.Background()
	for _, rows := range [][][]int{
		{{0, 0}, {1, 1}, {0, 5}, {1, 1}},
		{{0, 0}, {1, -1}, {0, 1}, {1, 0}},
	} {
		a := dense(t, rows)
		for strength := 0; strength <= 2; strength++ {
			v, err := Check(ctx, 2, a, strength, quiet())
			require.NoError(t, err)
			require.NotNil(t, v, "strength %d", strength)
			assert.Equal(t, 0, v.Strength)
			assert.Contains(t, v.Reason, "outside 0..1")
		}
	}
}

func TestVerifyAdvisories(t *testing.T) {
	opts := quiet()
	opts.MediumWork = 1
	opts.BigWork = 10

	res, err := Verify(context.Background(), 2, dense(t, smallOA), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Strength)
	// work is 24, 48 and 32 for t = 1, 2, 3
	require.Len(t, res.Advisories, 3)
	for _, adv := range res.Advisories {
		assert.ErrorIs(t, adv, ErrCheckTooExpensive)
	}
}

func TestVerifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Verify(ctx, 2, dense(t, smallOA), quiet())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWork(t *testing.T) {
	assert.Equal(t, 4.0, Work(4, 3, 2, 0))
	assert.Equal(t, 24.0, Work(4, 3, 2, 1))
	assert.Equal(t, 48.0, Work(4, 3, 2, 2))
	assert.Equal(t, 32.0, Work(4, 3, 2, 3))
	assert.Equal(t, 0.0, Work(4, 3, 2, 4))
	assert.Equal(t, 100.0*4950*9, Work(100, 100, 3, 2))
}

func TestCheckReportsFirstFailingPair(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		rows [][]int
		cols []int
	}{
		{name: "last pair", rows: [][]int{{0, 0, 0}, {0, 1, 1}, {1, 0, 0}, {1, 1, 1}}, cols: []int{1, 2}},
		{name: "middle pair", rows: [][]int{{0, 0, 0}, {0, 1, 0}, {1, 0, 1}, {1, 1, 1}}, cols: []int{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Check(ctx, 2, dense(t, tt.rows), 2, quiet())
			require.NoError(t, err)
			require.NotNil(t, v)
			assert.Equal(t, tt.cols, v.Columns)
			assert.Equal(t, []int{0, 0}, v.Symbols)
			assert.Equal(t, 2, v.Observed)
			assert.Equal(t, 1, v.Expected)
		})
	}
}

func TestAgreement(t *testing.T) {
	a := dense(t, smallOA)
	assert.Equal(t, Agreement{Max: 1, Row1: 0, Row2: 1}, Pairwise(a))
	assert.Equal(t, 0, Triples(a))

	dup := dense(t, [][]int{
		{0, 1, 2, 0},
		{1, 1, 0, 1},
		{0, 1, 2, 1},
	})
	assert.Equal(t, Agreement{Max: 3, Row1: 0, Row2: 2}, Pairwise(dup))
	// only columns {0,1,2} repeat a row
	assert.Equal(t, 1, Triples(dup))

	assert.Equal(t, 0, Triples(dense(t, [][]int{{0, 0}, {0, 0}})))
}

func BenchmarkVerify(b *testing.B) {
	rows := make([][]int, 0, 49)
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			row := []int{i, j}
			for c := 1; c < 7; c++ {
				row = append(row, (j+i*c)%7)
			}
			rows = append(rows, row)
		}
	}
	a, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	opts := Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Verify(context.Background(), 7, a, opts); err != nil {
			b.Fatal(err)
		}
	}
}
