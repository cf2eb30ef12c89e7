package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/oagen/pkg/matrix"
)

func TestMarsagliaSequence(t *testing.T) {
	m, err := NewMarsaglia(DefaultSeed)
	require.NoError(t, err)

	want := []float64{0.11639106273651123, 0.9648467898368835, 0.88297039270401, 0.4204868674278259, 0.4958563446998596}
	for i, w := range want {
		assert.InDelta(t, w, m.Float64(), 1e-15, "draw %d", i)
	}

	m, err = NewMarsaglia(Seed{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.14022696018218994, m.Float64(), 1e-15)
}

func TestMarsagliaRange(t *testing.T) {
	m, err := NewMarsaglia(Seed{168, 1, 97, 5})
	require.NoError(t, err)
	for i := 0; i < 10000; i++ {
		v := m.Float64()
		require.True(t, v >= 0 && v < 1, "draw %d = %v", i, v)
	}
}

func TestSeedValid(t *testing.T) {
	assert.True(t, DefaultSeed.Valid())
	assert.True(t, Seed{1, 1, 1, 2}.Valid())
	assert.False(t, Seed{1, 1, 1, 1}.Valid())
	assert.False(t, Seed{0, 2, 3, 4}.Valid())
	assert.False(t, Seed{2, 3, 4, 169}.Valid())

	_, err := NewMarsaglia(Seed{1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []int{1, 3, 0, 2}, Ranks([]float64{0.4, 0.9, 0.1, 0.5}))
	assert.Equal(t, []int{0, 2, 1, 3}, Ranks([]float64{0.2, 0.7, 0.2, 0.8}))
	assert.Empty(t, Ranks(nil))
}

func TestPermutation(t *testing.T) {
	m, err := NewMarsaglia(DefaultSeed)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, Permutation(3, m))
	assert.Equal(t, []int{0, 1, 2}, Permutation(3, m))

	r := NewRand(0)
	for i := 0; i < 20; i++ {
		pi := Permutation(7, r)
		seen := make([]bool, 7)
		for _, v := range pi {
			require.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestNewRandZeroSeed(t *testing.T) {
	a, b := NewRand(0), NewRand(DefaultRandSeed)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func histograms(a *matrix.Dense, q int) [][]int {
	out := make([][]int, a.Cols())
	for j := range out {
		out[j] = make([]int, q)
		for _, v := range a.Col(j) {
			out[j][v]++
		}
	}
	return out
}

func TestRandomizePreservesHistograms(t *testing.T) {
	a, err := matrix.FromRows([][]int{
		{0, 0, 0, 2},
		{0, 1, 1, 2},
		{1, 0, 1, 0},
		{1, 1, 0, 1},
		{2, 2, 2, 2},
		{2, 0, 1, 1},
	})
	require.NoError(t, err)
	before := histograms(a, 3)
	orig := a.Clone()

	m, err := NewMarsaglia(DefaultSeed)
	require.NoError(t, err)
	require.NoError(t, Randomize(a, 3, m))

	after := histograms(a, 3)
	for j := range before {
		assert.ElementsMatch(t, before[j], after[j], "column %d", j)
	}

	// equal symbols stay equal within a column
	for j := 0; j < a.Cols(); j++ {
		for r1 := 0; r1 < a.Rows(); r1++ {
			for r2 := 0; r2 < a.Rows(); r2++ {
				assert.Equal(t, orig.At(r1, j) == orig.At(r2, j), a.At(r1, j) == a.At(r2, j))
			}
		}
	}
}

func TestRandomizeRejectsBadSymbols(t *testing.T) {
	a, err := matrix.FromRows([][]int{{0, 1}, {1, 3}})
	require.NoError(t, err)
	orig := a.Clone()

	err = Randomize(a, 3, NewRand(7))
	assert.ErrorIs(t, err, ErrInvalidSymbols)
	assert.True(t, orig.Equal(a))
}
