// Package random supplies the uniform sources and the symbol permutation
// used to randomize constructed arrays.
package random

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/Davincible/oagen/pkg/matrix"
)

// ErrInvalidSymbols is returned when an array holds a symbol outside 0..q-1.
var ErrInvalidSymbols = errors.New("random: symbol outside 0..q-1")

// Source yields uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// DefaultRandSeed replaces a zero seed in NewRand.
const DefaultRandSeed int64 = 1

// NewRand returns a deterministic math/rand source. Seed 0 selects
// DefaultRandSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultRandSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Ranks returns the zero based rank of every element of v. Ties keep their
// index order.
func Ranks(v []float64) []int {
	order := make([]int, len(v))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return v[order[a]] < v[order[b]] })

	ranks := make([]int, len(v))
	for r, i := range order {
		ranks[i] = r
	}
	return ranks
}

// Permutation draws q uniforms and returns their ranks, a uniformly random
// permutation of 0..q-1.
func Permutation(q int, src Source) []int {
	draws := make([]float64, q)
	for i := range draws {
		draws[i] = src.Float64()
	}
	return Ranks(draws)
}

// Randomize relabels the symbols of every column of a with an independent
// random permutation of 0..q-1. Each column keeps its symbol histogram, so
// strength is preserved. a is modified in place; it is left untouched when
// an error is returned.
func Randomize(a *matrix.Dense, q int, src Source) error {
	for i := 0; i < a.Rows(); i++ {
		for j, v := range a.Row(i) {
			if v < 0 || v >= q {
				return fmt.Errorf("%w: row %d column %d holds %d, q=%d", ErrInvalidSymbols, i, j, v, q)
			}
		}
	}

	for j := 0; j < a.Cols(); j++ {
		pi := Permutation(q, src)
		for i := 0; i < a.Rows(); i++ {
			a.Set(i, j, pi[a.At(i, j)])
		}
	}
	return nil
}
