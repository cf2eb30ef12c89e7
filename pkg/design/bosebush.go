package design

import (
	"github.com/Davincible/oagen/pkg/galois"
	"github.com/Davincible/oagen/pkg/matrix"
)

// BuildBoseBush returns OA(2q^2, ncol, q, 2) for q = 2^r, built over the
// field GF(2q). ncol may reach 2q+1.
func BuildBoseBush(gf *galois.Field, ncol int) (*matrix.Dense, error) {
	s, err := prepare(BoseBush, gf, ncol, Params{})
	if err != nil {
		return nil, err
	}
	return boseBush(gf, s, ncol), nil
}

// BuildBoseBushLambda returns OA(lambda q^2, ncol, q, 2) built over the field
// GF(lambda q), where lambda and q are powers of the same prime. ncol may
// reach lambda q + 1.
func BuildBoseBushLambda(gf *galois.Field, lambda, ncol int) (*matrix.Dense, error) {
	s, err := prepare(BoseBushLambda, gf, ncol, Params{Lambda: lambda})
	if err != nil {
		return nil, err
	}
	return boseBush(gf, s, ncol), nil
}

// boseBush folds the multiplication table of GF(lambda q) onto q levels.
// Each field element i contributes a block of q rows; row k of the block has
// (i*j mod q) + k in column j, and column lambda q, when requested, holds
// i mod q.
func boseBush(gf *galois.Field, s Shape, ncol int) *matrix.Dense {
	levels := s.Levels
	a := newArray(s, ncol)
	block := make([][]int, levels)
	for k := range block {
		block[k] = make([]int, gf.Q)
	}

	r := 0
	for i := 0; i < gf.Q; i++ {
		for j := 0; j < gf.Q; j++ {
			mul := gf.Times(i, j) % levels
			for k := 0; k < levels; k++ {
				block[k][j] = gf.Add(mul, k)
			}
		}
		for k := 0; k < levels; k++ {
			w := writeRow(a, r)
			for j := 0; j < gf.Q; j++ {
				w.put(block[k][j])
			}
			w.put(i % levels)
			r++
		}
	}
	return a
}
