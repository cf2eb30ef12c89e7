package random

import (
	"errors"
	"fmt"
)

// ErrInvalidSeed is returned for a Marsaglia seed outside 1..168 or with
// all four values equal to 1.
var ErrInvalidSeed = errors.New("random: seed must be four integers in 1..168, not all 1")

// Seed is the four integer state of the Marsaglia generator.
type Seed [4]int

// DefaultSeed seeds the generator when none is given.
var DefaultSeed = Seed{12, 34, 56, 78}

// Valid reports whether s can seed a Marsaglia generator.
func (s Seed) Valid() bool {
	if s == (Seed{1, 1, 1, 1}) {
		return false
	}
	for _, v := range s {
		if v < 1 || v > 168 {
			return false
		}
	}
	return true
}

// Marsaglia is the lagged subtract-with-borrow generator of Marsaglia and
// Zaman combined with an arithmetic sequence, as distributed with the
// Statlib orthogonal array programs. Each draw is a multiple of 2^-24.
// It is not safe for concurrent use.
type Marsaglia struct {
	i, j, k, l int
	started    bool
	u          [98]float64 // u[1..97]
	c, cd, cm  float64
	ip, jp     int
}

// NewMarsaglia seeds a generator.
func NewMarsaglia(s Seed) (*Marsaglia, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSeed, s)
	}
	return &Marsaglia{i: s[0], j: s[1], k: s[2], l: s[3]}, nil
}

// Float64 returns the next draw in [0,1).
func (m *Marsaglia) Float64() float64 {
	if !m.started {
		m.start()
	}

	uni := m.u[m.ip] - m.u[m.jp]
	if uni < 0 {
		uni++
	}
	m.u[m.ip] = uni
	if m.ip--; m.ip == 0 {
		m.ip = 97
	}
	if m.jp--; m.jp == 0 {
		m.jp = 97
	}

	m.c -= m.cd
	if m.c < 0 {
		m.c += m.cm
	}
	uni -= m.c
	if uni < 0 {
		uni++
	}
	return uni
}

// start fills the lag table with 24 bit fractions from the seed.
func (m *Marsaglia) start() {
	m.started = true
	for ii := 1; ii <= 97; ii++ {
		s, t := 0.0, 0.5
		for jj := 0; jj < 24; jj++ {
			n := mod(mod(m.i*m.j, 179)*m.k, 179)
			m.i, m.j, m.k = m.j, m.k, n
			m.l = mod(53*m.l+1, 169)
			if mod(m.l*n, 64) >= 32 {
				s += t
			}
			t *= 0.5
		}
		m.u[ii] = s
	}
	m.c = 362436.0 / 16777216.0
	m.cd = 7654321.0 / 16777216.0
	m.cm = 16777213.0 / 16777216.0
	m.ip, m.jp = 97, 33
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
