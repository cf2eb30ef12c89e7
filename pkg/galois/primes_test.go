package galois

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	primes := []uint{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 97, 7919, 104729}
	composites := []uint{0, 1, 4, 6, 8, 9, 15, 25, 49, 121, 169, 289, 7917, 104730}

	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d should be prime", p)
	}
	for _, c := range composites {
		assert.False(t, IsPrime(c), "%d should not be prime", c)
	}
}

func TestPrimePower(t *testing.T) {
	tests := []struct {
		q     int
		wantP int
		wantN int
		ok    bool
	}{
		{q: -1},
		{q: 0},
		{q: 1},
		{q: 2, wantP: 2, wantN: 1, ok: true},
		{q: 4, wantP: 2, wantN: 2, ok: true},
		{q: 8, wantP: 2, wantN: 3, ok: true},
		{q: 9, wantP: 3, wantN: 2, ok: true},
		{q: 25, wantP: 5, wantN: 2, ok: true},
		{q: 49, wantP: 7, wantN: 2, ok: true},
		{q: 121, wantP: 11, wantN: 2, ok: true},
		{q: 169, wantP: 13, wantN: 2, ok: true},
		{q: 243, wantP: 3, wantN: 5, ok: true},
		{q: 1 << 20, wantP: 2, wantN: 20, ok: true},
		{q: 47, wantP: 47, wantN: 1, ok: true},
		{q: 6},
		{q: 12},
		{q: 18},
		{q: 36},
		{q: 100},
		{q: 2 * 49},
	}

	for _, tt := range tests {
		p, n, ok := PrimePower(tt.q)
		assert.Equal(t, tt.ok, ok, "q=%d", tt.q)
		if tt.ok {
			assert.Equal(t, tt.wantP, p, "q=%d", tt.q)
			assert.Equal(t, tt.wantN, n, "q=%d", tt.q)
		}
		assert.Equal(t, tt.ok, IsPrimePower(tt.q), "q=%d", tt.q)
	}
}

func TestIpow(t *testing.T) {
	assert.Equal(t, 1, Ipow(7, 0))
	assert.Equal(t, 343, Ipow(7, 3))
	assert.Equal(t, 1<<30, Ipow(2, 30))
	// float pow loses precision here; repeated squaring does not
	assert.Equal(t, 617673396283947, Ipow(3, 31))

	v, ok := CheckedPow(10, 9, 1<<31)
	assert.True(t, ok)
	assert.Equal(t, 1000000000, v)

	_, ok = CheckedPow(10, 10, 1<<31)
	assert.False(t, ok)

	v, ok = CheckedPow(5, 0, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
