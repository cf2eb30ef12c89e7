package galois

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldIdentities(t *testing.T) {
	orders := []int{2, 3, 4, 5, 7, 8, 9, 11, 13, 16, 25, 27, 32, 49, 64, 81, 121, 125}

	for _, q := range orders {
		gf, err := New(q)
		require.NoError(t, err, "q=%d", q)
		require.Equal(t, q, gf.Q)

		for i := 0; i < q; i++ {
			assert.Equal(t, i, gf.Plus[i][0], "q=%d plus[%d][0]", q, i)
			assert.Equal(t, i, gf.Mul[i][1], "q=%d times[%d][1]", q, i)
			assert.Equal(t, 0, gf.Plus[i][gf.Neg[i]], "q=%d negative of %d", q, i)
			if i > 0 {
				assert.Equal(t, 1, gf.Mul[i][gf.Inv[i]], "q=%d inverse of %d", q, i)
			}
			if gf.Root[i] != NoRoot {
				r := gf.Root[i]
				assert.Equal(t, i, gf.Mul[r][r], "q=%d root of %d", q, i)
			}
			for j := 0; j < q; j++ {
				assert.Equal(t, gf.Plus[i][j], gf.Plus[j][i])
				assert.Equal(t, gf.Mul[i][j], gf.Mul[j][i])
			}
		}
		assert.Equal(t, NoRoot, gf.Inv[0])
	}
}

func TestNewFieldGF4(t *testing.T) {
	gf, err := New(4)
	require.NoError(t, err)

	assert.Equal(t, 2, gf.P)
	assert.Equal(t, 2, gf.N)
	assert.Equal(t, []int{1, 1}, gf.Xton)
	assert.Equal(t, [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, gf.Poly)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {1, 0, 3, 2}, {2, 3, 0, 1}, {3, 2, 1, 0}}, gf.Plus)
	assert.Equal(t, [][]int{{0, 0, 0, 0}, {0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2}}, gf.Mul)
	assert.Equal(t, []int{NoRoot, 1, 3, 2}, gf.Inv)
	assert.Equal(t, []int{0, 1, 2, 3}, gf.Neg)
	assert.Equal(t, []int{0, 1, 3, 2}, gf.Root)
}

func TestNewFieldPartialRoots(t *testing.T) {
	gf, err := New(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, NoRoot, NoRoot, 3}, gf.Root)

	gf, err = New(9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, gf.Xton)
	assert.Equal(t, []int{0, 3, 6, 7, 1, 4, 5, 8, 2}, gf.Mul[3])
	assert.Equal(t, NoRoot, gf.Root[3])
}

func TestNewFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		q    int
		want error
	}{
		{name: "zero", q: 0, want: ErrInvalidOrder},
		{name: "one", q: 1, want: ErrInvalidOrder},
		{name: "negative", q: -7, want: ErrInvalidOrder},
		{name: "mixed factors", q: 6, want: ErrNotPrimePower},
		{name: "square of composite", q: 36, want: ErrNotPrimePower},
		{name: "prime above table", q: 53 * 53, want: ErrUnsupportedField},
		{name: "exponent above table", q: Ipow(47, 6), want: ErrUnsupportedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gf, err := New(tt.q)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, gf)
		})
	}
}

func TestCharacteristicTable(t *testing.T) {
	for key, xton := range characteristic {
		assert.Len(t, xton, key.N, "GF(%d^%d)", key.P, key.N)
		assert.True(t, IsPrime(uint(key.P)), "GF(%d^%d)", key.P, key.N)
		for _, c := range xton {
			assert.True(t, c >= 0 && c < key.P, "GF(%d^%d) coefficient %d", key.P, key.N, c)
		}
	}

	xton, ok := Characteristic(7, 1)
	require.True(t, ok)
	assert.Equal(t, []int{0}, xton)

	xton, ok = Characteristic(2, 3)
	require.True(t, ok)
	xton[0] = 99
	again, _ := Characteristic(2, 3)
	assert.Equal(t, []int{1, 0, 1}, again, "Characteristic must hand out copies")

	assert.True(t, Supported(1024))
	assert.False(t, Supported(12))
	assert.False(t, Supported(53*53))
}

func TestEval(t *testing.T) {
	gf := MustNew(5)
	// 1 + 2x + 3x^2 at x=2: 1 + 4 + 12 = 17 = 2 mod 5
	assert.Equal(t, 2, gf.Eval([]int{1, 2, 3}, 2))
	assert.Equal(t, 1, gf.Eval([]int{1, 2, 3}, 0))
	assert.Equal(t, 0, gf.Eval(nil, 3))
}

func TestPolyHelpers(t *testing.T) {
	sum := make([]int, 3)
	PolySum(3, []int{1, 2, 0}, []int{2, 2, 1}, sum)
	assert.Equal(t, []int{0, 1, 1}, sum)

	assert.Equal(t, 0, PolyToInt(3, []int{0, 0, 0}))
	assert.Equal(t, 1+2*3+1*9, PolyToInt(3, []int{1, 2, 1}))

	coef := make([]int, 3)
	IntToPoly(1+2*3+1*9, 3, coef)
	assert.Equal(t, []int{1, 2, 1}, coef)

	// GF(4): x * x = x^2 = 1 + x
	prod := make([]int, 2)
	PolyProd(2, []int{1, 1}, []int{0, 1}, []int{0, 1}, prod)
	assert.Equal(t, []int{1, 1}, prod)
}

func TestFprint(t *testing.T) {
	gf := MustNew(3)
	var buf bytes.Buffer
	require.NoError(t, gf.Fprint(&buf))

	out := buf.String()
	assert.Contains(t, out, "For GF(3) p=3 n=1")
	assert.Contains(t, out, "GF(3) addition table:")
	assert.Contains(t, out, "GF(3) square roots:")
	assert.Equal(t, "GF(9) = GF(3^2), x^2 = (1,2)", MustNew(9).Summary())
}

func BenchmarkNewField(b *testing.B) {
	for _, q := range []int{16, 64, 256} {
		b.Run("q="+strconv.Itoa(q), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := New(q); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func TestNewDetectsInconsistentTable(t *testing.T) {
	key := order{3, 2}
	saved := characteristic[key]
	// x^2 = 0 is reducible, so x has no reciprocal
	characteristic[key] = []int{0, 0}
	defer func() { characteristic[key] = saved }()

	gf, err := New(9)
	require.ErrorIs(t, err, ErrInconsistentField)
	assert.Nil(t, gf)
	assert.False(t, errors.Is(err, ErrUnsupportedField))
}
