package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0, m.At(1, 2))

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestAccessors(t *testing.T) {
	m, err := FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	m.Set(0, 1, 9)
	assert.Equal(t, 9, m.At(0, 1))
	assert.Equal(t, []int{4, 5, 6}, m.Row(1))
	assert.Equal(t, []int{3, 6}, m.Col(2))
	assert.Equal(t, [][]int{{1, 9, 3}, {4, 5, 6}}, m.ToRows())
	assert.Equal(t, "1 9 3\n4 5 6\n", m.String())

	v, err := m.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = m.Get(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = m.Get(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Panics(t, func() { m.At(0, 3) })
	assert.Panics(t, func() { m.Set(-1, 0, 1) })
	assert.Panics(t, func() { m.Row(2) })
	assert.Panics(t, func() { m.Col(3) })
}

func TestRowViewWritesThrough(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	row := m.Row(1)
	row[0] = 7
	assert.Equal(t, 7, m.At(1, 0))
	assert.Len(t, row, 2)
	assert.Equal(t, 2, cap(row))
}

func TestFromRowsErrors(t *testing.T) {
	_, err := FromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = FromRows([][]int{{}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedRows)
}

func TestCloneAndEqual(t *testing.T) {
	m, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	assert.True(t, m.Equal(c))

	c.Set(0, 0, 5)
	assert.False(t, m.Equal(c))
	assert.Equal(t, 1, m.At(0, 0))

	other, err := New(1, 4)
	require.NoError(t, err)
	assert.False(t, m.Equal(other))

	var nilDense *Dense
	assert.False(t, m.Equal(nilDense))
	assert.True(t, nilDense.Equal(nil))
}
