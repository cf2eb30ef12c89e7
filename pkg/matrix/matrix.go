// Package matrix provides the dense integer container shared by the design
// constructors, the strength verifier and the facade.
// Dense is row-major and stores its elements in one flat slice, so every
// algorithm addresses cells through At/Set instead of recomputing offsets.
package matrix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid range.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows indicates that FromRows received rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)

// Dense is a row-major rows x cols matrix of int values.
type Dense struct {
	r, c int
	data []int
}

// New creates a rows x cols Dense matrix initialized to zeros.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows copies a slice of equal-length rows into a new Dense.
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(row), m.c)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (row, col). It panics on an out-of-range index,
// like a slice access; use Get for a checked read.
func (m *Dense) At(row, col int) int {
	return m.data[m.offset(row, col)]
}

// Set assigns v at (row, col). It panics on an out-of-range index.
func (m *Dense) Set(row, col, v int) {
	m.data[m.offset(row, col)] = v
}

// Get is the checked form of At.
func (m *Dense) Get(row, col int) (int, error) {
	if !m.inRange(row, col) {
		return 0, fmt.Errorf("Dense.Get(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return m.data[row*m.c+col], nil
}

// Row returns a view of one row. Writes through the view modify the matrix.
func (m *Dense) Row(row int) []int {
	if row < 0 || row >= m.r {
		panic(fmt.Sprintf("matrix: row %d out of range [0,%d)", row, m.r))
	}
	return m.data[row*m.c : (row+1)*m.c : (row+1)*m.c]
}

// Col returns a copy of one column.
func (m *Dense) Col(col int) []int {
	if col < 0 || col >= m.c {
		panic(fmt.Sprintf("matrix: column %d out of range [0,%d)", col, m.c))
	}
	out := make([]int, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+col]
	}
	return out
}

// ToRows returns a deep copy as a slice of rows.
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := range out {
		out[i] = make([]int, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}
	return out
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	data := make([]int, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether both matrices have the same shape and contents.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// String renders one row per line with space separated values.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Dense) inRange(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

func (m *Dense) offset(row, col int) int {
	if !m.inRange(row, col) {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range %dx%d", row, col, m.r, m.c))
	}
	return row*m.c + col
}
