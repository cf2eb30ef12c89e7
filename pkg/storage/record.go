// Package storage reads and writes orthogonal arrays as CSV or JSON files.
// Every file carries a BLAKE2b-256 digest of its cells so a reloaded array
// can be checked against the one that was written.
package storage

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/Davincible/oagen/pkg/design"
	"github.com/Davincible/oagen/pkg/matrix"
	"github.com/Davincible/oagen/pkg/oa"
)

var (
	// ErrDigestMismatch is returned when the stored digest does not match the cells.
	ErrDigestMismatch = errors.New("storage: array digest mismatch")
	// ErrMalformedArray is returned for files that do not describe a q-level array.
	ErrMalformedArray = errors.New("storage: malformed array")
)

// Record is the on-disk form of an array together with how it was built.
type Record struct {
	Family   string   `json:"family,omitempty"`
	Levels   int      `json:"levels"`
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Strength int      `json:"strength,omitempty"`
	Lambda   int      `json:"lambda,omitempty"`
	Exponent int      `json:"exponent,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Digest   string   `json:"digest,omitempty"`
	Data     [][]int  `json:"data"`
}

// NewRecord captures o and the parameters it was built with.
func NewRecord(o *oa.OrthogonalArray, p design.Params) *Record {
	rec := &Record{
		Levels:   o.Levels(),
		Rows:     o.Rows(),
		Cols:     o.Cols(),
		Strength: p.Strength,
		Lambda:   p.Lambda,
		Exponent: p.Exponent,
		Digest:   Digest(o.Matrix()),
		Data:     o.Matrix().ToRows(),
	}
	if o.Family().Valid() {
		rec.Family = o.Family().String()
	}
	for _, w := range o.Warnings() {
		rec.Warnings = append(rec.Warnings, w.Message)
	}
	return rec
}

// Digest returns the hex BLAKE2b-256 digest of the array dimensions and
// cells in row-major order.
func Digest(a *matrix.Dense) string {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	var buf [binary.MaxVarintLen64]byte
	write := func(v int) {
		n := binary.PutVarint(buf[:], int64(v))
		h.Write(buf[:n])
	}
	write(a.Rows())
	write(a.Cols())
	for r := 0; r < a.Rows(); r++ {
		for _, v := range a.Row(r) {
			write(v)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Matrix validates the record and returns its cells. Missing dimensions
// and levels are inferred from the data; a present digest must match.
func (rec *Record) Matrix() (*matrix.Dense, error) {
	if len(rec.Data) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedArray)
	}
	a, err := matrix.FromRows(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArray, err)
	}
	if rec.Rows != 0 && rec.Rows != a.Rows() {
		return nil, fmt.Errorf("%w: header says %d rows, found %d", ErrMalformedArray, rec.Rows, a.Rows())
	}
	if rec.Cols != 0 && rec.Cols != a.Cols() {
		return nil, fmt.Errorf("%w: header says %d columns, found %d", ErrMalformedArray, rec.Cols, a.Cols())
	}

	maxSymbol := 0
	for r := 0; r < a.Rows(); r++ {
		for c, v := range a.Row(r) {
			if v < 0 || (rec.Levels > 0 && v >= rec.Levels) {
				return nil, fmt.Errorf("%w: value %d at row %d column %d outside 0..%d", ErrMalformedArray, v, r, c, rec.Levels-1)
			}
			maxSymbol = max(maxSymbol, v)
		}
	}
	if rec.Levels == 0 {
		rec.Levels = maxSymbol + 1
	}
	rec.Rows, rec.Cols = a.Rows(), a.Cols()

	if rec.Digest != "" {
		if got := Digest(a); got != rec.Digest {
			return nil, fmt.Errorf("%w: stored %s, computed %s", ErrDigestMismatch, rec.Digest, got)
		}
	}
	return a, nil
}

// Array wraps the validated cells for strength and agreement checks.
func (rec *Record) Array() (*oa.OrthogonalArray, error) {
	a, err := rec.Matrix()
	if err != nil {
		return nil, err
	}
	return oa.FromMatrix(rec.Levels, a)
}
