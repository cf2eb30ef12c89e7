package galois

import "errors"

var (
	// ErrInvalidOrder is returned for a requested field order below 2.
	ErrInvalidOrder = errors.New("galois: field order must be at least 2")

	// ErrNotPrimePower is returned when the order is not p^n for a single prime p.
	ErrNotPrimePower = errors.New("galois: field order is not a prime power")

	// ErrUnsupportedField is returned when no characteristic polynomial is
	// tabulated for the resolved (p, n).
	ErrUnsupportedField = errors.New("galois: field is not in the characteristic polynomial table")

	// ErrInconsistentField signals a malformed table entry: some nonzero
	// element ended up without an inverse or a negative. It is a program
	// fault, not a user error.
	ErrInconsistentField = errors.New("galois: inconsistent field tables")
)
