package galois

// IsPrime reports whether n is prime using trial division by odd candidates.
func IsPrime(n uint) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimePower decomposes q as p^n. ok is false when q <= 1 or when q has
// more than one distinct prime factor.
func PrimePower(q int) (p, n int, ok bool) {
	if q <= 1 {
		return 0, 0, false
	}
	if IsPrime(uint(q)) {
		return q, 1, true
	}

	// q is composite here, so its smallest factor is at most sqrt(q).
	factor := 0
	for k := 2; k <= q/k; k++ {
		if q%k == 0 {
			factor = k
			break
		}
	}
	if factor == 0 {
		return 0, 0, false
	}

	for q%factor == 0 {
		q /= factor
		n++
	}
	if q != 1 {
		return 0, 0, false
	}
	return factor, n, true
}

// IsPrimePower reports whether q = p^n for some prime p and n >= 1.
func IsPrimePower(q int) bool {
	_, _, ok := PrimePower(q)
	return ok
}

// Ipow returns a^b by repeated squaring. The result is exact as long as it
// fits in an int; use CheckedPow when overflow is possible.
func Ipow(a, b int) int {
	result := 1
	for b > 0 {
		if b&1 == 1 {
			result *= a
		}
		a *= a
		b >>= 1
	}
	return result
}

// CheckedPow returns a^b and false if the product would overflow limit.
// Both a and b must be non-negative.
func CheckedPow(a, b, limit int) (int, bool) {
	result := 1
	for i := 0; i < b; i++ {
		if a != 0 && result > limit/a {
			return 0, false
		}
		result *= a
	}
	return result, result <= limit
}
