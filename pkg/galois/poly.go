package galois

// PolySum adds two digit vectors mod p into sum.
func PolySum(p int, a, b, sum []int) {
	for i := range sum {
		sum[i] = (a[i] + b[i]) % p
	}
}

// PolyProd multiplies two digit vectors mod p, reducing powers >= n with
// xton, and writes the n-digit result into prod.
func PolyProd(p int, xton, a, b, prod []int) {
	polyProd(p, xton, a, b, prod, make([]int, 2*len(xton)-1))
}

func polyProd(p int, xton, a, b, prod, long []int) {
	n := len(xton)
	for i := range long {
		long[i] = 0
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			long[i+j] += a[i] * b[j]
		}
	}
	// fold x^pos for pos >= n back into lower digits, highest first
	for pos := 2*n - 2; pos >= n; pos-- {
		long[pos] %= p
		for k := 0; k < n; k++ {
			long[pos-n+k] += xton[k] * long[pos]
		}
	}
	for i := 0; i < n; i++ {
		prod[i] = long[i] % p
	}
}

// PolyToInt evaluates the digit vector as a base-p number with Horner's rule.
func PolyToInt(p int, digits []int) int {
	ans := 0
	for i := len(digits) - 1; i > 0; i-- {
		ans = (ans + digits[i]) * p
	}
	return ans + digits[0]
}

// IntToPoly writes the len(coef) least significant base-q digits of n into
// coef, lowest first.
func IntToPoly(n, q int, coef []int) {
	for i := range coef {
		coef[i] = n % q
		n /= q
	}
}
