// Package primes tests integers for primality by trial division and filters
// sequences down to their prime elements.
package primes

import "math"

// IsPrime reports whether n is prime.
//
// Values <= 1 (negatives included) are not prime. Odd candidates are tried
// against every odd divisor from 3 up to and including isqrt(n).
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := isqrt(n)
	for d := int64(3); d <= limit; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Filter returns how many elements of seq are prime along with those elements,
// in input order and without deduplication. primes is never nil.
func Filter(seq []int64) (count int, primes []int64) {
	primes, _ = Scan(seq)
	return len(primes), primes
}

// Scan tests every element once and returns the primes with their positions.
// Both slices are non-nil and have equal length.
func Scan(seq []int64) (primes []int64, idx []int) {
	primes = make([]int64, 0)
	idx = make([]int, 0)
	for i, v := range seq {
		if IsPrime(v) {
			primes = append(primes, v)
			idx = append(idx, i)
		}
	}
	return primes, idx
}

// isqrt returns floor(sqrt(n)) for n >= 0, corrected for float rounding.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}
