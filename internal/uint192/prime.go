package uint192

import "math/bits"

var smallPrimes = [...]uint64{2, 3, 5, 7, 11, 13}

// witnesses are the deterministic Miller-Rabin bases sufficient to decide
// primality for every n < 318,665,857,834,031,151,167,461 (well beyond
// any modulus this module needs to check).
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// mulMod returns a*b mod n, reducing the full 128-bit product through
// Uint192 so a, b, n can be anywhere in [0, 2^64).
func mulMod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, r := FromUint64Pair(hi, lo).DivU64(n)
	return r
}

func powMod(base, exp, n uint64) uint64 {
	result := uint64(1) % n
	base %= n
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, n)
		}
		base = mulMod(base, base, n)
		exp >>= 1
	}
	return result
}

// IsProbablePrime reports whether n is prime, using trial division by a
// handful of small primes followed by a deterministic Miller-Rabin test
// (HAC 4.24) over the fixed witness set above. Mirrors the role of the
// original scheme's prime-checking helper: verifying the moduli the ring
// arithmetic hardcodes (Q = 8380417 for ML-DSA, q = 3329 for ML-KEM) are
// in fact prime, rather than anything exercised at runtime.
func IsProbablePrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	return millerRabin(n)
}

func millerRabin(n uint64) bool {
	// n-1 = 2^s * r, r odd.
	s := bits.TrailingZeros64(n - 1)
	if s == 0 {
		return false // n is even
	}
	r := (n - 1) >> uint(s)

	for _, a := range witnesses {
		if a > n-2 {
			break
		}
		if !millerRabinRound(n, s, r, a) {
			return false
		}
	}
	return true
}

func millerRabinRound(n uint64, s int, r, a uint64) bool {
	y := powMod(a, r, n)
	if y == 1 || y == n-1 {
		return true
	}
	for j := 0; j < s-1; j++ {
		y = mulMod(y, y, n)
		if y == n-1 {
			return true
		}
		if y == 1 {
			return false
		}
	}
	return false
}
