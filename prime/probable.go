package prime

import "github.com/jlauinger/primefactor/arith"

var smallPrimes = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67}

// IsProbablePrime reports whether num is prime. Unlike IsOddPrimeFactor it
// needs no precondition: it handles evenness and the smallest prime
// divisors itself before delegating to the Miller-Rabin/BPSW machinery.
func IsProbablePrime[T any](r arith.Ring[T], num T) bool {
	if r.Cmp(num, r.FromUint64(2)) < 0 {
		return false
	}
	for _, p := range smallPrimes {
		pv := r.FromUint64(p)
		if r.Cmp(num, pv) == 0 {
			return true
		}
		if r.IsZero(arith.Mod(r, num, pv)) {
			return false
		}
	}
	return IsOddPrimeFactor(r, num)
}

// NextProbablePrime returns the smallest prime strictly greater than num.
func NextProbablePrime[T any](r arith.Ring[T], num T) T {
	one := r.One()
	candidate := r.RawAdd(num, one)
	if r.Cmp(candidate, r.FromUint64(2)) <= 0 {
		return r.FromUint64(2)
	}
	if !r.IsOdd(candidate) {
		candidate = r.RawAdd(candidate, one)
	}
	for !IsProbablePrime(r, candidate) {
		candidate = r.RawAdd(candidate, r.FromUint64(2))
	}
	return candidate
}
