package primefactor

import (
	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/prime"
)

// sqrtFloor returns floor(sqrt(num)) via Newton's method expressed
// entirely with the ring's safe operations (no signed or wider-than-W
// intermediate).
func sqrtFloor[T any](r arith.Ring[T], num T) T {
	if r.IsZero(num) {
		return r.Zero()
	}
	shift := (r.BitLen(num) + 1) / 2
	x := r.One()
	for i := 0; i < shift; i++ {
		x = r.RawAdd(x, x)
	}
	for {
		if r.IsZero(x) {
			return x
		}
		quotient := arith.Div(r, num, x)
		next := r.Half(r.RawAdd(x, quotient))
		if r.Cmp(next, x) >= 0 {
			return x
		}
		x = next
	}
}

// factorizeFermat tries Fermat's factorization method: num = a^2 - b^2 =
// (a+b)(a-b) for a = ceil(sqrt(num)), a+1, a+2, ..., up to ten rounds.
// This is cheap and finds factors instantly when num is the product of
// two close primes, the case trial division and ECM are both bad at.
//
// level doubles on each recursive call into a perfect square's own
// square root (num = a^2, a = c^2, ...), so that when the recursion
// bottoms out at a prime, that prime is pushed `level` times — the
// correct multiplicity for the original num.
func (f *Factorization[T]) factorizeFermat(num T, level int) T {
	r := f.ring

	a := sqrtFloor(r, num)
	aSquare, _ := r.TruncSquare(a)

	if r.Cmp(aSquare, num) == 0 {
		if prime.IsOddPrimeFactor(r, a) {
			for i := 0; i < level; i++ {
				f.pushFactor(a)
			}
			return r.One()
		}
		// a is not yet known prime: recurse into factoring it, doubling
		// the multiplicity level since num = a^2.
		back := f.factorizeFermat(a, level<<1)
		if r.Cmp(back, r.One()) > 0 {
			// Recursive factoring did not complete; report no progress
			// on the original num so the caller falls through to the
			// primality test / ECM instead.
			return num
		}
		return back
	}

	a = r.RawAdd(a, r.One())
	aSquare, ok := r.TruncSquare(a)
	if !ok {
		return num
	}

	for round := 0; round < 10; round++ {
		bSquare := r.RawSub(aSquare, num)
		b := sqrtFloor(r, bSquare)

		if sq, ok := r.TruncSquare(b); ok && r.Cmp(sq, bSquare) == 0 {
			rounds := level >> 1
			for i := 0; i < rounds; i++ {
				f.pushFactor(r.RawSub(a, b))
				f.pushFactor(r.RawAdd(a, b))
			}
			return r.One()
		}

		a = r.RawAdd(a, r.One())
		aSquare, ok = r.TruncSquare(a)
		if !ok {
			return num
		}
	}

	return num
}
