// Package ecm implements Lenstra's elliptic-curve factorization method
// (ECM) over Montgomery-form curves, using Suyama's parametrization to
// generate a random curve and starting point for each trial and a
// Montgomery ladder driven by a single fixed smooth scalar to compute a
// large multiple of the starting point.
//
// All modular arithmetic is delegated to arith.Ring[T] so this package
// never performs an operation wider than the working width, the same
// discipline the arith package itself follows.
package ecm

import "github.com/jlauinger/primefactor/arith"

// Point is a point on a Montgomery curve in (X, Z) projective form: the
// affine x-coordinate is X/Z. Neither coordinate is ever divided during
// the ladder; only the final gcd(Z, num) step recovers a factor.
type Point[T any] struct {
	X, Z T
}

// double computes 2P in place using the standard Montgomery
// differential-doubling formula, parametrized by curve coefficient a24 =
// (a+2)/4 mod num.
func double[T any](r arith.Ring[T], p *Point[T], a24, num T) {
	sum := r.Add(p.X, p.Z, num)
	diff := r.Sub(p.X, p.Z, num)

	sumSq := arith.Mul(r, sum, sum, num)
	diffSq := arith.Mul(r, diff, diff, num)

	mixed := r.Sub(sumSq, diffSq, num)

	p.X = arith.Mul(r, sumSq, diffSq, num)
	p.Z = arith.Mul(r, mixed, r.Add(diffSq, arith.Mul(r, a24, mixed, num), num), num)
}

// add computes P+Q in place into lp, given the difference point p0 = P-Q
// (the standard Montgomery differential-addition trick that avoids ever
// needing the curve's full addition law).
func add[T any](r arith.Ring[T], lp *Point[T], rp, p0 Point[T], num T) {
	lSum := r.Add(lp.X, lp.Z, num)
	lDiff := r.Sub(lp.X, lp.Z, num)
	rSum := r.Add(rp.X, rp.Z, num)
	rDiff := r.Sub(rp.X, rp.Z, num)

	lt := arith.Mul(r, lDiff, rSum, num)
	rt := arith.Mul(r, lSum, rDiff, num)

	sumT := r.Add(lt, rt, num)
	diffT := r.Sub(lt, rt, num)

	newX := arith.Mul(r, p0.Z, arith.Mul(r, sumT, sumT, num), num)
	newZ := arith.Mul(r, p0.X, arith.Mul(r, diffT, diffT, num), num)

	lp.X = newX
	lp.Z = newZ
}
