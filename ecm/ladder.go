package ecm

import (
	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/internal/tables"
)

// generatePoint derives a starting point and curve coefficient from a
// Suyama parameter sigma, following Suyama's parametrization of
// Montgomery curves for ECM. It reports ok=false when a required modular
// inverse does not exist; in that case maybeFactor holds gcd(denominator,
// num), which is itself a candidate factor of num.
func generatePoint[T any](r arith.Ring[T], sigma, num T) (p0 Point[T], a24 T, ok bool, maybeFactor T) {
	three := r.FromUint64(3)
	four := r.FromUint64(4)
	five := r.FromUint64(5)
	two := r.FromUint64(2)

	u := r.Sub(arith.Mul(r, sigma, sigma, num), five, num)
	u3 := arith.Exp(r, u, three, num)
	v := arith.Mul(r, sigma, four, num)

	p0 = Point[T]{X: u3, Z: arith.Exp(r, v, three, num)}

	vuDiff := arith.Exp(r, r.Sub(v, u, num), three, num)
	uvAdd := r.Add(arith.Mul(r, u, three, num), v, num)

	aNumer := arith.Mul(r, vuDiff, uvAdd, num)
	aDenom := arith.Mul(r, arith.Mul(r, u3, four, num), v, num)

	aDenomInv := arith.ModInverse(r, aDenom, num)
	if r.IsZero(aDenomInv) {
		return Point[T]{}, r.Zero(), false, arith.GCD(r, aDenom, num)
	}

	fourInv := arith.ModInverse(r, four, num)

	a := r.Sub(arith.Mul(r, aNumer, aDenomInv, num), two, num)
	a24 = arith.Mul(r, r.Add(a, two, num), fourInv, num)

	return p0, a24, true, r.Zero()
}

// montgomeryLadder computes kP0 for the fixed scalar k encoded in
// tables.LadderScalar, scanning it most-significant-bit first and
// skipping the implicit leading 1 bit and the final bit (both constant
// across every call, so omitting them saves one doubling/addition pair).
func montgomeryLadder[T any](r arith.Ring[T], p0 Point[T], a24, num T) Point[T] {
	q := p0
	p := p0
	double(r, &p, a24, num)

	const bitsPerByte = 8
	lastByteIdx := tables.LadderScalarLen - 1

	for i, b := range tables.LadderScalar {
		for cbit := bitsPerByte - 1; cbit >= 0; cbit-- {
			if (i == 0 && cbit == bitsPerByte-1) || (i == lastByteIdx && cbit == 0) {
				continue
			}
			if (b>>uint(cbit))&1 == 1 {
				add(r, &q, p, p0, num)
				double(r, &p, a24, num)
			} else {
				add(r, &p, q, p0, num)
				double(r, &q, a24, num)
			}
		}
	}

	return q
}

// ComputeMaybeFactor runs a single ECM trial with Suyama parameter sigma
// against num, returning a value that is either a nontrivial factor of
// num, num itself (if the curve's point order divides the scalar and
// collapses to the point at infinity), or 1 (the trial found nothing).
func ComputeMaybeFactor[T any](r arith.Ring[T], sigma, num T) T {
	p0, a24, ok, maybeFactor := generatePoint(r, sigma, num)
	if !ok {
		return maybeFactor
	}

	kp0 := montgomeryLadder(r, p0, a24, num)
	return arith.GCD(r, kp0.Z, num)
}
