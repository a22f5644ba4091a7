package prime

import "github.com/jlauinger/primefactor/arith"

// lucasParams holds the (D, P, Q) triple selected by selectLucasParams for
// the strong Lucas probable-prime test. D is kept already reduced to its
// signed-equivalent residue mod num (negative values represented as
// num-|D|), since this package has no signed integer type.
type lucasParams[T any] struct {
	D, P, Q T
}

// selectLucasParams searches the sequence D = 5, -7, 9, -11, ... for the
// first value whose Jacobi symbol against num is -1, returning the Lucas
// parameters derived from it. It reports false if num is shown composite
// during the search (a zero Jacobi symbol for a D that shares a factor with
// num) or if num is found to be a perfect square (Lucas is inconclusive for
// squares, so BPSW treats them as composite).
func selectLucasParams[T any](r arith.Ring[T], num T) (lucasParams[T], bool) {
	two := r.FromUint64(2)
	five := r.FromUint64(5)

	d := five
	for i := 0; ; i++ {
		dOrig := d

		dSigned := d
		if i&1 == 1 {
			dSigned = r.RawSub(num, arith.Mod(r, d, num))
		}

		jac := arith.Jacobi(r, dSigned, num)

		if jac == -1 {
			var p, q T
			switch {
			case i&1 == 1:
				p = r.One()
				q = r.Half(r.Half(r.RawAdd(r.One(), dOrig)))
			case r.Cmp(dOrig, five) == 0:
				p = five
				q = five
			default:
				p = r.One()
				qTemp := r.Half(r.Half(r.RawSub(dOrig, r.One())))
				q = r.RawSub(num, arith.Mod(r, qTemp, num))
			}
			return lucasParams[T]{D: dSigned, P: p, Q: q}, true
		}

		if jac == 0 {
			rem := arith.Mod(r, dOrig, num)
			if r.Cmp(dOrig, num) < 0 || !r.IsZero(rem) {
				return lucasParams[T]{}, false
			}
		}

		if i == 10 {
			root := sqrtFloor(r, num)
			if sq, ok := r.TruncSquare(root); ok && r.Cmp(sq, num) == 0 {
				return lucasParams[T]{}, false
			}
		}

		d = r.RawAdd(d, two)
	}
}

// passStrongLucasTest runs the strong Lucas probable-prime test (the "PSW"
// half of Baillie-PSW) against num using the Lucas sequences U_k, V_k
// defined by params, built up bit-by-bit (most significant bit first) over
// numEven = num+1.
func passStrongLucasTest[T any](r arith.Ring[T], num T, params lucasParams[T]) bool {
	numEven := r.RawAdd(num, r.One())

	pow := 0
	numOdd := numEven
	for !r.IsOdd(numOdd) {
		numOdd = r.Half(numOdd)
		pow++
	}

	bitsToCheck := r.BitLen(numEven)

	u, v, w := r.Zero(), two(r), r.One()

	round := r.Zero()
	euler := r.Half(numEven)
	isSLPRP := false
	passEulerCrit := false

	for bit := 0; bit < bitsToCheck; bit++ {
		if bit > 0 {
			updateLucasNormal(r, num, &u, &v, &w)
			round = r.RawAdd(round, round)
		}

		bitIndex := bitsToCheck - 1 - bit
		if r.Bit(numEven, uint(bitIndex)) {
			updateLucasOddBit(r, num, params, &u, &v, &w)
			round = r.RawAdd(round, r.One())
		}

		if !isSLPRP && r.IsZero(v) && r.Cmp(round, numOdd) > 0 && bit < bitsToCheck-1 {
			isSLPRP = true
		}

		if r.Cmp(round, numOdd) == 0 && (r.IsZero(u) || r.IsZero(v)) {
			isSLPRP = true
		}

		if r.Cmp(round, euler) == 0 {
			jac := arith.Jacobi(r, params.Q, num)
			var qJac T
			switch {
			case jac == 0:
				qJac = r.Zero()
			case jac > 0:
				qJac = r.RawSub(num, arith.Mod(r, params.Q, num))
			default:
				qJac = params.Q
			}
			if r.IsZero(arith.Mod(r, r.Add(w, qJac, num), num)) {
				passEulerCrit = true
			}
		}
	}

	if !r.IsZero(u) || !isSLPRP || !passEulerCrit {
		return false
	}

	return r.Cmp(arith.Mod(r, arith.Mul(r, two(r), params.Q, num), num), arith.Mod(r, v, num)) == 0
}

func two[T any](r arith.Ring[T]) T { return r.FromUint64(2) }

// updateLucasNormal doubles the Lucas index k: (U,V,Q^k) -> (U_2k,V_2k,Q^2k).
func updateLucasNormal[T any](r arith.Ring[T], num T, u, v, w *T) {
	*u = arith.Mul(r, *u, *v, num)
	*v = r.Add(arith.Mul(r, *v, *v, num), arith.Mul(r, r.RawSub(num, two(r)), *w, num), num)
	*w = arith.Mul(r, *w, *w, num)
}

// lucasHalfSum computes (x+y)/2 mod num for the coefficient recurrences,
// taking the "add num then halve" branch when x+y is odd since num is
// odd, mirroring arith.halveOdd's trick for the general odd-modulus case.
func lucasHalfSum[T any](r arith.Ring[T], x, y, num T) T {
	sum := r.Add(x, y, num)
	if r.IsOdd(sum) {
		half1 := r.Half(r.RawSub(sum, r.One()))
		half2 := r.RawAdd(r.Half(r.RawSub(num, r.One())), r.One())
		return r.Add(half1, half2, num)
	}
	return r.Half(sum)
}

// updateLucasOddBit advances the Lucas index k by one: (U,V,Q^k) -> (U_{k+1},V_{k+1},Q^{k+1}).
func updateLucasOddBit[T any](r arith.Ring[T], num T, params lucasParams[T], u, v, w *T) {
	newU := lucasHalfSum(r, arith.Mul(r, params.P, *u, num), *v, num)
	newV := lucasHalfSum(r, arith.Mul(r, params.D, *u, num), arith.Mul(r, params.P, *v, num), num)

	*u = newU
	*v = newV
	*w = arith.Mul(r, params.Q, *w, num)
}
