package primefactor

import (
	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/prime"
)

// maxUint32 bounds the range Native[uint32] can hold; maxUint64 is implicit
// in U128.Hi == 0.
const maxUint32 = 1<<32 - 1

// ParseNumber parses a non-negative decimal string into a U128,
// tolerating '_' digit-group separators. It rejects empty, malformed, or
// out-of-range (> 2^128-1) input with a descriptive error.
func ParseNumber(s string) (arith.U128, error) {
	return arith.ParseU128(s)
}

// IsPrime reports whether n is prime, for callers that only need a
// primality oracle and not the full factorization. It has no
// precondition on n (unlike prime.IsOddPrimeFactor). Like RunAuto, it
// runs the oracle at the narrowest width that contains n.
func IsPrime(n arith.U128) bool {
	switch {
	case n.Hi == 0 && n.Lo <= maxUint32:
		return prime.IsProbablePrime(arith.Native[uint32]{}, uint32(n.Lo))
	case n.Hi == 0:
		return prime.IsProbablePrime(arith.Native[uint64]{}, n.Lo)
	default:
		return prime.IsProbablePrime(arith.Ring128{}, n)
	}
}

// Result is the width-erased outcome of RunAuto: whichever width
// actually ran the factorization, its factors and remaining-number field
// are widened back into U128 so callers don't need to juggle three
// generic instantiations of Factorization.
type Result struct {
	Num     arith.U128
	IsPrime bool
	Factors []arith.U128
	Stats   *Stats
}

// RunAuto factors num using the narrowest width that contains it: 32-bit
// if num fits in a uint32, 64-bit if it fits in a uint64, 128-bit
// otherwise. This mirrors original_source/src/main.rs's dispatch
// (`if num <= u32::MAX { ... } else if num <= u64::MAX { ... } else {
// ... }`), so every intermediate computation stays as cheap as the input
// actually allows instead of always paying the 128-bit path's cost.
func RunAuto(num arith.U128, opts ...Option) *Result {
	switch {
	case num.Hi == 0 && num.Lo <= maxUint32:
		return widen32(Run(arith.Native[uint32]{}, uint32(num.Lo), opts...))
	case num.Hi == 0:
		return widen64(Run(arith.Native[uint64]{}, num.Lo, opts...))
	default:
		return widen128(Run(arith.Ring128{}, num, opts...))
	}
}

func widen32(f *Factorization[uint32]) *Result {
	factors := make([]arith.U128, len(f.Factors))
	for i, p := range f.Factors {
		factors[i] = arith.U128FromUint64(uint64(p))
	}
	return &Result{
		Num:     arith.U128FromUint64(uint64(f.Num)),
		IsPrime: f.IsPrime,
		Factors: factors,
		Stats:   f.Stats,
	}
}

func widen64(f *Factorization[uint64]) *Result {
	factors := make([]arith.U128, len(f.Factors))
	for i, p := range f.Factors {
		factors[i] = arith.U128FromUint64(p)
	}
	return &Result{
		Num:     arith.U128FromUint64(f.Num),
		IsPrime: f.IsPrime,
		Factors: factors,
		Stats:   f.Stats,
	}
}

func widen128(f *Factorization[arith.U128]) *Result {
	return &Result{Num: f.Num, IsPrime: f.IsPrime, Factors: f.Factors, Stats: f.Stats}
}

// PrimeFactorRepr returns r's prime power representation, smallest prime
// first, the same way Factorization[T].PrimeFactorRepr does.
func (r *Result) PrimeFactorRepr() []PrimePower[arith.U128] {
	ring := arith.Ring128{}
	var repr []PrimePower[arith.U128]

	k := r.Num
	var count uint32
	var prev arith.U128
	havePrev := false

	for i := len(r.Factors) - 1; i >= 0; i-- {
		curr := r.Factors[i]

		if havePrev && ring.Cmp(curr, prev) != 0 && count > 0 {
			repr = append(repr, PrimePower[arith.U128]{Prime: prev, Count: count})
			count = 0
		}

		count++
		k = arith.Div(ring, k, curr)
		prev = curr
		havePrev = true

		if ring.IsOne(k) {
			repr = append(repr, PrimePower[arith.U128]{Prime: prev, Count: count})
			break
		}
	}

	for i, j := 0, len(repr)-1; i < j; i, j = i+1, j-1 {
		repr[i], repr[j] = repr[j], repr[i]
	}
	return repr
}
