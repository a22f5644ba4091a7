package arith

import "math/bits"

// U128 is an unsigned 128-bit integer represented as two 64-bit limbs,
// most significant first. Go has no built-in 128-bit integer type, so
// this is the hand-written "third specialization" the generic Native[T]
// path can't cover.
type U128 struct {
	Hi, Lo uint64
}

// NewU128 builds a U128 from high and low 64-bit limbs.
func NewU128(hi, lo uint64) U128 { return U128{Hi: hi, Lo: lo} }

// U128FromUint64 widens a uint64 into a U128.
func U128FromUint64(v uint64) U128 { return U128{Lo: v} }

func (a U128) Cmp(b U128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (a U128) IsZero() bool { return a.Hi == 0 && a.Lo == 0 }

func (a U128) add(b U128) (U128, uint64) {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, carryOut := bits.Add64(a.Hi, b.Hi, carry)
	return U128{Hi: hi, Lo: lo}, carryOut
}

func (a U128) sub(b U128) (U128, uint64) {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, borrowOut := bits.Sub64(a.Hi, b.Hi, borrow)
	return U128{Hi: hi, Lo: lo}, borrowOut
}

func (a U128) half() U128 {
	lo := a.Lo>>1 | a.Hi<<63
	hi := a.Hi >> 1
	return U128{Hi: hi, Lo: lo}
}

// doubleOverflow returns a<<1 and whether the top bit of a.Hi was set.
func (a U128) doubleOverflow() (U128, bool) {
	overflow := a.Hi&(1<<63) != 0
	hi := a.Hi<<1 | a.Lo>>63
	lo := a.Lo << 1
	return U128{Hi: hi, Lo: lo}, overflow
}

// Ring128 implements Ring[U128].
type Ring128 struct{}

func (Ring128) Zero() U128 { return U128{} }
func (Ring128) One() U128  { return U128{Lo: 1} }

func (Ring128) IsZero(x U128) bool { return x.IsZero() }
func (Ring128) IsOne(x U128) bool  { return x.Hi == 0 && x.Lo == 1 }
func (Ring128) IsOdd(x U128) bool  { return x.Lo&1 == 1 }

func (Ring128) Cmp(x, y U128) int { return x.Cmp(y) }

func (Ring128) Half(x U128) U128 { return x.half() }

func (Ring128) DoubleOverflow(x U128) (U128, bool) { return x.doubleOverflow() }

func (Ring128) RawAdd(x, y U128) U128 {
	sum, _ := x.add(y)
	return sum
}

func (Ring128) RawSub(x, y U128) U128 {
	diff, _ := x.sub(y)
	return diff
}

// Add returns (x+y) mod m for 0 <= x,y < m, following the same
// overflow-avoiding formula as Native.Add but on 128-bit limb pairs.
func (Ring128) Add(x, y, m U128) U128 {
	mMinusY, _ := m.sub(y)
	if x.Cmp(mMinusY) < 0 {
		sum, _ := x.add(y)
		return sum
	}
	lo, hi := x, y
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	mMinusHi, _ := m.sub(hi)
	diff, _ := lo.sub(mMinusHi)
	return diff
}

func (Ring128) Sub(x, y, m U128) U128 {
	if x.Cmp(y) >= 0 {
		diff, _ := x.sub(y)
		return diff
	}
	yMinusX, _ := y.sub(x)
	diff, _ := m.sub(yMinusX)
	return diff
}

// TruncSquare returns (x*x, true) if the 128-bit product fits in 128
// bits, else (zero value, false). Writing x = Hi*2^64 + Lo, x^2 has a
// Hi^2*2^128 term that is nonzero whenever Hi != 0, so the product fits
// iff Hi == 0 — in which case x^2 = Lo^2, which always fits in 128 bits.
func (Ring128) TruncSquare(x U128) (U128, bool) {
	if x.Hi != 0 {
		return U128{}, false
	}
	hi, lo := bits.Mul64(x.Lo, x.Lo)
	return U128{Hi: hi, Lo: lo}, true
}

func (Ring128) FromUint64(v uint64) U128 { return U128{Lo: v} }

func (Ring128) Bit(x U128, i uint) bool {
	if i < 64 {
		return (x.Lo>>i)&1 == 1
	}
	if i < 128 {
		return (x.Hi>>(i-64))&1 == 1
	}
	return false
}

func (Ring128) BitLen(x U128) int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}
	return bits.Len64(x.Lo)
}

func (x U128) String() string {
	return x.decimalString()
}
