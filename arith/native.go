package arith

import (
	"golang.org/x/exp/constraints"
)

// Native implements Ring[T] for any native unsigned integer type. The
// engine only instantiates it at uint32 and uint64 (the two native
// widths); the constraint is kept general because nothing below depends
// on a specific width beyond what constraints.Unsigned already
// guarantees.
type Native[T constraints.Unsigned] struct{}

func (Native[T]) Zero() T { return 0 }
func (Native[T]) One() T  { return 1 }

func (Native[T]) IsZero(x T) bool { return x == 0 }
func (Native[T]) IsOne(x T) bool  { return x == 1 }
func (Native[T]) IsOdd(x T) bool  { return x&1 == 1 }

func (Native[T]) Cmp(x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (Native[T]) Half(x T) T { return x >> 1 }

func (Native[T]) DoubleOverflow(x T) (T, bool) {
	width := bitSize(x)
	topBit := T(1) << (width - 1)
	return x << 1, x&topBit != 0
}

func (Native[T]) RawAdd(x, y T) T { return x + y }
func (Native[T]) RawSub(x, y T) T { return x - y }

// Add returns (x+y) mod m for 0 <= x,y < m without a wider-than-T
// intermediate: "if x < m-y then x+y else min(x,y) - (m-max(x,y))".
func (Native[T]) Add(x, y, m T) T {
	if x < m-y {
		return x + y
	}
	lo, hi := x, y
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo - (m - hi)
}

func (Native[T]) Sub(x, y, m T) T {
	if x >= y {
		return x - y
	}
	return m - (y - x)
}

func (Native[T]) TruncSquare(x T) (T, bool) {
	switch any(x).(type) {
	case uint32:
		// x*x fits in 32 bits iff x < 2^16.
		if uint32(x) > 0xFFFF {
			var zero T
			return zero, false
		}
		return x * x, true
	case uint64:
		// x*x fits in 64 bits iff x < 2^32.
		if uint64(x) > 0xFFFFFFFF {
			var zero T
			return zero, false
		}
		return x * x, true
	default:
		// Generic fallback for other unsigned widths: detect overflow
		// via inverse division.
		if x == 0 {
			return 0, true
		}
		sq := x * x
		if sq/x != x {
			var zero T
			return zero, false
		}
		return sq, true
	}
}

func (Native[T]) FromUint64(v uint64) T { return T(v) }

func (Native[T]) Bit(x T, i uint) bool {
	if int(i) >= bitSize(x) {
		return false
	}
	return (x>>i)&1 == 1
}

func (Native[T]) BitLen(x T) int {
	n := 0
	for x != 0 {
		x >>= 1
		n++
	}
	return n
}

func bitSize[T constraints.Unsigned](x T) int {
	var probe T = ^T(0)
	n := 0
	for probe != 0 {
		probe >>= 1
		n++
	}
	return n
}
