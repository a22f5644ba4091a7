package arith

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	r32  = Native[uint32]{}
	r64  = Native[uint64]{}
	r128 = Ring128{}
)

func TestAddSubRoundTrip32(t *testing.T) {
	const testTimes = 1 << 10
	for i := 0; i < testTimes; i++ {
		m := uint32(rand.Uint64N(1<<32-2)) + 2
		x := uint32(rand.Uint64N(uint64(m)))
		y := uint32(rand.Uint64N(uint64(m)))

		sum := r32.Add(x, y, m)
		got := r32.Sub(sum, y, m)
		require.Equal(t, x, got)
	}
}

func TestAddSubRoundTrip128(t *testing.T) {
	const testTimes = 1 << 8
	for i := 0; i < testTimes; i++ {
		m := randU128NonZero()
		x := randU128Below(m)
		y := randU128Below(m)

		sum := r128.Add(x, y, m)
		got := r128.Sub(sum, y, m)
		require.Equal(t, x, got)
	}
}

func TestMulInverse64(t *testing.T) {
	const testTimes = 1 << 9
	for i := 0; i < testTimes; i++ {
		m := uint64(rand.Uint64N(1<<32)) + 3
		if m%2 == 0 {
			m++
		}
		x := uint64(rand.Uint64N(m))
		if x == 0 {
			continue
		}
		if GCD(r64, x, m) != 1 {
			continue
		}
		inv := ModInverse(r64, x, m)
		got := Mul(r64, x, inv, m)
		require.Equal(t, uint64(1), got)
	}
}

func TestExpIdentities32(t *testing.T) {
	const testTimes = 1 << 9
	for i := 0; i < testTimes; i++ {
		m := uint32(rand.Uint64N(1<<20)) + 2
		b := uint32(rand.Uint64N(uint64(m)))
		if b == 0 {
			b = 1
		}
		require.Equal(t, uint32(1)%m, Exp(r32, b, 0, m))

		e1 := uint32(rand.Uint64N(1 << 10))
		e2 := uint32(rand.Uint64N(1 << 10))

		lhs := Mul(r32, Exp(r32, b, e1, m), Exp(r32, b, e2, m), m)
		rhs := Exp(r32, b, e1+e2, m)
		require.Equal(t, rhs, lhs)
	}
}

func TestGCDLcmLaw(t *testing.T) {
	const testTimes = 1 << 10
	for i := 0; i < testTimes; i++ {
		x := uint64(rand.Uint64N(1<<20)) + 1
		y := uint64(rand.Uint64N(1<<20)) + 1

		g := GCD(r64, x, y)
		require.NotZero(t, g)
		lcm := x / g * y
		require.Equal(t, x*y, lcm*g)
	}
}

func TestJacobiLegendreAgreement(t *testing.T) {
	// Small known odd primes; for x not a multiple of p, jacobi(x,p)
	// must match the quadratic-residue/non-residue classification.
	primes := []uint32{3, 5, 7, 11, 13, 17, 19, 23, 29, 31}
	for _, p := range primes {
		residues := map[uint32]bool{}
		for x := uint32(1); x < p; x++ {
			sq := Mul(r32, x, x, p)
			residues[sq] = true
		}
		for x := uint32(1); x < p; x++ {
			j := Jacobi(r32, x, p)
			require.NotZero(t, j, "jacobi(%d,%d) must be nonzero", x, p)
			if residues[x] {
				require.Equal(t, 1, j, "x=%d p=%d", x, p)
			} else {
				require.Equal(t, -1, j, "x=%d p=%d", x, p)
			}
		}
		require.Zero(t, Jacobi(r32, p, p))
	}
}

func TestTruncSquareSentinel(t *testing.T) {
	sq, ok := r32.TruncSquare(3)
	require.True(t, ok)
	require.Equal(t, uint32(9), sq)

	_, ok = r32.TruncSquare(1 << 17) // 2^34 overflows uint32
	require.False(t, ok)

	sq128, ok := r128.TruncSquare(U128FromUint64(1 << 40))
	require.True(t, ok)
	require.Equal(t, NewU128(1<<16, 0), sq128)

	_, ok = r128.TruncSquare(NewU128(1, 0))
	require.False(t, ok)
}

func TestParseU128RoundTrip(t *testing.T) {
	cases := []string{"0", "1", "10_000", "340282366920938463463374607431768211455"}
	for _, c := range cases {
		v, err := ParseU128(c)
		require.NoError(t, err)
		require.Equal(t, stripUnderscores(c), v.String())
	}
}

func TestParseU128Rejects(t *testing.T) {
	cases := []string{"", "_1", "1_", "1__2", "12a", "340282366920938463463374607431768211456"}
	for _, c := range cases {
		_, err := ParseU128(c)
		require.Error(t, err)
	}
}

func stripUnderscores(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func randU128NonZero() U128 {
	for {
		v := NewU128(rand.Uint64(), rand.Uint64())
		if !v.IsZero() {
			return v
		}
	}
}

func randU128Below(m U128) U128 {
	for {
		v := NewU128(rand.Uint64()%(m.Hi+1), rand.Uint64())
		if v.Cmp(m) < 0 {
			return v
		}
	}
}
