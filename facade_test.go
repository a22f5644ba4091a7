package primefactor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlauinger/primefactor/arith"
)

func repeatU128(v uint64, n int) []arith.U128 {
	out := make([]arith.U128, n)
	for i := range out {
		out[i] = arith.U128FromUint64(v)
	}
	return out
}

func u128s(vs ...uint64) []arith.U128 {
	out := make([]arith.U128, len(vs))
	for i, v := range vs {
		out[i] = arith.U128FromUint64(v)
	}
	return out
}

func TestRunAutoSelectsNarrowestWidth(t *testing.T) {
	cases := []struct {
		name    string
		num     arith.U128
		factors []arith.U128
	}{
		{
			name:    "fits uint32",
			num:     arith.U128FromUint64(244_334_639),
			factors: u128s(9199, 26_561),
		},
		{
			name:    "uint32 boundary 2^32-1",
			num:     arith.U128FromUint64(maxUint32),
			factors: u128s(3, 5, 17, 257, 65_537),
		},
		{
			name:    "needs uint64, just past the uint32 boundary",
			num:     arith.U128FromUint64(maxUint32 + 1),
			factors: repeatU128(2, 32), // 2^32 == (2^32-1)+1
		},
		{
			name: "needs 128-bit",
			num:  mustU128(t, "340_282_366_920_938_463_463_374_607_431_768_211_455"),
			factors: append(
				u128s(3, 5, 17, 257, 641, 65_537, 274_177, 6_700_417),
				mustU128(t, "67_280_421_310_721"),
			),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := RunAuto(c.num)
			require.False(t, result.IsPrime)
			require.Equal(t, c.factors, result.Factors)
		})
	}
}

func TestRunAutoPrimeInput(t *testing.T) {
	num := arith.U128FromUint64(7927)
	result := RunAuto(num)

	require.True(t, result.IsPrime)
	require.Equal(t, []arith.U128{num}, result.Factors)
}

func TestIsPrimeDispatchesAcrossWidths(t *testing.T) {
	require.True(t, IsPrime(arith.U128FromUint64(7927)))
	require.False(t, IsPrime(arith.U128FromUint64(maxUint32+1)))
	require.True(t, IsPrime(mustU128(t, "2_305_843_009_213_693_951")))
	require.False(t, IsPrime(arith.U128FromUint64(0)))
}
