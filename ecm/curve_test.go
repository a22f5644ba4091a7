package ecm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlauinger/primefactor/arith"
)

var r32 = arith.Native[uint32]{}

func TestDoubleKnownValue(t *testing.T) {
	p := Point[uint32]{X: 11, Z: 16}
	double(r32, &p, 7, 29)

	require.Equal(t, uint32(13), p.X)
	require.Equal(t, uint32(10), p.Z)
}

func TestAddKnownValue(t *testing.T) {
	p0 := Point[uint32]{X: 11, Z: 16}
	left := p0
	right := Point[uint32]{X: 13, Z: 10}

	add(r32, &left, right, p0, 29)

	require.Equal(t, uint32(23), left.X)
	require.Equal(t, uint32(17), left.Z)
}

func TestComputeMaybeFactorFindsKnownSplit(t *testing.T) {
	// 2^32-1 = 4294967295 = 3 * 5 * 17 * 257 * 65537. A handful of
	// sigma values should surface some nontrivial factor quickly for
	// this heavily composite number.
	num := uint32(4294967295)
	found := false
	for sigma := uint32(6); sigma < 200; sigma++ {
		factor := ComputeMaybeFactor(r32, sigma, num)
		if factor > 1 && factor < num {
			require.Zero(t, num%factor)
			found = true
			break
		}
	}
	require.True(t, found, "expected at least one sigma in range to split a heavily composite number")
}
