package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlauinger/primefactor/arith"
)

var r32 = arith.Native[uint32]{}

func TestApplyFactorDividesAndRecords(t *testing.T) {
	b := New[uint32](r32, 1000)

	current, applied := b.ApplyFactor(8, false)
	require.True(t, applied)
	require.Equal(t, uint32(125), current)
	require.Equal(t, []Factor[uint32]{{Value: 8, SurePrime: false}}, b.Factors())
}

func TestApplyFactorCollapsesWhenQuotientIsPrime(t *testing.T) {
	b := New[uint32](r32, 6) // 6 = 2 * 3, both prime

	current, applied := b.ApplyFactor(2, false)
	require.True(t, applied)
	require.Equal(t, uint32(1), current)

	factors := b.Factors()
	require.Len(t, factors, 2)
	require.Equal(t, uint32(2), factors[0].Value)
	require.Equal(t, uint32(3), factors[1].Value)
	require.True(t, factors[1].SurePrime)
}

func TestApplyFactorRejectsStaleCandidate(t *testing.T) {
	b := New[uint32](r32, 10)
	_, applied := b.ApplyFactor(20, false)
	require.False(t, applied)
	require.Equal(t, uint32(10), b.Num())
}

func TestApplyFactorRejectsAlreadyRecorded(t *testing.T) {
	b := New[uint32](r32, 2*2*3*3*5)
	_, applied := b.ApplyFactor(2, false)
	require.True(t, applied)

	_, applied = b.ApplyFactor(2, false)
	require.False(t, applied)
}

func TestApplyRepeatedFactorDividesOutAllPowers(t *testing.T) {
	b := New[uint32](r32, 2*2*2*2*13) // 2^4 * 13

	current, applied := b.ApplyRepeatedFactor(2)
	require.True(t, applied)
	require.Equal(t, uint32(13), current)

	factors := b.Factors()
	require.Len(t, factors, 4)
	for _, f := range factors {
		require.Equal(t, uint32(2), f.Value)
		require.True(t, f.SurePrime)
	}
}

func TestCollapseMatchesCurrentNum(t *testing.T) {
	b := New[uint32](r32, 97)

	current, applied := b.Collapse(97, false)
	require.True(t, applied)
	require.Equal(t, uint32(1), current)
	require.Equal(t, []Factor[uint32]{{Value: 97, SurePrime: false}}, b.Factors())
}

func TestCollapseRejectsStaleValue(t *testing.T) {
	b := New[uint32](r32, 97)
	_, applied := b.ApplyFactor(97, true)
	require.True(t, applied)

	_, applied = b.Collapse(97, false)
	require.False(t, applied)
}
