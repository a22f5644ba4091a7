package wheel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/internal/board"
)

var r32 = arith.Native[uint32]{}

func TestRunWorkerFindsProductOfTwoMidSizedPrimes(t *testing.T) {
	// 8009 and 8011 are both prime and lie right at the wheel's starting
	// candidate (7991 + first increments), well past the trial-division
	// table, exercising the wheel's own search rather than the small
	// primes list.
	num := uint32(8009) * uint32(8011)
	b := board.New(r32, num)

	RunWorker(r32, b)

	require.Equal(t, uint32(1), b.Num())
	factors := b.Factors()
	require.Len(t, factors, 2)
	require.Equal(t, uint32(8009), factors[0].Value)
	require.Equal(t, uint32(8011), factors[1].Value)
}

func TestRunWorkerCollapsesPrimeInput(t *testing.T) {
	num := uint32(8191) // prime, below the wheel's sqrt cutoff for a quick run
	b := board.New(r32, num)

	RunWorker(r32, b)

	require.Equal(t, uint32(1), b.Num())
	factors := b.Factors()
	require.Len(t, factors, 1)
	require.Equal(t, num, factors[0].Value)
	require.False(t, factors[0].SurePrime)
}

func TestRunWorkerHandlesRepeatedFactor(t *testing.T) {
	num := uint32(8009) * uint32(8009)
	b := board.New(r32, num)

	RunWorker(r32, b)

	require.Equal(t, uint32(1), b.Num())
	factors := b.Factors()
	require.Len(t, factors, 2)
	require.Equal(t, uint32(8009), factors[0].Value)
	require.Equal(t, uint32(8009), factors[1].Value)
}
