package ecm

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/internal/board"
	"github.com/jlauinger/primefactor/prime"
)

// MaxCurves bounds the number of Suyama curves a single worker will try
// against one number before giving up and letting the pipeline driver
// fall back to a slower method.
const MaxCurves = 125

// sigmaFloor is Suyama's parametrization's minimum valid sigma: sigma < 6
// degenerates the curve.
const sigmaFloor = 6

// RunWorker repeatedly runs Lenstra's elliptic-curve method with fresh
// random curves against board's number until it collapses to 1, the
// curve budget is exhausted, or the board's remaining number no longer
// needs this worker's help. Progress (factors found) is reported through
// board, which also lets this worker pick up a sibling worker's (or the
// wheel worker's) progress by re-reading the shared num periodically.
func RunWorker[T any](r arith.Ring[T], b *board.Board[T], rng *rand.Rand, log *logrus.Entry) {
	num := b.Num()
	curve := 1

	for !r.IsOne(num) && curve <= MaxCurves {
		sigma := randomSigma(r, rng)
		factor := ComputeMaybeFactor(r, sigma, num)

		switch {
		case r.Cmp(factor, r.One()) > 0 && r.Cmp(factor, num) < 0:
			updated, applied := b.ApplyFactor(factor, false)
			num = updated
			if applied && log != nil {
				log.Debugf("curve %d: split off factor", curve)
			}
		case r.Cmp(factor, num) == 0 && prime.IsOddPrimeFactor(r, factor):
			updated, applied := b.Collapse(factor, true)
			num = updated
			if applied && log != nil {
				log.Debug("curve collapsed remaining number to a confirmed prime")
			}
		case curve&31 == 0:
			// Resync with the board periodically even on a run of dead
			// curves, so a sibling worker's progress isn't ignored for
			// the rest of this worker's budget.
			num = b.Num()
		}

		curve++
	}
}

// randomSigma draws a Suyama parameter uniformly from [sigmaFloor,
// 2^32-1), following the reference implementation's range.
func randomSigma[T any](r arith.Ring[T], rng *rand.Rand) T {
	v := sigmaFloor + rng.Uint32N((1<<32-1)-sigmaFloor)
	return r.FromUint64(uint64(v))
}
