// Package wheel implements wheel factorization over the {2, 3, 5, 7}
// basis, run as one of the factorization pipeline's concurrent workers to
// catch mid-sized prime factors the small-prime trial division table
// missed, cheaply and without the overhead of the elliptic-curve method.
package wheel

import (
	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/internal/board"
	"github.com/jlauinger/primefactor/internal/tables"
)

// RunWorker scans candidates k = 7993, 7997, ... (skipping every
// multiple of 2, 3, 5 or 7) for factors of the board's number, stopping
// as soon as k exceeds num/k — beyond that point the remaining number
// can have no factor smaller than its own square root, so it must be
// prime.
//
// RunWorker tracks num locally rather than re-reading the board on every
// candidate (wheel steps are cheap and this avoids lock contention with
// the ECM workers). It re-reads the board once per revolution of the
// wheel (every 48 candidates), returning as soon as a sibling worker has
// reduced the number to 1, and acts on a hit through the board, so it
// always divides against the latest committed value.
func RunWorker[T any](r arith.Ring[T], b *board.Board[T]) {
	num := b.Num()
	one := r.One()

	k := r.FromUint64(tables.WheelStart)
	i := 0
	increments := tables.WheelIncrements

	for {
		k = r.RawAdd(k, r.FromUint64(uint64(increments[i])))
		i = (i + 1) % len(increments)

		if i == 0 {
			num = b.Num()
			if r.Cmp(num, one) == 0 {
				return
			}
		}

		if r.Cmp(k, arith.Div(r, num, k)) > 0 {
			b.Collapse(num, false)
			return
		}

		if !r.IsZero(arith.Mod(r, num, k)) {
			continue
		}

		updated, applied := b.ApplyRepeatedFactor(k)
		if !applied {
			// A sibling worker committed a smaller num, or already
			// recorded k; resync and keep scanning from there.
			num = b.Num()
			if r.Cmp(num, one) == 0 {
				return
			}
			continue
		}
		num = updated
		if r.Cmp(num, one) == 0 {
			return
		}
	}
}
