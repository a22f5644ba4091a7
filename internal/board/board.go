// Package board holds the mutex-guarded shared state that every
// factorization worker goroutine (wheel and ECM alike) reads and updates
// concurrently: the number still left to factor and the factors peeled
// off of it so far. Centralizing the locking here keeps the worker
// packages (wheel, ecm) free of synchronization concerns — they only ever
// see a *Board[T] and never touch a mutex directly.
package board

import (
	"sync"

	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/prime"
)

// Factor pairs a value peeled off the board's number with whether the
// worker that found it already proved it prime (skipping a redundant
// primality test downstream).
type Factor[T any] struct {
	Value     T
	SurePrime bool
}

// Board is the shared view of "what's left to factor" that concurrent
// wheel/ECM workers poll and update. All mutation happens under one
// mutex so a worker's view of num is always a value some other worker
// actually committed, never a torn read.
type Board[T any] struct {
	r arith.Ring[T]

	mu      sync.Mutex
	num     T
	factors []Factor[T]
}

// New creates a board tracking num, to be whittled down to 1 by workers
// built against the same ring r.
func New[T any](r arith.Ring[T], num T) *Board[T] {
	return &Board[T]{r: r, num: num}
}

// Num returns the board's current number.
func (b *Board[T]) Num() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.num
}

// Factors returns a copy of the factors recorded so far.
func (b *Board[T]) Factors() []Factor[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Factor[T], len(b.factors))
	copy(out, b.factors)
	return out
}

// alreadyRecorded reports whether value has already been pushed to
// factors; callers must hold the lock.
func (b *Board[T]) alreadyRecorded(value T) bool {
	for _, f := range b.factors {
		if b.r.Cmp(f.Value, value) == 0 {
			return true
		}
	}
	return false
}

// ApplyFactor divides the board's number by candidate exactly once and
// records it, provided candidate still divides the board's current
// (possibly newer) num and has not already been recorded
// by a sibling worker. If the resulting quotient turns out to itself be
// prime, that is recorded too and the board collapses to 1 — mirroring
// the reference implementation's single critical section that both
// divides and checks primality atomically.
//
// It returns the board's number after the update and whether candidate
// was actually applied (false means a sibling worker already raced past
// this candidate and the caller should resync against current instead).
func (b *Board[T]) ApplyFactor(candidate T, sure bool) (current T, applied bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.r.Cmp(candidate, b.num) > 0 || b.alreadyRecorded(candidate) ||
		!b.r.IsZero(arith.Mod(b.r, b.num, candidate)) {
		return b.num, false
	}

	b.num = arith.Div(b.r, b.num, candidate)
	b.factors = append(b.factors, Factor[T]{Value: candidate, SurePrime: sure})

	if !b.r.IsOne(b.num) && prime.IsOddPrimeFactor(b.r, b.num) {
		b.factors = append(b.factors, Factor[T]{Value: b.num, SurePrime: true})
		b.num = b.r.One()
	}

	return b.num, true
}

// ApplyRepeatedFactor divides the board's number by candidate as many
// times as it still evenly divides, recording one Factor entry per
// division. Used by the wheel worker, whose small candidates can appear
// as repeated prime-power factors (e.g. num = 2^5 * ...).
func (b *Board[T]) ApplyRepeatedFactor(candidate T) (current T, applied bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.r.Cmp(candidate, b.num) > 0 || b.alreadyRecorded(candidate) ||
		!b.r.IsZero(arith.Mod(b.r, b.num, candidate)) {
		return b.num, false
	}

	for {
		b.num = arith.Div(b.r, b.num, candidate)
		b.factors = append(b.factors, Factor[T]{Value: candidate, SurePrime: true})

		if !b.r.IsZero(arith.Mod(b.r, b.num, candidate)) {
			break
		}
	}

	return b.num, true
}

// Collapse records that value equals the board's current number, setting
// the board's number to 1. sure indicates whether the caller has already
// proved value prime (true) or is relying on a structural argument that
// makes it certain without an explicit primality test (false — e.g. the
// wheel worker's "no factor found up to sqrt(num)" conclusion), leaving a
// downstream primality check to confirm it. It reports applied=false if a
// sibling worker had already moved the board's number past value (it is
// no longer the whole remaining number).
func (b *Board[T]) Collapse(value T, sure bool) (current T, applied bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.r.Cmp(value, b.num) != 0 {
		return b.num, false
	}

	b.num = b.r.One()
	b.factors = append(b.factors, Factor[T]{Value: value, SurePrime: sure})
	return b.num, true
}
