// Package primefactor factors natural numbers into their prime power
// decomposition, combining trial division, Fermat's method, a
// Miller-Rabin/strong-Baillie-PSW primality oracle and Lenstra's
// elliptic-curve method (ECM) behind a concurrent worker pool.
//
// The complete algorithm, run by Run:
//   - Trial division against the first 1006 primes.
//   - Fermat's method, which finds factors of the form (a+b)(a-b)
//     instantly when num is a product of two close primes or a perfect
//     power.
//   - A primality check (prime.IsOddPrimeFactor) to stop early once the
//     remaining cofactor is itself prime.
//   - A pool of concurrent workers: one running wheel factorization
//     (catches smaller factors cheaply) and the rest running ECM
//     (catches everything else), racing each other against a shared,
//     mutex-guarded board of "what's left to factor".
//
// Factorization stops once the tracked number reaches 1.
package primefactor

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jlauinger/primefactor/arith"
	"github.com/jlauinger/primefactor/ecm"
	"github.com/jlauinger/primefactor/internal/board"
	"github.com/jlauinger/primefactor/internal/tables"
	"github.com/jlauinger/primefactor/prime"
	"github.com/jlauinger/primefactor/wheel"
)

// MaxWorkers is the total number of goroutines spawned for each
// elliptic-curve stage of factorization: the first worker always runs
// wheel factorization and the remaining MaxWorkers-1 run ECM. Kept
// between three and six per the reference implementation's empirical
// tuning.
const MaxWorkers = 5

// PrimePower is one term prm^count of a factorization's prime power
// representation.
type PrimePower[T any] struct {
	Prime T
	Count uint32
}

// Stats collects optional diagnostics about a Run call, populated only
// when WithStats is passed.
type Stats struct {
	TrialDivisionHits int
	FermatRounds      int
	CurvesAttempted   int
	WheelCandidates   int
	Elapsed           time.Duration
}

// Option configures a Run call.
type Option func(*runConfig)

type runConfig struct {
	collectStats bool
	logger       *logrus.Logger
}

// WithStats enables Stats collection on the returned Factorization.
func WithStats() Option {
	return func(c *runConfig) { c.collectStats = true }
}

// WithLogger overrides the default (silent) logger used for worker
// lifecycle diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(c *runConfig) { c.logger = log }
}

// Factorization holds the input number, whether it is prime, and (once
// Run has completed) its factors sorted smallest first.
type Factorization[T any] struct {
	Num     T
	IsPrime bool
	Factors []T
	Stats   *Stats

	ring arith.Ring[T]
	mu   sync.Mutex
}

func (f *Factorization[T]) pushFactor(p T) {
	f.mu.Lock()
	f.Factors = append(f.Factors, p)
	f.mu.Unlock()
}

// Run factors num into its prime factors. Factors are returned smallest
// first; IsPrime is true iff num itself is prime (in which case Factors
// is the single-element slice [num]).
func Run[T any](r arith.Ring[T], num T, opts ...Option) *Factorization[T] {
	cfg := runConfig{logger: silentLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Factorization[T]{Num: num, ring: r}
	if cfg.collectStats {
		f.Stats = &Stats{}
	}
	start := time.Now()

	if r.Cmp(num, r.One()) <= 0 {
		return f
	}

	remaining := f.factorizeTrial(num)
	f.factorizeUntilComplete(remaining, cfg.logger)

	if len(f.Factors) > 1 {
		f.pruneDuplicateFactors()
	} else {
		f.IsPrime = true
	}

	if f.Stats != nil {
		f.Stats.Elapsed = time.Since(start)
	}
	return f
}

// factorizeTrial divides out every small prime from the built-in table,
// recording each hit, and returns the remaining cofactor.
func (f *Factorization[T]) factorizeTrial(num T) T {
	r := f.ring
	for _, p := range tables.SmallPrimes {
		prm := r.FromUint64(uint64(p))
		for r.IsZero(arith.Mod(r, num, prm)) {
			f.Factors = append(f.Factors, prm)
			num = arith.Div(r, num, prm)
			if f.Stats != nil {
				f.Stats.TrialDivisionHits++
			}
		}
		if r.IsOne(num) {
			break
		}
	}
	return num
}

func (f *Factorization[T]) factorizeUntilComplete(num T, log *logrus.Logger) {
	r := f.ring
	for r.Cmp(num, r.One()) > 0 {
		num = f.factorizeFermat(num, 2)
		if f.Stats != nil {
			f.Stats.FermatRounds++
		}
		if r.IsOne(num) {
			break
		}

		if prime.IsOddPrimeFactor(r, num) {
			f.Factors = append(f.Factors, num)
			break
		}

		num = f.factorizeElliptic(num, log)
	}
}

// factorizeElliptic spawns the worker pool against num and recursively
// re-factors any worker-reported factor that wasn't already certain to
// be prime (ECM sometimes surfaces a prime power or a product of two
// primes rather than a single prime).
func (f *Factorization[T]) factorizeElliptic(num T, log *logrus.Logger) T {
	r := f.ring
	b := board.New(r, num)

	var wg sync.WaitGroup
	wg.Add(MaxWorkers)

	for worker := 0; worker < MaxWorkers; worker++ {
		worker := worker
		go func() {
			defer wg.Done()
			if worker == 0 {
				wheel.RunWorker(r, b)
				return
			}
			rng := rand.New(rand.NewPCG(seedPart(), seedPart()))
			ecm.RunWorker(r, b, rng, log.WithField("worker", worker))
		}()
	}
	wg.Wait()

	if f.Stats != nil {
		f.Stats.CurvesAttempted += (MaxWorkers - 1) * ecm.MaxCurves
	}

	for _, factor := range b.Factors() {
		if factor.SurePrime || prime.IsOddPrimeFactor(r, factor.Value) {
			f.Factors = append(f.Factors, factor.Value)
			continue
		}
		inner := &Factorization[T]{Num: factor.Value, ring: r}
		inner.factorizeUntilComplete(factor.Value, log)
		f.Factors = append(f.Factors, inner.Factors...)
	}

	return b.Num()
}

func (f *Factorization[T]) pruneDuplicateFactors() {
	r := f.ring
	sort.Slice(f.Factors, func(i, j int) bool { return r.Cmp(f.Factors[i], f.Factors[j]) < 0 })

	var unique []T
	k := f.Num
	for i := len(f.Factors) - 1; i >= 0; i-- {
		factor := f.Factors[i]
		if r.IsZero(arith.Mod(r, k, factor)) {
			unique = append(unique, factor)
			k = arith.Div(r, k, factor)
		}
	}
	for i, j := 0, len(unique)-1; i < j; i, j = i+1, j-1 {
		unique[i], unique[j] = unique[j], unique[i]
	}
	f.Factors = unique
}

// PrimeFactorRepr returns the prime power representation num = prm_1^k_1
// * ... * prm_n^k_n, ordered from smallest prime to largest. Must be
// called after Run.
func (f *Factorization[T]) PrimeFactorRepr() []PrimePower[T] {
	r := f.ring
	var repr []PrimePower[T]

	k := f.Num
	var count uint32
	var prev T
	havePrev := false

	for i := len(f.Factors) - 1; i >= 0; i-- {
		curr := f.Factors[i]

		if havePrev && r.Cmp(curr, prev) != 0 && count > 0 {
			repr = append(repr, PrimePower[T]{Prime: prev, Count: count})
			count = 0
		}

		count++
		k = arith.Div(r, k, curr)
		prev = curr
		havePrev = true

		if r.IsOne(k) {
			repr = append(repr, PrimePower[T]{Prime: prev, Count: count})
			break
		}
	}

	for i, j := 0, len(repr)-1; i < j; i, j = i+1, j-1 {
		repr[i], repr[j] = repr[j], repr[i]
	}
	return repr
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(discardWriter{})
	return log
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// seedPart draws a uint64 from crypto/rand, used to seed each worker's
// math/rand/v2 stream so concurrent workers never draw correlated sigma
// sequences.
func seedPart() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
