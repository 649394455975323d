// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random construction and the
// row-parallel product. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - The zero configuration reproduces the plain behavior: unseeded random
//     draws and GOMAXPROCS workers.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math/rand"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for MulParallel.
	DefaultWorkers = 0

	// DefaultSeeded leaves NewRandom on the process-local auto-seeded source.
	DefaultSeeded = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: workers must be > 0"
	panicRandNil        = "matrix: WithRand: rng must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// random construction
	seeded bool       // DefaultSeeded
	seed   int64      // used only when seeded
	rng    *rand.Rand // caller-owned source; wins over seed

	// parallel product
	workers int // DefaultWorkers (0 ⇒ GOMAXPROCS)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		seeded:  DefaultSeeded,
		workers: DefaultWorkers,
	}
}

// WithSeed makes NewRandom deterministic: the same seed yields the same matrix.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seeded = true
		o.seed = seed
	}
}

// WithRand draws NewRandom values from a caller-owned source.
// *rand.Rand is not goroutine-safe; do not share it across goroutines.
// Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithWorkers caps the number of concurrent row bands in MulParallel.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over the defaults and resolves derived values.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// uniform returns the float64 generator in [0,1) selected by o.
// Policy: explicit rng > seed > process-local source.
func (o Options) uniform() func() float64 {
	switch {
	case o.rng != nil:
		return o.rng.Float64
	case o.seeded:
		return rand.New(rand.NewSource(o.seed)).Float64
	default:
		return rand.Float64
	}
}
