// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes a read-only snapshot of resolved Options to matrix_test.

// OptionsSnapshot mirrors the internal Options fields.
type OptionsSnapshot struct {
	Seeded  bool
	Seed    int64
	HasRand bool
	Workers int
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like the public entry points do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Seeded:  o.seeded,
		Seed:    o.seed,
		HasRand: o.rng != nil,
		Workers: o.workers,
	}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
	PanicRandNil_TestOnly        = panicRandNil
)
