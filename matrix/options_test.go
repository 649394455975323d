// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"runtime"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies the resolved defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	require.Equal(t, matrix.DefaultSeeded, o.Seeded)
	require.False(t, o.HasRand)
	require.Equal(t, runtime.GOMAXPROCS(0), o.Workers) // DefaultWorkers resolves to GOMAXPROCS
}

// TestOptions_LastWins ensures repeated setters overwrite earlier ones.
func TestOptions_LastWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithSeed(1), matrix.WithSeed(9),
		matrix.WithWorkers(2), matrix.WithWorkers(5),
		matrix.WithRand(rand.New(rand.NewSource(3))),
	)

	require.True(t, o.Seeded)
	require.Equal(t, int64(9), o.Seed)
	require.True(t, o.HasRand)
	require.Equal(t, 5, o.Workers)
}

// TestOptions_Panics checks programmer-error guards.
func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicWorkersInvalid_TestOnly, func() { matrix.WithWorkers(0) })
	require.PanicsWithValue(t, matrix.PanicRandNil_TestOnly, func() { matrix.WithRand(nil) })
}

// TestOptions_RandWinsOverSeed checks the documented source priority.
func TestOptions_RandWinsOverSeed(t *testing.T) {
	m, err := matrix.NewRandom(1, 3, matrix.WithSeed(1), matrix.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	ref := rand.New(rand.NewSource(5))
	for j := 0; j < 3; j++ {
		require.Equal(t, ref.Float64(), MustAt(t, m, 0, j))
	}
}
