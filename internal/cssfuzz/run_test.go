package cssfuzz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFindsNoDivergence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	res, err := Run(200, rng)
	require.NoError(t, err)
	require.Equal(t, 200, res.Checked)
}

func TestCheckIncrementalDetectsAgreement(t *testing.T) {
	tier, err := CheckIncremental(`a { color: red; }`, 6, 3, "blue")
	require.NoError(t, err)
	require.NotEmpty(t, tier.String())
}
