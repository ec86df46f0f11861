package guess_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/guess"
	"github.com/katalvlaran/edgecut/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPath4(t *testing.T) *cutgraph.Graph {
	t.Helper()
	p := []int{0, 1, 3, 5, 6}
	i := []int{1, 0, 2, 1, 3, 2}
	x := []float64{1, 1, 1, 1, 1, 1}
	w := []float64{1, 1, 1, 1}
	g, err := cutgraph.NewFromCSC(p, i, x, w, cutgraph.DefaultAllocator())
	require.NoError(t, err)

	return g
}

func TestGuessNaturalOrderSplitsInHalf(t *testing.T) {
	g := buildPath4(t)
	opts := options.Default().Apply(options.WithGuessCutType(options.GuessNaturalOrder))
	guess.Run(g, opts, rand.New(rand.NewSource(1)))
	assert.Equal(t, []bool{false, false, true, true}, g.Partition)
}

func TestGuessRandomProducesBooleanPartition(t *testing.T) {
	g := buildPath4(t)
	opts := options.Default().Apply(options.WithGuessCutType(options.GuessRandom))
	guess.Run(g, opts, rand.New(rand.NewSource(2)))
	assert.Len(t, g.Partition, g.N)
}

func TestGuessQPProducesFeasiblePartition(t *testing.T) {
	g := buildPath4(t)
	opts := options.Default().Apply(options.WithGuessCutType(options.GuessQP))
	guess.Run(g, opts, rand.New(rand.NewSource(3)))
	assert.InDelta(t, g.WSum, g.W0+g.W1, 1e-9)
}
