package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/edgecut/cutgraph"
	"github.com/katalvlaran/edgecut/matching"
	"github.com/katalvlaran/edgecut/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath4 builds the unweighted path 0-1-2-3.
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

// verifyCover checks every vertex belongs to exactly one cluster of size
// 1-3 whose members are mutually consistent under Pairs.
func verifyCover(t *testing.T, m *matching.Matching, n int) {
	t.Helper()
	seen := make([]bool, n)
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		members := m.Members(v)
		assert.LessOrEqual(t, len(members), 3)
		assert.GreaterOrEqual(t, len(members), 1)
		for _, u := range members {
			assert.False(t, seen[u], "vertex %d double-covered", u)
			seen[u] = true
			assert.Equal(t, m.FineToCoarse[v], m.FineToCoarse[u])
		}
	}
	for v := 0; v < n; v++ {
		assert.True(t, seen[v], "vertex %d not covered", v)
	}
}

func TestHEMProducesValidCover(t *testing.T) {
	g := buildPath4(t)
	opts := options.Default().Apply(options.WithMatchingStrategy(options.HEM))
	m := matching.Run(g, opts, rand.New(rand.NewSource(1)))
	verifyCover(t, m, g.N)
	assert.LessOrEqual(t, m.CoarseN, g.N)
}

func TestRandomProducesValidCover(t *testing.T) {
	g := buildPath4(t)
	opts := options.Default().Apply(options.WithMatchingStrategy(options.Random))
	rng := rand.New(rand.NewSource(42))
	m := matching.Run(g, opts, rng)
	verifyCover(t, m, g.N)
}

func TestHEMSRProducesValidCover(t *testing.T) {
	g := buildPath4(t)
	opts := options.Default().Apply(
		options.WithMatchingStrategy(options.HEMSR),
		options.WithCommunityMatching(true),
	)
	m := matching.Run(g, opts, rand.New(rand.NewSource(7)))
	verifyCover(t, m, g.N)
}

func TestHEMSRdegProducesValidCover(t *testing.T) {
	g := buildPath4(t)
	opts := options.Default().Apply(
		options.WithMatchingStrategy(options.HEMSRdeg),
		options.WithHighDegreeThreshold(0.5),
	)
	m := matching.Run(g, opts, rand.New(rand.NewSource(3)))
	verifyCover(t, m, g.N)
}

func TestMembersSingletonWhenOrphan(t *testing.T) {
	m := &matching.Matching{Pairs: []int{0, 1, 2}}
	assert.Equal(t, []int{1}, m.Members(1))
}
