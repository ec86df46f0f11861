package edgecut_test

import (
	"testing"

	edgecut "github.com/katalvlaran/edgecut"
	"github.com/katalvlaran/edgecut/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildK4 builds the complete graph on 4 vertices, all edges unit weight.
func buildK4() ([]int, []int, []float64, []float64) {
	p := []int{0, 3, 6, 9, 12}
	i := []int{1, 2, 3, 0, 2, 3, 0, 1, 3, 0, 1, 2}
	x := make([]float64, len(i))
	for k := range x {
		x[k] = 1
	}
	w := []float64{1, 1, 1, 1}

	return p, i, x, w
}

func TestSeparateOnK4IsDeterministicAndConservesWeight(t *testing.T) {
	p, i, x, w := buildK4()
	opts := options.Default()

	res1, err := edgecut.Separate(p, i, x, w, opts, nil, nil)
	require.NoError(t, err)
	res2, err := edgecut.Separate(p, i, x, w, opts, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, res1.Partition, res2.Partition, "identical seed/input/options must be deterministic")
	assert.InDelta(t, 4.0, res1.W0+res1.W1, 1e-9)
	assert.GreaterOrEqual(t, res1.CutSize, 0)
}

func TestSeparateRejectsEmptyGraph(t *testing.T) {
	_, err := edgecut.Separate([]int{0}, nil, nil, nil, options.Default(), nil, nil)
	require.Error(t, err)
}

func TestSeparateInvokesProgressCallback(t *testing.T) {
	p, i, x, w := buildK4()
	var stages []string
	_, err := edgecut.Separate(p, i, x, w, options.Default(), nil, func(stage string, level, n int) {
		stages = append(stages, stage)
	})
	require.NoError(t, err)
	assert.Contains(t, stages, "guess")
	assert.Contains(t, stages, "dance")
}
