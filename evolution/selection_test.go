package evolution

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPopulation(n int) *Population {
	individuals := make([]*Individual, n)
	for i := 0; i < n; i++ {
		w := make([]float64, 6)
		for j := range w {
			w[j] = float64(i)
		}
		individuals[i] = &Individual{
			Weights:   w,
			Fitness:   float64(i) / float64(n-1), // 0.0 to 1.0
			Evaluated: true,
		}
	}
	return NewPopulation(individuals)
}

func withFitness(values ...float64) []*Individual {
	individuals := make([]*Individual, len(values))
	for i, v := range values {
		individuals[i] = &Individual{Weights: make([]float64, 6), Fitness: v, Evaluated: true}
	}
	return individuals
}

func TestEliteCount(t *testing.T) {
	assert.Equal(t, 13, EliteCount(128, 0.1))
	assert.Equal(t, 2, EliteCount(10, 0.15))
	assert.Equal(t, 0, EliteCount(4, 0.1))
	assert.Equal(t, 5, EliteCount(5, 1.0))
	assert.Equal(t, 0, EliteCount(5, 0))
}

func TestSelectEliteBasic(t *testing.T) {
	pop := createTestPopulation(10)

	elite := SelectElite(pop, 3)

	require.Len(t, elite, 3)
	assert.Equal(t, 1.0, elite[0].Fitness)
	assert.Greater(t, elite[0].Fitness, elite[1].Fitness)
	assert.Greater(t, elite[1].Fitness, elite[2].Fitness)
}

func TestSelectEliteMoreThanPopulation(t *testing.T) {
	pop := createTestPopulation(5)

	elite := SelectElite(pop, 10)

	assert.Len(t, elite, 5)
}

func TestSelectEliteEmpty(t *testing.T) {
	assert.Nil(t, SelectElite(nil, 3))
	assert.Nil(t, SelectElite(NewPopulation(nil), 3))
	assert.Nil(t, SelectElite(createTestPopulation(4), 0))
}

func TestSelectionWeightsPositive(t *testing.T) {
	weights := SelectionWeights(withFitness(3, 0, 5))

	assert.Equal(t, []float64{3, 1, 5}, weights)
}

func TestSelectionWeightsShiftNegative(t *testing.T) {
	weights := SelectionWeights(withFitness(-2, 0, 4))

	// shifted to 0, 2, 6; the zero is floored to 1
	assert.Equal(t, []float64{1, 2, 6}, weights)
}

func TestSelectionWeightsAllZero(t *testing.T) {
	weights := SelectionWeights(withFitness(0, 0, 0, 0))

	assert.Equal(t, []float64{1, 1, 1, 1}, weights)
}

func TestSelectionWeightsEmpty(t *testing.T) {
	assert.Nil(t, SelectionWeights(nil))
}

func TestRouletteWheelSelectionProportional(t *testing.T) {
	individuals := withFitness(1, 3)
	weights := SelectionWeights(individuals)
	rng := rand.New(rand.NewSource(42))

	counts := map[*Individual]int{}
	const spins = 20000
	for i := 0; i < spins; i++ {
		counts[RouletteWheelSelection(individuals, weights, rng)]++
	}

	assert.InDelta(t, 0.25, float64(counts[individuals[0]])/spins, 0.02)
	assert.InDelta(t, 0.75, float64(counts[individuals[1]])/spins, 0.02)
}

func TestRouletteWheelSelectionFlooredStillPicked(t *testing.T) {
	individuals := withFitness(0, 0, 10)
	weights := SelectionWeights(individuals)
	rng := rand.New(rand.NewSource(1))

	seen := map[*Individual]bool{}
	for i := 0; i < 2000; i++ {
		seen[RouletteWheelSelection(individuals, weights, rng)] = true
	}

	assert.Len(t, seen, 3)
}

func TestRouletteWheelSelectionEmpty(t *testing.T) {
	assert.Nil(t, RouletteWheelSelection(nil, nil, rand.New(rand.NewSource(1))))
}
