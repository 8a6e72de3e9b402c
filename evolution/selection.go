package evolution

import (
	"math"
	"math/rand"
)

// EliteCount returns how many individuals elitism carries forward:
// round(rate * size), capped at size.
func EliteCount(size int, rate float64) int {
	n := int(math.Round(rate * float64(size)))
	if n > size {
		n = size
	}
	if n < 0 {
		n = 0
	}
	return n
}

// SelectElite returns the top n individuals by fitness.
func SelectElite(pop *Population, n int) []*Individual {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}

	if n > len(pop.Individuals) {
		n = len(pop.Individuals)
	}
	if n < 1 {
		return nil
	}

	return pop.SortByFitness()[:n]
}

// SelectionWeights maps fitness values to roulette weights. Fitness is
// shifted by the minimum when the minimum is negative, and any weight that
// ends up <= 0 is raised to 1 so every individual can still be picked.
func SelectionWeights(individuals []*Individual) []float64 {
	if len(individuals) == 0 {
		return nil
	}

	minFitness := individuals[0].Fitness
	for _, ind := range individuals[1:] {
		if ind.Fitness < minFitness {
			minFitness = ind.Fitness
		}
	}

	weights := make([]float64, len(individuals))
	for i, ind := range individuals {
		w := ind.Fitness
		if minFitness < 0 {
			w -= minFitness
		}
		if w <= 0 {
			w = 1.0
		}
		weights[i] = w
	}
	return weights
}

// RouletteWheelSelection picks an individual with probability proportional
// to its weight. weights must be aligned with individuals.
func RouletteWheelSelection(individuals []*Individual, weights []float64, rng *rand.Rand) *Individual {
	if len(individuals) == 0 {
		return nil
	}

	var total float64
	for _, w := range weights {
		total += w
	}

	spin := rng.Float64() * total
	for i, w := range weights {
		spin -= w
		if spin <= 0 {
			return individuals[i]
		}
	}

	// Rounding can leave a sliver past the last slot
	return individuals[len(individuals)-1]
}
