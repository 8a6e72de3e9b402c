// Package evolution provides the genetic algorithm that evolves placement heuristic weights.
package evolution

import (
	"math/rand"

	"github.com/signalnine/tetrisevolve/gosim/evolution/operators"
)

// CrossoverOperator defines the interface for crossover operations.
type CrossoverOperator interface {
	// Crossover produces one child from two parent weight vectors. Parents
	// are not modified.
	Crossover(parent1, parent2 []float64, rng *rand.Rand) []float64

	// Probability returns the probability of crossover being applied.
	Probability() float64
}

// SinglePointCrossover splices two parents at a random gene index. When
// crossover is not applied the child copies one parent chosen at random.
type SinglePointCrossover struct {
	probability float64
}

// NewSinglePointCrossover creates a new single-point crossover operator.
func NewSinglePointCrossover(probability float64) *SinglePointCrossover {
	return &SinglePointCrossover{probability: probability}
}

// Probability returns the crossover probability.
func (c *SinglePointCrossover) Probability() float64 {
	return c.probability
}

// Crossover takes genes before the cut point from parent1 and the rest from
// parent2. The point is drawn from [1, len-1], so both parents contribute.
func (c *SinglePointCrossover) Crossover(parent1, parent2 []float64, rng *rand.Rand) []float64 {
	if rng.Float64() < c.probability && len(parent1) > 1 {
		point := rng.Intn(len(parent1)-1) + 1
		child := make([]float64, len(parent1))
		copy(child[:point], parent1[:point])
		copy(child[point:], parent2[point:])
		return child
	}

	if rng.Float64() < 0.5 {
		return operators.CloneWeights(parent1)
	}
	return operators.CloneWeights(parent2)
}
