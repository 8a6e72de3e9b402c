package evolution

import (
	"math"
	"math/rand"
	"sort"

	"github.com/signalnine/tetrisevolve/gosim/engine"
	"github.com/signalnine/tetrisevolve/gosim/evolution/operators"
)

// maxInitialDistance is the largest Euclidean distance between two weight
// vectors drawn from [-1, 1]^6.
var maxInitialDistance = 2 * math.Sqrt(engine.NumFeatures)

// Individual represents a single weight vector with its fitness score.
type Individual struct {
	Weights   []float64
	Fitness   float64 // mean lines cleared over the evaluation games
	Evaluated bool
}

// Clone creates a deep copy of the individual.
func (ind *Individual) Clone() *Individual {
	return &Individual{
		Weights:   operators.CloneWeights(ind.Weights),
		Fitness:   ind.Fitness,
		Evaluated: ind.Evaluated,
	}
}

// RandomIndividual draws every gene uniformly from [-1, 1).
func RandomIndividual(rng *rand.Rand) *Individual {
	w := make([]float64, engine.NumFeatures)
	for i := range w {
		w[i] = rng.Float64()*2 - 1
	}
	return &Individual{Weights: w}
}

// Population represents a collection of individuals.
type Population struct {
	Individuals []*Individual
	Generation  int
}

// NewPopulation creates a new population from a list of individuals.
func NewPopulation(individuals []*Individual) *Population {
	return &Population{
		Individuals: individuals,
		Generation:  0,
	}
}

// Size returns the number of individuals in the population.
func (p *Population) Size() int {
	return len(p.Individuals)
}

// GetBestIndividual returns the individual with the highest fitness.
func (p *Population) GetBestIndividual() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}

	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// GetAverageFitness returns the average fitness of evaluated individuals.
func (p *Population) GetAverageFitness() float64 {
	if len(p.Individuals) == 0 {
		return 0.0
	}

	var sum float64
	var count int
	for _, ind := range p.Individuals {
		if ind.Evaluated {
			sum += ind.Fitness
			count++
		}
	}

	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// ComputeDiversity returns the mean pairwise distance between weight
// vectors, scaled into [0.0, 1.0]. Populations over 50 are estimated from
// 100 random pairs drawn from rng.
func (p *Population) ComputeDiversity(rng *rand.Rand) float64 {
	n := len(p.Individuals)
	if n < 2 {
		return 0.0
	}

	var totalDistance float64
	var pairCount int

	if n <= 50 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				totalDistance += WeightDistance(p.Individuals[i].Weights, p.Individuals[j].Weights)
				pairCount++
			}
		}
	} else {
		for k := 0; k < 100; k++ {
			i := rng.Intn(n)
			j := rng.Intn(n)
			if i == j {
				j = (i + 1) % n
			}
			totalDistance += WeightDistance(p.Individuals[i].Weights, p.Individuals[j].Weights)
			pairCount++
		}
	}

	return math.Min(1.0, totalDistance/float64(pairCount)/maxInitialDistance)
}

// SortByFitness returns individuals sorted by fitness (descending). Equal
// fitness keeps population order.
func (p *Population) SortByFitness() []*Individual {
	sorted := make([]*Individual, len(p.Individuals))
	copy(sorted, p.Individuals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})
	return sorted
}

// WeightDistance is the Euclidean distance between two weight vectors.
func WeightDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
