// Package operators provides mutation operators for evolving heuristic weight vectors.
package operators

import (
	"math/rand"
)

// MutationOperator is the interface for all mutation operators.
type MutationOperator interface {
	// Mutate perturbs the weight vector in place.
	Mutate(w []float64, rng *rand.Rand)

	// Probability returns the per-gene probability of this mutation being applied.
	Probability() float64

	// Name returns a human-readable name for this operator.
	Name() string
}

// BaseMutation provides common functionality for mutation operators.
type BaseMutation struct {
	probability float64
	name        string
}

// Probability returns the mutation probability.
func (m *BaseMutation) Probability() float64 {
	return m.probability
}

// Name returns the mutation name.
func (m *BaseMutation) Name() string {
	return m.name
}

// ShouldApply returns true if the mutation should be applied based on probability.
func (m *BaseMutation) ShouldApply(rng *rand.Rand) bool {
	return rng.Float64() < m.probability
}

// CloneWeights returns a copy of w.
func CloneWeights(w []float64) []float64 {
	clone := make([]float64, len(w))
	copy(clone, w)
	return clone
}

// UniformPerturbation adds a value drawn uniformly from
// [-magnitude, magnitude) to each gene with the configured probability.
type UniformPerturbation struct {
	BaseMutation
	magnitude float64
}

// NewUniformPerturbation creates a perturbation operator.
func NewUniformPerturbation(probability, magnitude float64) *UniformPerturbation {
	return &UniformPerturbation{
		BaseMutation: BaseMutation{probability: probability, name: "uniform_perturbation"},
		magnitude:    magnitude,
	}
}

// Magnitude returns the perturbation scale.
func (m *UniformPerturbation) Magnitude() float64 {
	return m.magnitude
}

// Mutate perturbs each gene independently.
func (m *UniformPerturbation) Mutate(w []float64, rng *rand.Rand) {
	for i := range w {
		if m.ShouldApply(rng) {
			w[i] += (rng.Float64()*2 - 1) * m.magnitude
		}
	}
}

// Registry holds all available mutation operators.
type Registry struct {
	operators []MutationOperator
}

// NewRegistry creates a new mutation operator registry.
func NewRegistry() *Registry {
	return &Registry{
		operators: make([]MutationOperator, 0),
	}
}

// Register adds a mutation operator to the registry.
func (r *Registry) Register(op MutationOperator) {
	r.operators = append(r.operators, op)
}

// Operators returns all registered operators.
func (r *Registry) Operators() []MutationOperator {
	return r.operators
}

// ApplyAll runs every registered operator over w in registration order.
func (r *Registry) ApplyAll(w []float64, rng *rand.Rand) {
	for _, op := range r.operators {
		op.Mutate(w, rng)
	}
}

// MutationPipeline wraps a Registry and provides a convenient Apply interface.
type MutationPipeline struct {
	registry *Registry
}

// NewMutationPipeline creates a new mutation pipeline from a registry.
func NewMutationPipeline(registry *Registry) *MutationPipeline {
	return &MutationPipeline{registry: registry}
}

// Apply mutates w in place.
func (p *MutationPipeline) Apply(w []float64, rng *rand.Rand) {
	p.registry.ApplyAll(w, rng)
}

// Operators returns the operators the pipeline applies.
func (p *MutationPipeline) Operators() []MutationOperator {
	return p.registry.Operators()
}

// NewDefaultPipeline creates the standard pipeline: a single uniform
// perturbation with the given per-gene rate and magnitude.
func NewDefaultPipeline(rate, magnitude float64) *MutationPipeline {
	registry := NewRegistry()
	registry.Register(NewUniformPerturbation(rate, magnitude))
	return NewMutationPipeline(registry)
}
