package evolution

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/signalnine/tetrisevolve/gosim/engine"
	"github.com/signalnine/tetrisevolve/gosim/evolution/operators"
)

var (
	// ErrPopulationSize is returned for an empty population.
	ErrPopulationSize = errors.New("population size must be positive")
	// ErrGenerations is returned for a non-positive generation count.
	ErrGenerations = errors.New("generation count must be positive")
	// ErrRate is returned for a probability outside [0, 1].
	ErrRate = errors.New("rate must be within [0, 1]")
)

// EvolutionConfig holds configuration for an evolutionary run.
type EvolutionConfig struct {
	PopulationSize    int     `yaml:"population_size"`    // Number of individuals per generation
	MaxGenerations    int     `yaml:"generations"`        // Generations to run
	ElitismRate       float64 `yaml:"elitism_rate"`       // Top fraction copied unchanged (0.1 = 10%)
	CrossoverRate     float64 `yaml:"crossover_rate"`     // Probability of single-point crossover
	MutationRate      float64 `yaml:"mutation_rate"`      // Per-gene mutation probability
	MutationMagnitude float64 `yaml:"mutation_magnitude"` // Scale of a gene perturbation
	GamesPerEval      int     `yaml:"games_per_eval"`     // Trial games averaged into fitness
	GameLimit         uint64  `yaml:"game_limit"`         // Piece cap per trial game
	BoardWidth        int     `yaml:"board_width"`
	BoardHeight       int     `yaml:"board_height"`
	RandomSeed        int64   `yaml:"seed"`    // Random seed (0 = draw one)
	NumWorkers        int     `yaml:"workers"` // Number of parallel workers (0 = auto)
}

// DefaultConfig returns a default evolution configuration.
func DefaultConfig() *EvolutionConfig {
	return &EvolutionConfig{
		PopulationSize:    128,
		MaxGenerations:    100,
		ElitismRate:       0.1,
		CrossoverRate:     0.8,
		MutationRate:      0.25,
		MutationMagnitude: 0.4,
		GamesPerEval:      3,
		GameLimit:         10_000_000,
		BoardWidth:        10,
		BoardHeight:       20,
		RandomSeed:        0,
		NumWorkers:        0, // Auto-detect
	}
}

// Validate reports the first configuration problem, if any.
func (c *EvolutionConfig) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("%w: %d", ErrPopulationSize, c.PopulationSize)
	}
	if c.MaxGenerations <= 0 {
		return fmt.Errorf("%w: %d", ErrGenerations, c.MaxGenerations)
	}
	rates := []struct {
		name  string
		value float64
	}{
		{"elitism_rate", c.ElitismRate},
		{"crossover_rate", c.CrossoverRate},
		{"mutation_rate", c.MutationRate},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 || math.IsNaN(r.value) {
			return fmt.Errorf("%w: %s=%v", ErrRate, r.name, r.value)
		}
	}
	if c.MutationMagnitude < 0 {
		return fmt.Errorf("mutation_magnitude must not be negative: %v", c.MutationMagnitude)
	}
	if c.GamesPerEval <= 0 {
		return fmt.Errorf("games_per_eval must be positive: %d", c.GamesPerEval)
	}
	if c.BoardWidth < engine.MinBoardWidth || c.BoardWidth > engine.MaxBoardWidth ||
		c.BoardHeight < engine.MinBoardHeight {
		return fmt.Errorf("%w: %dx%d", engine.ErrBoardSize, c.BoardWidth, c.BoardHeight)
	}
	return nil
}

// GenerationStats holds statistics for a single generation.
type GenerationStats struct {
	Generation  int
	BestFitness float64
	AvgFitness  float64
	Diversity   float64
	BestWeights []float64
	Evaluations int
	Duration    time.Duration
	Timestamp   time.Time
}

// EvolutionEngine runs the evolutionary algorithm.
type EvolutionEngine struct {
	Config           *EvolutionConfig
	Population       *Population
	StatsHistory     []GenerationStats
	BestEver         *Individual // best recorded individual across all generations
	FinalBest        *Individual // best of the last population after its final evaluation
	Rng              *rand.Rand
	DiversityRng     *rand.Rand // pair sampling for GenerationStats.Diversity only
	Seed             int64
	RunID            string
	Evaluator        *ParallelEvaluator
	MutationPipeline *operators.MutationPipeline
	Crossover        CrossoverOperator
	Logger           zerolog.Logger

	// Callbacks for progress reporting
	OnGenerationComplete func(stats GenerationStats)
}

// NewEvolutionEngine creates a new evolution engine. A nil config uses
// DefaultConfig.
func NewEvolutionEngine(config *EvolutionConfig) *EvolutionEngine {
	if config == nil {
		config = DefaultConfig()
	}

	seed := config.RandomSeed
	if seed == 0 {
		seed = int64(frand.Uint64n(math.MaxInt64)) + 1
	}

	runID := uuid.NewString()
	return &EvolutionEngine{
		Config:           config,
		Rng:              rand.New(rand.NewSource(seed)),
		DiversityRng:     rand.New(rand.NewSource(seed)),
		Seed:             seed,
		RunID:            runID,
		Evaluator:        NewParallelEvaluator(config),
		MutationPipeline: operators.NewDefaultPipeline(config.MutationRate, config.MutationMagnitude),
		Crossover:        NewSinglePointCrossover(config.CrossoverRate),
		StatsHistory:     make([]GenerationStats, 0, config.MaxGenerations),
		Logger:           log.With().Str("run_id", runID).Logger(),
	}
}

// InitializePopulation fills the population with random weight vectors.
func (e *EvolutionEngine) InitializePopulation() error {
	if e.Config.PopulationSize <= 0 {
		return fmt.Errorf("%w: %d", ErrPopulationSize, e.Config.PopulationSize)
	}

	individuals := make([]*Individual, e.Config.PopulationSize)
	for i := range individuals {
		individuals[i] = RandomIndividual(e.Rng)
	}
	e.Population = NewPopulation(individuals)

	e.Logger.Debug().Int("size", len(individuals)).Msg("population initialized")
	return nil
}

// EvaluatePopulation measures fitness for every individual. Fitness is
// stochastic, so individuals carried over by elitism are measured again.
func (e *EvolutionEngine) EvaluatePopulation(ctx context.Context) error {
	if e.Population == nil {
		return nil
	}

	e.Logger.Debug().Int("individuals", e.Population.Size()).Msg("evaluating")

	if err := e.Evaluator.EvaluateIndividuals(ctx, e.Population.Individuals, e.Rng); err != nil {
		return fmt.Errorf("evaluate generation %d: %w", e.Population.Generation, err)
	}

	e.Logger.Debug().Float64("avg_fitness", e.Population.GetAverageFitness()).Msg("evaluation complete")
	return nil
}

// CreateOffspring creates the next generation via selection, crossover, and
// mutation. Elites keep their recorded fitness; children are unevaluated.
func (e *EvolutionEngine) CreateOffspring() []*Individual {
	size := e.Config.PopulationSize
	offspring := make([]*Individual, 0, size)

	// 1. Elitism - preserve top individuals
	nElite := EliteCount(size, e.Config.ElitismRate)
	for _, elite := range SelectElite(e.Population, nElite) {
		offspring = append(offspring, elite.Clone())
	}

	// 2. Fill the rest via roulette selection + crossover + mutation
	sorted := e.Population.SortByFitness()
	weights := SelectionWeights(sorted)
	for len(offspring) < size {
		parent1 := RouletteWheelSelection(sorted, weights, e.Rng)
		parent2 := RouletteWheelSelection(sorted, weights, e.Rng)

		child := e.Crossover.Crossover(parent1.Weights, parent2.Weights, e.Rng)
		e.MutationPipeline.Apply(child, e.Rng)

		offspring = append(offspring, &Individual{
			Weights:   child,
			Fitness:   0.0,
			Evaluated: false,
		})
	}

	return offspring
}

// recordGeneration computes statistics for the evaluated population.
func (e *EvolutionEngine) recordGeneration(generation int, started time.Time) GenerationStats {
	best := e.Population.GetBestIndividual()

	if e.BestEver == nil || best.Fitness > e.BestEver.Fitness {
		e.BestEver = best.Clone()
		e.Logger.Debug().Float64("fitness", best.Fitness).Msg("new best")
	}

	stats := GenerationStats{
		Generation:  generation,
		BestFitness: best.Fitness,
		AvgFitness:  e.Population.GetAverageFitness(),
		Diversity:   e.Population.ComputeDiversity(e.DiversityRng),
		BestWeights: operators.CloneWeights(best.Weights),
		Evaluations: e.Population.Size() * e.Config.GamesPerEval,
		Duration:    time.Since(started),
		Timestamp:   time.Now(),
	}
	e.StatsHistory = append(e.StatsHistory, stats)
	return stats
}

// Evolve runs the evolutionary loop: evaluate, record, breed, for each
// generation, then evaluates the final population once more.
func (e *EvolutionEngine) Evolve(ctx context.Context) error {
	if err := e.Config.Validate(); err != nil {
		return err
	}

	e.Logger.Info().
		Int("population", e.Config.PopulationSize).
		Int("generations", e.Config.MaxGenerations).
		Int("workers", e.Evaluator.NumWorkers).
		Int64("seed", e.Seed).
		Msg("starting evolution")

	if e.Population == nil {
		if err := e.InitializePopulation(); err != nil {
			return err
		}
	}

	for generation := 0; generation < e.Config.MaxGenerations; generation++ {
		started := time.Now()
		if err := e.EvaluatePopulation(ctx); err != nil {
			return err
		}

		stats := e.recordGeneration(generation, started)
		e.Logger.Info().
			Int("generation", generation+1).
			Float64("best", stats.BestFitness).
			Float64("avg", stats.AvgFitness).
			Float64("diversity", stats.Diversity).
			Floats64("weights", stats.BestWeights).
			Dur("took", stats.Duration).
			Msg("generation complete")

		if e.OnGenerationComplete != nil {
			e.OnGenerationComplete(stats)
		}

		offspring := e.CreateOffspring()
		e.Population = NewPopulation(offspring)
		e.Population.Generation = generation + 1
	}

	if err := e.EvaluatePopulation(ctx); err != nil {
		return err
	}
	e.FinalBest = e.Population.GetBestIndividual().Clone()
	if e.FinalBest.Fitness > e.BestEver.Fitness {
		e.BestEver = e.FinalBest.Clone()
	}

	e.Logger.Info().
		Float64("fitness", e.FinalBest.Fitness).
		Floats64("weights", e.FinalBest.Weights).
		Msg("evolution complete")
	return nil
}

// FitnessHistory returns the best fitness of each generation in order.
func (e *EvolutionEngine) FitnessHistory() []float64 {
	history := make([]float64, len(e.StatsHistory))
	for i, s := range e.StatsHistory {
		history[i] = s.BestFitness
	}
	return history
}

// GetStats returns the stats history.
func (e *EvolutionEngine) GetStats() []GenerationStats {
	return e.StatsHistory
}

// Train evolves weights with the default hyperparameters and returns the
// best weights of the final population together with the per-generation
// best fitness.
func Train(ctx context.Context, populationSize, generations int) ([]float64, []float64, error) {
	config := DefaultConfig()
	config.PopulationSize = populationSize
	config.MaxGenerations = generations
	return TrainWithConfig(ctx, config)
}

// TrainWithConfig is Train with explicit hyperparameters.
func TrainWithConfig(ctx context.Context, config *EvolutionConfig) ([]float64, []float64, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	e := NewEvolutionEngine(config)
	if err := e.Evolve(ctx); err != nil {
		return nil, e.FitnessHistory(), err
	}
	return operators.CloneWeights(e.FinalBest.Weights), e.FitnessHistory(), nil
}
