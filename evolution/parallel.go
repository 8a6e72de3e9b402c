package evolution

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/signalnine/tetrisevolve/gosim/engine"
	"github.com/signalnine/tetrisevolve/gosim/simulation"
)

// EvaluationTask is the work for one individual: its weights and one
// provider seed per trial game.
type EvaluationTask struct {
	Index   int
	Weights []float64
	Seeds   []int64
}

// ParallelEvaluator measures fitness for many individuals at once. Each
// task owns its games, providers and seeds, so no state is shared between
// goroutines.
type ParallelEvaluator struct {
	NumWorkers   int
	GamesPerEval int
	GameLimit    uint64
	BoardWidth   int
	BoardHeight  int
}

// NewParallelEvaluator creates a new parallel evaluator.
func NewParallelEvaluator(config *EvolutionConfig) *ParallelEvaluator {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &ParallelEvaluator{
		NumWorkers:   numWorkers,
		GamesPerEval: config.GamesPerEval,
		GameLimit:    config.GameLimit,
		BoardWidth:   config.BoardWidth,
		BoardHeight:  config.BoardHeight,
	}
}

// PlanTasks draws every trial seed from rng up front, in population
// order, so results do not depend on worker scheduling.
func (pe *ParallelEvaluator) PlanTasks(individuals []*Individual, rng *rand.Rand) []EvaluationTask {
	tasks := make([]EvaluationTask, len(individuals))
	for i, ind := range individuals {
		seeds := make([]int64, pe.GamesPerEval)
		for g := range seeds {
			seeds[g] = rng.Int63()
		}
		tasks[i] = EvaluationTask{Index: i, Weights: ind.Weights, Seeds: seeds}
	}
	return tasks
}

// EvaluateIndividuals runs every individual's trial games in parallel and
// stores the mean lines cleared as its fitness. Once ctx is done no new
// task starts and ctx.Err() is returned; fitness is left untouched.
func (pe *ParallelEvaluator) EvaluateIndividuals(ctx context.Context, individuals []*Individual, rng *rand.Rand) error {
	if len(individuals) == 0 {
		return nil
	}

	tasks := pe.PlanTasks(individuals, rng)
	fitness := make([]float64, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(pe.NumWorkers)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := pe.Fitness(task)
			if err != nil {
				return err
			}
			fitness[task.Index] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, ind := range individuals {
		ind.Fitness = fitness[i]
		ind.Evaluated = true
	}
	return nil
}

// Fitness plays one bag-provider game per seed and returns the mean lines
// cleared.
func (pe *ParallelEvaluator) Fitness(task EvaluationTask) (float64, error) {
	if len(task.Seeds) == 0 {
		return 0, nil
	}

	total := 0
	for _, seed := range task.Seeds {
		result, err := simulation.RunGame(pe.BoardWidth, pe.BoardHeight, task.Weights,
			engine.NewBagProvider(seed), pe.GameLimit)
		if err != nil {
			return 0, err
		}
		total += result.LinesCleared
	}
	return float64(total) / float64(len(task.Seeds)), nil
}
