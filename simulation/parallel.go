package simulation

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/signalnine/tetrisevolve/gosim/engine"
)

// GameJob represents a single simulation job
type GameJob struct {
	SimID int
	Seed  uint64
}

// RunBatchParallel executes batch simulations using a worker pool sized to
// the CPU count. Results match RunBatch for the same seed.
func RunBatchParallel(weights []float64, numGames int, kind engine.ProviderKind, pieceLimit uint64, seed uint64) (AggregatedStats, error) {
	return RunBatchParallelN(weights, numGames, kind, pieceLimit, seed, runtime.NumCPU())
}

// RunBatchParallelN executes batch simulations using a specified number of workers.
func RunBatchParallelN(weights []float64, numGames int, kind engine.ProviderKind, pieceLimit uint64, seed uint64, numWorkers int) (AggregatedStats, error) {
	if err := checkBatch(weights, numGames); err != nil {
		return AggregatedStats{}, err
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	jobs := make(chan GameJob, numGames)
	results := make(chan GameResult, numGames)

	var wg sync.WaitGroup

	// Start workers
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(&wg, jobs, results, weights, kind, pieceLimit)
	}

	// Seeds are drawn in the same order as RunBatch
	rng := rand.New(rand.NewSource(int64(seed)))
	for i := 0; i < numGames; i++ {
		jobs <- GameJob{
			SimID: i,
			Seed:  rng.Uint64(),
		}
	}
	close(jobs)

	// Wait for all workers to complete, then close results
	go func() {
		wg.Wait()
		close(results)
	}()

	return aggregateParallelResults(results, numGames), nil
}

// worker processes simulation jobs from the jobs channel
func worker(wg *sync.WaitGroup, jobs <-chan GameJob, results chan<- GameResult, weights []float64, kind engine.ProviderKind, pieceLimit uint64) {
	defer wg.Done()

	for job := range jobs {
		results <- playSeeded(DefaultBoard, weights, kind, pieceLimit, job.Seed)
	}
}

// aggregateParallelResults collects all results and computes aggregate statistics
func aggregateParallelResults(results <-chan GameResult, numGames int) AggregatedStats {
	allResults := make([]GameResult, 0, numGames)

	for result := range results {
		allResults = append(allResults, result)
	}

	return aggregateResults(allResults)
}
