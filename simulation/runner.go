package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/signalnine/tetrisevolve/gosim/engine"
)

// Standard board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// ErrGameCount is returned when a batch asks for a negative number of games.
var ErrGameCount = errors.New("game count must not be negative")

// Benchmark defaults: a trained weight vector played on the LCG stream.
const (
	BenchmarkSeed  uint32 = 12345
	BenchmarkLimit uint64 = 1_000_000
)

// BenchmarkWeights is the reference weight vector for RunBenchmark.
var BenchmarkWeights = []float64{
	-0.8229968113792483,
	0.3816371409567763,
	-0.3822535695191802,
	-1.6210899838124477,
	-0.7829249929709147,
	-0.524241666771028,
}

// GameResult holds the outcome of a single game
type GameResult struct {
	LinesCleared int
	PiecesPlayed int
	DurationNs   uint64
	Error        string
}

// AggregatedStats summarizes multiple game results
type AggregatedStats struct {
	TotalGames    uint32
	TotalLines    uint64
	TotalPieces   uint64
	AvgLines      float64
	MinLines      uint64
	MaxLines      uint64
	AvgDurationNs uint64
	Errors        uint32
}

// RunSingleGame plays one game on a standard 10x20 board until it is lost
// or pieceLimit pieces have been placed.
func RunSingleGame(weights []float64, provider engine.PieceProvider, pieceLimit uint64) (GameResult, error) {
	return RunGame(DefaultWidth, DefaultHeight, weights, provider, pieceLimit)
}

// RunGame plays one game on a width x height board.
func RunGame(width, height int, weights []float64, provider engine.PieceProvider, pieceLimit uint64) (GameResult, error) {
	start := time.Now()

	g, err := engine.NewGame(width, height, weights, provider)
	if err != nil {
		return GameResult{}, err
	}

	var result GameResult
	for uint64(result.PiecesPlayed) < pieceLimit && g.Alive {
		_, cleared := g.Step()
		result.LinesCleared += cleared
		result.PiecesPlayed++
	}
	result.DurationNs = uint64(time.Since(start).Nanoseconds())
	return result, nil
}

// RunBenchmark plays the reproducible verification game: LCG pieces from
// seed on a standard board.
func RunBenchmark(weights []float64, seed uint32, pieceLimit uint64) (GameResult, error) {
	return RunSingleGame(weights, engine.NewLCGProvider(seed), pieceLimit)
}

// Board is the playfield size of a batch.
type Board struct {
	Width  int
	Height int
}

// DefaultBoard is the standard 10x20 playfield.
var DefaultBoard = Board{Width: DefaultWidth, Height: DefaultHeight}

// RunBatch plays numGames games serially on the standard board. Game seeds
// are drawn from a stream seeded with seed, so the batch is reproducible.
func RunBatch(weights []float64, numGames int, kind engine.ProviderKind, pieceLimit uint64, seed uint64) (AggregatedStats, error) {
	return RunBoardBatch(DefaultBoard, weights, numGames, kind, pieceLimit, seed)
}

// RunBoardBatch is RunBatch on an arbitrary board. Games that cannot be set
// up (bad board or provider) are counted in Errors.
func RunBoardBatch(board Board, weights []float64, numGames int, kind engine.ProviderKind, pieceLimit uint64, seed uint64) (AggregatedStats, error) {
	if err := checkBatch(weights, numGames); err != nil {
		return AggregatedStats{}, err
	}

	results := make([]GameResult, numGames)
	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < numGames; i++ {
		results[i] = playSeeded(board, weights, kind, pieceLimit, rng.Uint64())
	}

	return aggregateResults(results), nil
}

func checkBatch(weights []float64, numGames int) error {
	if numGames < 0 {
		return fmt.Errorf("%w: %d", ErrGameCount, numGames)
	}
	return engine.ValidateWeights(weights)
}

// playSeeded runs one game and reports setup failures in the result.
func playSeeded(board Board, weights []float64, kind engine.ProviderKind, pieceLimit uint64, seed uint64) GameResult {
	provider, err := engine.NewProvider(kind, seed)
	if err != nil {
		return GameResult{Error: err.Error()}
	}
	result, err := RunGame(board.Width, board.Height, weights, provider, pieceLimit)
	if err != nil {
		return GameResult{Error: err.Error()}
	}
	return result
}

// aggregateResults computes summary statistics
func aggregateResults(results []GameResult) AggregatedStats {
	stats := AggregatedStats{
		TotalGames: uint32(len(results)),
		MinLines:   math.MaxUint64,
	}

	var totalDuration uint64
	var played uint64
	for _, r := range results {
		if r.Error != "" {
			stats.Errors++
			continue
		}
		lines := uint64(r.LinesCleared)
		stats.TotalLines += lines
		stats.TotalPieces += uint64(r.PiecesPlayed)
		totalDuration += r.DurationNs
		played++
		if lines < stats.MinLines {
			stats.MinLines = lines
		}
		if lines > stats.MaxLines {
			stats.MaxLines = lines
		}
	}

	if played == 0 {
		stats.MinLines = 0
		return stats
	}
	stats.AvgLines = float64(stats.TotalLines) / float64(played)
	stats.AvgDurationNs = totalDuration / played
	return stats
}
