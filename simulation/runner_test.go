package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/tetrisevolve/gosim/engine"
)

var verifyWeights = BenchmarkWeights

func TestRunSingleGameRespectsLimit(t *testing.T) {
	result, err := RunSingleGame(verifyWeights, engine.NewLCGProvider(12345), 300)
	require.NoError(t, err)

	assert.Equal(t, 300, result.PiecesPlayed)
	assert.Greater(t, result.LinesCleared, 0)
	// every cleared line consumes 10 cells, 4 per piece
	assert.LessOrEqual(t, result.LinesCleared*10, result.PiecesPlayed*4)
}

func TestRunSingleGameZeroLimit(t *testing.T) {
	result, err := RunSingleGame(verifyWeights, engine.NewLCGProvider(1), 0)
	require.NoError(t, err)

	assert.Equal(t, 0, result.PiecesPlayed)
	assert.Equal(t, 0, result.LinesCleared)
}

func TestRunSingleGameEndsOnTopOut(t *testing.T) {
	// Rewarding landing height stacks pieces to the ceiling.
	bad := []float64{10, 0, 0, 0, 0, 0}
	result, err := RunSingleGame(bad, engine.NewLCGProvider(3), 1_000_000)
	require.NoError(t, err)

	assert.Less(t, result.PiecesPlayed, 1000)
	assert.Greater(t, result.PiecesPlayed, 0)
}

func TestRunSingleGameBadWeights(t *testing.T) {
	_, err := RunSingleGame([]float64{1, 2}, engine.NewLCGProvider(1), 10)
	assert.ErrorIs(t, err, engine.ErrWeightCount)
}

func TestRunBenchmarkDeterministic(t *testing.T) {
	first, err := RunBenchmark(verifyWeights, 12345, 20_000)
	require.NoError(t, err)
	second, err := RunBenchmark(verifyWeights, 12345, 20_000)
	require.NoError(t, err)

	assert.Equal(t, first.LinesCleared, second.LinesCleared)
	assert.Equal(t, first.PiecesPlayed, second.PiecesPlayed)
}

func TestRunBenchmarkKnownResult(t *testing.T) {
	result, err := RunBenchmark(verifyWeights, BenchmarkSeed, 100_000)
	require.NoError(t, err)

	assert.Equal(t, 100_000, result.PiecesPlayed)
	assert.Equal(t, 39_999, result.LinesCleared)
}

func TestRunBenchmarkFullVerification(t *testing.T) {
	if testing.Short() {
		t.Skip("long verification game")
	}

	first, err := RunBenchmark(verifyWeights, BenchmarkSeed, BenchmarkLimit)
	require.NoError(t, err)
	second, err := RunBenchmark(verifyWeights, BenchmarkSeed, BenchmarkLimit)
	require.NoError(t, err)

	assert.Equal(t, 1_000_000, first.PiecesPlayed)
	assert.Equal(t, 399_998, first.LinesCleared)
	assert.Equal(t, first.LinesCleared, second.LinesCleared)
	assert.Equal(t, first.PiecesPlayed, second.PiecesPlayed)
}

func TestRunGameCustomBoard(t *testing.T) {
	result, err := RunGame(12, 24, verifyWeights, engine.NewBagProvider(8), 200)
	require.NoError(t, err)
	assert.Equal(t, 200, result.PiecesPlayed)

	_, err = RunGame(2, 24, verifyWeights, engine.NewBagProvider(8), 200)
	assert.ErrorIs(t, err, engine.ErrBoardSize)
}

func TestRunBatchReproducible(t *testing.T) {
	a, err := RunBatch(verifyWeights, 4, engine.ProviderBag, 500, 42)
	require.NoError(t, err)
	b, err := RunBatch(verifyWeights, 4, engine.ProviderBag, 500, 42)
	require.NoError(t, err)

	assert.Equal(t, uint32(4), a.TotalGames)
	assert.LessOrEqual(t, a.TotalPieces, uint64(2000))
	assert.Equal(t, a.TotalPieces, b.TotalPieces)
	assert.Equal(t, a.TotalLines, b.TotalLines)
	assert.Equal(t, a.MinLines, b.MinLines)
	assert.Equal(t, a.MaxLines, b.MaxLines)
	assert.LessOrEqual(t, a.MinLines, a.MaxLines)
	assert.InDelta(t, float64(a.TotalLines)/4, a.AvgLines, 1e-9)
}

func TestRunBatchBadProvider(t *testing.T) {
	stats, err := RunBatch(verifyWeights, 3, engine.ProviderKind(7), 10, 1)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Errors)
	assert.Equal(t, uint64(0), stats.MinLines)
	assert.Equal(t, 0.0, stats.AvgLines)
}

func TestAggregateResults(t *testing.T) {
	stats := aggregateResults([]GameResult{
		{LinesCleared: 10, PiecesPlayed: 30, DurationNs: 100},
		{LinesCleared: 4, PiecesPlayed: 12, DurationNs: 300},
		{Error: "boom"},
	})

	assert.Equal(t, uint32(3), stats.TotalGames)
	assert.Equal(t, uint32(1), stats.Errors)
	assert.Equal(t, uint64(14), stats.TotalLines)
	assert.Equal(t, uint64(42), stats.TotalPieces)
	assert.Equal(t, uint64(4), stats.MinLines)
	assert.Equal(t, uint64(10), stats.MaxLines)
	assert.Equal(t, 7.0, stats.AvgLines)
	assert.Equal(t, uint64(200), stats.AvgDurationNs)
}

func TestRunBoardBatch(t *testing.T) {
	wide, err := RunBoardBatch(Board{Width: 14, Height: 24}, verifyWeights, 2, engine.ProviderLCG, 300, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), wide.Errors)
	assert.Equal(t, uint32(2), wide.TotalGames)

	bad, err := RunBoardBatch(Board{Width: 80, Height: 20}, verifyWeights, 2, engine.ProviderLCG, 300, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), bad.Errors)

	_, err = RunBoardBatch(DefaultBoard, []float64{1}, 2, engine.ProviderLCG, 300, 5)
	assert.ErrorIs(t, err, engine.ErrWeightCount)
}

func TestRunBatchNegativeGameCount(t *testing.T) {
	_, err := RunBatch(verifyWeights, -1, engine.ProviderLCG, 10, 1)
	assert.ErrorIs(t, err, ErrGameCount)

	_, err = RunBoardBatch(DefaultBoard, verifyWeights, -3, engine.ProviderBag, 10, 1)
	assert.ErrorIs(t, err, ErrGameCount)
}
