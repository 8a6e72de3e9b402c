// Package bridge serves batch simulations over the FlatBuffers wire format
// in schema/simulation.fbs. It is the Go side of the c-shared library built
// from ./cgo.
package bridge

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/tetrisevolve/gosim/bindings/tetrissim"
	"github.com/signalnine/tetrisevolve/gosim/engine"
	"github.com/signalnine/tetrisevolve/gosim/simulation"
)

// DefaultPieceLimit caps games whose request leaves piece_limit unset.
const DefaultPieceLimit = 10_000_000

// MaxGamesPerRequest bounds num_games so a corrupt request cannot ask for
// an unbounded allocation.
const MaxGamesPerRequest = 1 << 20

// ErrMalformedRequest is returned when a request buffer cannot be decoded.
var ErrMalformedRequest = errors.New("malformed batch request")

// Request is one decoded SimulationRequest.
type Request struct {
	Weights     []float64
	Provider    engine.ProviderKind
	Seed        uint64
	PieceLimit  uint64 // 0 = DefaultPieceLimit
	NumGames    uint32
	BoardWidth  int // 0 = simulation.DefaultWidth
	BoardHeight int // 0 = simulation.DefaultHeight
}

// Batch is a decoded BatchRequest.
type Batch struct {
	ID       uint64
	Requests []Request
}

// SimulateBatch decodes a BatchRequest, runs every request serially and
// returns the encoded BatchResponse. Results keep request order.
func SimulateBatch(request []byte) ([]byte, error) {
	batch, err := DecodeBatch(request)
	if err != nil {
		return nil, err
	}

	results := make([]simulation.AggregatedStats, len(batch.Requests))
	for i, req := range batch.Requests {
		results[i] = Run(req)
	}
	return EncodeResponse(batch.ID, results), nil
}

// Run plays one request. A request that cannot run at all reports every
// game as an error.
func Run(req Request) simulation.AggregatedStats {
	failed := simulation.AggregatedStats{TotalGames: req.NumGames, Errors: req.NumGames}
	if req.NumGames > MaxGamesPerRequest {
		return failed
	}

	board := simulation.DefaultBoard
	if req.BoardWidth != 0 {
		board.Width = req.BoardWidth
	}
	if req.BoardHeight != 0 {
		board.Height = req.BoardHeight
	}
	limit := req.PieceLimit
	if limit == 0 {
		limit = DefaultPieceLimit
	}

	// Serial on purpose: callers embedding the c-shared library run their
	// own process pools.
	stats, err := simulation.RunBoardBatch(board, req.Weights, int(req.NumGames), req.Provider, limit, req.Seed)
	if err != nil {
		return failed
	}
	return stats
}

// DecodeBatch reads a BatchRequest. FlatBuffers accessors panic on
// truncated or corrupt input; those panics surface as ErrMalformedRequest.
func DecodeBatch(buf []byte) (batch Batch, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return Batch{}, fmt.Errorf("%w: %d bytes", ErrMalformedRequest, len(buf))
	}
	defer func() {
		if r := recover(); r != nil {
			batch = Batch{}
			err = fmt.Errorf("%w: %v", ErrMalformedRequest, r)
		}
	}()

	root := tetrissim.GetRootAsBatchRequest(buf, 0)
	batch.ID = root.BatchId()

	// Vector lengths come from the buffer; bound them by what the buffer
	// could hold before allocating.
	n := root.RequestsLength()
	if n > len(buf)/flatbuffers.SizeUOffsetT {
		return Batch{}, fmt.Errorf("%w: %d requests in %d bytes", ErrMalformedRequest, n, len(buf))
	}
	batch.Requests = make([]Request, 0, n)
	req := new(tetrissim.SimulationRequest)
	for i := 0; i < n; i++ {
		if !root.Requests(req, i) {
			continue
		}
		nw := req.WeightsLength()
		if nw > len(buf)/flatbuffers.SizeFloat64 {
			return Batch{}, fmt.Errorf("%w: %d weights in %d bytes", ErrMalformedRequest, nw, len(buf))
		}
		weights := make([]float64, nw)
		for j := range weights {
			weights[j] = req.Weights(j)
		}
		batch.Requests = append(batch.Requests, Request{
			Weights:     weights,
			Provider:    engine.ProviderKind(req.Provider()),
			Seed:        req.Seed(),
			PieceLimit:  req.PieceLimit(),
			NumGames:    req.NumGames(),
			BoardWidth:  int(req.BoardWidth()),
			BoardHeight: int(req.BoardHeight()),
		})
	}
	return batch, nil
}

// EncodeBatch builds a BatchRequest buffer.
func EncodeBatch(batch Batch) []byte {
	builder := flatbuffers.NewBuilder(256)

	// Child tables and vectors must be finished before their parent starts
	offsets := make([]flatbuffers.UOffsetT, len(batch.Requests))
	for i, req := range batch.Requests {
		tetrissim.SimulationRequestStartWeightsVector(builder, len(req.Weights))
		for j := len(req.Weights) - 1; j >= 0; j-- {
			builder.PrependFloat64(req.Weights[j])
		}
		weights := builder.EndVector(len(req.Weights))

		tetrissim.SimulationRequestStart(builder)
		tetrissim.SimulationRequestAddWeights(builder, weights)
		tetrissim.SimulationRequestAddProvider(builder, byte(req.Provider))
		tetrissim.SimulationRequestAddSeed(builder, req.Seed)
		tetrissim.SimulationRequestAddPieceLimit(builder, req.PieceLimit)
		tetrissim.SimulationRequestAddNumGames(builder, req.NumGames)
		tetrissim.SimulationRequestAddBoardWidth(builder, byte(req.BoardWidth))
		tetrissim.SimulationRequestAddBoardHeight(builder, byte(req.BoardHeight))
		offsets[i] = tetrissim.SimulationRequestEnd(builder)
	}

	tetrissim.BatchRequestStartRequestsVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	requests := builder.EndVector(len(offsets))

	tetrissim.BatchRequestStart(builder)
	tetrissim.BatchRequestAddRequests(builder, requests)
	tetrissim.BatchRequestAddBatchId(builder, batch.ID)
	tetrissim.FinishBatchRequestBuffer(builder, tetrissim.BatchRequestEnd(builder))
	return builder.FinishedBytes()
}

// EncodeResponse builds a BatchResponse buffer.
func EncodeResponse(batchID uint64, results []simulation.AggregatedStats) []byte {
	builder := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(results))
	for i := range results {
		offsets[i] = serializeStats(builder, &results[i])
	}

	tetrissim.BatchResponseStartResultsVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	vec := builder.EndVector(len(offsets))

	tetrissim.BatchResponseStart(builder)
	tetrissim.BatchResponseAddBatchId(builder, batchID)
	tetrissim.BatchResponseAddResults(builder, vec)
	builder.Finish(tetrissim.BatchResponseEnd(builder))
	return builder.FinishedBytes()
}

// DecodeResponse reads a BatchResponse back into aggregated stats.
func DecodeResponse(buf []byte) (batchID uint64, results []simulation.AggregatedStats, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrMalformedRequest, len(buf))
	}
	defer func() {
		if r := recover(); r != nil {
			batchID, results = 0, nil
			err = fmt.Errorf("%w: %v", ErrMalformedRequest, r)
		}
	}()

	root := tetrissim.GetRootAsBatchResponse(buf, 0)
	n := root.ResultsLength()
	if n > len(buf)/flatbuffers.SizeUOffsetT {
		return 0, nil, fmt.Errorf("%w: %d results in %d bytes", ErrMalformedRequest, n, len(buf))
	}
	stats := new(tetrissim.GameStats)
	results = make([]simulation.AggregatedStats, 0, n)
	for i := 0; i < n; i++ {
		if !root.Results(stats, i) {
			continue
		}
		results = append(results, simulation.AggregatedStats{
			TotalGames:    stats.TotalGames(),
			TotalLines:    stats.TotalLines(),
			TotalPieces:   stats.TotalPieces(),
			AvgLines:      stats.AvgLines(),
			MinLines:      stats.MinLines(),
			MaxLines:      stats.MaxLines(),
			AvgDurationNs: stats.AvgDurationNs(),
			Errors:        stats.Errors(),
		})
	}
	return root.BatchId(), results, nil
}

func serializeStats(builder *flatbuffers.Builder, stats *simulation.AggregatedStats) flatbuffers.UOffsetT {
	tetrissim.GameStatsStart(builder)
	tetrissim.GameStatsAddTotalGames(builder, stats.TotalGames)
	tetrissim.GameStatsAddTotalLines(builder, stats.TotalLines)
	tetrissim.GameStatsAddTotalPieces(builder, stats.TotalPieces)
	tetrissim.GameStatsAddAvgLines(builder, stats.AvgLines)
	tetrissim.GameStatsAddMinLines(builder, stats.MinLines)
	tetrissim.GameStatsAddMaxLines(builder, stats.MaxLines)
	tetrissim.GameStatsAddAvgDurationNs(builder, stats.AvgDurationNs)
	tetrissim.GameStatsAddErrors(builder, stats.Errors)
	return tetrissim.GameStatsEnd(builder)
}
