package bridge

import (
	"encoding/binary"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/tetrisevolve/gosim/bindings/tetrissim"
	"github.com/signalnine/tetrisevolve/gosim/engine"
	"github.com/signalnine/tetrisevolve/gosim/simulation"
)

var testWeights = []float64{
	-0.510066, 0.760666, -0.35663, -0.184483, -0.0, -0.0,
}

func TestEncodeDecodeBatch(t *testing.T) {
	in := Batch{
		ID: 77,
		Requests: []Request{
			{Weights: testWeights, Provider: engine.ProviderLCG, Seed: 12345, PieceLimit: 100, NumGames: 2},
			{Weights: []float64{1, 2}, Provider: engine.ProviderBag, Seed: 9, NumGames: 5, BoardWidth: 12, BoardHeight: 30},
		},
	}

	out, err := DecodeBatch(EncodeBatch(in))

	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSimulateBatch(t *testing.T) {
	request := EncodeBatch(Batch{
		ID: 9001,
		Requests: []Request{
			{Weights: testWeights, Provider: engine.ProviderLCG, Seed: 3, PieceLimit: 300, NumGames: 2},
			{Weights: []float64{1, 2, 3}, Provider: engine.ProviderBag, Seed: 1, PieceLimit: 10, NumGames: 4},
			{Weights: testWeights, Provider: engine.ProviderBag, Seed: 1, PieceLimit: 10, NumGames: 3, BoardWidth: 2},
			{Weights: testWeights, Provider: engine.ProviderKind(9), Seed: 1, PieceLimit: 10, NumGames: 2},
		},
	})

	response, err := SimulateBatch(request)
	require.NoError(t, err)

	id, results, err := DecodeResponse(response)
	require.NoError(t, err)
	assert.Equal(t, uint64(9001), id)
	require.Len(t, results, 4)

	want, err := simulation.RunBatch(testWeights, 2, engine.ProviderLCG, 300, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), results[0].TotalGames)
	assert.Equal(t, uint32(0), results[0].Errors)
	assert.Equal(t, want.TotalLines, results[0].TotalLines)
	assert.Equal(t, want.TotalPieces, results[0].TotalPieces)
	assert.Equal(t, want.MinLines, results[0].MinLines)
	assert.Equal(t, want.MaxLines, results[0].MaxLines)
	assert.Equal(t, want.AvgLines, results[0].AvgLines)

	for _, r := range results[1:] {
		assert.Equal(t, r.TotalGames, r.Errors, "invalid requests fail every game")
		assert.Equal(t, uint64(0), r.TotalLines)
	}
}

func TestSimulateBatchEmpty(t *testing.T) {
	response, err := SimulateBatch(EncodeBatch(Batch{ID: 5}))
	require.NoError(t, err)

	id, results, err := DecodeResponse(response)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), id)
	assert.Empty(t, results)
}

// patchVectorLen overwrites the length prefix of the vector field at
// vtable offset field in tab.
func patchVectorLen(buf []byte, tab flatbuffers.Table, field flatbuffers.VOffsetT, n uint32) {
	o := flatbuffers.UOffsetT(tab.Offset(field))
	data := tab.Vector(o)
	binary.LittleEndian.PutUint32(buf[data-flatbuffers.SizeUOffsetT:], n)
}

func oneRequestBatch() []byte {
	return EncodeBatch(Batch{ID: 1, Requests: []Request{
		{Weights: testWeights, Provider: engine.ProviderLCG, Seed: 1, PieceLimit: 10, NumGames: 1},
	}})
}

func hugeRequestCount() []byte {
	buf := oneRequestBatch()
	root := tetrissim.GetRootAsBatchRequest(buf, 0)
	patchVectorLen(buf, root.Table(), 4, 0x7fffffff)
	return buf
}

func requestCountPastEnd() []byte {
	buf := oneRequestBatch()
	root := tetrissim.GetRootAsBatchRequest(buf, 0)
	patchVectorLen(buf, root.Table(), 4, uint32(len(buf)/4))
	return buf
}

func hugeWeightCount() []byte {
	buf := oneRequestBatch()
	root := tetrissim.GetRootAsBatchRequest(buf, 0)
	req := new(tetrissim.SimulationRequest)
	root.Requests(req, 0)
	patchVectorLen(buf, req.Table(), 4, 0x7fffffff)
	return buf
}

func TestSimulateBatchMalformed(t *testing.T) {
	for name, buf := range map[string][]byte{
		"nil":             nil,
		"short":           {1, 2},
		"bad root":        {0xff, 0xff, 0, 0, 0, 0, 0, 0},
		"bad table":       {4, 0, 0, 0, 0x7f, 0x7f, 0, 0},
		"huge requests":   hugeRequestCount(),
		"huge weights":    hugeWeightCount(),
		"past buffer end": requestCountPastEnd(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := SimulateBatch(buf)
			assert.ErrorIs(t, err, ErrMalformedRequest)
		})
	}
}

func TestRunDefaults(t *testing.T) {
	stats := Run(Request{Weights: testWeights, Provider: engine.ProviderLCG, Seed: 1, PieceLimit: 50, NumGames: 1})

	assert.Equal(t, uint32(0), stats.Errors)
	assert.Equal(t, uint32(1), stats.TotalGames)
	assert.LessOrEqual(t, stats.TotalPieces, uint64(50))
}

func TestRunTooManyGames(t *testing.T) {
	stats := Run(Request{Weights: testWeights, NumGames: MaxGamesPerRequest + 1})

	assert.Equal(t, uint32(MaxGamesPerRequest+1), stats.Errors)
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, _, err := DecodeResponse([]byte{9})
	assert.ErrorIs(t, err, ErrMalformedRequest)

	buf := EncodeResponse(3, []simulation.AggregatedStats{{TotalGames: 1}})
	patchVectorLen(buf, tetrissim.GetRootAsBatchResponse(buf, 0).Table(), 6, 0x7fffffff)
	_, _, err = DecodeResponse(buf)
	assert.ErrorIs(t, err, ErrMalformedRequest)
}
