package tetrissim

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type SimulationRequest struct {
	_tab flatbuffers.Table
}

func GetRootAsSimulationRequest(buf []byte, offset flatbuffers.UOffsetT) *SimulationRequest {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &SimulationRequest{}
	x.Init(buf, n+offset)
	return x
}

func GetSizePrefixedRootAsSimulationRequest(buf []byte, offset flatbuffers.UOffsetT) *SimulationRequest {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &SimulationRequest{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *SimulationRequest) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SimulationRequest) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *SimulationRequest) Weights(j int) float64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetFloat64(a + flatbuffers.UOffsetT(j*8))
	}
	return 0
}

func (rcv *SimulationRequest) WeightsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *SimulationRequest) MutateWeights(j int, n float64) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.MutateFloat64(a+flatbuffers.UOffsetT(j*8), n)
	}
	return false
}

func (rcv *SimulationRequest) Provider() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SimulationRequest) MutateProvider(n byte) bool {
	return rcv._tab.MutateByteSlot(6, n)
}

func (rcv *SimulationRequest) Seed() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SimulationRequest) MutateSeed(n uint64) bool {
	return rcv._tab.MutateUint64Slot(8, n)
}

func (rcv *SimulationRequest) PieceLimit() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SimulationRequest) MutatePieceLimit(n uint64) bool {
	return rcv._tab.MutateUint64Slot(10, n)
}

func (rcv *SimulationRequest) NumGames() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SimulationRequest) MutateNumGames(n uint32) bool {
	return rcv._tab.MutateUint32Slot(12, n)
}

func (rcv *SimulationRequest) BoardWidth() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SimulationRequest) MutateBoardWidth(n byte) bool {
	return rcv._tab.MutateByteSlot(14, n)
}

func (rcv *SimulationRequest) BoardHeight() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SimulationRequest) MutateBoardHeight(n byte) bool {
	return rcv._tab.MutateByteSlot(16, n)
}

func SimulationRequestStart(builder *flatbuffers.Builder) {
	builder.StartObject(7)
}
func SimulationRequestAddWeights(builder *flatbuffers.Builder, weights flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(weights), 0)
}
func SimulationRequestStartWeightsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(8, numElems, 8)
}
func SimulationRequestAddProvider(builder *flatbuffers.Builder, provider byte) {
	builder.PrependByteSlot(1, provider, 0)
}
func SimulationRequestAddSeed(builder *flatbuffers.Builder, seed uint64) {
	builder.PrependUint64Slot(2, seed, 0)
}
func SimulationRequestAddPieceLimit(builder *flatbuffers.Builder, pieceLimit uint64) {
	builder.PrependUint64Slot(3, pieceLimit, 0)
}
func SimulationRequestAddNumGames(builder *flatbuffers.Builder, numGames uint32) {
	builder.PrependUint32Slot(4, numGames, 0)
}
func SimulationRequestAddBoardWidth(builder *flatbuffers.Builder, boardWidth byte) {
	builder.PrependByteSlot(5, boardWidth, 0)
}
func SimulationRequestAddBoardHeight(builder *flatbuffers.Builder, boardHeight byte) {
	builder.PrependByteSlot(6, boardHeight, 0)
}
func SimulationRequestEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
