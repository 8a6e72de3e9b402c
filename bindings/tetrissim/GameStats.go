package tetrissim

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type GameStats struct {
	_tab flatbuffers.Table
}

func GetRootAsGameStats(buf []byte, offset flatbuffers.UOffsetT) *GameStats {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &GameStats{}
	x.Init(buf, n+offset)
	return x
}

func GetSizePrefixedRootAsGameStats(buf []byte, offset flatbuffers.UOffsetT) *GameStats {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &GameStats{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *GameStats) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *GameStats) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *GameStats) TotalGames() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *GameStats) MutateTotalGames(n uint32) bool {
	return rcv._tab.MutateUint32Slot(4, n)
}

func (rcv *GameStats) TotalLines() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *GameStats) MutateTotalLines(n uint64) bool {
	return rcv._tab.MutateUint64Slot(6, n)
}

func (rcv *GameStats) TotalPieces() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *GameStats) MutateTotalPieces(n uint64) bool {
	return rcv._tab.MutateUint64Slot(8, n)
}

func (rcv *GameStats) AvgLines() float64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetFloat64(o + rcv._tab.Pos)
	}
	return 0.0
}

func (rcv *GameStats) MutateAvgLines(n float64) bool {
	return rcv._tab.MutateFloat64Slot(10, n)
}

func (rcv *GameStats) MinLines() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *GameStats) MutateMinLines(n uint64) bool {
	return rcv._tab.MutateUint64Slot(12, n)
}

func (rcv *GameStats) MaxLines() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *GameStats) MutateMaxLines(n uint64) bool {
	return rcv._tab.MutateUint64Slot(14, n)
}

func (rcv *GameStats) AvgDurationNs() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *GameStats) MutateAvgDurationNs(n uint64) bool {
	return rcv._tab.MutateUint64Slot(16, n)
}

func (rcv *GameStats) Errors() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *GameStats) MutateErrors(n uint32) bool {
	return rcv._tab.MutateUint32Slot(18, n)
}

func GameStatsStart(builder *flatbuffers.Builder) {
	builder.StartObject(8)
}
func GameStatsAddTotalGames(builder *flatbuffers.Builder, totalGames uint32) {
	builder.PrependUint32Slot(0, totalGames, 0)
}
func GameStatsAddTotalLines(builder *flatbuffers.Builder, totalLines uint64) {
	builder.PrependUint64Slot(1, totalLines, 0)
}
func GameStatsAddTotalPieces(builder *flatbuffers.Builder, totalPieces uint64) {
	builder.PrependUint64Slot(2, totalPieces, 0)
}
func GameStatsAddAvgLines(builder *flatbuffers.Builder, avgLines float64) {
	builder.PrependFloat64Slot(3, avgLines, 0.0)
}
func GameStatsAddMinLines(builder *flatbuffers.Builder, minLines uint64) {
	builder.PrependUint64Slot(4, minLines, 0)
}
func GameStatsAddMaxLines(builder *flatbuffers.Builder, maxLines uint64) {
	builder.PrependUint64Slot(5, maxLines, 0)
}
func GameStatsAddAvgDurationNs(builder *flatbuffers.Builder, avgDurationNs uint64) {
	builder.PrependUint64Slot(6, avgDurationNs, 0)
}
func GameStatsAddErrors(builder *flatbuffers.Builder, errors uint32) {
	builder.PrependUint32Slot(7, errors, 0)
}
func GameStatsEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
