package engine

// Kind indexes the piece geometry table (0-6).
type Kind uint8

const (
	KindI Kind = iota
	KindT
	KindO
	KindL
	KindJ
	KindZ
	KindS
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "T", "O", "L", "J", "Z", "S"}

func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return "?"
}

// Shape is one rotation of a piece. Rows[0] is the top row of the bounding
// box; bit i of a row is column i relative to the box's left edge.
type Shape struct {
	Rows   []uint64
	Width  int
	Height int
}

// Pieces lists every rotation variant per kind. I, Z and S have two
// variants and O has one.
var Pieces = [NumKinds][]Shape{
	KindI: {
		{Rows: []uint64{1, 1, 1, 1}, Width: 1, Height: 4},
		{Rows: []uint64{15}, Width: 4, Height: 1},
	},
	KindT: {
		{Rows: []uint64{2, 7}, Width: 3, Height: 2},
		{Rows: []uint64{2, 3, 2}, Width: 2, Height: 3},
		{Rows: []uint64{7, 2}, Width: 3, Height: 2},
		{Rows: []uint64{1, 3, 1}, Width: 2, Height: 3},
	},
	KindO: {
		{Rows: []uint64{3, 3}, Width: 2, Height: 2},
	},
	KindL: {
		{Rows: []uint64{2, 2, 3}, Width: 2, Height: 3},
		{Rows: []uint64{7, 4}, Width: 3, Height: 2},
		{Rows: []uint64{3, 1, 1}, Width: 2, Height: 3},
		{Rows: []uint64{1, 7}, Width: 3, Height: 2},
	},
	KindJ: {
		{Rows: []uint64{7, 1}, Width: 3, Height: 2},
		{Rows: []uint64{1, 1, 3}, Width: 2, Height: 3},
		{Rows: []uint64{4, 7}, Width: 3, Height: 2},
		{Rows: []uint64{3, 2, 2}, Width: 2, Height: 3},
	},
	KindZ: {
		{Rows: []uint64{6, 3}, Width: 3, Height: 2},
		{Rows: []uint64{1, 3, 2}, Width: 2, Height: 3},
	},
	KindS: {
		{Rows: []uint64{3, 6}, Width: 3, Height: 2},
		{Rows: []uint64{2, 3, 1}, Width: 2, Height: 3},
	},
}
