package engine

import (
	"errors"
	"fmt"
)

// NumFeatures is the length of a weight vector.
const NumFeatures = 6

// Board limits. Rows are uint64 bitmasks, so one bit is reserved to keep
// the full-row mask representable.
const (
	MinBoardWidth  = 4
	MaxBoardWidth  = 63
	MinBoardHeight = 4
)

var (
	// ErrWeightCount is returned when a weight vector does not have NumFeatures entries.
	ErrWeightCount = errors.New("weight vector length mismatch")
	// ErrBoardSize is returned for boards outside the supported dimensions.
	ErrBoardSize = errors.New("unsupported board size")
)

// ValidateWeights checks that w has exactly NumFeatures entries.
func ValidateWeights(w []float64) error {
	if len(w) != NumFeatures {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(w), NumFeatures)
	}
	return nil
}

// GameState is the mutable state of one game. Row 0 of Board is the top.
type GameState struct {
	Board  []uint64
	Width  int
	Height int
	Alive  bool
	Count  int // pieces spawned so far

	Current  Kind
	Next     Kind
	Rotation int
	X        int
	Y        int

	Weights []float64

	provider PieceProvider
	fullRow  uint64

	// scratch rows reused by Solve and Evaluate
	evalBuf  []uint64
	solveBuf []uint64
}

// NewGame creates a game and spawns its first piece. The weight slice is
// borrowed, not copied.
func NewGame(width, height int, weights []float64, provider PieceProvider) (*GameState, error) {
	if width < MinBoardWidth || width > MaxBoardWidth || height < MinBoardHeight {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardSize, width, height)
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errors.New("nil piece provider")
	}

	g := &GameState{
		Board:    make([]uint64, height),
		Width:    width,
		Height:   height,
		Alive:    true,
		Weights:  weights,
		provider: provider,
		fullRow:  uint64(1)<<uint(width) - 1,
		evalBuf:  make([]uint64, height),
		solveBuf: make([]uint64, height),
	}
	g.Next = provider.Next()
	g.SpawnNext()
	return g, nil
}

// Shape returns rotation r of the current piece.
func (g *GameState) Shape(r int) Shape {
	return Pieces[g.Current][r]
}

// SpawnNext promotes the next piece to current and draws a new next piece.
// The spawn position is not collision-checked.
func (g *GameState) SpawnNext() {
	g.Count++
	g.Current = g.Next
	g.Next = g.provider.Next()
	g.Rotation = 0
	g.X = g.Width/2 - 1
	g.Y = 0
}

// Collided reports whether rotation r of the current piece at (x, y) lies
// outside the board or overlaps filled cells.
func (g *GameState) Collided(x, y, r int) bool {
	s := Pieces[g.Current][r]
	if x < 0 || x > g.Width-s.Width || y > g.Height-s.Height {
		return true
	}
	for h := 0; h < s.Height; h++ {
		if (s.Rows[h]<<uint(x))&g.Board[y+h] != 0 {
			return true
		}
	}
	return false
}

// Commit writes rotation r of the current piece into the board at (x, y).
// The game ends if the top row is occupied afterwards.
func (g *GameState) Commit(x, y, r int) {
	g.X, g.Y, g.Rotation = x, y, r
	placeShape(g.Board, Pieces[g.Current][r], x, y)
	if g.Board[0] != 0 {
		g.Alive = false
	}
}

// ClearFullRows removes every full row, shifting the rows above it down,
// and returns the number removed. Row 0 is scanned too, so a losing piece
// that completes the top row still scores it.
func (g *GameState) ClearFullRows() int {
	cleared := 0
	h := g.Height - 1
	for h >= 0 {
		if g.Board[h] == g.fullRow {
			cleared++
			copy(g.Board[1:h+1], g.Board[:h])
			g.Board[0] = 0
			continue
		}
		h--
	}
	return cleared
}

func placeShape(board []uint64, s Shape, x, y int) {
	for h := 0; h < s.Height; h++ {
		board[y+h] |= s.Rows[h] << uint(x)
	}
}
