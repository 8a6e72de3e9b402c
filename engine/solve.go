package engine

import "math"

// Placement is a resting position for the current piece and its score.
type Placement struct {
	Score    float64
	X        int
	Y        int
	Rotation int
}

// Solve tries every rotation and column for the current piece, drops it as
// far as it goes and returns the highest-scoring placement. Ties keep the
// first candidate found (lowest rotation, then lowest column).
//
// The starting row is assumed free; a piece that already overlaps the stack
// at y=0 still yields a placement and the game ends on the following Commit.
func (g *GameState) Solve() Placement {
	best := Placement{Score: math.Inf(-1)}
	found := false
	tmp := g.solveBuf

	for r, s := range Pieces[g.Current] {
		for x := 0; x <= g.Width-s.Width; x++ {
			y := 0
			for !g.Collided(x, y+1, r) {
				y++
			}

			copy(tmp, g.Board)
			placeShape(tmp, s, x, y)

			score := Evaluate(g.Weights, g.Width, g.Height, g.Current, tmp, y, r, g.evalBuf)
			if !found || score > best.Score {
				best = Placement{Score: score, X: x, Y: y, Rotation: r}
				found = true
			}
		}
	}
	return best
}

// Step solves for the current piece, commits the result, clears rows and
// spawns the next piece if the game is still running. It returns the
// placement used and the number of rows cleared.
func (g *GameState) Step() (Placement, int) {
	p := g.Solve()
	g.Commit(p.X, p.Y, p.Rotation)
	cleared := g.ClearFullRows()
	if g.Alive {
		g.SpawnNext()
	}
	return p, cleared
}
