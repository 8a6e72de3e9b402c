package engine

// Feature indices into Features and weight vectors.
const (
	FeatureLandingHeight = iota
	FeatureRowsCleared
	FeatureRowTransitions
	FeatureColumnTransitions
	FeatureHoles
	FeatureWellSums
)

// designHeight is the board height the landing-height feature was tuned
// for. It is used even when the configured board is taller or shorter.
const designHeight = 20.0

// Features holds the six heuristic inputs for one candidate placement.
type Features [NumFeatures]float64

// Score returns the dot product of f and weights. weights must hold
// NumFeatures values; ValidateWeights checks that and NewGame enforces it.
func (f Features) Score(weights []float64) float64 {
	var score float64
	for i, v := range f {
		score += weights[i] * v
	}
	return score
}

// Evaluate scores a candidate board in which rotation r of kind has been
// placed with its top at landingRow. The board is not modified; scratch
// (len >= height) is used for the post-clear copy and may be nil. weights
// must pass ValidateWeights.
func Evaluate(weights []float64, width, height int, kind Kind, board []uint64, landingRow, r int, scratch []uint64) float64 {
	return ExtractFeatures(width, height, Pieces[kind][r], board, landingRow, scratch).Score(weights)
}

// ExtractFeatures computes the heuristic features of board after its full
// rows have been cleared.
func ExtractFeatures(width, height int, s Shape, board []uint64, landingRow int, scratch []uint64) Features {
	if len(scratch) < height {
		scratch = make([]uint64, height)
	}
	grid := scratch[:height]
	fullRow := uint64(1)<<uint(width) - 1

	// Compact surviving rows toward the bottom.
	cleared := 0
	write := height - 1
	for y := height - 1; y >= 0; y-- {
		if board[y] == fullRow {
			cleared++
			continue
		}
		grid[write] = board[y]
		write--
	}
	for ; write >= 0; write-- {
		grid[write] = 0
	}

	var f Features
	f[FeatureLandingHeight] = (designHeight - float64(landingRow+s.Height)) + float64(s.Height-1)/2.0
	f[FeatureRowsCleared] = float64(cleared)
	f[FeatureRowTransitions] = float64(rowTransitions(grid, width))

	colTransitions, holes, wells := columnFeatures(grid, width)
	f[FeatureColumnTransitions] = float64(colTransitions)
	f[FeatureHoles] = float64(holes)
	f[FeatureWellSums] = float64(wells)
	return f
}

// rowTransitions counts filled/empty changes along each row, treating both
// side walls as filled.
func rowTransitions(grid []uint64, width int) int {
	n := 0
	for _, row := range grid {
		last := uint64(1)
		for x := 0; x < width; x++ {
			cell := (row >> uint(x)) & 1
			if cell != last {
				n++
			}
			last = cell
		}
		if last == 0 {
			n++
		}
	}
	return n
}

// columnFeatures returns column transitions, holes and the well sum. Above
// the board counts as empty and the floor as filled.
func columnFeatures(grid []uint64, width int) (transitions, holes, wellSum int) {
	height := len(grid)
	for x := 0; x < width; x++ {
		top := -1
		filled := 0
		run := 0
		last := uint64(0)
		for y := 0; y < height; y++ {
			row := grid[y]
			cell := (row >> uint(x)) & 1
			if cell != last {
				transitions++
			}
			last = cell

			if cell == 0 && wellWalls(row, x, width) {
				run++
			} else if run > 0 {
				wellSum += run * (run + 1) / 2
				run = 0
			}

			if cell == 1 {
				filled++
				if top < 0 {
					top = y
				}
			}
		}
		if run > 0 {
			wellSum += run * (run + 1) / 2
		}
		if filled > 0 {
			holes += height - top - filled
		}
		if last == 0 {
			transitions++
		}
	}
	return transitions, holes, wellSum
}

// wellWalls reports whether the horizontal neighbours of column x are
// filled. Edge columns only have one neighbour.
func wellWalls(row uint64, x, width int) bool {
	switch {
	case x == 0:
		return (row>>1)&1 == 1
	case x == width-1:
		return (row>>uint(x-1))&1 == 1
	default:
		return (row>>uint(x-1))&1 == 1 && (row>>uint(x+1))&1 == 1
	}
}
