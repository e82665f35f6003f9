package board

import "github.com/daystram/chessrules/position"

// direction is a ray step: the square delta and the file delta each step must produce.
// Checking the file delta keeps a ray from wrapping from the H file onto the A file.
type direction struct {
	delta position.Pos
	file  position.Pos
}

var (
	dirN  = direction{delta: 8, file: 0}
	dirS  = direction{delta: -8, file: 0}
	dirE  = direction{delta: 1, file: 1}
	dirW  = direction{delta: -1, file: -1}
	dirNE = direction{delta: 9, file: 1}
	dirNW = direction{delta: 7, file: -1}
	dirSE = direction{delta: -7, file: 1}
	dirSW = direction{delta: -9, file: -1}

	lateralDirections  = []direction{dirN, dirS, dirE, dirW}
	diagonalDirections = []direction{dirNE, dirNW, dirSE, dirSW}
	allDirections      = []direction{dirN, dirS, dirE, dirW, dirNE, dirNW, dirSE, dirSW}
)

// castRay walks from the given square in one direction until the board edge or the first
// occupied square. The blocking square is included only when it holds an opponent piece.
func castRay(from position.Pos, d direction, occupied, opponent bitmap) bitmap {
	var ray bitmap
	for prev := from; ; {
		next := prev + d.delta
		if !next.IsValid() || next.X()-prev.X() != d.file {
			return ray
		}
		cell := maskCell(next)
		if occupied&cell != 0 {
			if opponent&cell != 0 {
				ray |= cell
			}
			return ray
		}
		ray |= cell
		prev = next
	}
}

func castRays(from position.Pos, ds []direction, occupied, opponent bitmap) bitmap {
	var hit bitmap
	for _, d := range ds {
		hit |= castRay(from, d, occupied, opponent)
	}
	return hit
}
