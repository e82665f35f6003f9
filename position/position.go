package position

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares addressable by a Pos.
	TotalCells = MaxComponentScalar * MaxComponentScalar

	// None marks the absence of a square, e.g. a move without a capture.
	None Pos = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidPosition represents a rank or file outside of the board.
	ErrInvalidPosition = errors.New("invalid position")
)

// Pos is a square index in little-endian rank-file order: rank*8 + file.
type Pos int8

// NewPos returns the square at the given rank and file, both in [0,7].
func NewPos(rank, file int) (Pos, error) {
	if rank < 0 || int(MaxComponentScalar) <= rank || file < 0 || int(MaxComponentScalar) <= file {
		return None, fmt.Errorf("%w: rank=%d file=%d", ErrInvalidPosition, rank, file)
	}
	return Pos(rank)*MaxComponentScalar + Pos(file), nil
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return None, err
	}
	return MaxComponentScalar*y + x, nil
}

// Validate reports ErrInvalidPosition when p does not address a square.
func (p Pos) Validate() error {
	if !p.IsValid() {
		return fmt.Errorf("%w: square=%d", ErrInvalidPosition, p)
	}
	return nil
}

func (p Pos) IsValid() bool {
	return 0 <= p && p < TotalCells
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

// X returns the file of p.
func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

// Y returns the rank of p.
func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Rank() int {
	return int(p.Y())
}

func (p Pos) File() int {
	return int(p.X())
}

// FileDistance returns the absolute file difference between p and q.
func (p Pos) FileDistance(q Pos) Pos {
	return Abs(p.X() - q.X())
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x >= 'A' && x <= 'H' {
		x += 'a' - 'A'
	}
	pX := Pos(x) - 'a'
	if pX < 0 || MaxComponentScalar <= pX {
		return 0, ErrInvalidNotation
	}
	return pX, nil
}

func notationToY(y byte) (Pos, error) {
	pY := Pos(y) - '1'
	if pY < 0 || MaxComponentScalar <= pY {
		return 0, ErrInvalidNotation
	}
	return pY, nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('1' + p))
}
