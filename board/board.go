package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/chessrules/position"
)

var (
	ErrInvalidGrid = errors.New("invalid grid")
	ErrNoLegalMove = errors.New("no legal move")
)

// Board is a packed, immutable position. Little-endian rank-file (LERF) mapping.
type Board struct {
	// grid data
	pieces   [2 + 1][6 + 1]bitmap
	sides    [2 + 1]bitmap
	occupied bitmap

	// meta
	enPassant     bitmap
	castleRights  CastleRights
	halfMoveClock uint16
	fullMoveClock uint16
	turn          Side
}

type boardConfig struct {
	grid GridPosition
}

type BoardOption func(*boardConfig)

// WithGrid builds the board from a dense grid and its metadata.
func WithGrid(gp GridPosition) BoardOption {
	return func(cfg *boardConfig) {
		cfg.grid = gp
	}
}

// NewBoard returns the standard starting arrangement unless another grid is given.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		grid: StartingGrid(),
	}
	for _, f := range opts {
		f(cfg)
	}
	return FromGrid(cfg.grid)
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant returns the en passant target square, or position.None.
func (b *Board) EnPassant() position.Pos {
	return b.enPassant.LS1B()
}

func (b *Board) HalfMoveClock() uint16 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint16 {
	return b.fullMoveClock
}

// PieceAt returns the side and kind occupying pos, or SideUnknown and PieceUnknown.
func (b *Board) PieceAt(pos position.Pos) (Side, Piece) {
	for _, s := range Sides {
		if !b.sides[s].Has(pos) {
			continue
		}
		for _, p := range Pieces {
			if b.pieces[s][p].Has(pos) {
				return s, p
			}
		}
	}
	return SideUnknown, PieceUnknown
}

// Equal reports whether both boards describe the same position.
func (b *Board) Equal(o *Board) bool {
	return *b == *o
}

func (b *Board) getBitmap(s Side, p Piece) bitmap {
	return b.pieces[s][p]
}

// recompute rebuilds the derived occupancy masks from the piece masks.
func (b *Board) recompute() {
	for _, s := range Sides {
		b.sides[s] = Union(b.pieces[s][1:]...)
	}
	b.occupied = b.sides[SideWhite] | b.sides[SideBlack]
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(y*Width + x)
			sym := p.SymbolFEN(s)
			if s == SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DumpEnPassant() string {
	return b.enPassant.Dump()
}

func (b *Board) DumpOccupied() string {
	return b.occupied.Dump()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\ncast: %s\nenp:  %s\nhalf: %4d\nfull: %4d\nstat: %s",
		b.turn, b.castleRights, b.EnPassant(), b.halfMoveClock, b.fullMoveClock, b.State())
}
