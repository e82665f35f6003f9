package board

import (
	"fmt"

	"github.com/daystram/chessrules/position"
)

// Cell is one square of a Grid. The zero value is an empty square.
type Cell struct {
	Side  Side
	Piece Piece
}

func (c Cell) IsEmpty() bool {
	return c.Piece == PieceUnknown
}

// Grid is the dense board form, indexed [rank][file].
type Grid [Height][Width]Cell

// GridPosition is a dense board together with the metadata a packed Board carries.
// The en passant target is derived from LastMove, when it is a two-square pawn advance.
type GridPosition struct {
	Cells         Grid
	Turn          Side
	CastleRights  CastleRights
	LastMove      *Move
	HalfMoveClock uint16
	FullMoveClock uint16
}

var backRank = [Width]Piece{
	PieceRook, PieceKnight, PieceBishop, PieceQueen, PieceKing, PieceBishop, PieceKnight, PieceRook,
}

// StartingGrid returns the standard starting arrangement.
func StartingGrid() GridPosition {
	gp := GridPosition{
		Turn:          SideWhite,
		CastleRights:  CastleRightsAll,
		FullMoveClock: 1,
	}
	for x, p := range backRank {
		gp.Cells[position.Rank1][x] = Cell{Side: SideWhite, Piece: p}
		gp.Cells[position.Rank2][x] = Cell{Side: SideWhite, Piece: PiecePawn}
		gp.Cells[position.Rank7][x] = Cell{Side: SideBlack, Piece: PiecePawn}
		gp.Cells[position.Rank8][x] = Cell{Side: SideBlack, Piece: p}
	}
	return gp
}

// FromGrid packs a dense position into a Board.
func FromGrid(gp GridPosition) (*Board, error) {
	if !gp.Turn.IsValid() {
		return nil, fmt.Errorf("%w: invalid turn", ErrInvalidGrid)
	}
	if gp.CastleRights&^CastleRightsAll != 0 {
		return nil, fmt.Errorf("%w: invalid castling rights %04b", ErrInvalidGrid, gp.CastleRights)
	}
	b := &Board{
		castleRights:  gp.CastleRights,
		halfMoveClock: gp.HalfMoveClock,
		fullMoveClock: gp.FullMoveClock,
		turn:          gp.Turn,
	}
	for y := position.Pos(0); y < Height; y++ {
		for x := position.Pos(0); x < Width; x++ {
			c := gp.Cells[y][x]
			if c.IsEmpty() {
				continue
			}
			if !c.Side.IsValid() || !c.Piece.IsValid() {
				return nil, fmt.Errorf("%w: invalid cell at %s", ErrInvalidGrid, y*Width+x)
			}
			b.pieces[c.Side][c.Piece] = b.pieces[c.Side][c.Piece].Set(y*Width + x)
		}
	}
	b.recompute()

	if mv := gp.LastMove; mv != nil {
		target := doubleStepTarget(mv.From, mv.To)
		mover := gp.Turn.Opposite()
		if mv.Piece == PiecePawn && target.IsValid() &&
			maskCell(mv.From)&maskRow[mover.pawnRank()] != 0 &&
			mv.To == mv.From+2*mover.forward() &&
			b.getBitmap(mover, PiecePawn).Has(mv.To) && !b.occupied.Has(target) {
			b.enPassant = maskCell(target)
		}
	}
	return b, nil
}

// Grid unpacks the board into its dense form. A pending en passant target is expressed
// as the two-square pawn advance that created it.
func (b *Board) Grid() GridPosition {
	gp := GridPosition{
		Turn:          b.turn,
		CastleRights:  b.castleRights,
		HalfMoveClock: b.halfMoveClock,
		FullMoveClock: b.fullMoveClock,
	}
	for y := position.Pos(0); y < Height; y++ {
		for x := position.Pos(0); x < Width; x++ {
			s, p := b.PieceAt(y*Width + x)
			gp.Cells[y][x] = Cell{Side: s, Piece: p}
		}
	}
	if target := b.EnPassant(); target.IsValid() {
		mover := b.turn.Opposite()
		mv := NewMove(mover, PiecePawn, target-mover.forward(), target+mover.forward())
		gp.LastMove = &mv
	}
	return gp
}

func doubleStepTarget(from, to position.Pos) position.Pos {
	if !from.IsValid() || !to.IsValid() || from.X() != to.X() || position.Abs(to.Y()-from.Y()) != 2 {
		return position.None
	}
	return (from + to) / 2
}
