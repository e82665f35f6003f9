package board

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/daystram/chessrules/position"
)

// generator is the per-piece move generation contract.
type generator struct {
	pseudoLegal func(b *Board, s Side) []Move
	attack      func(b *Board, s Side) bitmap
}

var generators = [6 + 1]generator{
	PiecePawn:   {pseudoLegal: genPawnMoves, attack: genPawnAttacks},
	PieceBishop: {pseudoLegal: genBishopMoves, attack: genBishopAttacks},
	PieceKnight: {pseudoLegal: genKnightMoves, attack: genKnightAttacks},
	PieceRook:   {pseudoLegal: genRookMoves, attack: genRookAttacks},
	PieceQueen:  {pseudoLegal: genQueenMoves, attack: genQueenAttacks},
	PieceKing:   {pseudoLegal: genKingMoves, attack: genKingAttacks},
}

// GenerateMoves returns every legal move of the side to move.
func (b *Board) GenerateMoves() []Move {
	return b.GenerateMovesForSide(b.turn)
}

// GenerateMovesForSide returns every legal move of s, regardless of the side to move.
func (b *Board) GenerateMovesForSide(s Side) []Move {
	var mvs []Move
	for _, p := range Pieces {
		mvs = append(mvs, b.GenerateMovesForPiece(s, p)...)
	}
	return mvs
}

// GenerateMovesForPiece returns the legal moves of the pieces of kind p owned by s.
func (b *Board) GenerateMovesForPiece(s Side, p Piece) []Move {
	if !p.IsValid() || !s.IsValid() {
		return nil
	}
	var mvs []Move
	for _, mv := range generators[p].pseudoLegal(b, s) {
		if b.isLegal(mv) {
			mvs = append(mvs, mv)
		}
	}
	if p == PieceKing {
		mvs = append(mvs, b.genCastlingMoves(s)...)
	}
	return mvs
}

// GeneratePseudoLegalMoves returns the moves of p owned by s, ignoring king safety.
func (b *Board) GeneratePseudoLegalMoves(s Side, p Piece) []Move {
	if !p.IsValid() || !s.IsValid() {
		return nil
	}
	return generators[p].pseudoLegal(b, s)
}

// MovesFrom returns the legal moves of the side to move originating at pos.
// An empty square or an opponent piece yields no moves.
func (b *Board) MovesFrom(pos position.Pos) ([]Move, error) {
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	s, p := b.PieceAt(pos)
	if s != b.turn {
		return nil, nil
	}
	var mvs []Move
	for _, mv := range b.GenerateMovesForPiece(s, p) {
		if mv.From == pos {
			mvs = append(mvs, mv)
		}
	}
	return mvs, nil
}

// IsLegal reports whether mv is one of the legal moves of the side to move.
func (b *Board) IsLegal(mv Move) bool {
	return slices.Contains(b.GenerateMoves(), mv)
}

// FindMove resolves a (from, to, promotion) triple to the matching legal move.
func (b *Board) FindMove(from, to position.Pos, promote Piece) (Move, error) {
	mvs, err := b.MovesFrom(from)
	if err != nil {
		return Move{}, err
	}
	if err := to.Validate(); err != nil {
		return Move{}, err
	}
	i := slices.IndexFunc(mvs, func(mv Move) bool {
		return mv.To == to && mv.IsPromote == promote
	})
	if i < 0 {
		return Move{}, fmt.Errorf("%w: %s%s%s", ErrNoLegalMove, from, to, promote.SymbolAlgebra(SideBlack))
	}
	return mvs[i], nil
}

// AttackedSquares lists every square attacked by s.
func (b *Board) AttackedSquares(s Side) []position.Pos {
	return b.attackArea(s).Squares()
}

// targetMoves expands a destination bitmap into moves, flagging captures on opponent squares.
func (b *Board) targetMoves(mvs []Move, s Side, p Piece, from position.Pos, targets bitmap) []Move {
	opponent := b.sides[s.Opposite()]
	for _, to := range targets.Squares() {
		mv := NewMove(s, p, from, to)
		if opponent.Has(to) {
			mv.CapturedAt = to
		}
		mvs = append(mvs, mv)
	}
	return mvs
}

func genPawnMoves(b *Board, s Side) []Move {
	var mvs []Move
	opponent := b.sides[s.Opposite()]
	for _, from := range b.getBitmap(s, PiecePawn).Squares() {
		cell := maskCell(from)

		// advances
		if one := from + s.forward(); one.IsValid() && !b.occupied.Has(one) {
			mvs = appendPawnMove(mvs, s, from, one, position.None)
			if two := one + s.forward(); cell&maskRow[s.pawnRank()] != 0 && !b.occupied.Has(two) {
				mvs = appendPawnMove(mvs, s, from, two, position.None)
			}
		}

		// captures
		for _, to := range pawnAttacks(s, cell).Squares() {
			if from.FileDistance(to) != 1 {
				continue
			}
			switch {
			case opponent.Has(to):
				mvs = appendPawnMove(mvs, s, from, to, to)
			case b.enPassant.Has(to):
				capturedAt := to - s.forward()
				if b.getBitmap(s.Opposite(), PiecePawn).Has(capturedAt) {
					mvs = appendPawnMove(mvs, s, from, to, capturedAt)
				}
			}
		}
	}
	return mvs
}

// appendPawnMove fans a pawn move out into promotion variants on the farthest rank.
func appendPawnMove(mvs []Move, s Side, from, to, capturedAt position.Pos) []Move {
	mv := NewMove(s, PiecePawn, from, to)
	mv.CapturedAt = capturedAt
	if maskCell(to)&maskRow[s.promotionRank()] == 0 {
		return append(mvs, mv)
	}
	for _, prom := range PawnPromoteCandidates {
		mv.IsPromote = prom
		mvs = append(mvs, mv)
	}
	return mvs
}

func pawnAttacks(s Side, pawns bitmap) bitmap {
	if s == SideWhite {
		return ShiftNW(pawns&^maskCol[position.FileA]) | ShiftNE(pawns&^maskCol[position.FileH])
	}
	return ShiftSW(pawns&^maskCol[position.FileA]) | ShiftSE(pawns&^maskCol[position.FileH])
}

// genPawnAttacks returns the diagonal squares threatened by pawns, whether occupied or not.
func genPawnAttacks(b *Board, s Side) bitmap {
	return pawnAttacks(s, b.getBitmap(s, PiecePawn))
}

func genKnightMoves(b *Board, s Side) []Move {
	var mvs []Move
	for _, from := range b.getBitmap(s, PieceKnight).Squares() {
		mvs = b.targetMoves(mvs, s, PieceKnight, from, tables().knight[from]&^b.sides[s])
	}
	return mvs
}

func genKnightAttacks(b *Board, s Side) bitmap {
	var attack bitmap
	for _, from := range b.getBitmap(s, PieceKnight).Squares() {
		attack |= tables().knight[from] &^ b.sides[s]
	}
	return attack
}

func genKingMoves(b *Board, s Side) []Move {
	var mvs []Move
	for _, from := range b.getBitmap(s, PieceKing).Squares() {
		mvs = b.targetMoves(mvs, s, PieceKing, from, tables().king[from]&^b.sides[s])
	}
	return mvs
}

func genKingAttacks(b *Board, s Side) bitmap {
	var attack bitmap
	for _, from := range b.getBitmap(s, PieceKing).Squares() {
		attack |= tables().king[from] &^ b.sides[s]
	}
	return attack
}

func genSlidingMoves(b *Board, s Side, p Piece, ds []direction) []Move {
	var mvs []Move
	for _, from := range b.getBitmap(s, p).Squares() {
		mvs = b.targetMoves(mvs, s, p, from, castRays(from, ds, b.occupied, b.sides[s.Opposite()]))
	}
	return mvs
}

func genSlidingAttacks(b *Board, s Side, p Piece, ds []direction) bitmap {
	var attack bitmap
	for _, from := range b.getBitmap(s, p).Squares() {
		attack |= castRays(from, ds, b.occupied, b.sides[s.Opposite()])
	}
	return attack
}

func genBishopMoves(b *Board, s Side) []Move {
	return genSlidingMoves(b, s, PieceBishop, diagonalDirections)
}

func genBishopAttacks(b *Board, s Side) bitmap {
	return genSlidingAttacks(b, s, PieceBishop, diagonalDirections)
}

func genRookMoves(b *Board, s Side) []Move {
	return genSlidingMoves(b, s, PieceRook, lateralDirections)
}

func genRookAttacks(b *Board, s Side) bitmap {
	return genSlidingAttacks(b, s, PieceRook, lateralDirections)
}

func genQueenMoves(b *Board, s Side) []Move {
	return genSlidingMoves(b, s, PieceQueen, allDirections)
}

func genQueenAttacks(b *Board, s Side) bitmap {
	return genSlidingAttacks(b, s, PieceQueen, allDirections)
}
