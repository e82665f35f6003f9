package board

import "github.com/daystram/chessrules/position"

// Move is an immutable move value. CapturedAt is position.None for a quiet move and differs
// from To only for en passant.
type Move struct {
	From, To position.Pos
	Piece    Piece

	IsTurn     Side
	CapturedAt position.Pos
	IsCastle   CastleDirection
	IsPromote  Piece
}

// NewMove returns a quiet move of p by s.
func NewMove(s Side, p Piece, from, to position.Pos) Move {
	return Move{
		From:       from,
		To:         to,
		Piece:      p,
		IsTurn:     s,
		CapturedAt: position.None,
	}
}

func (m Move) IsCapture() bool {
	return m.CapturedAt.IsValid()
}

func (m Move) IsEnPassant() bool {
	return m.IsCapture() && m.CapturedAt != m.To
}

// CastlingRook returns the rook relocation of a castling move.
func (m Move) CastlingRook() (from, to position.Pos, ok bool) {
	if m.IsCastle == CastleDirectionUnknown {
		return position.None, position.None, false
	}
	from, to = m.IsCastle.RookHop()
	return from, to, true
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.IsCastle != CastleDirectionUnknown {
		if m.IsCastle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture() {
		if m.Piece == PiecePawn {
			nt += m.From.X().NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += m.IsPromote.SymbolAlgebra(SideWhite)
	}
	if m.IsEnPassant() {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}
