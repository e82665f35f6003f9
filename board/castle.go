package board

import "github.com/daystram/chessrules/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

// CastleDirections lists the four castling rules, kingside first.
var CastleDirections = [4]CastleDirection{
	CastleDirectionWhiteRight,
	CastleDirectionWhiteLeft,
	CastleDirectionBlackRight,
	CastleDirectionBlackLeft,
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteRight, CastleDirectionWhiteLeft:
		return SideWhite
	case CastleDirectionBlackRight, CastleDirectionBlackLeft:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// castleRule describes one castling instance.
type castleRule struct {
	kingFrom, kingTo position.Pos
	rookFrom, rookTo position.Pos
	path             bitmap // strictly between king and rook, must be empty
	safe             bitmap // king origin, pass-through and destination, must not be attacked
}

var castleRules = [4 + 1]castleRule{
	CastleDirectionWhiteRight: {
		kingFrom: position.E1, kingTo: position.G1,
		rookFrom: position.H1, rookTo: position.F1,
		path: maskRow[position.Rank1] & (maskCol[position.FileF] | maskCol[position.FileG]),
		safe: maskRow[position.Rank1] & (maskCol[position.FileE] | maskCol[position.FileF] | maskCol[position.FileG]),
	},
	CastleDirectionWhiteLeft: {
		kingFrom: position.E1, kingTo: position.C1,
		rookFrom: position.A1, rookTo: position.D1,
		path: maskRow[position.Rank1] & (maskCol[position.FileB] | maskCol[position.FileC] | maskCol[position.FileD]),
		safe: maskRow[position.Rank1] & (maskCol[position.FileC] | maskCol[position.FileD] | maskCol[position.FileE]),
	},
	CastleDirectionBlackRight: {
		kingFrom: position.E8, kingTo: position.G8,
		rookFrom: position.H8, rookTo: position.F8,
		path: maskRow[position.Rank8] & (maskCol[position.FileF] | maskCol[position.FileG]),
		safe: maskRow[position.Rank8] & (maskCol[position.FileE] | maskCol[position.FileF] | maskCol[position.FileG]),
	},
	CastleDirectionBlackLeft: {
		kingFrom: position.E8, kingTo: position.C8,
		rookFrom: position.A8, rookTo: position.D8,
		path: maskRow[position.Rank8] & (maskCol[position.FileB] | maskCol[position.FileC] | maskCol[position.FileD]),
		safe: maskRow[position.Rank8] & (maskCol[position.FileC] | maskCol[position.FileD] | maskCol[position.FileE]),
	},
}

// RookHop returns the rook relocation paired with the castling direction.
func (d CastleDirection) RookHop() (from, to position.Pos) {
	if d == CastleDirectionUnknown || int(d) >= len(castleRules) {
		return position.None, position.None
	}
	return castleRules[d].rookFrom, castleRules[d].rookTo
}

// CastleRights is a 4-bit mask, one bit per castling direction.
type CastleRights uint8

const CastleRightsAll CastleRights = 0b1111

var maskCastleRights = [4 + 1]CastleRights{
	CastleDirectionWhiteRight: 0b1000,
	CastleDirectionWhiteLeft:  0b0100,
	CastleDirectionBlackRight: 0b0010,
	CastleDirectionBlackLeft:  0b0001,
}

// With returns c with the right for d granted.
func (c CastleRights) With(d CastleDirection) CastleRights {
	return c | maskCastleRights[d]
}

// Without returns c with the right for d revoked.
func (c CastleRights) Without(d CastleDirection) CastleRights {
	return c &^ maskCastleRights[d]
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return d != CastleDirectionUnknown && c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastleRights[CastleDirectionWhiteLeft]|maskCastleRights[CastleDirectionWhiteRight]) != 0
	}
	return c&(maskCastleRights[CastleDirectionBlackLeft]|maskCastleRights[CastleDirectionBlackRight]) != 0
}

func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	var s string
	for _, d := range CastleDirections {
		if !c.IsAllowed(d) {
			continue
		}
		sym := "K"
		if !d.IsRight() {
			sym = "Q"
		}
		if d.Side() == SideBlack {
			sym = string(rune(sym[0]) | 0x20)
		}
		s += sym
	}
	return s
}

// decay revokes every right whose king or rook origin is touched by a move from or to the squares.
func (c CastleRights) decay(from, to position.Pos) CastleRights {
	for _, d := range CastleDirections {
		r := castleRules[d]
		switch {
		case from == r.kingFrom, from == r.rookFrom, to == r.rookFrom:
			c = c.Without(d)
		}
	}
	return c
}

// genCastlingMoves produces the castling moves available to s.
func (b *Board) genCastlingMoves(s Side) []Move {
	if !b.castleRights.IsSideAllowed(s) {
		return nil
	}
	var opponentAttack bitmap
	var computed bool
	var mvs []Move
	for _, d := range CastleDirections {
		if d.Side() != s || !b.castleRights.IsAllowed(d) {
			continue
		}
		r := castleRules[d]
		if !b.getBitmap(s, PieceKing).Has(r.kingFrom) || !b.getBitmap(s, PieceRook).Has(r.rookFrom) {
			continue
		}
		if r.path&b.occupied != 0 {
			continue
		}
		if !computed {
			opponentAttack, computed = b.attackArea(s.Opposite()), true
		}
		if r.safe&opponentAttack != 0 {
			continue
		}
		mvs = append(mvs, Move{
			From:       r.kingFrom,
			To:         r.kingTo,
			Piece:      PieceKing,
			IsTurn:     s,
			CapturedAt: position.None,
			IsCastle:   d,
		})
	}
	return mvs
}
