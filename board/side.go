package board

import "github.com/daystram/chessrules/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists both playing sides in move order.
var Sides = [2]Side{SideWhite, SideBlack}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) IsValid() bool {
	return s == SideWhite || s == SideBlack
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// forward is the square delta of a single pawn advance.
func (s Side) forward() position.Pos {
	if s == SideBlack {
		return -Width
	}
	return Width
}

func (s Side) pawnRank() position.Pos {
	if s == SideBlack {
		return position.Rank7
	}
	return position.Rank2
}

func (s Side) promotionRank() position.Pos {
	if s == SideBlack {
		return position.Rank1
	}
	return position.Rank8
}
