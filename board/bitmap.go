package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/chessrules/position"
)

// bitmap holds one bit per square, little-endian rank-file (LERF) mapped.
type bitmap uint64

func ShiftNW(bm bitmap) bitmap {
	return bm << 7
}

func ShiftN(bm bitmap) bitmap {
	return bm << 8
}

func ShiftNE(bm bitmap) bitmap {
	return bm << 9
}

func ShiftE(bm bitmap) bitmap {
	return bm << 1
}

func ShiftSE(bm bitmap) bitmap {
	return bm >> 7
}

func ShiftS(bm bitmap) bitmap {
	return bm >> 8
}

func ShiftSW(bm bitmap) bitmap {
	return bm >> 9
}

func ShiftW(bm bitmap) bitmap {
	return bm >> 1
}

func Union(bms ...bitmap) bitmap {
	var u bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func (bm bitmap) Set(pos position.Pos) bitmap {
	return bm | maskCell(pos)
}

func (bm bitmap) Unset(pos position.Pos) bitmap {
	return bm &^ maskCell(pos)
}

func (bm bitmap) Has(pos position.Pos) bool {
	return bm&maskCell(pos) != 0
}

// LS1B returns the least significant set bit, or position.None on an empty bitmap.
func (bm bitmap) LS1B() position.Pos {
	if bm == 0 {
		return position.None
	}
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Squares returns the indexes of the set bits, low to high.
func (bm bitmap) Squares() []position.Pos {
	if bm == 0 {
		return nil
	}
	sqs := make([]position.Pos, 0, bm.BitCount())
	for rest := bm; rest != 0; rest &= rest - 1 {
		sqs = append(sqs, rest.LS1B())
	}
	return sqs
}

func (bm bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(Height); y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			if bm.Has((y-1)*Width + x) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
