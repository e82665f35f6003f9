package board

import (
	"sync"

	"github.com/daystram/chessrules/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells
)

var (
	maskCol = [Width]bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
)

// lookupTables holds the per-square jump masks. Built once, read-only afterwards.
type lookupTables struct {
	knight [TotalCells]bitmap
	king   [TotalCells]bitmap
}

var tables = sync.OnceValue(buildTables)

func buildTables() *lookupTables {
	t := &lookupTables{}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		t.knight[pos] = knightOffsets(pos)
		t.king[pos] = kingStepOffsets(pos)
	}
	return t
}

func maskCell(pos position.Pos) bitmap {
	if !pos.IsValid() {
		return 0
	}
	return 1 << pos
}

func knightOffsets(pos position.Pos) bitmap {
	cell := maskCell(pos)
	mask := bitmap(0)
	mask |= ShiftN(ShiftN(ShiftE(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[7])))
	mask |= ShiftN(ShiftN(ShiftW(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[0])))
	mask |= ShiftS(ShiftS(ShiftE(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[7])))
	mask |= ShiftS(ShiftS(ShiftW(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[0])))
	mask |= ShiftE(ShiftE(ShiftN(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[7])))
	mask |= ShiftE(ShiftE(ShiftS(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[0])))
	mask |= ShiftW(ShiftW(ShiftN(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[7])))
	mask |= ShiftW(ShiftW(ShiftS(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[0])))
	return mask
}

func kingStepOffsets(pos position.Pos) bitmap {
	cell := maskCell(pos)
	mask := bitmap(0)
	mask |= ShiftN(cell &^ maskRow[7])
	mask |= ShiftNE(cell &^ maskRow[7] &^ maskCol[7])
	mask |= ShiftE(cell &^ maskCol[7])
	mask |= ShiftSE(cell &^ maskRow[0] &^ maskCol[7])
	mask |= ShiftS(cell &^ maskRow[0])
	mask |= ShiftSW(cell &^ maskRow[0] &^ maskCol[0])
	mask |= ShiftW(cell &^ maskCol[0])
	mask |= ShiftNW(cell &^ maskRow[7] &^ maskCol[0])
	return mask
}
