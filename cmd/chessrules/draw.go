package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/position"
)

var (
	cellLight = color.New(color.FgBlack, color.BgHiWhite)
	cellDark  = color.New(color.FgBlack, color.BgGreen)
	cellMark  = color.New(color.FgBlack, color.BgYellow)
	label     = color.New(color.Bold)
)

// render draws b with the from and to squares of last highlighted. Without colors it falls
// back to the plain dump.
func render(b *board.Board, last *board.Move) string {
	if !*draw {
		return b.Dump()
	}
	builder := strings.Builder{}
	for y := position.Pos(board.Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(label.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < board.Width; x++ {
			pos := y*board.Width + x
			s, p := b.PieceAt(pos)
			sym := p.SymbolUnicode(s, false)
			if p == board.PieceUnknown {
				sym = " "
			}
			c := cellLight
			switch {
			case last != nil && (pos == last.From || pos == last.To):
				c = cellMark
			case x%2^y%2 == 0:
				c = cellDark
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < board.Width; x++ {
		_, _ = builder.WriteString(label.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
