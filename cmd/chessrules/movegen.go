package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/internal/fen"
)

func movegen(f string, drawAll bool) error {
	log.Println("============ movegen")
	b, err := fen.NewBoard(f)
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(render(b, nil))
	fmt.Println(b.DebugString())
	dumpMoves(b)

	if drawAll {
		for _, mv := range b.GenerateMoves() {
			mv := mv
			bb := b.Apply(mv)
			fmt.Println(mv)
			fmt.Println(render(bb, &mv))
			fmt.Println(fen.Marshal(bb))
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece, mv.From, mv.To,
			mv.IsCapture(), mv.IsEnPassant(), mv.IsCastle, mv.IsPromote)
	}
}
