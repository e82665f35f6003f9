package main

import (
	"fmt"
	"log"
	"time"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/internal/fen"
	"github.com/daystram/chessrules/position"
)

func step(f string, seed uint64, limit int) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
		timesState         []time.Duration
	)
	b, err := fen.NewBoard(f)
	if err != nil {
		return err
	}
	rng := board.NewPseudoRand(seed)

	st := b.State()
	for ply := 0; ply < limit && st.IsRunning(); ply++ {
		t1 := time.Now()
		mvs := b.GenerateMoves()
		timesGenerateMoves = append(timesGenerateMoves, time.Since(t1))

		mv, ok := rng.Pick(mvs)
		if !ok {
			return fmt.Errorf("unexpected move exhaustion: state=%s", st)
		}

		t1 = time.Now()
		b = b.Apply(mv)
		timesApply = append(timesApply, time.Since(t1))

		t1 = time.Now()
		st = b.State()
		timesState = append(timesState, time.Since(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mv.IsTurn, mv)
		fmt.Println(render(b, &mv))
		fmt.Println(fen.Marshal(b))
		fmt.Println(b.DebugString())
		fmt.Println("occupied:")
		fmt.Println(b.DumpOccupied())
		if b.EnPassant() != position.None {
			fmt.Println("en passant:")
			fmt.Println(b.DumpEnPassant())
		}
		if b.IsInCheck(b.Turn()) {
			<-time.After(100 * time.Millisecond)
		}
		<-time.After(10 * time.Millisecond)
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(st)
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}
