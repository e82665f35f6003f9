// Package bench counts the leaves of the legal move tree to verify move generation.
package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/internal/fen"
)

// Counter tallies the leaf moves of a perft run.
type Counter struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (c *Counter) String() string {
	return message.NewPrinter(language.English).
		Sprintf("nodes=%d cap=%d enp=%d cas=%d pro=%d chk=%d",
			c.Nodes, c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks)
}

// Perft walks the move tree of fen to depth and reports the per-root-move subtotals and the
// final tally to out.
func Perft(depth int, f string, parallel, verbose bool, out chan string) (*Counter, error) {
	b, err := fen.NewBoard(f)
	if err != nil {
		return nil, err
	}

	var run perftFunc = runPerft
	if parallel {
		run = runPerftParallel
	}

	var c Counter
	start := time.Now()
	run(b, depth, true, verbose, out, &c)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d %s rate=%dn/s (%.3fs elapsed)",
				depth, c.String(), int(float64(c.Nodes)/elapsed.Seconds()), elapsed.Seconds())
	}
	return &c, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, c *Counter) uint64

// countLeaves tallies the moves played on the last ply.
func countLeaves(b *board.Board, mvs []board.Move, c *Counter, add func(*uint64, uint64)) {
	add(&c.Nodes, uint64(len(mvs)))
	for _, leaf := range mvs {
		if leaf.IsCapture() {
			add(&c.Captures, 1)
		}
		if leaf.IsEnPassant() {
			add(&c.EnPassants, 1)
		}
		if leaf.IsCastle != board.CastleDirectionUnknown {
			add(&c.Castles, 1)
		}
		if leaf.IsPromote != board.PieceUnknown {
			add(&c.Promotions, 1)
		}
		if b.Apply(leaf).IsInCheck(leaf.IsTurn.Opposite()) {
			add(&c.Checks, 1)
		}
	}
}

func addPlain(p *uint64, n uint64) {
	*p += n
}

func addAtomic(p *uint64, n uint64) {
	atomic.AddUint64(p, n)
}

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, c *Counter) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	mvs := b.GenerateMoves()
	if d == 1 {
		countLeaves(b, mvs, c, addPlain)
		if verbose && root {
			for _, mv := range mvs {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), 1)
			}
		}
		return uint64(len(mvs))
	}

	var sum uint64
	for _, mv := range mvs {
		child := runPerft(b.Apply(mv), d-1, false, verbose, out, c)
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, c *Counter) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	mvs := b.GenerateMoves()
	if d == 1 {
		countLeaves(b, mvs, c, addAtomic)
		if verbose && root {
			for _, mv := range mvs {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), 1)
			}
		}
		return uint64(len(mvs))
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range mvs {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			child := runPerftParallel(b.Apply(mv), d-1, false, verbose, out, c)
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
