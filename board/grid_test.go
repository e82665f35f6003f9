package board_test

import (
	"testing"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/internal/fen"
	"github.com/daystram/chessrules/internal/testutil"
	"github.com/daystram/chessrules/position"
)

func TestGridRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []string{
		fen.DefaultStartingPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/8 b - - 12 40",
	}
	for _, f := range tests {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, f)
			bb, err := board.FromGrid(b.Grid())
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, bb, b)
			if got := fen.Marshal(bb); got != f {
				t.Errorf("unexpected fen: got=%s want=%s", got, f)
			}
		})
	}
}

func TestGridStartingPosition(t *testing.T) {
	t.Parallel()
	b, err := board.FromGrid(board.StartingGrid())
	testutil.AssertNoError(t, err)
	if got := fen.Marshal(b); got != fen.DefaultStartingPositionFEN {
		t.Errorf("unexpected fen: got=%s want=%s", got, fen.DefaultStartingPositionFEN)
	}

	gp := b.Grid()
	testutil.AssertEqual(t, gp, board.StartingGrid())
	if c := gp.Cells[position.Rank1][position.FileE]; c != (board.Cell{Side: board.SideWhite, Piece: board.PieceKing}) {
		t.Errorf("unexpected cell at e1: got=%v", c)
	}
	if c := gp.Cells[position.Rank4][position.FileD]; !c.IsEmpty() {
		t.Errorf("unexpected cell at d4: got=%v", c)
	}
}

func TestGridLastMove(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	gp := b.Grid()
	if gp.LastMove == nil {
		t.Fatal("unexpected missing last move")
	}
	want := board.NewMove(board.SideBlack, board.PiecePawn, position.D7, position.D5)
	testutil.AssertEqual(t, *gp.LastMove, want)

	quiet := mustBoard(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3")
	if mv := quiet.Grid().LastMove; mv != nil {
		t.Errorf("unexpected last move: got=%v", mv)
	}
}

func TestFromGridEnPassant(t *testing.T) {
	t.Parallel()
	base := mustBoard(t, "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3").Grid()
	tests := []struct {
		name string
		move board.Move
		want position.Pos
	}{
		{
			name: "double step",
			move: board.NewMove(board.SideBlack, board.PiecePawn, position.D7, position.D5),
			want: position.D6,
		},
		{
			name: "single step",
			move: board.NewMove(board.SideBlack, board.PiecePawn, position.D6, position.D5),
			want: position.None,
		},
		{
			name: "not a pawn",
			move: board.NewMove(board.SideBlack, board.PieceQueen, position.D7, position.D5),
			want: position.None,
		},
		{
			name: "pawn not on destination",
			move: board.NewMove(board.SideBlack, board.PiecePawn, position.C7, position.C5),
			want: position.None,
		},
		{
			name: "wrong direction",
			move: board.NewMove(board.SideBlack, board.PiecePawn, position.D3, position.D5),
			want: position.None,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gp := base
			mv := tt.move
			gp.LastMove = &mv
			b, err := board.FromGrid(gp)
			testutil.AssertNoError(t, err)
			if got := b.EnPassant(); got != tt.want {
				t.Errorf("unexpected en passant target: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestFromGridError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(gp *board.GridPosition)
	}{
		{
			name:   "unknown turn",
			mutate: func(gp *board.GridPosition) { gp.Turn = board.SideUnknown },
		},
		{
			name:   "castling rights out of range",
			mutate: func(gp *board.GridPosition) { gp.CastleRights = 0b10000 },
		},
		{
			name: "piece without side",
			mutate: func(gp *board.GridPosition) {
				gp.Cells[position.Rank4][position.FileD] = board.Cell{Piece: board.PieceQueen}
			},
		},
		{
			name: "unknown piece",
			mutate: func(gp *board.GridPosition) {
				gp.Cells[position.Rank4][position.FileD] = board.Cell{Side: board.SideWhite, Piece: board.Piece(9)}
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gp := board.StartingGrid()
			tt.mutate(&gp)
			b, err := board.FromGrid(gp)
			testutil.AssertErrorIs(t, err, board.ErrInvalidGrid)
			if b != nil {
				t.Errorf("unexpected board: got=%v", b.DebugString())
			}
		})
	}
}

func TestNewBoardWithGrid(t *testing.T) {
	t.Parallel()
	gp := board.StartingGrid()
	gp.Cells[position.Rank2][position.FileE] = board.Cell{}
	gp.Cells[position.Rank4][position.FileE] = board.Cell{Side: board.SideWhite, Piece: board.PiecePawn}
	gp.Turn = board.SideBlack
	mv := board.NewMove(board.SideWhite, board.PiecePawn, position.E2, position.E4)
	gp.LastMove = &mv

	b, err := board.NewBoard(board.WithGrid(gp))
	testutil.AssertNoError(t, err)
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := fen.Marshal(b); got != want {
		t.Errorf("unexpected fen: got=%s want=%s", got, want)
	}
}
