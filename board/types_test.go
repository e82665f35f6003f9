package board_test

import (
	"testing"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/position"
)

func TestCastleRights(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rights board.CastleRights
		want   string
		white  bool
		black  bool
	}{
		{rights: board.CastleRightsAll, want: "KQkq", white: true, black: true},
		{rights: 0, want: "-"},
		{rights: board.CastleRights(0).With(board.CastleDirectionBlackLeft), want: "q", black: true},
		{rights: board.CastleRightsAll.Without(board.CastleDirectionWhiteRight), want: "Qkq", white: true, black: true},
		{
			rights: board.CastleRightsAll.Without(board.CastleDirectionBlackRight).Without(board.CastleDirectionBlackLeft),
			want:   "KQ",
			white:  true,
		},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("unexpected rights: got=%s want=%s", got, tt.want)
		}
		if got := tt.rights.IsSideAllowed(board.SideWhite); got != tt.white {
			t.Errorf("unexpected white rights for %s: got=%v want=%v", tt.want, got, tt.white)
		}
		if got := tt.rights.IsSideAllowed(board.SideBlack); got != tt.black {
			t.Errorf("unexpected black rights for %s: got=%v want=%v", tt.want, got, tt.black)
		}
	}
	if board.CastleRightsAll.IsAllowed(board.CastleDirectionUnknown) {
		t.Error("unexpected right for unknown direction")
	}
}

func TestStateSide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		state     board.State
		want      board.Side
		checkmate bool
		stalemate bool
	}{
		{state: board.StateRunning, want: board.SideUnknown},
		{state: board.StateCheckmateWhite, want: board.SideWhite, checkmate: true},
		{state: board.StateCheckmateBlack, want: board.SideBlack, checkmate: true},
		{state: board.StateStalemateWhite, want: board.SideWhite, stalemate: true},
		{state: board.StateStalemateBlack, want: board.SideBlack, stalemate: true},
	}
	for _, tt := range tests {
		if got := tt.state.Side(); got != tt.want {
			t.Errorf("unexpected side of %s: got=%s want=%s", tt.state, got, tt.want)
		}
		if got := tt.state.IsCheckmate(); got != tt.checkmate {
			t.Errorf("unexpected checkmate of %s: got=%v want=%v", tt.state, got, tt.checkmate)
		}
		if got := tt.state.IsStalemate(); got != tt.stalemate {
			t.Errorf("unexpected stalemate of %s: got=%v want=%v", tt.state, got, tt.stalemate)
		}
	}
}

func TestPieceFromSymbol(t *testing.T) {
	t.Parallel()
	for _, s := range board.Sides {
		for _, p := range board.Pieces {
			sym := []rune(p.SymbolFEN(s))
			if len(sym) != 1 {
				t.Fatalf("unexpected symbol for %s %s: got=%q", s, p, string(sym))
			}
			gotS, gotP := board.PieceFromSymbol(sym[0])
			if gotS != s || gotP != p {
				t.Errorf("unexpected piece for %q: got=%s %s want=%s %s", string(sym), gotS, gotP, s, p)
			}
		}
	}
	if s, p := board.PieceFromSymbol('x'); s != board.SideUnknown || p != board.PieceUnknown {
		t.Errorf("unexpected piece for 'x': got=%s %s", s, p)
	}
}

func TestMoveNotation(t *testing.T) {
	t.Parallel()
	capture := board.NewMove(board.SideWhite, board.PieceKnight, position.F3, position.E5)
	capture.CapturedAt = position.E5
	enPassant := board.NewMove(board.SideWhite, board.PiecePawn, position.E5, position.D6)
	enPassant.CapturedAt = position.D5
	promote := board.NewMove(board.SideBlack, board.PiecePawn, position.B2, position.B1)
	promote.IsPromote = board.PieceKnight
	castle := board.NewMove(board.SideBlack, board.PieceKing, position.E8, position.C8)
	castle.IsCastle = board.CastleDirectionBlackLeft

	tests := []struct {
		move      board.Move
		wantUCI   string
		wantAlg   string
		capture   bool
		enPassant bool
	}{
		{
			move:    board.NewMove(board.SideWhite, board.PiecePawn, position.E2, position.E4),
			wantUCI: "e2e4",
			wantAlg: "e4",
		},
		{move: capture, wantUCI: "f3e5", wantAlg: "Nf3xe5", capture: true},
		{move: enPassant, wantUCI: "e5d6", wantAlg: "exd6 e.p.", capture: true, enPassant: true},
		{move: promote, wantUCI: "b2b1n", wantAlg: "b1N"},
		{move: castle, wantUCI: "e8c8", wantAlg: "0-0-0"},
	}
	for _, tt := range tests {
		if got := tt.move.UCI(); got != tt.wantUCI {
			t.Errorf("unexpected uci: got=%s want=%s", got, tt.wantUCI)
		}
		if got := tt.move.String(); got != tt.wantAlg {
			t.Errorf("unexpected algebra: got=%s want=%s", got, tt.wantAlg)
		}
		if got := tt.move.IsCapture(); got != tt.capture {
			t.Errorf("unexpected capture of %s: got=%v want=%v", tt.wantUCI, got, tt.capture)
		}
		if got := tt.move.IsEnPassant(); got != tt.enPassant {
			t.Errorf("unexpected en passant of %s: got=%v want=%v", tt.wantUCI, got, tt.enPassant)
		}
	}

	from, to, ok := castle.CastlingRook()
	if !ok || from != position.A8 || to != position.D8 {
		t.Errorf("unexpected rook hop: got=%s-%s (%v) want=a8-d8", from, to, ok)
	}
}

func TestPseudoRand(t *testing.T) {
	t.Parallel()
	a, b := board.NewPseudoRand(42), board.NewPseudoRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("unexpected divergence at %d: got=%d want=%d", i, x, y)
		}
	}
	for i := 0; i < 1000; i++ {
		if n := a.Intn(7); n < 0 || n >= 7 {
			t.Fatalf("unexpected value out of range: got=%d", n)
		}
	}
	zero := board.NewPseudoRand(0)
	if zero.Uint64() == 0 && zero.Uint64() == 0 {
		t.Error("unexpected stuck generator for zero seed")
	}
	if _, ok := zero.Pick(nil); ok {
		t.Error("unexpected pick from no moves")
	}
}
