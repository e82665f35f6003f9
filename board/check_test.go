package board_test

import (
	"testing"

	"github.com/daystram/chessrules/board"
)

func TestState(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		fen           string
		wantCheck     bool
		wantCheckmate bool
		wantStalemate bool
		wantState     board.State
	}{
		{
			name:      "starting position",
			fen:       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			wantState: board.StateRunning,
		},
		{
			name:          "rooks and queen mate the cornered king",
			fen:           "1r6/8/8/8/8/2q5/7r/K7 w - - 0 1",
			wantCheck:     true,
			wantCheckmate: true,
			wantState:     board.StateCheckmateWhite,
		},
		{
			name:          "rooks alone leave the cornered king stalemated",
			fen:           "1r6/8/8/8/8/8/7r/K7 w - - 0 1",
			wantStalemate: true,
			wantState:     board.StateStalemateWhite,
		},
		{
			name:      "friendly bishop lifts the stalemate",
			fen:       "1r6/8/8/8/3B4/8/7r/K7 w - - 0 1",
			wantState: board.StateRunning,
		},
		{
			name:          "back rank mate",
			fen:           "4k3/8/8/8/8/8/3PPP2/r3K3 w - - 0 1",
			wantCheck:     true,
			wantCheckmate: true,
			wantState:     board.StateCheckmateWhite,
		},
		{
			name:          "fool's mate",
			fen:           "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			wantCheck:     true,
			wantCheckmate: true,
			wantState:     board.StateCheckmateWhite,
		},
		{
			name:          "black stalemated by queen",
			fen:           "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantStalemate: true,
			wantState:     board.StateStalemateBlack,
		},
		{
			name:          "black mated by queen",
			fen:           "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1",
			wantCheck:     true,
			wantCheckmate: true,
			wantState:     board.StateCheckmateBlack,
		},
		{
			name:      "check with an escape",
			fen:       "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			wantCheck: true,
			wantState: board.StateRunning,
		},
		{
			name:          "king-less side is never in check",
			fen:           "8/8/8/8/8/8/8/r7 w - - 0 1",
			wantStalemate: true,
			wantState:     board.StateStalemateWhite,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, tt.fen)
			if got := b.IsInCheck(b.Turn()); got != tt.wantCheck {
				t.Errorf("unexpected check: got=%v want=%v", got, tt.wantCheck)
			}
			if got := b.IsCheckmate(); got != tt.wantCheckmate {
				t.Errorf("unexpected checkmate: got=%v want=%v", got, tt.wantCheckmate)
			}
			if got := b.IsStalemate(); got != tt.wantStalemate {
				t.Errorf("unexpected stalemate: got=%v want=%v", got, tt.wantStalemate)
			}
			if got := b.State(); got != tt.wantState {
				t.Errorf("unexpected state: got=%s want=%s", got, tt.wantState)
			}
			if tt.wantCheckmate && tt.wantStalemate {
				t.Fatal("checkmate and stalemate are exclusive")
			}
			if got := b.HasAnyLegalMove(b.Turn()); got != (tt.wantState == board.StateRunning) {
				t.Errorf("unexpected move availability: got=%v", got)
			}
		})
	}
}
