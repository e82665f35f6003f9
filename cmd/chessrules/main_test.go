package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/daystram/chessrules/board"
)

func TestRender(t *testing.T) {
	color.NoColor = true
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	got := render(b, nil)
	lines := strings.Split(got, "\n")
	if len(lines) != 9 {
		t.Fatalf("unexpected line count: got=%d want=%d", len(lines), 9)
	}
	if want := " 8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜ "; lines[0] != want {
		t.Errorf("unexpected top rank: got=%q want=%q", lines[0], want)
	}
	if want := "    a  b  c  d  e  f  g  h "; lines[8] != want {
		t.Errorf("unexpected file labels: got=%q want=%q", lines[8], want)
	}

	*draw = false
	defer func() { *draw = true }()
	if got := render(b, nil); got != b.Dump() {
		t.Errorf("unexpected plain render: got=%s", got)
	}
}

func TestRealMain(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name    string
		setup   func() func()
		args    []string
		wantErr bool
	}{
		{
			name: "movegen",
			setup: func() func() {
				*movegenRun = true
				return func() { *movegenRun = false }
			},
		},
		{
			name: "perft",
			setup: func() func() {
				*perftDepth = 2
				return func() { *perftDepth = 0 }
			},
			args: strings.Split("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", " "),
		},
		{
			name: "step",
			setup: func() func() {
				*stepRun = true
				*stepLimit = 4
				return func() {
					*stepRun = false
					*stepLimit = 5000
				}
			},
			args: strings.Split("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", " "),
		},
		{
			name: "invalid fen",
			setup: func() func() {
				*movegenRun = true
				return func() { *movegenRun = false }
			},
			args:    []string{"nonsense"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.setup()()
			err := realMain(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("unexpected error: got=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}
