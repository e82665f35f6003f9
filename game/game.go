// Package game keeps the branching history of positions reached from the standard starting
// arrangement and validates every move appended to it.
package game

import (
	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/position"
)

// Game is an immutable sequence of positions. Index 0 is the initial position.
type Game struct {
	history []*board.Board
}

// NewGame returns a one-element history holding the standard starting arrangement.
func NewGame() *Game {
	b, err := board.NewBoard()
	if err != nil {
		// the starting grid is constant
		panic(err)
	}
	return &Game{history: []*board.Board{b}}
}

// FromBoard starts a history at an arbitrary position.
func FromBoard(b *board.Board) *Game {
	return &Game{history: []*board.Board{b}}
}

func (g *Game) Len() int {
	return len(g.history)
}

// At returns the position at history index i.
func (g *Game) At(i int) (*board.Board, error) {
	if i < 0 || i >= len(g.history) {
		return nil, ErrInvalidHistoryIndex
	}
	return g.history[i], nil
}

func (g *Game) Latest() *board.Board {
	return g.history[len(g.history)-1]
}

// ValidMoves returns the legal moves of the side to move in the latest position.
func (g *Game) ValidMoves() []board.Move {
	return g.Latest().GenerateMoves()
}

// ValidMovesAt returns the legal moves originating at pos in the latest position. An empty
// square or one holding an opponent piece yields no moves.
func (g *Game) ValidMovesAt(pos position.Pos) ([]board.Move, error) {
	return g.Latest().MovesFrom(pos)
}

func (g *Game) IsValidMove(mv board.Move) bool {
	return g.Latest().IsLegal(mv)
}

// Status returns the state of the latest position.
func (g *Game) Status() board.State {
	return g.Latest().State()
}

type executeConfig struct {
	index int
	atSet bool
}

type ExecuteOption func(*executeConfig)

// AtIndex plays the move against the position at history index i instead of the latest one.
// Every later position is discarded.
func AtIndex(i int) ExecuteOption {
	return func(cfg *executeConfig) {
		cfg.index = i
		cfg.atSet = true
	}
}

// Execute validates mv against the selected position and returns a new Game whose history is
// truncated after that position and extended with the result. The receiver is left unchanged.
func (g *Game) Execute(mv board.Move, opts ...ExecuteOption) (*Game, error) {
	cfg := &executeConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if !cfg.atSet {
		cfg.index = len(g.history) - 1
	}

	b, err := g.At(cfg.index)
	if err != nil {
		return nil, &MoveError{Err: err, Index: cfg.index, Move: mv}
	}
	if !b.IsLegal(mv) {
		return nil, &MoveError{Err: ErrInvalidMove, Index: cfg.index, Move: mv}
	}

	history := make([]*board.Board, cfg.index+1, cfg.index+2)
	copy(history, g.history[:cfg.index+1])
	history = append(history, b.Apply(mv))
	return &Game{history: history}, nil
}
