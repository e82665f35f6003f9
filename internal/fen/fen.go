// Package fen converts between Forsyth-Edwards Notation and board positions.
// It serves the tests, the perft bench and the CLI.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/position"
)

const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// NewBoard parses fen into a packed board.
func NewBoard(fen string) (*board.Board, error) {
	gp, err := Unmarshal(fen)
	if err != nil {
		return nil, err
	}
	return board.NewBoard(board.WithGrid(gp))
}

// Unmarshal parses fen into a dense grid position. The en passant field becomes the
// two-square advance that produced it.
func Unmarshal(fen string) (board.GridPosition, error) {
	var gp board.GridPosition
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return gp, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(board.Height) {
		return gp, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < board.Height; y++ {
		ptrX, ptrY := -1, board.Height-y-1
		for x := position.Pos(0); x < board.Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return gp, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[ptrY][ptrX])
			if s, p := board.PieceFromSymbol(cell); p != board.PieceUnknown {
				gp.Cells[y][x] = board.Cell{Side: s, Piece: p}
				continue
			}
			if cell != '0' && unicode.IsDigit(cell) {
				skip := position.Pos(cell - '0')
				if x+skip-1 < board.Width {
					x += skip - 1
					continue
				}
				return gp, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
			}
			return gp, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
		}
		if ptrX != len(rows[ptrY])-1 {
			return gp, fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}

	switch segments[1] {
	case "w":
		gp.Turn = board.SideWhite
	case "b":
		gp.Turn = board.SideBlack
	default:
		return gp, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return gp, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			gp.CastleRights = gp.CastleRights.With(board.CastleDirectionWhiteRight)
		case 'k':
			gp.CastleRights = gp.CastleRights.With(board.CastleDirectionBlackRight)
		case 'Q':
			gp.CastleRights = gp.CastleRights.With(board.CastleDirectionWhiteLeft)
		case 'q':
			gp.CastleRights = gp.CastleRights.With(board.CastleDirectionBlackLeft)
		default:
			if i == 0 && e == '-' {
				break crLoop
			}
			return gp, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		target, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return gp, fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		var from, to position.Pos
		switch {
		case gp.Turn == board.SideBlack && target.Y() == position.Rank3:
			from, to = target-board.Width, target+board.Width
		case gp.Turn == board.SideWhite && target.Y() == position.Rank6:
			from, to = target+board.Width, target-board.Width
		default:
			return gp, fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		mv := board.NewMove(gp.Turn.Opposite(), board.PiecePawn, from, to)
		gp.LastMove = &mv
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return gp, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	gp.HalfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || fullMoveClock == 0 {
		return gp, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	gp.FullMoveClock = uint16(fullMoveClock)

	return gp, nil
}

// Marshal renders b as FEN.
func Marshal(b *board.Board) string {
	builder := strings.Builder{}
	var skip uint8
	for y := board.Height - 1; y >= 0; y-- {
		for x := position.Pos(0); x < board.Width; x++ {
			s, p := board.SideUnknown, board.PieceUnknown
			for skip = 0; x < board.Width; x++ {
				if s, p = b.PieceAt(y*board.Width + x); p != board.PieceUnknown {
					break
				}
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < board.Width {
				_, _ = builder.WriteString(p.SymbolFEN(s))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.Turn() == board.SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}
	_, _ = builder.WriteString(b.CastleRights().String())
	_, _ = builder.WriteRune(' ')
	_, _ = builder.WriteString(b.EnPassant().String())
	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.HalfMoveClock(), b.FullMoveClock()))

	return builder.String()
}
