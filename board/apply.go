package board

// Apply returns the position reached by playing mv. The receiver is left untouched.
// Legality is not checked here; see IsLegal.
func (b *Board) Apply(mv Move) *Board {
	bb := *b
	mover := mv.IsTurn
	if !mover.IsValid() {
		mover = b.turn
	}
	opponent := mover.Opposite()

	// update turn and clocks
	bb.turn = opponent
	if mover == SideBlack {
		bb.fullMoveClock++
	}

	// remove captured piece
	if mv.IsCapture() {
		for _, p := range Pieces {
			bb.pieces[opponent][p] = bb.pieces[opponent][p].Unset(mv.CapturedAt)
		}
	}

	// relocate the moving piece, promoting if requested
	moved := PieceUnknown
	for _, p := range Pieces {
		if bb.pieces[mover][p].Has(mv.From) {
			moved = p
			break
		}
	}
	if moved != PieceUnknown {
		placed := moved
		if mv.IsPromote != PieceUnknown {
			placed = mv.IsPromote
		}
		bb.pieces[mover][moved] = bb.pieces[mover][moved].Unset(mv.From)
		bb.pieces[mover][placed] = bb.pieces[mover][placed].Set(mv.To)
	}

	// castling rook hop
	if rookFrom, rookTo, ok := mv.CastlingRook(); ok {
		bb.pieces[mover][PieceRook] = bb.pieces[mover][PieceRook].Unset(rookFrom).Set(rookTo)
	}

	bb.recompute()

	if moved == PiecePawn || mv.IsCapture() {
		bb.halfMoveClock = 0
	} else {
		bb.halfMoveClock++
	}

	bb.castleRights = b.castleRights.decay(mv.From, mv.To)

	// en passant target lives for exactly one ply
	bb.enPassant = 0
	if moved == PiecePawn && maskCell(mv.From)&maskRow[mover.pawnRank()] != 0 &&
		mv.To == mv.From+2*mover.forward() {
		bb.enPassant = maskCell(mv.From + mover.forward())
	}

	return &bb
}
