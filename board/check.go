package board

// attackArea returns the attack area bitmap for the given side.
func (b *Board) attackArea(s Side) bitmap {
	var attackBM bitmap
	for _, p := range Pieces {
		attackBM |= generators[p].attack(b, s)
	}
	return attackBM
}

// IsInCheck reports whether the king of s is attacked.
func (b *Board) IsInCheck(s Side) bool {
	king := b.getBitmap(s, PieceKing)
	return king != 0 && king&b.attackArea(s.Opposite()) != 0
}

// HasAnyLegalMove reports whether s has at least one legal move.
func (b *Board) HasAnyLegalMove(s Side) bool {
	for _, p := range Pieces {
		for _, mv := range generators[p].pseudoLegal(b, s) {
			if b.isLegal(mv) {
				return true
			}
		}
	}
	return len(b.genCastlingMoves(s)) != 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (b *Board) IsCheckmate() bool {
	return b.IsInCheck(b.turn) && !b.HasAnyLegalMove(b.turn)
}

// IsStalemate reports whether the side to move is stalemated.
func (b *Board) IsStalemate() bool {
	return !b.IsInCheck(b.turn) && !b.HasAnyLegalMove(b.turn)
}

func (b *Board) State() State {
	if b.HasAnyLegalMove(b.turn) {
		return StateRunning
	}
	if b.IsInCheck(b.turn) {
		return stateCheckmate(b.turn)
	}
	return stateStalemate(b.turn)
}
