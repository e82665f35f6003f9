package board

// isLegal simulates mv and reports whether the mover's king is left unattacked.
func (b *Board) isLegal(mv Move) bool {
	return !b.Apply(mv).IsInCheck(mv.IsTurn)
}
