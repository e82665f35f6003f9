package board

// State is the derived game status of a position.
type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when the side to move has a legal move.
	StateRunning

	// StateCheckmateWhite is when White King is in checkmate.
	StateCheckmateWhite

	// StateCheckmateBlack is when Black King is in checkmate.
	StateCheckmateBlack

	// StateStalemateWhite is when White is to move, has no legal move and is not in check.
	StateStalemateWhite

	// StateStalemateBlack is when Black is to move, has no legal move and is not in check.
	StateStalemateBlack
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsCheckmate() bool {
	switch s {
	case StateCheckmateWhite, StateCheckmateBlack:
		return true
	default:
		return false
	}
}

func (s State) IsStalemate() bool {
	switch s {
	case StateStalemateWhite, StateStalemateBlack:
		return true
	default:
		return false
	}
}

// Side returns the side that is mated or stalemated.
func (s State) Side() Side {
	switch s {
	case StateCheckmateWhite, StateStalemateWhite:
		return SideWhite
	case StateCheckmateBlack, StateStalemateBlack:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateCheckmateWhite:
		return "StateCheckmateWhite"
	case StateCheckmateBlack:
		return "StateCheckmateBlack"
	case StateStalemateWhite:
		return "StateStalemateWhite"
	case StateStalemateBlack:
		return "StateStalemateBlack"
	default:
		return ""
	}
}

func stateCheckmate(s Side) State {
	if s == SideBlack {
		return StateCheckmateBlack
	}
	return StateCheckmateWhite
}

func stateStalemate(s Side) State {
	if s == SideBlack {
		return StateStalemateBlack
	}
	return StateStalemateWhite
}
