package tripoley

// Phase enumerates the stages of a round.
type Phase int

const (
	PhasePlayerSelection Phase = iota
	PhaseDealerBlindChoice
	PhaseBlindAuction
	PhaseBetting
	PhaseMichigan
	PhaseHearts
	PhasePoker
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlayerSelection:
		return "player-selection"
	case PhaseDealerBlindChoice:
		return "dealerBlindChoice"
	case PhaseBlindAuction:
		return "blindAuction"
	case PhaseBetting:
		return "betting"
	case PhaseMichigan:
		return "michigan"
	case PhaseHearts:
		return "hearts"
	case PhasePoker:
		return "poker"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// nextPhase returns the phase that follows p in normal play order. The
// blind-choice phases never advance this way; they exit through their own
// actions.
func nextPhase(p Phase) Phase {
	switch p {
	case PhaseBetting:
		return PhaseMichigan
	case PhaseMichigan:
		return PhaseHearts
	case PhaseHearts:
		return PhasePoker
	case PhasePoker:
		return PhaseGameOver
	default:
		return p
	}
}

// isCardPhase reports whether cards are played during p.
func isCardPhase(p Phase) bool {
	return p == PhaseMichigan || p == PhaseHearts || p == PhasePoker
}
