package tripoley

// Playable is the answer to "may this card be played right now".
type Playable struct {
	OK     bool
	Reason string
}

// PlayResult is the outcome of evaluating a card play: whether the play
// stands and how many points it scores.
type PlayResult struct {
	Valid   bool
	Points  int
	Message string
}

// IsPlayable reports whether the player may legally play the card in the
// current phase. It never mutates state.
func IsPlayable(card Card, player *Player, g *GameState) Playable {
	switch g.Phase {
	case PhaseMichigan:
		return michiganPlayable(card, player, g)
	case PhaseHearts:
		return heartsPlayable(card)
	case PhasePoker:
		return Playable{OK: true}
	case PhaseBetting:
		return Playable{OK: false, Reason: "cannot play cards during the betting phase"}
	default:
		return Playable{OK: false, Reason: "cards are not played in this phase"}
	}
}

// michiganPlayable applies the standard trick-following rule: free lead,
// must follow suit when able, free discard when void.
func michiganPlayable(card Card, player *Player, g *GameState) Playable {
	if len(g.CurrentTrick) == 0 {
		return Playable{OK: true}
	}
	leadSuit := g.CurrentTrick[0].Suit
	if player.HasSuit(leadSuit) {
		if card.Suit != leadSuit {
			return Playable{OK: false, Reason: "must follow suit"}
		}
		return Playable{OK: true}
	}
	return Playable{OK: true}
}

func heartsPlayable(card Card) Playable {
	if card.Suit != Hearts {
		return Playable{OK: false, Reason: "only hearts can be played in the hearts phase"}
	}
	return Playable{OK: true}
}

// EvaluatePlay scores a card play for the current phase without applying it.
func EvaluatePlay(card Card, player *Player, g *GameState) PlayResult {
	switch g.Phase {
	case PhaseMichigan:
		return evaluateMichiganPlay(card, player, g)
	case PhaseHearts:
		return evaluateHeartsPlay(card)
	case PhasePoker:
		return evaluatePokerPlay(card, player)
	default:
		return PlayResult{Valid: false, Message: "invalid phase for playing cards"}
	}
}

func evaluateMichiganPlay(card Card, player *Player, g *GameState) PlayResult {
	if len(g.CurrentTrick) == 0 {
		return PlayResult{Valid: true}
	}
	leadSuit := g.CurrentTrick[0].Suit
	if player.HasSuit(leadSuit) && card.Suit != leadSuit {
		return PlayResult{Valid: false, Message: "must follow suit when possible"}
	}
	if beatsTrick(card, g.CurrentTrick) {
		return PlayResult{Valid: true, Points: 1, Message: "winning the trick"}
	}
	return PlayResult{Valid: true}
}

func evaluateHeartsPlay(card Card) PlayResult {
	if card.Suit != Hearts {
		return PlayResult{Valid: false, Message: "only hearts can be played in the hearts phase"}
	}
	points := heartPoints(card)
	if points > 0 {
		return PlayResult{Valid: true, Points: points, Message: "scored"}
	}
	return PlayResult{Valid: true}
}

func evaluatePokerPlay(card Card, player *Player) PlayResult {
	hand := append([]Card(nil), player.Cards...)
	hv := EvaluateBestHand(hand)
	return PlayResult{Valid: true, Points: hv.Points, Message: hv.Description}
}

// beatsTrick reports whether the card beats every card played so far under
// lead-suit-only ranking. Off-suit cards never win.
func beatsTrick(card Card, trick []Card) bool {
	if len(trick) == 0 {
		return true
	}
	leadSuit := trick[0].Suit
	if card.Suit != leadSuit {
		return false
	}
	for _, c := range trick {
		if c.Suit == leadSuit && RankValue(c.Rank) >= RankValue(card.Rank) {
			return false
		}
	}
	return true
}

// trickWinner returns the index into the trick of the winning card.
func trickWinner(trick []Card) int {
	if len(trick) == 0 {
		return -1
	}
	leadSuit := trick[0].Suit
	best := 0
	for i := 1; i < len(trick); i++ {
		if trick[i].Suit != leadSuit {
			continue
		}
		if RankValue(trick[i].Rank) > RankValue(trick[best].Rank) {
			best = i
		}
	}
	return best
}

// heartPoints is the fixed hearts-phase point schedule.
func heartPoints(card Card) int {
	if card.Suit != Hearts {
		return 0
	}
	switch card.Rank {
	case Ace:
		return 15
	case King:
		return 10
	case Queen:
		return 5
	case Jack:
		return 3
	default:
		return 0
	}
}

// stopSection maps a card to the pot section it collects when played,
// or "" when the card collects nothing. Only hearts court cards pay out.
func stopSection(phase Phase, card Card) SectionLabel {
	if card.Suit != Hearts {
		return ""
	}
	switch phase {
	case PhaseMichigan:
		switch card.Rank {
		case Ten:
			return SectionTen
		case Jack:
			return SectionJack
		case Queen:
			return SectionQueen
		}
	case PhaseHearts:
		switch card.Rank {
		case King:
			return SectionKing
		case Ace:
			return SectionAce
		}
	}
	return ""
}
