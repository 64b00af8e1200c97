package tripoley

// Difficulty selects an AI skill tier. A human player carries no difficulty.
type Difficulty string

const (
	Easy      Difficulty = "easy"
	Medium    Difficulty = "medium"
	Hard      Difficulty = "hard"
	CardShark Difficulty = "cardShark"
)

// Valid reports whether d names a known difficulty tier.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard, CardShark:
		return true
	}
	return false
}

// Player represents one seat at the table. Card order within Cards is
// player-significant (hand arrangement) but never affects rule legality.
type Player struct {
	ID        int
	Name      string
	IsHuman   bool
	Chips     int64
	Cards     []Card
	Score     int
	TricksWon int
	Position  int

	// Difficulty is set only for AI-controlled seats.
	Difficulty Difficulty

	// Auction bookkeeping, transient between auction start and resolution.
	CurrentBid int64
	HasBid     bool
	Passed     bool

	// HasBet marks that this player's PLACE_BETS went through for the
	// current betting phase.
	HasBet bool
}

// HasSuit reports whether the player holds any card of the given suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, c := range p.Cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// HoldsCard reports whether the exact card is in the player's hand.
func (p *Player) HoldsCard(card Card) bool {
	for _, c := range p.Cards {
		if c == card {
			return true
		}
	}
	return false
}

// removeCard takes the card out of the hand by value. Returns false if the
// player does not hold it.
func (p *Player) removeCard(card Card) bool {
	for i, c := range p.Cards {
		if c == card {
			p.Cards = append(p.Cards[:i], p.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// clone returns an independent deep copy of the player.
func (p *Player) clone() *Player {
	cp := *p
	cp.Cards = append([]Card(nil), p.Cards...)
	return &cp
}
