// Package ai decides bets, bids and card plays for computer-controlled
// seats. Decisions are stateless per call outside the shared Memory context;
// every probabilistic branch draws from an injected rand.Rand so games
// replay deterministically under a fixed seed.
package ai

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Alysoun/tripoley/pkg/tripoley"
)

// Personality holds the four sliders that shape a difficulty tier.
type Personality struct {
	Aggression  float64 // scales bet sizing
	Bluffing    float64 // probability of deviating from the honest signal
	Consistency float64 // probability of following strategy over a random lapse
	Adaptation  float64 // probability of replaying remembered winners
}

// Personalities maps each difficulty tier to its profile.
var Personalities = map[tripoley.Difficulty]Personality{
	tripoley.Easy:      {Aggression: 0.2, Bluffing: 0.1, Consistency: 0.3, Adaptation: 0.2},
	tripoley.Medium:    {Aggression: 0.5, Bluffing: 0.4, Consistency: 0.6, Adaptation: 0.5},
	tripoley.Hard:      {Aggression: 0.8, Bluffing: 0.7, Consistency: 0.85, Adaptation: 0.8},
	tripoley.CardShark: {Aggression: 0.9, Bluffing: 0.9, Consistency: 0.95, Adaptation: 0.95},
}

// baseBets is the per-tier base wager unit.
var baseBets = map[tripoley.Difficulty]int64{
	tripoley.Easy:      1,
	tripoley.Medium:    2,
	tripoley.Hard:      3,
	tripoley.CardShark: 5,
}

var (
	// ErrNoDifficulty signals a seat that was marked AI-controlled but
	// never got a difficulty. This is a setup bug, not a game event;
	// callers must not swallow it.
	ErrNoDifficulty = errors.New("ai: player has no difficulty assigned")

	// ErrNoPlayableCard means the player holds nothing legal for the
	// current phase (e.g. no hearts during the hearts round).
	ErrNoPlayableCard = errors.New("ai: no playable card")
)

// AIPlayer produces decisions for AI seats. One instance can serve every AI
// seat in a game; the per-seat histories live in the Memory.
type AIPlayer struct {
	rng *rand.Rand
	mem *Memory
}

// New creates an AIPlayer drawing randomness from rng and patterns from mem.
func New(rng *rand.Rand, mem *Memory) *AIPlayer {
	if mem == nil {
		mem = NewMemory()
	}
	return &AIPlayer{rng: rng, mem: mem}
}

// Memory exposes the shared pattern store, e.g. for recording outcomes.
func (a *AIPlayer) Memory() *Memory {
	return a.mem
}

func (a *AIPlayer) personality(p *tripoley.Player) (Personality, error) {
	if p.IsHuman || !p.Difficulty.Valid() {
		return Personality{}, fmt.Errorf("%w (player %d)", ErrNoDifficulty, p.ID)
	}
	return Personalities[p.Difficulty], nil
}

// DecideBets sizes the three category wagers from the cards held, scaled by
// aggression and nudged by bluffing. The returned total never exceeds the
// player's chips.
func (a *AIPlayer) DecideBets(p *tripoley.Player, g *tripoley.GameState) (tripoley.Bets, error) {
	pers, err := a.personality(p)
	if err != nil {
		return tripoley.Bets{}, err
	}
	base := baseBets[p.Difficulty]
	maxBet := int64(float64(p.Chips) * pers.Aggression)

	bets := tripoley.Bets{
		Michigan: a.sectionBet(countRanks(p.Cards, tripoley.Ten, tripoley.Jack, tripoley.Queen), 3, base, maxBet, pers),
		Hearts:   a.sectionBet(countRanks(p.Cards, tripoley.King, tripoley.Ace), 2, base, maxBet, pers),
		Poker:    a.sectionBet(countRanks(p.Cards, tripoley.Eight, tripoley.Nine, tripoley.Ten, tripoley.King, tripoley.Queen), 5, base, maxBet, pers),
	}

	// Scale back rather than over-commit; the reducer rejects over-bets.
	for bets.Total() > p.Chips {
		if bets.Michigan >= bets.Hearts && bets.Michigan >= bets.Poker && bets.Michigan > 0 {
			bets.Michigan--
		} else if bets.Hearts >= bets.Poker && bets.Hearts > 0 {
			bets.Hearts--
		} else if bets.Poker > 0 {
			bets.Poker--
		} else {
			break
		}
	}
	return bets, nil
}

// sectionBet combines card-count confidence with a bluff roll.
func (a *AIPlayer) sectionBet(held, max int, base, maxBet int64, pers Personality) int64 {
	confidence := float64(held) / float64(max)
	if a.rng.Float64() < pers.Bluffing {
		confidence += pers.Aggression
	}
	confidence *= pers.Consistency

	amount := base + int64(float64(maxBet)*confidence)
	jitter := 1 + (a.rng.Float64()-0.5)*(1-pers.Consistency)
	amount = int64(float64(amount) * jitter)

	if amount < 0 {
		amount = 0
	}
	if amount > maxBet {
		amount = maxBet
	}
	return amount
}

// DecideBlindChoice scores the dealt hand against the three scoring rounds
// and picks swap, auction or keep.
func (a *AIPlayer) DecideBlindChoice(p *tripoley.Player, g *tripoley.GameState) (tripoley.BlindChoice, error) {
	pers, err := a.personality(p)
	if err != nil {
		return "", err
	}

	michigan := countRanks(p.Cards, tripoley.Ten, tripoley.Jack, tripoley.Queen)
	hearts := countRanks(p.Cards, tripoley.King, tripoley.Ace)
	poker := countRanks(p.Cards, tripoley.Eight, tripoley.Nine, tripoley.Ten, tripoley.King, tripoley.Queen)

	strength := (float64(michigan)/3 + float64(hearts)/2 + float64(poker)/5) / 3
	strength += a.rng.Float64() * (1 - pers.Consistency)

	switch {
	case strength < 0.3:
		return tripoley.ChoiceSwap, nil
	case strength < 0.6:
		if a.rng.Float64() < pers.Bluffing {
			return tripoley.ChoiceKeep, nil
		}
		return tripoley.ChoiceAuction, nil
	default:
		return tripoley.ChoiceKeep, nil
	}
}

// DecideBlindBid returns the player's next auction bid, or 0 to pass. The
// ceiling is chips scaled by aggression; raises step by the tier's base bet
// with a random kicker.
func (a *AIPlayer) DecideBlindBid(p *tripoley.Player, g *tripoley.GameState, currentBid int64) (int64, error) {
	pers, err := a.personality(p)
	if err != nil {
		return 0, err
	}

	ceiling := int64(float64(p.Chips) * pers.Aggression)
	if currentBid >= ceiling {
		return 0, nil
	}

	increment := int64(float64(baseBets[p.Difficulty]) * (1 + a.rng.Float64()*pers.Aggression))
	if increment < 1 {
		increment = 1
	}
	bid := currentBid + increment
	if bid > ceiling {
		bid = ceiling
	}
	return bid, nil
}

// DecidePlay picks a card for the current card phase.
//
// The branches run in fixed order: a consistency lapse plays randomly, a
// detected success pattern may replay the latest remembered winner, and
// otherwise the phase heuristic picks strategically.
func (a *AIPlayer) DecidePlay(p *tripoley.Player, g *tripoley.GameState) (tripoley.Card, error) {
	pers, err := a.personality(p)
	if err != nil {
		return tripoley.Card{}, err
	}

	playable := playableCards(p, g)
	if len(playable) == 0 {
		return tripoley.Card{}, ErrNoPlayableCard
	}

	if a.rng.Float64() > pers.Consistency {
		return playable[a.rng.Intn(len(playable))], nil
	}

	if a.mem.hasSuccessPattern(p.ID) && a.rng.Float64() < pers.Adaptation {
		if card, ok := firstPlayable(a.mem.WinningMoves(p.ID), playable); ok {
			return card, nil
		}
	}

	return a.strategicPlay(p, g, playable, pers), nil
}

func (a *AIPlayer) strategicPlay(p *tripoley.Player, g *tripoley.GameState, playable []tripoley.Card, pers Personality) tripoley.Card {
	if a.shouldBluff(p, g, pers) {
		return playable[a.rng.Intn(len(playable))]
	}

	switch g.Phase {
	case tripoley.PhaseMichigan:
		return michiganPlay(g, playable)
	case tripoley.PhaseHearts:
		return highestCard(playable)
	default:
		return lowestCard(playable)
	}
}

// michiganPlay leads high and otherwise takes the trick with the cheapest
// winner, shedding the lowest card when the trick is lost.
func michiganPlay(g *tripoley.GameState, playable []tripoley.Card) tripoley.Card {
	if len(g.CurrentTrick) == 0 {
		return highestCard(playable)
	}
	best := tripoley.Card{}
	bestValue := 0
	found := false
	for _, c := range playable {
		if !beatsTrickCards(c, g.CurrentTrick) {
			continue
		}
		if !found || tripoley.RankValue(c.Rank) < bestValue {
			best, bestValue, found = c, tripoley.RankValue(c.Rank), true
		}
	}
	if found {
		return best
	}
	return lowestCard(playable)
}

func beatsTrickCards(card tripoley.Card, trick []tripoley.Card) bool {
	leadSuit := trick[0].Suit
	if card.Suit != leadSuit {
		return false
	}
	for _, c := range trick {
		if c.Suit == leadSuit && tripoley.RankValue(c.Rank) >= tripoley.RankValue(card.Rank) {
			return false
		}
	}
	return true
}

func (a *AIPlayer) shouldBluff(p *tripoley.Player, g *tripoley.GameState, pers Personality) bool {
	threshold := pers.Bluffing
	if p.Chips < 20 {
		threshold *= 1.2
	}
	if isChipLeading(p, g) {
		threshold *= 0.8
	} else {
		threshold *= 1.2
	}
	if hasLatePosition(p, g) {
		threshold *= 1.3
	} else {
		threshold *= 0.9
	}
	return a.rng.Float64() < threshold
}

func isChipLeading(p *tripoley.Player, g *tripoley.GameState) bool {
	var total int64
	for _, other := range g.Players {
		total += other.Chips
	}
	average := total / int64(len(g.Players))
	return p.Chips > average
}

func hasLatePosition(p *tripoley.Player, g *tripoley.GameState) bool {
	return p.Position > len(g.Players)/2
}

func playableCards(p *tripoley.Player, g *tripoley.GameState) []tripoley.Card {
	var out []tripoley.Card
	for _, c := range p.Cards {
		if tripoley.IsPlayable(c, p, g).OK {
			out = append(out, c)
		}
	}
	return out
}

func firstPlayable(candidates, playable []tripoley.Card) (tripoley.Card, bool) {
	for _, c := range candidates {
		for _, pc := range playable {
			if c == pc {
				return c, true
			}
		}
	}
	return tripoley.Card{}, false
}

func countRanks(cards []tripoley.Card, ranks ...tripoley.Rank) int {
	count := 0
	for _, c := range cards {
		for _, r := range ranks {
			if c.Rank == r {
				count++
				break
			}
		}
	}
	return count
}

func highestCard(cards []tripoley.Card) tripoley.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if tripoley.RankValue(c.Rank) > tripoley.RankValue(best.Rank) {
			best = c
		}
	}
	return best
}

func lowestCard(cards []tripoley.Card) tripoley.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if tripoley.RankValue(c.Rank) < tripoley.RankValue(best.Rank) {
			best = c
		}
	}
	return best
}
