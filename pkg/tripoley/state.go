package tripoley

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/decred/slog"
)

// StartingChips is the one-time stake each player receives at game start.
const StartingChips int64 = 100

// GameConfig holds configuration for a new game.
type GameConfig struct {
	NumPlayers int
	HumanSeat  int   // seat index of the human player; -1 for an all-AI game
	Seed       int64 // optional seed for deterministic games

	// NameFn labels players at game start. The engine treats it as an
	// opaque source of display names.
	NameFn func() string

	// HumanName overrides NameFn for the human seat when non-empty.
	HumanName string

	// DefaultDifficulty is assigned to every AI seat. Defaults to Medium.
	DefaultDifficulty Difficulty

	Log slog.Logger
}

// GameState is the single source of truth for a session. It is only ever
// modified through Dispatch, which returns a fresh snapshot; a state value
// handed to a caller is never mutated afterwards.
type GameState struct {
	Players       []*Player
	DealerID      int
	CurrentPlayer int
	Phase         Phase
	DeadHand      []Card
	Pot           *Pot
	Deck          []Card // undealt remainder, empty after a deal
	CurrentTrick  []Card // first card is the lead

	rng *rand.Rand
	log slog.Logger
}

// NewGameState seats the players described by cfg and waits in the
// player-selection phase. Chips, dealer and hands arrive with START_GAME.
func NewGameState(cfg GameConfig) *GameState {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}
	g := &GameState{
		Phase: PhasePlayerSelection,
		Pot:   NewPot(log),
		rng:   rand.New(rand.NewSource(seed)),
		log:   log,
	}

	difficulty := cfg.DefaultDifficulty
	if difficulty == "" {
		difficulty = Medium
	}
	for i := 0; i < cfg.NumPlayers; i++ {
		p := &Player{ID: i, Position: i}
		if i == cfg.HumanSeat {
			p.IsHuman = true
			p.Name = cfg.HumanName
		} else {
			p.Difficulty = difficulty
		}
		if p.Name == "" && cfg.NameFn != nil {
			p.Name = cfg.NameFn()
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("Player %d", i+1)
		}
		g.Players = append(g.Players, p)
	}
	return g
}

// Player returns the player with the given id, or nil.
func (g *GameState) Player(id int) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Current returns the player whose turn it is, or nil before START_GAME.
func (g *GameState) Current() *Player {
	if g.CurrentPlayer < 0 || g.CurrentPlayer >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentPlayer]
}

// TotalChips sums player chips and pot chips. Constant for the life of a
// round outside the one-time initial endowment.
func (g *GameState) TotalChips() int64 {
	total := g.Pot.TotalChips()
	for _, p := range g.Players {
		total += p.Chips
	}
	return total
}

// advanceTurn moves CurrentPlayer one seat clockwise.
func (g *GameState) advanceTurn() {
	if len(g.Players) == 0 {
		return
	}
	g.CurrentPlayer = (g.CurrentPlayer + 1) % len(g.Players)
}

// clone returns a deep copy sharing only the rng and logger. Dispatch
// mutates the clone so a failed action leaves the original untouched.
func (g *GameState) clone() *GameState {
	cp := &GameState{
		DealerID:      g.DealerID,
		CurrentPlayer: g.CurrentPlayer,
		Phase:         g.Phase,
		DeadHand:      append([]Card(nil), g.DeadHand...),
		Deck:          append([]Card(nil), g.Deck...),
		CurrentTrick:  append([]Card(nil), g.CurrentTrick...),
		Pot:           g.Pot.clone(),
		rng:           g.rng,
		log:           g.log,
	}
	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp.Players[i] = p.clone()
	}
	return cp
}
