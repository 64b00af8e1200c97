// Command tripoleysim plays AI-only Tripoley rounds through the rules
// engine, standing in for a real presentation layer. Every decision flows
// through the same Dispatch entry point a UI would use.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	"github.com/pterm/pterm"

	"github.com/Alysoun/tripoley/pkg/ai"
	"github.com/Alysoun/tripoley/pkg/names"
	"github.com/Alysoun/tripoley/pkg/tripoley"
)

// maxSteps bounds a single round; a well-formed round finishes in far
// fewer actions.
const maxSteps = 10000

func main() {
	var (
		numPlayers int
		rounds     int
		seed       int64
		difficulty string
		debugLevel string
		dump       bool
	)
	flag.IntVar(&numPlayers, "players", 5, "Number of AI seats (4-9)")
	flag.IntVar(&rounds, "rounds", 1, "Rounds to play")
	flag.Int64Var(&seed, "seed", 0, "Deterministic RNG seed (0 = random)")
	flag.StringVar(&difficulty, "difficulty", "medium", "AI tier: easy, medium, hard, cardShark")
	flag.StringVar(&debugLevel, "debuglevel", "info", "Logging level: trace, debug, info, warn, error")
	flag.BoolVar(&dump, "dump", false, "Dump the final game state")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	backend := slog.NewBackend(os.Stderr)
	log := backend.Logger("SIM")
	if lvl, ok := slog.LevelFromString(debugLevel); ok {
		log.SetLevel(lvl)
	}

	tier := tripoley.Difficulty(difficulty)
	if !tier.Valid() {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q\n", difficulty)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(seed))
	gen := names.NewGenerator(rng)

	state := tripoley.NewGameState(tripoley.GameConfig{
		NumPlayers:        numPlayers,
		HumanSeat:         -1,
		Seed:              seed,
		NameFn:            gen.Func(),
		DefaultDifficulty: tier,
		Log:               log,
	})

	aiPlayer := ai.New(rng, ai.NewMemory())

	state, err := tripoley.Dispatch(state, tripoley.Action{Type: tripoley.ActionStartGame})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start game: %v\n", err)
		os.Exit(1)
	}

	for round := 1; round <= rounds; round++ {
		log.Infof("round %d begins, dealer is seat %d", round, state.DealerID)
		state = playRound(state, aiPlayer, log)
		printRound(round, state)

		if round < rounds {
			state, err = tripoley.Dispatch(state, tripoley.Action{Type: tripoley.ActionStartNewRound})
			if err != nil {
				fmt.Fprintf(os.Stderr, "new round: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if dump {
		spew.Fdump(os.Stderr, state)
	}
}

// playRound drives AI decisions through the reducer until the round ends.
func playRound(state *tripoley.GameState, aiPlayer *ai.AIPlayer, log slog.Logger) *tripoley.GameState {
	conserved := totalChips(state)
	idlePasses := 0

	for step := 0; step < maxSteps; step++ {
		if state.Phase == tripoley.PhaseGameOver {
			return state
		}

		action, err := aiPlayer.DecideAction(state)
		if err != nil {
			log.Errorf("ai decision: %v", err)
			return state
		}

		// A full table of no-plays means the phase is stuck waiting on
		// cards nobody holds; move it along.
		if action.Type == tripoley.ActionNextPlayer {
			idlePasses++
			if idlePasses > len(state.Players) {
				action = tripoley.Action{Type: tripoley.ActionNextPhase}
				idlePasses = 0
			}
		} else {
			idlePasses = 0
		}

		next, err := tripoley.Dispatch(state, action)
		if err != nil {
			log.Warnf("action %s rejected: %v", action.Type, err)
			// Reject loops cannot resolve themselves; skip the seat.
			next, _ = tripoley.Dispatch(state, tripoley.Action{Type: tripoley.ActionNextPlayer})
		} else {
			recordOutcome(aiPlayer, state, next, action)
		}
		state = next

		if got := totalChips(state); got != conserved {
			log.Errorf("chip conservation broken: %d != %d after %v", got, conserved, action.Type)
		}
	}
	log.Errorf("round did not finish within %d steps", maxSteps)
	return state
}

// recordOutcome feeds play results back into the AI memory: a play counts
// as successful when it raised the player's score or chips.
func recordOutcome(aiPlayer *ai.AIPlayer, before, after *tripoley.GameState, action tripoley.Action) {
	if action.Type != tripoley.ActionPlayCard {
		return
	}
	prev := before.Player(action.PlayerID)
	cur := after.Player(action.PlayerID)
	if prev == nil || cur == nil {
		return
	}
	won := cur.Score > prev.Score || cur.Chips > prev.Chips
	aiPlayer.Memory().RecordPlay(action.PlayerID, action.Card, won)
}

func totalChips(state *tripoley.GameState) int64 {
	return state.TotalChips()
}

// printRound renders the standings after a round.
func printRound(round int, state *tripoley.GameState) {
	rows := pterm.TableData{{"Seat", "Name", "Chips", "Score", "Tricks"}}
	for _, p := range state.Players {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			fmt.Sprintf("%d", p.Chips),
			fmt.Sprintf("%d", p.Score),
			fmt.Sprintf("%d", p.TricksWon),
		})
	}
	pterm.DefaultSection.Printfln("Round %d", round)
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	potRows := pterm.TableData{{"Section", "Chips"}}
	for _, s := range state.Pot.Sections() {
		potRows = append(potRows, []string{string(s.Label), fmt.Sprintf("%d", s.Chips)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(potRows).Render()
}
