package ai

import (
	"fmt"

	"github.com/Alysoun/tripoley/pkg/tripoley"
)

// DecideAction produces a dispatchable action for the seat currently to
// act. The caller decides when an AI turn is due; the engine never drives
// AI seats on its own. A hearts-phase seat with nothing playable yields a
// NEXT_PLAYER action so play keeps moving.
func (a *AIPlayer) DecideAction(g *tripoley.GameState) (tripoley.Action, error) {
	switch g.Phase {
	case tripoley.PhaseDealerBlindChoice:
		dealer := g.Player(g.DealerID)
		choice, err := a.DecideBlindChoice(dealer, g)
		if err != nil {
			return tripoley.Action{}, err
		}
		return tripoley.Action{Type: tripoley.ActionDealerBlindChoice, PlayerID: dealer.ID, Choice: choice}, nil

	case tripoley.PhaseBlindAuction:
		p := g.Current()
		if p == nil {
			return tripoley.Action{}, fmt.Errorf("ai: no player to act")
		}
		bid, err := a.DecideBlindBid(p, g, highestStandingBid(g))
		if err != nil {
			return tripoley.Action{}, err
		}
		if bid <= 0 {
			return tripoley.Action{Type: tripoley.ActionPassDeadHandBid, PlayerID: p.ID}, nil
		}
		return tripoley.Action{Type: tripoley.ActionPlaceDeadHandBid, PlayerID: p.ID, Amount: bid}, nil

	case tripoley.PhaseBetting:
		p := g.Current()
		if p == nil {
			return tripoley.Action{}, fmt.Errorf("ai: no player to act")
		}
		bets, err := a.DecideBets(p, g)
		if err != nil {
			return tripoley.Action{}, err
		}
		return tripoley.Action{Type: tripoley.ActionPlaceBets, PlayerID: p.ID, Bets: bets}, nil

	case tripoley.PhasePoker:
		// Nothing to gain from thinning the hand before the showdown.
		return tripoley.Action{Type: tripoley.ActionNextPhase}, nil

	case tripoley.PhaseMichigan, tripoley.PhaseHearts:
		p := g.Current()
		if p == nil {
			return tripoley.Action{}, fmt.Errorf("ai: no player to act")
		}
		card, err := a.DecidePlay(p, g)
		if err == ErrNoPlayableCard {
			return tripoley.Action{Type: tripoley.ActionNextPlayer}, nil
		}
		if err != nil {
			return tripoley.Action{}, err
		}
		return tripoley.Action{Type: tripoley.ActionPlayCard, PlayerID: p.ID, Card: card}, nil

	default:
		return tripoley.Action{}, fmt.Errorf("ai: no decision for phase %s", g.Phase)
	}
}

// highestStandingBid surveys the table for the top bid so far.
func highestStandingBid(g *tripoley.GameState) int64 {
	var high int64
	for _, p := range g.Players {
		if p.HasBid && p.CurrentBid > high {
			high = p.CurrentBid
		}
	}
	return high
}
