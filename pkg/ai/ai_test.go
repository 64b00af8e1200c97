package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alysoun/tripoley/pkg/tripoley"
)

func testGame(t *testing.T, n int, seed int64) *tripoley.GameState {
	t.Helper()
	return tripoley.NewGameState(tripoley.GameConfig{
		NumPlayers:        n,
		HumanSeat:         -1,
		Seed:              seed,
		DefaultDifficulty: tripoley.Hard,
	})
}

func TestDecisionsFailWithoutDifficulty(t *testing.T) {
	g := testGame(t, 3, 1)
	a := New(rand.New(rand.NewSource(1)), nil)
	human := &tripoley.Player{ID: 0, IsHuman: true, Chips: 100}

	_, err := a.DecideBets(human, g)
	assert.ErrorIs(t, err, ErrNoDifficulty)
	_, err = a.DecideBlindChoice(human, g)
	assert.ErrorIs(t, err, ErrNoDifficulty)
	_, err = a.DecideBlindBid(human, g, 0)
	assert.ErrorIs(t, err, ErrNoDifficulty)
	_, err = a.DecidePlay(human, g)
	assert.ErrorIs(t, err, ErrNoDifficulty)

	// Same for an AI seat that never got a tier assigned.
	unset := &tripoley.Player{ID: 1, Chips: 100}
	_, err = a.DecideBets(unset, g)
	assert.ErrorIs(t, err, ErrNoDifficulty)
}

func TestDecideBetsNeverExceedsChips(t *testing.T) {
	g := testGame(t, 4, 2)
	hand := []tripoley.Card{
		{Suit: tripoley.Hearts, Rank: tripoley.Ten},
		{Suit: tripoley.Hearts, Rank: tripoley.Jack},
		{Suit: tripoley.Hearts, Rank: tripoley.Queen},
		{Suit: tripoley.Hearts, Rank: tripoley.King},
		{Suit: tripoley.Hearts, Rank: tripoley.Ace},
		{Suit: tripoley.Clubs, Rank: tripoley.Eight},
		{Suit: tripoley.Clubs, Rank: tripoley.Nine},
	}

	for _, tier := range []tripoley.Difficulty{tripoley.Easy, tripoley.Medium, tripoley.Hard, tripoley.CardShark} {
		a := New(rand.New(rand.NewSource(7)), nil)
		for i := 0; i < 200; i++ {
			p := &tripoley.Player{ID: 1, Difficulty: tier, Chips: 10, Cards: hand}
			bets, err := a.DecideBets(p, g)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, bets.Michigan, int64(0))
			assert.GreaterOrEqual(t, bets.Hearts, int64(0))
			assert.GreaterOrEqual(t, bets.Poker, int64(0))
			assert.LessOrEqual(t, bets.Total(), p.Chips, "tier %s over-bet", tier)
		}
	}
}

func TestDecideBlindBidCeiling(t *testing.T) {
	g := testGame(t, 4, 3)
	a := New(rand.New(rand.NewSource(11)), nil)
	p := &tripoley.Player{ID: 1, Difficulty: tripoley.Hard, Chips: 100}

	// Hard aggression is 0.8, so the ceiling on 100 chips is 80.
	bid, err := a.DecideBlindBid(p, g, 80)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bid, "must pass at the ceiling")

	for i := 0; i < 100; i++ {
		bid, err = a.DecideBlindBid(p, g, 10)
		require.NoError(t, err)
		assert.Greater(t, bid, int64(10))
		assert.LessOrEqual(t, bid, int64(80))
	}
}

func TestDecidePlayFollowsSuit(t *testing.T) {
	g := testGame(t, 4, 5)
	g.Phase = tripoley.PhaseMichigan
	g.CurrentTrick = []tripoley.Card{{Suit: tripoley.Clubs, Rank: tripoley.Seven}}
	p := g.Players[1]
	p.Cards = []tripoley.Card{
		{Suit: tripoley.Clubs, Rank: tripoley.Two},
		{Suit: tripoley.Clubs, Rank: tripoley.King},
		{Suit: tripoley.Spades, Rank: tripoley.Ace},
	}

	a := New(rand.New(rand.NewSource(13)), nil)
	for i := 0; i < 100; i++ {
		card, err := a.DecidePlay(p, g)
		require.NoError(t, err)
		assert.Equal(t, tripoley.Clubs, card.Suit, "must follow the led suit while holding it")
		assert.True(t, p.HoldsCard(card))
	}
}

func TestDecidePlayHeartsOnly(t *testing.T) {
	g := testGame(t, 4, 5)
	g.Phase = tripoley.PhaseHearts
	p := g.Players[2]
	p.Cards = []tripoley.Card{
		{Suit: tripoley.Spades, Rank: tripoley.Two},
		{Suit: tripoley.Hearts, Rank: tripoley.Nine},
		{Suit: tripoley.Diamonds, Rank: tripoley.King},
	}

	a := New(rand.New(rand.NewSource(17)), nil)
	for i := 0; i < 100; i++ {
		card, err := a.DecidePlay(p, g)
		require.NoError(t, err)
		assert.Equal(t, tripoley.Hearts, card.Suit)
	}

	p.Cards = []tripoley.Card{{Suit: tripoley.Spades, Rank: tripoley.Two}}
	_, err := a.DecidePlay(p, g)
	assert.ErrorIs(t, err, ErrNoPlayableCard)
}

func TestMemoryIsBounded(t *testing.T) {
	m := NewMemory()
	for i := 0; i < 15; i++ {
		card := tripoley.Card{Suit: tripoley.Suits[i%4], Rank: tripoley.Ranks[i%13]}
		m.RecordPlay(3, card, true)
	}

	plays := m.LastPlays(3)
	wins := m.WinningMoves(3)
	assert.Len(t, plays, memorySize)
	assert.Len(t, wins, memorySize)
	// Newest first.
	assert.Equal(t, tripoley.Ranks[14%13], plays[0].Rank)

	for i := 0; i < 15; i++ {
		m.RecordBet(3, int64(i), tripoley.CategoryMichigan, true)
	}
	m.RecordBet(3, 999, tripoley.CategoryHearts, false)
	assert.Len(t, m.player(3).successfulBets, memorySize)
}

func TestHasSuccessPattern(t *testing.T) {
	m := NewMemory()
	assert.False(t, m.hasSuccessPattern(1), "empty history has no pattern")

	m.RecordPlay(1, tripoley.Card{Suit: tripoley.Clubs, Rank: tripoley.Nine}, true)
	assert.False(t, m.hasSuccessPattern(1), "one win is not a pattern")

	// Two same-suit wins chain.
	m.RecordPlay(1, tripoley.Card{Suit: tripoley.Clubs, Rank: tripoley.King}, true)
	assert.True(t, m.hasSuccessPattern(1))

	// Off-suit, non-adjacent wins break the chain.
	m2 := NewMemory()
	m2.RecordPlay(2, tripoley.Card{Suit: tripoley.Clubs, Rank: tripoley.Two}, true)
	m2.RecordPlay(2, tripoley.Card{Suit: tripoley.Hearts, Rank: tripoley.Nine}, true)
	assert.False(t, m2.hasSuccessPattern(2))

	// Adjacent ranks chain across suits.
	m3 := NewMemory()
	m3.RecordPlay(3, tripoley.Card{Suit: tripoley.Clubs, Rank: tripoley.Nine}, true)
	m3.RecordPlay(3, tripoley.Card{Suit: tripoley.Hearts, Rank: tripoley.Ten}, true)
	assert.True(t, m3.hasSuccessPattern(3))
}

func TestDecideActionPerPhase(t *testing.T) {
	g := testGame(t, 4, 19)
	g, err := tripoley.Dispatch(g, tripoley.Action{Type: tripoley.ActionStartGame})
	require.NoError(t, err)
	a := New(rand.New(rand.NewSource(23)), nil)

	action, err := a.DecideAction(g)
	require.NoError(t, err)
	assert.Equal(t, tripoley.ActionDealerBlindChoice, action.Type)
	assert.Equal(t, g.DealerID, action.PlayerID)

	// Whatever the dealer chose, the resulting action must dispatch cleanly,
	// and so must every following decision until the cards come out.
	for i := 0; i < 50 && g.Phase != tripoley.PhaseMichigan; i++ {
		action, err = a.DecideAction(g)
		require.NoError(t, err)
		g, err = tripoley.Dispatch(g, action)
		require.NoError(t, err)
	}
	assert.Equal(t, tripoley.PhaseMichigan, g.Phase)

	g.Phase = tripoley.PhasePoker
	action, err = a.DecideAction(g)
	require.NoError(t, err)
	assert.Equal(t, tripoley.ActionNextPhase, action.Type, "poker seats hold for the showdown")
}

// TestFullRoundDrive plays a complete all-AI round to the end, checking the
// chip total never drifts. Mirrors the loop the simulator runs.
func TestFullRoundDrive(t *testing.T) {
	g := testGame(t, 5, 29)
	g, err := tripoley.Dispatch(g, tripoley.Action{Type: tripoley.ActionStartGame})
	require.NoError(t, err)
	total := g.TotalChips()

	a := New(rand.New(rand.NewSource(31)), nil)
	idle := 0
	for step := 0; step < 10000; step++ {
		if g.Phase == tripoley.PhaseGameOver {
			break
		}
		action, err := a.DecideAction(g)
		require.NoError(t, err)

		// A full lap of seats with nothing to play means the phase is
		// stuck (e.g. every heart already left the hands).
		if action.Type == tripoley.ActionNextPlayer {
			idle++
			if idle > len(g.Players) {
				action = tripoley.Action{Type: tripoley.ActionNextPhase}
				idle = 0
			}
		} else {
			idle = 0
		}

		g, err = tripoley.Dispatch(g, action)
		require.NoError(t, err)
		require.Equal(t, total, g.TotalChips(), "chips leaked at step %d", step)
	}

	assert.Equal(t, tripoley.PhaseGameOver, g.Phase)
}
