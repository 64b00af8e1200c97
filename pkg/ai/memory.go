package ai

import (
	"github.com/Alysoun/tripoley/pkg/tripoley"
)

// memorySize bounds every per-player history list.
const memorySize = 10

// BetRecord remembers a bet that paid off.
type BetRecord struct {
	Amount   int64
	Category tripoley.Category
}

type playerMemory struct {
	lastPlays      []tripoley.Card
	successfulBets []BetRecord
	winningMoves   []tripoley.Card
}

// Memory is the pattern store AI decisions draw on. It is an explicit
// context object keyed by player id; callers share one Memory across all AI
// seats for the life of the process. Each list keeps at most the last
// memorySize entries, newest first.
type Memory struct {
	players map[int]*playerMemory
}

// NewMemory creates an empty memory context.
func NewMemory() *Memory {
	return &Memory{players: make(map[int]*playerMemory)}
}

func (m *Memory) player(id int) *playerMemory {
	pm, ok := m.players[id]
	if !ok {
		pm = &playerMemory{}
		m.players[id] = pm
	}
	return pm
}

// RecordPlay remembers a card play, and keeps it in the winning-move list
// when it took the trick or otherwise paid out.
func (m *Memory) RecordPlay(playerID int, card tripoley.Card, wasSuccessful bool) {
	pm := m.player(playerID)
	pm.lastPlays = prependCard(pm.lastPlays, card)
	if wasSuccessful {
		pm.winningMoves = prependCard(pm.winningMoves, card)
	}
}

// RecordBet remembers a bet that ended up collecting chips.
func (m *Memory) RecordBet(playerID int, amount int64, cat tripoley.Category, wasSuccessful bool) {
	if !wasSuccessful {
		return
	}
	pm := m.player(playerID)
	pm.successfulBets = append([]BetRecord{{Amount: amount, Category: cat}}, pm.successfulBets...)
	if len(pm.successfulBets) > memorySize {
		pm.successfulBets = pm.successfulBets[:memorySize]
	}
}

// WinningMoves returns the remembered winning plays, newest first.
func (m *Memory) WinningMoves(playerID int) []tripoley.Card {
	return append([]tripoley.Card(nil), m.player(playerID).winningMoves...)
}

// LastPlays returns the remembered plays, newest first.
func (m *Memory) LastPlays(playerID int) []tripoley.Card {
	return append([]tripoley.Card(nil), m.player(playerID).lastPlays...)
}

func prependCard(list []tripoley.Card, card tripoley.Card) []tripoley.Card {
	list = append([]tripoley.Card{card}, list...)
	if len(list) > memorySize {
		list = list[:memorySize]
	}
	return list
}

// hasSuccessPattern reports whether at least two of the last three winning
// moves chain together by suit or adjacent rank.
func (m *Memory) hasSuccessPattern(playerID int) bool {
	wins := m.player(playerID).winningMoves
	if len(wins) > 3 {
		wins = wins[:3]
	}
	if len(wins) < 2 {
		return false
	}
	for i := 1; i < len(wins); i++ {
		prev, cur := wins[i-1], wins[i]
		sameSuit := cur.Suit == prev.Suit
		adjacent := abs(tripoley.RankValue(cur.Rank)-tripoley.RankValue(prev.Rank)) == 1
		if !sameSuit && !adjacent {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
