package tripoley

import (
	"math/rand"
	"testing"
)

func TestDealCardConservation(t *testing.T) {
	for numPlayers := 4; numPlayers <= 9; numPlayers++ {
		for dealer := 0; dealer < numPlayers; dealer++ {
			deck := NewDeck(rand.New(rand.NewSource(int64(numPlayers*100 + dealer)))).Cards()
			deadHand, hands, err := Deal(deck, numPlayers, dealer)
			if err != nil {
				t.Fatalf("deal %d players dealer %d: %v", numPlayers, dealer, err)
			}

			seen := make(map[Card]bool)
			total := 0
			for _, c := range deadHand {
				if seen[c] {
					t.Fatalf("duplicate card %v in dead hand", c)
				}
				seen[c] = true
				total++
			}
			for seat, hand := range hands {
				for _, c := range hand {
					if seen[c] {
						t.Fatalf("duplicate card %v in seat %d", c, seat)
					}
					seen[c] = true
					total++
				}
			}
			if total != 52 {
				t.Fatalf("%d players: dealt %d cards, want 52", numPlayers, total)
			}
		}
	}
}

func TestDealFairnessFivePlayers(t *testing.T) {
	// 52 cards, 6 positions: base 8, remainder 4. The dead hand stays at
	// 8 and the 4 seats clockwise of the dealer take 9 each.
	deck := NewDeck(rand.New(rand.NewSource(7))).Cards()
	dealer := 2
	deadHand, hands, err := Deal(deck, 5, dealer)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}

	if len(deadHand) != 8 {
		t.Errorf("dead hand size: got %d, want 8", len(deadHand))
	}
	if len(hands[dealer]) != 8 {
		t.Errorf("dealer hand size: got %d, want 8", len(hands[dealer]))
	}
	for offset := 1; offset <= 4; offset++ {
		seat := (dealer + offset) % 5
		if len(hands[seat]) != 9 {
			t.Errorf("seat %d (offset %d from dealer): got %d cards, want 9", seat, offset, len(hands[seat]))
		}
	}
}

func TestDealDeadHandNeverGetsExtra(t *testing.T) {
	for numPlayers := 4; numPlayers <= 9; numPlayers++ {
		deck := NewDeck(rand.New(rand.NewSource(int64(numPlayers)))).Cards()
		deadHand, _, err := Deal(deck, numPlayers, 0)
		if err != nil {
			t.Fatalf("deal: %v", err)
		}
		base := 52 / (numPlayers + 1)
		if len(deadHand) != base {
			t.Errorf("%d players: dead hand got %d cards, want base %d", numPlayers, len(deadHand), base)
		}
	}
}

func TestDealSlicesInOrder(t *testing.T) {
	// Dead hand comes off the top, then players in seat order.
	deck := NewDeck(rand.New(rand.NewSource(3))).Cards()
	deadHand, hands, err := Deal(deck, 4, 1)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}

	idx := 0
	for _, c := range deadHand {
		if c != deck[idx] {
			t.Fatalf("dead hand card %v out of deck order", c)
		}
		idx++
	}
	for seat := 0; seat < 4; seat++ {
		for _, c := range hands[seat] {
			if c != deck[idx] {
				t.Fatalf("seat %d card %v out of deck order", seat, c)
			}
			idx++
		}
	}
}

func TestDealRejectsBadInput(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1))).Cards()
	if _, _, err := Deal(deck, 1, 0); err == nil {
		t.Error("expected error for 1 player")
	}
	if _, _, err := Deal(deck, 5, 5); err == nil {
		t.Error("expected error for out-of-range dealer")
	}
	if _, _, err := Deal(deck[:51], 5, 0); err == nil {
		t.Error("expected error for short deck")
	}
}
