package tripoley

import "fmt"

// Deal splits a shuffled deck between numPlayers hands and the dead hand.
//
// The dead hand counts as one position, so base = 52 / (numPlayers+1). The
// dead hand always receives exactly base cards; when the deck does not divide
// evenly, the remainder goes one card each to the first seats strictly after
// the dealer, wrapping around the table. The dealer never takes an extra
// card. Cards come off the deck dead hand first, then players in seat order.
func Deal(deck []Card, numPlayers, dealerID int) (deadHand []Card, hands [][]Card, err error) {
	if numPlayers < 2 {
		return nil, nil, fmt.Errorf("deal: need at least 2 players, got %d", numPlayers)
	}
	if dealerID < 0 || dealerID >= numPlayers {
		return nil, nil, fmt.Errorf("deal: dealer %d out of range for %d players", dealerID, numPlayers)
	}
	if len(deck) != 52 {
		return nil, nil, fmt.Errorf("deal: expected 52 cards, got %d", len(deck))
	}

	totalPositions := numPlayers + 1
	base := len(deck) / totalPositions
	extra := len(deck) % totalPositions

	deadHand = append([]Card(nil), deck[:base]...)
	idx := base

	hands = make([][]Card, numPlayers)
	for seat := 0; seat < numPlayers; seat++ {
		count := base
		positionFromDealer := (seat - dealerID + numPlayers) % numPlayers
		if positionFromDealer > 0 && positionFromDealer <= extra {
			count++
		}
		hands[seat] = append([]Card(nil), deck[idx:idx+count]...)
		idx += count
	}

	if idx != len(deck) {
		return nil, nil, fmt.Errorf("deal: %d cards left undealt", len(deck)-idx)
	}
	return deadHand, hands, nil
}
