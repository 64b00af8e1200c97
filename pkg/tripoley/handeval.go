package tripoley

import (
	"github.com/chehsunliu/poker"
)

// HandRank represents the rank class of a poker hand.
type HandRank int

const (
	HighCard HandRank = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// HandValue is the evaluation of a player's best five-card hand.
type HandValue struct {
	Rank        HandRank
	RankValue   int32 // raw evaluator value, lower is stronger
	BestHand    []Card
	Points      int
	Description string
}

// handPoints is the payout schedule for the poker phase by rank class.
func handPoints(rank HandRank) int {
	switch rank {
	case StraightFlush:
		return 25
	case FourOfAKind:
		return 15
	case FullHouse:
		return 10
	case Flush:
		return 8
	case Straight:
		return 6
	case ThreeOfAKind:
		return 4
	case TwoPair:
		return 2
	case Pair:
		return 1
	default:
		return 0
	}
}

// toEvaluatorCard converts a Card to the chehsunliu/poker representation.
func toEvaluatorCard(card Card) poker.Card {
	var rankChar byte
	switch card.Rank {
	case Ten:
		rankChar = 'T'
	default:
		rankChar = card.Rank[0]
	}

	var suitChar byte
	switch card.Suit {
	case Spades:
		suitChar = 's'
	case Hearts:
		suitChar = 'h'
	case Diamonds:
		suitChar = 'd'
	default:
		suitChar = 'c'
	}

	return poker.NewCard(string([]byte{rankChar, suitChar}))
}

// rankClassToHandRank converts a chehsunliu rank class to a HandRank.
func rankClassToHandRank(rankClass int32) HandRank {
	switch rankClass {
	case 1:
		return StraightFlush
	case 2:
		return FourOfAKind
	case 3:
		return FullHouse
	case 4:
		return Flush
	case 5:
		return Straight
	case 6:
		return ThreeOfAKind
	case 7:
		return TwoPair
	case 8:
		return Pair
	default:
		return HighCard
	}
}

// worstRankValue sits one past the evaluator's weakest hand so short hands
// always lose a comparison against a real five-card evaluation.
const worstRankValue int32 = 7463

// EvaluateBestHand finds the strongest five-card subset of the given cards.
// A poker hand needs five cards; anything shorter evaluates as the weakest
// possible value with zero points.
func EvaluateBestHand(cards []Card) HandValue {
	if len(cards) < 5 {
		return HandValue{RankValue: worstRankValue, Description: "too few cards"}
	}

	best := evaluate(cards)
	rankClass := poker.RankClass(best)

	hv := HandValue{
		Rank:        rankClassToHandRank(rankClass),
		RankValue:   best,
		Description: poker.RankString(best),
	}
	hv.Points = handPoints(hv.Rank)
	hv.BestHand = bestFiveCards(cards, best)
	return hv
}

// evaluate returns the raw evaluator value for the strongest five cards.
// The evaluator accepts at most seven cards, so larger hands search their
// five-card subsets for the best value.
func evaluate(cards []Card) int32 {
	if len(cards) <= 7 {
		evalCards := make([]poker.Card, len(cards))
		for i, c := range cards {
			evalCards[i] = toEvaluatorCard(c)
		}
		return poker.Evaluate(evalCards)
	}

	best := worstRankValue
	for _, combo := range combinations(cards, 5) {
		evalCombo := make([]poker.Card, 5)
		for i, c := range combo {
			evalCombo[i] = toEvaluatorCard(c)
		}
		if v := poker.Evaluate(evalCombo); v < best {
			best = v
		}
	}
	return best
}

// bestFiveCards finds which five cards produce the evaluator's best value.
func bestFiveCards(cards []Card, target int32) []Card {
	if len(cards) <= 5 {
		return append([]Card(nil), cards...)
	}
	for _, combo := range combinations(cards, 5) {
		evalCombo := make([]poker.Card, 5)
		for i, c := range combo {
			evalCombo[i] = toEvaluatorCard(c)
		}
		if poker.Evaluate(evalCombo) == target {
			return combo
		}
	}
	// Unreachable for a valid evaluation, but never return nil.
	return append([]Card(nil), cards[:5]...)
}

// combinations generates all k-card subsets of cards.
func combinations(cards []Card, k int) [][]Card {
	var out [][]Card
	if k <= 0 || k > len(cards) {
		return out
	}

	var gen func(start int, current []Card)
	gen = func(start int, current []Card) {
		if len(current) == k {
			out = append(out, append([]Card(nil), current...))
			return
		}
		for i := start; i <= len(cards)-(k-len(current)); i++ {
			gen(i+1, append(current, cards[i]))
		}
	}
	gen(0, nil)
	return out
}

// CompareHands orders two hand values: -1 if a is weaker, 1 if stronger,
// 0 on a tie. The raw evaluator value is lower for stronger hands.
func CompareHands(a, b HandValue) int {
	switch {
	case a.RankValue > b.RankValue:
		return -1
	case a.RankValue < b.RankValue:
		return 1
	default:
		return 0
	}
}
