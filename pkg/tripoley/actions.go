package tripoley

import (
	"errors"
	"fmt"
)

// ActionType tags a dispatched action.
type ActionType int

const (
	ActionStartGame ActionType = iota
	ActionPlaceBets
	ActionPlayCard
	ActionNextPhase
	ActionNextPlayer
	ActionCollectPot
	ActionDealerBlindChoice
	ActionBidForBlind
	ActionTakeDeadHand
	ActionStartDeadHandBidding
	ActionPlaceDeadHandBid
	ActionPassDeadHandBid
	ActionRotateDealer
	ActionStartNewRound
	ActionReorderCards
	ActionChangePlayerName
	ActionSetAIDifficulty
)

func (t ActionType) String() string {
	switch t {
	case ActionStartGame:
		return "START_GAME"
	case ActionPlaceBets:
		return "PLACE_BETS"
	case ActionPlayCard:
		return "PLAY_CARD"
	case ActionNextPhase:
		return "NEXT_PHASE"
	case ActionNextPlayer:
		return "NEXT_PLAYER"
	case ActionCollectPot:
		return "COLLECT_POT"
	case ActionDealerBlindChoice:
		return "DEALER_BLIND_CHOICE"
	case ActionBidForBlind:
		return "BID_FOR_BLIND"
	case ActionTakeDeadHand:
		return "TAKE_DEAD_HAND"
	case ActionStartDeadHandBidding:
		return "START_DEAD_HAND_BIDDING"
	case ActionPlaceDeadHandBid:
		return "PLACE_DEAD_HAND_BID"
	case ActionPassDeadHandBid:
		return "PASS_DEAD_HAND_BID"
	case ActionRotateDealer:
		return "ROTATE_DEALER"
	case ActionStartNewRound:
		return "START_NEW_ROUND"
	case ActionReorderCards:
		return "REORDER_CARDS"
	case ActionChangePlayerName:
		return "CHANGE_PLAYER_NAME"
	case ActionSetAIDifficulty:
		return "SET_AI_DIFFICULTY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// BlindChoice is the dealer's decision about the dead hand.
type BlindChoice string

const (
	ChoiceSwap    BlindChoice = "swap"
	ChoiceAuction BlindChoice = "auction"
	ChoiceKeep    BlindChoice = "keep"
)

// Bets is one player's allocation across the three betting categories.
type Bets struct {
	Michigan int64
	Hearts   int64
	Poker    int64
}

// Total returns the combined wager.
func (b Bets) Total() int64 {
	return b.Michigan + b.Hearts + b.Poker
}

// Action is the closed set of inputs the reducer understands. Only the
// fields relevant to the Type are read.
type Action struct {
	Type       ActionType
	PlayerID   int
	Card       Card
	Cards      []Card
	Bets       Bets
	Amount     int64
	Section    SectionLabel
	Choice     BlindChoice
	Difficulty Difficulty
	Name       string
}

// Rule violation errors returned by Dispatch. The state is never modified
// when one of these comes back.
var (
	ErrWrongPhase    = errors.New("action not valid in current phase")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrNotDealer     = errors.New("only the dealer may act")
	ErrDealerBids    = errors.New("the dealer may not bid on the blind")
	ErrOverBet       = errors.New("bet exceeds available chips")
	ErrAlreadyBet    = errors.New("bets already placed this round")
	ErrBidTooLow     = errors.New("bid must exceed the current highest bid")
	ErrAlreadyPassed = errors.New("player has passed the auction")
	ErrCardNotHeld   = errors.New("card not in hand")
	ErrIllegalPlay   = errors.New("illegal card play")
	ErrBadReorder    = errors.New("reordered cards are not a permutation of the hand")
	ErrBadConfig     = errors.New("invalid game configuration")
)

// Dispatch applies a single action and returns the resulting state. On a
// rule violation the original state comes back untouched alongside the
// error; an unrecognized action type is a no-op. Dispatch works on a deep
// copy, so a returned state is never a partially-applied transition.
func Dispatch(g *GameState, a Action) (*GameState, error) {
	next := g.clone()
	var err error
	switch a.Type {
	case ActionStartGame:
		err = next.startGame()
	case ActionPlaceBets:
		err = next.placeBets(a)
	case ActionPlayCard:
		err = next.playCard(a)
	case ActionNextPhase:
		err = next.advancePhase()
	case ActionNextPlayer:
		next.advanceTurn()
	case ActionCollectPot:
		err = next.collectPot(a)
	case ActionDealerBlindChoice:
		err = next.dealerBlindChoice(a)
	case ActionBidForBlind, ActionPlaceDeadHandBid:
		err = next.placeDeadHandBid(a)
	case ActionPassDeadHandBid:
		err = next.passDeadHandBid(a)
	case ActionTakeDeadHand:
		err = next.takeDeadHand(a)
	case ActionStartDeadHandBidding:
		err = next.startDeadHandBidding()
	case ActionRotateDealer:
		next.rotateDealer()
	case ActionStartNewRound:
		err = next.startNewRound()
	case ActionReorderCards:
		err = next.reorderCards(a)
	case ActionChangePlayerName:
		next.changePlayerName(a)
	case ActionSetAIDifficulty:
		err = next.setAIDifficulty(a)
	default:
		// Unknown actions pass through untouched so presentation-only
		// action types stay forward compatible.
		return g, nil
	}
	if err != nil {
		return g, err
	}
	return next, nil
}

func (g *GameState) startGame() error {
	if g.Phase != PhasePlayerSelection {
		return ErrWrongPhase
	}
	n := len(g.Players)
	if n < 2 || n > 9 {
		return fmt.Errorf("%w: %d players", ErrBadConfig, n)
	}

	g.DealerID = g.rng.Intn(n)
	for _, p := range g.Players {
		p.Chips = StartingChips
	}
	if err := g.dealAll(); err != nil {
		return err
	}

	g.Phase = PhaseDealerBlindChoice
	g.CurrentPlayer = (g.DealerID + 1) % n
	g.CurrentTrick = nil
	g.log.Infof("game started: %d players, dealer %d", n, g.DealerID)
	return nil
}

// dealAll shuffles a fresh deck and distributes it to the dead hand and
// every seat. Scores, tricks and per-round flags reset with the deal.
func (g *GameState) dealAll() error {
	deck := NewDeck(g.rng).Cards()
	deadHand, hands, err := Deal(deck, len(g.Players), g.DealerID)
	if err != nil {
		return err
	}
	g.DeadHand = deadHand
	g.Deck = nil
	for i, p := range g.Players {
		p.Cards = hands[i]
		p.Score = 0
		p.TricksWon = 0
		p.HasBet = false
		p.CurrentBid = 0
		p.HasBid = false
		p.Passed = false
	}
	return nil
}

func (g *GameState) placeBets(a Action) error {
	if g.Phase != PhaseBetting {
		return ErrWrongPhase
	}
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if cur := g.Current(); cur == nil || cur.ID != a.PlayerID {
		return ErrNotYourTurn
	}
	if p.HasBet {
		return ErrAlreadyBet
	}
	if a.Bets.Michigan < 0 || a.Bets.Hearts < 0 || a.Bets.Poker < 0 {
		return fmt.Errorf("%w: negative amount", ErrOverBet)
	}
	if a.Bets.Total() > p.Chips {
		return fmt.Errorf("%w: %d > %d", ErrOverBet, a.Bets.Total(), p.Chips)
	}

	p.Chips -= a.Bets.Total()
	// Credit failures cannot happen for the fixed categories; the amounts
	// were validated above.
	_ = g.Pot.CreditCategory(CategoryMichigan, a.Bets.Michigan)
	_ = g.Pot.CreditCategory(CategoryHearts, a.Bets.Hearts)
	_ = g.Pot.CreditCategory(CategoryPoker, a.Bets.Poker)
	p.HasBet = true

	if g.allBetsIn() {
		g.Phase = PhaseMichigan
		g.CurrentPlayer = (g.DealerID + 1) % len(g.Players)
		g.CurrentTrick = nil
	} else {
		g.advanceTurn()
	}
	return nil
}

func (g *GameState) allBetsIn() bool {
	for _, p := range g.Players {
		if !p.HasBet {
			return false
		}
	}
	return true
}

func (g *GameState) playCard(a Action) error {
	if !isCardPhase(g.Phase) {
		return ErrWrongPhase
	}
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if cur := g.Current(); cur == nil || cur.ID != a.PlayerID {
		return ErrNotYourTurn
	}
	if !p.HoldsCard(a.Card) {
		return ErrCardNotHeld
	}
	if playable := IsPlayable(a.Card, p, g); !playable.OK {
		return fmt.Errorf("%w: %s", ErrIllegalPlay, playable.Reason)
	}
	result := EvaluatePlay(a.Card, p, g)
	if !result.Valid {
		return fmt.Errorf("%w: %s", ErrIllegalPlay, result.Message)
	}

	p.removeCard(a.Card)
	if g.Phase != PhasePoker {
		// Poker points settle once, at the showdown.
		p.Score += result.Points
	}

	// Hearts court cards collect their matching section on the spot.
	if label := stopSection(g.Phase, a.Card); label != "" {
		amount, _ := g.Pot.Collect(label)
		p.Chips += amount
		if s := g.Pot.Section(label); s != nil {
			s.Cards = []Card{a.Card}
		}
		if amount > 0 {
			g.log.Debugf("player %d collects %s for %d chips", p.ID, label, amount)
		}
	}

	switch g.Phase {
	case PhaseMichigan:
		g.playMichiganCard(p, a.Card)
	case PhaseHearts:
		g.playHeartsCard()
	case PhasePoker:
		g.advanceTurn()
	}
	return nil
}

func (g *GameState) playMichiganCard(p *Player, card Card) {
	g.CurrentTrick = append(g.CurrentTrick, card)

	n := len(g.Players)
	if len(g.CurrentTrick) == n {
		// Trick complete. The leader sits n-1 seats behind the player
		// who just played.
		leader := (g.CurrentPlayer - (n - 1) + n) % n
		winnerSeat := (leader + trickWinner(g.CurrentTrick)) % n
		g.Players[winnerSeat].TricksWon++
		g.CurrentTrick = nil
		g.CurrentPlayer = winnerSeat
	} else {
		g.advanceTurn()
	}

	// First player out of cards ends the trick-taking round and takes
	// the POT section.
	if len(p.Cards) == 0 {
		amount, _ := g.Pot.Collect(SectionPot)
		p.Chips += amount
		g.CurrentTrick = nil
		g.Phase = PhaseHearts
		g.CurrentPlayer = (g.DealerID + 1) % n
		g.log.Infof("player %d goes out, michigan over (+%d chips)", p.ID, amount)
	}
}

func (g *GameState) playHeartsCard() {
	g.advanceTurn()
	for _, p := range g.Players {
		if p.HasSuit(Hearts) {
			return
		}
	}
	// No hearts left anywhere; move to the poker round.
	g.Phase = PhasePoker
	g.CurrentPlayer = (g.DealerID + 1) % len(g.Players)
}

func (g *GameState) advancePhase() error {
	if g.Phase == PhasePoker {
		g.pokerShowdown()
		return nil
	}
	next := nextPhase(g.Phase)
	if next == g.Phase {
		return ErrWrongPhase
	}
	g.Phase = next
	g.CurrentTrick = nil
	g.CurrentPlayer = (g.DealerID + 1) % len(g.Players)
	return nil
}

// pokerShowdown compares every remaining hand and pays the poker sections
// to the strongest. Ties break toward the earliest seat after the dealer.
func (g *GameState) pokerShowdown() {
	n := len(g.Players)
	winner := -1
	var best HandValue
	for i := 0; i < n; i++ {
		seat := (g.DealerID + 1 + i) % n
		p := g.Players[seat]
		if len(p.Cards) == 0 {
			continue
		}
		hv := EvaluateBestHand(p.Cards)
		p.Score += hv.Points
		if winner == -1 || CompareHands(hv, best) > 0 {
			winner = seat
			best = hv
		}
	}
	if winner >= 0 {
		w := g.Players[winner]
		for _, label := range CategorySections[CategoryPoker] {
			amount, _ := g.Pot.Collect(label)
			w.Chips += amount
		}
		g.log.Infof("player %d wins the poker round with %s", w.ID, best.Description)
	}
	g.Phase = PhaseGameOver
	g.CurrentTrick = nil
}

func (g *GameState) collectPot(a Action) error {
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	s := g.Pot.Section(a.Section)
	if s == nil {
		// Unknown sections are ignored for forward compatibility.
		return nil
	}
	amount, _ := g.Pot.Collect(a.Section)
	p.Chips += amount
	return nil
}

func (g *GameState) dealerBlindChoice(a Action) error {
	if g.Phase != PhaseDealerBlindChoice {
		return ErrWrongPhase
	}
	dealer := g.Player(g.DealerID)
	if dealer == nil {
		return ErrUnknownPlayer
	}
	if a.PlayerID != g.DealerID {
		return ErrNotDealer
	}

	switch a.Choice {
	case ChoiceSwap:
		dealer.Cards, g.DeadHand = g.DeadHand, dealer.Cards
		g.enterBetting()
	case ChoiceAuction:
		return g.startDeadHandBidding()
	case ChoiceKeep:
		g.enterBetting()
	default:
		// Unknown choice: leave the state alone.
	}
	return nil
}

func (g *GameState) startDeadHandBidding() error {
	if g.Phase != PhaseDealerBlindChoice && g.Phase != PhaseBlindAuction {
		return ErrWrongPhase
	}
	g.Phase = PhaseBlindAuction
	g.CurrentPlayer = (g.DealerID + 1) % len(g.Players)
	for _, p := range g.Players {
		p.CurrentBid = 0
		p.HasBid = false
		p.Passed = false
	}
	// The dealer declined the hand; they sit the auction out.
	g.Player(g.DealerID).Passed = true
	return nil
}

func (g *GameState) placeDeadHandBid(a Action) error {
	if g.Phase != PhaseBlindAuction {
		return ErrWrongPhase
	}
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if a.PlayerID == g.DealerID {
		return ErrDealerBids
	}
	if cur := g.Current(); cur == nil || cur.ID != a.PlayerID {
		return ErrNotYourTurn
	}
	if p.Passed {
		return ErrAlreadyPassed
	}
	if a.Amount > p.Chips {
		return fmt.Errorf("%w: %d > %d", ErrOverBet, a.Amount, p.Chips)
	}
	if high, _ := g.highestBid(); a.Amount <= high {
		return fmt.Errorf("%w: %d <= %d", ErrBidTooLow, a.Amount, high)
	}

	p.CurrentBid = a.Amount
	p.HasBid = true
	g.advanceAuctionTurn()
	g.resolveAuction()
	return nil
}

func (g *GameState) passDeadHandBid(a Action) error {
	if g.Phase != PhaseBlindAuction {
		return ErrWrongPhase
	}
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if cur := g.Current(); cur == nil || cur.ID != a.PlayerID {
		return ErrNotYourTurn
	}
	if p.Passed {
		return ErrAlreadyPassed
	}
	p.Passed = true
	g.advanceAuctionTurn()
	g.resolveAuction()
	return nil
}

// highestBid returns the top standing bid and the bidder's id (-1 if none).
func (g *GameState) highestBid() (int64, int) {
	var high int64
	holder := -1
	for _, p := range g.Players {
		if p.HasBid && p.CurrentBid > high {
			high = p.CurrentBid
			holder = p.ID
		}
	}
	return high, holder
}

// advanceAuctionTurn skips seats that have already passed.
func (g *GameState) advanceAuctionTurn() {
	n := len(g.Players)
	for i := 0; i < n; i++ {
		g.advanceTurn()
		if cur := g.Current(); cur != nil && !cur.Passed {
			return
		}
	}
}

// resolveAuction ends the auction once all but one bidder has passed. The
// survivor pays their bid into the POT section and swaps hands with the
// dead hand. If every seat passed the dead hand stays dead.
func (g *GameState) resolveAuction() {
	active := 0
	var last *Player
	for _, p := range g.Players {
		if !p.Passed {
			active++
			last = p
		}
	}
	switch {
	case active == 0:
		g.log.Infof("blind auction: all passed, dead hand stays")
		g.enterBetting()
	case active == 1 && last.HasBid:
		last.Chips -= last.CurrentBid
		_ = g.Pot.Credit(SectionPot, last.CurrentBid)
		last.Cards, g.DeadHand = g.DeadHand, last.Cards
		g.log.Infof("player %d wins the blind for %d chips", last.ID, last.CurrentBid)
		g.enterBetting()
	}
}

func (g *GameState) takeDeadHand(a Action) error {
	if g.Phase != PhaseDealerBlindChoice && g.Phase != PhaseBlindAuction {
		return ErrWrongPhase
	}
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	p.Cards, g.DeadHand = g.DeadHand, p.Cards
	g.enterBetting()
	return nil
}

// enterBetting opens the betting phase with the seat after the dealer.
func (g *GameState) enterBetting() {
	g.Phase = PhaseBetting
	g.CurrentPlayer = (g.DealerID + 1) % len(g.Players)
	for _, p := range g.Players {
		p.HasBet = false
		p.CurrentBid = 0
		p.HasBid = false
		p.Passed = false
	}
}

func (g *GameState) rotateDealer() {
	if len(g.Players) == 0 {
		return
	}
	g.DealerID = (g.DealerID + 1) % len(g.Players)
	g.CurrentPlayer = (g.DealerID + 1) % len(g.Players)
}

// startNewRound rotates the dealer, redeals, and re-enters betting. Only a
// finished round restarts; chip balances and any uncollected section chips
// carry over.
func (g *GameState) startNewRound() error {
	if g.Phase != PhaseGameOver || len(g.Players) == 0 {
		return ErrWrongPhase
	}
	g.rotateDealer()
	if err := g.dealAll(); err != nil {
		return err
	}
	g.CurrentTrick = nil
	g.enterBetting()
	return nil
}

func (g *GameState) reorderCards(a Action) error {
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if !samePermutation(p.Cards, a.Cards) {
		return ErrBadReorder
	}
	p.Cards = append([]Card(nil), a.Cards...)
	return nil
}

// samePermutation reports whether two card sequences hold the same multiset.
// All 52 cards are distinct, so counting is exact.
func samePermutation(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Card]int, len(a))
	for _, c := range a {
		counts[c]++
	}
	for _, c := range b {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

func (g *GameState) changePlayerName(a Action) {
	for _, p := range g.Players {
		if p.IsHuman && a.Name != "" {
			p.Name = a.Name
		}
	}
}

func (g *GameState) setAIDifficulty(a Action) error {
	p := g.Player(a.PlayerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if p.IsHuman {
		return fmt.Errorf("%w: player %d is human", ErrBadConfig, p.ID)
	}
	if !a.Difficulty.Valid() {
		return fmt.Errorf("%w: difficulty %q", ErrBadConfig, a.Difficulty)
	}
	p.Difficulty = a.Difficulty
	return nil
}
