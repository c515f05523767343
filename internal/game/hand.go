package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/handsim/internal/deck"
)

// ErrNoBoardCards reports that a street needed community cards and neither a
// deck nor a board runout could supply them.
var ErrNoBoardCards = errors.New("no board cards available")

// HandState is the mutable state of a single hand, owned exclusively by its
// state machine methods. Pot accounting: the pot holds only chips swept from
// completed streets; live-round chips stay on each player's Bet. The total
// of stacks, live bets and pot is constant from blind posting to payout.
type HandState struct {
	Players  []*Player
	Button   int
	Street   Street
	Board    []deck.Card
	Betting  *BettingState
	ActionOn int // seat to act, -1 when no action is pending
	Log      []AppliedAction
	Results  []Payout

	needAction map[int]struct{}
	pots       *PotManager
	deck       *deck.Deck
	runout     []deck.Card
	cmp        HandComparator
	startTotal int
	logger     zerolog.Logger
	injected   bool
}

// NewHand creates a hand, posts the blinds as forced bets, deals hole cards
// (unless supplied via WithHoleCards) and computes the first actor.
func NewHand(names []string, button, smallBlind, bigBlind int, opts ...HandOption) (*HandState, error) {
	cfg := defaultHandConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(names, button, smallBlind, bigBlind); err != nil {
		return nil, err
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		chips := cfg.startChips
		if cfg.chipCounts != nil {
			chips = cfg.chipCounts[i]
		}
		players[i] = &Player{Seat: i, Name: name, Chips: chips}
		if cfg.holeCards != nil {
			players[i].HoleCards = append([]deck.Card(nil), cfg.holeCards[i]...)
		}
	}

	h := &HandState{
		Players: players,
		Button:  button,
		Street:  Preflop,
		Betting: &BettingState{
			SmallBlind: smallBlind,
			BigBlind:   bigBlind,
			CurrentBet: bigBlind,
			MinRaise:   bigBlind,
		},
		needAction: make(map[int]struct{}),
		runout:     cfg.runout,
		cmp:        cfg.cmp,
		logger:     cfg.logger,
	}
	h.pots = NewPotManager(players)

	if cfg.holeCards == nil {
		d := cfg.deck
		if d == nil {
			if cfg.rng == nil {
				return nil, fmt.Errorf("an RNG, deck or hole cards are required to deal")
			}
			d = deck.New(cfg.rng)
		}
		h.deck = d
		for _, p := range h.Players {
			cards, err := d.Deal(2)
			if err != nil {
				return nil, err
			}
			p.HoleCards = append([]deck.Card(nil), cards...)
		}
	} else if cfg.deck != nil {
		h.deck = cfg.deck
	}

	for _, p := range players {
		h.startTotal += p.Chips
	}

	h.postBlinds()
	h.populateNeedAction()

	if h.roundClosed() {
		// Blinds put everyone who could act all-in; run the board out.
		if err := h.advanceStreet(); err != nil {
			return nil, err
		}
		return h, nil
	}

	if len(players) == 2 {
		// Heads-up the button posts the small blind and acts first preflop.
		h.ActionOn = h.nextToAct(button)
	} else {
		h.ActionOn = h.nextToAct((button + 3) % len(players))
	}
	return h, nil
}

func (h *HandState) postBlinds() {
	sb, bb := h.blindSeats()

	post := func(seat, amount int, kind ActionKind) {
		p := h.Players[seat]
		commit := min(amount, p.Chips)
		p.Chips -= commit
		p.Bet = commit
		p.TotalBet = commit
		if p.Chips == 0 {
			p.AllIn = true
		}
		h.Log = append(h.Log, AppliedAction{
			Seat:   seat,
			Street: Preflop,
			Kind:   kind,
			Amount: commit,
			AllIn:  p.AllIn,
		})
	}

	post(sb, h.Betting.SmallBlind, PostSmallBlind)
	post(bb, h.Betting.BigBlind, PostBigBlind)
}

func (h *HandState) blindSeats() (sb, bb int) {
	n := len(h.Players)
	if n == 2 {
		return h.Button, (h.Button + 1) % n
	}
	return (h.Button + 1) % n, (h.Button + 2) % n
}

// SmallBlindSeat returns the seat that posted the small blind.
func (h *HandState) SmallBlindSeat() int {
	sb, _ := h.blindSeats()
	return sb
}

// BigBlindSeat returns the seat that posted the big blind.
func (h *HandState) BigBlindSeat() int {
	_, bb := h.blindSeats()
	return bb
}

// NeedsAction reports whether the seat still owes a decision this street.
func (h *HandState) NeedsAction(seat int) bool {
	_, ok := h.needAction[seat]
	return ok
}

// PendingSeats returns, in seat order, the seats that still owe a decision
// this street. An empty result means the round is closing or closed.
func (h *HandState) PendingSeats() []int {
	seats := make([]int, 0, len(h.needAction))
	for seat := range h.Players {
		if _, ok := h.needAction[seat]; ok {
			seats = append(seats, seat)
		}
	}
	return seats
}

// Complete returns true once the pot has been awarded.
func (h *HandState) Complete() bool {
	return h.Street == HandComplete
}

// ChipTotal returns stacks plus live bets plus swept pot. It must equal the
// sum of starting stacks after every action.
func (h *HandState) ChipTotal() int {
	total := h.pots.Total()
	for _, p := range h.Players {
		total += p.Chips + p.Bet
	}
	return total
}

// Pots returns the current layers with live bets counted into the top layer.
func (h *HandState) Pots() []Pot {
	return h.pots.PotsWithLive(h.Players)
}

// PotTotal returns all chips wagered this hand, including the live round.
func (h *HandState) PotTotal() int {
	total := 0
	for _, pot := range h.Pots() {
		total += pot.Amount
	}
	return total
}

// SweptPot returns only the chips collected from completed streets.
func (h *HandState) SweptPot() int {
	return h.pots.Total()
}

// ExecuteAction validates and applies one action for the seat on turn,
// advancing the street (and ultimately the showdown) when the round closes.
// On a RuleError the state is unchanged and the caller may retry.
func (h *HandState) ExecuteAction(seat int, kind ActionKind, amount int) error {
	injected := h.injected
	h.injected = false

	if h.Street >= Showdown {
		return ruleErr(seat, kind, ReasonHandOver, "hand is at %s", h.Street)
	}
	if seat != h.ActionOn {
		return ruleErr(seat, kind, ReasonWrongActor, "action is on seat %d", h.ActionOn)
	}

	eff, err := Validate(h, seat, kind, amount)
	if err != nil {
		return err
	}

	p := h.Players[seat]
	p.Chips -= eff.Commit
	p.Bet = eff.BetTo
	p.TotalBet += eff.Commit
	if eff.AllIn {
		p.AllIn = true
	}
	if kind == Fold {
		p.Folded = true
	}

	prevBet := h.Betting.CurrentBet
	h.Betting.CurrentBet = eff.NewCurrentBet
	if eff.FullRaise {
		h.Betting.MinRaise = eff.NewMinRaise
	}

	delete(h.needAction, seat)
	if eff.NewCurrentBet > prevBet {
		h.reopen(seat, eff.NewCurrentBet)
	}

	logAmount := amount
	if kind == Call {
		logAmount = eff.Commit
	} else if kind == Fold || kind == Check {
		logAmount = 0
	}
	h.Log = append(h.Log, AppliedAction{
		Seat:     seat,
		Street:   h.Street,
		Kind:     kind,
		Amount:   logAmount,
		AllIn:    eff.AllIn,
		Injected: injected,
	})

	h.logger.Debug().
		Int("seat", seat).
		Str("street", h.Street.String()).
		Str("action", kind.String()).
		Int("amount", logAmount).
		Int("pot", h.PotTotal()).
		Int("chips", p.Chips).
		Int("bet", p.Bet).
		Bool("injected", injected).
		Msg("action applied")

	if err := h.checkConservation(); err != nil {
		return err
	}

	if h.inHandCount() == 1 {
		return h.finishFoldOut()
	}
	if h.roundClosed() {
		return h.advanceStreet()
	}
	h.ActionOn = h.nextToAct(seat + 1)
	return nil
}

// ExecuteInjected applies an action synthesized by a replay adapter; it is
// identical to ExecuteAction except the log entry is flagged.
func (h *HandState) ExecuteInjected(seat int, kind ActionKind, amount int) error {
	h.injected = true
	err := h.ExecuteAction(seat, kind, amount)
	h.injected = false
	return err
}

// reopen puts every live seat that has not matched the new wager back into
// the need-action set. After a full raise that is everyone still able to
// act; after a short all-in raise, seats that already matched the previous
// bet and now only face the shortfall are included too, since they owe at
// least a call of the difference.
func (h *HandState) reopen(actor, newBet int) {
	for _, p := range h.Players {
		if p.Seat == actor || !p.CanAct() {
			continue
		}
		if p.Bet < newBet {
			h.needAction[p.Seat] = struct{}{}
		}
	}
}

func (h *HandState) populateNeedAction() {
	clear(h.needAction)
	for _, p := range h.Players {
		if p.CanAct() {
			h.needAction[p.Seat] = struct{}{}
		}
	}
}

func (h *HandState) inHandCount() int {
	count := 0
	for _, p := range h.Players {
		if p.InHand() {
			count++
		}
	}
	return count
}

func (h *HandState) canActCount() int {
	count := 0
	for _, p := range h.Players {
		if p.CanAct() {
			count++
		}
	}
	return count
}

// roundClosed reports whether the street is finished: nobody owes an action
// and either at most one player can still act or all live bets are level.
func (h *HandState) roundClosed() bool {
	if len(h.needAction) > 0 {
		return false
	}
	if h.canActCount() <= 1 {
		return true
	}
	for _, p := range h.Players {
		if p.CanAct() && p.Bet != h.Betting.CurrentBet {
			return false
		}
	}
	return true
}

// nextToAct returns the first seat at or after from (wrapping) that owes an
// action, or -1.
func (h *HandState) nextToAct(from int) int {
	n := len(h.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if _, ok := h.needAction[seat]; ok {
			return seat
		}
	}
	return -1
}

// advanceStreet sweeps the round, deals the next board cards and opens the
// next betting round. When at most one player can still act it keeps
// advancing with no betting until the board is complete.
func (h *HandState) advanceStreet() error {
	h.pots.Sweep(h.Players)
	h.Betting.resetForStreet()
	clear(h.needAction)
	h.ActionOn = -1

	for {
		switch h.Street {
		case Preflop:
			h.Street = Flop
		case Flop:
			h.Street = Turn
		case Turn:
			h.Street = River
		case River:
			h.Street = Showdown
			h.logger.Debug().Int("pot", h.SweptPot()).Msg("showdown")
			if h.cmp != nil {
				return h.settle()
			}
			return nil
		default:
			return nil
		}

		if err := h.dealBoard(); err != nil {
			return err
		}
		h.logger.Debug().
			Str("street", h.Street.String()).
			Strs("board", deck.Strings(h.Board)).
			Msg("street dealt")

		if h.canActCount() > 1 {
			h.populateNeedAction()
			h.ActionOn = h.nextToAct((h.Button + 1) % len(h.Players))
			return nil
		}
	}
}

func (h *HandState) dealBoard() error {
	need := h.Street.BoardCards() - len(h.Board)
	if need <= 0 {
		return nil
	}
	if h.runout != nil {
		if len(h.Board)+need > len(h.runout) {
			return fmt.Errorf("%w: street %s needs %d cards, runout has %d",
				ErrNoBoardCards, h.Street, h.Street.BoardCards(), len(h.runout))
		}
		h.Board = append(h.Board, h.runout[len(h.Board):len(h.Board)+need]...)
		return nil
	}
	if h.deck == nil {
		return fmt.Errorf("%w: no deck for street %s", ErrNoBoardCards, h.Street)
	}
	cards, err := h.deck.Deal(need)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoBoardCards, err)
	}
	h.Board = append(h.Board, cards...)
	return nil
}

// finishFoldOut awards the whole pot to the last player in the hand without
// revealing cards.
func (h *HandState) finishFoldOut() error {
	h.pots.Sweep(h.Players)
	clear(h.needAction)
	h.ActionOn = -1

	var winner *Player
	for _, p := range h.Players {
		if p.InHand() {
			winner = p
			break
		}
	}
	amount := h.pots.Total()
	winner.Chips += amount
	h.pots.Clear()
	h.Results = []Payout{{Seat: winner.Seat, Amount: amount}}
	h.Street = HandComplete

	h.logger.Debug().
		Int("seat", winner.Seat).
		Int("amount", amount).
		Msg("hand won uncontested")

	return h.checkConservation()
}

func (h *HandState) checkConservation() error {
	if got := h.ChipTotal(); got != h.startTotal {
		return &InvariantError{
			Message:  "chip total changed",
			Expected: h.startTotal,
			Actual:   got,
			State:    h.Snapshot(),
		}
	}
	for _, p := range h.Players {
		if p.Chips < 0 {
			return &InvariantError{
				Message:  fmt.Sprintf("seat %d stack is negative", p.Seat),
				Expected: 0,
				Actual:   p.Chips,
				State:    h.Snapshot(),
			}
		}
		if p.AllIn && p.Chips != 0 {
			return &InvariantError{
				Message:  fmt.Sprintf("seat %d marked all-in with chips behind", p.Seat),
				Expected: 0,
				Actual:   p.Chips,
				State:    h.Snapshot(),
			}
		}
	}
	return nil
}
