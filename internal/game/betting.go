package game

// BettingState tracks the wager level for the current betting round.
// MinRaise is the smallest legal raise increment; it starts at the big blind
// each street and updates to the size of the last full raise.
type BettingState struct {
	SmallBlind int
	BigBlind   int
	CurrentBet int
	MinRaise   int
}

func (b *BettingState) resetForStreet() {
	b.CurrentBet = 0
	b.MinRaise = b.BigBlind
}

// Effect is the numeric outcome of a validated action. The state machine
// applies it; the validator never mutates anything.
type Effect struct {
	Commit        int // chips moved from the actor's stack to their round bet
	BetTo         int // actor's round bet after the action
	AllIn         bool
	NewCurrentBet int
	NewMinRaise   int
	FullRaise     bool // raise met the minimum increment and resets MinRaise
}

// Validate decides whether seat may perform the action and computes its
// effect. amount is the absolute "to" amount for Bet and Raise and is
// ignored for Fold, Check and Call. The hand state is read-only here;
// turn order is enforced by ExecuteAction.
func Validate(h *HandState, seat int, kind ActionKind, amount int) (Effect, error) {
	if seat < 0 || seat >= len(h.Players) {
		return Effect{}, ruleErr(seat, kind, ReasonWrongActor, "seat out of range")
	}
	p := h.Players[seat]
	if p.Folded {
		return Effect{}, ruleErr(seat, kind, ReasonNotInHand, "player has folded")
	}
	if p.AllIn {
		return Effect{}, ruleErr(seat, kind, ReasonAlreadyAllIn, "player is all-in")
	}

	b := h.Betting
	eff := Effect{
		BetTo:         p.Bet,
		NewCurrentBet: b.CurrentBet,
		NewMinRaise:   b.MinRaise,
	}
	total := p.Chips + p.Bet

	switch kind {
	case Fold:
		return eff, nil

	case Check:
		if p.Bet != b.CurrentBet {
			return Effect{}, ruleErr(seat, kind, ReasonCannotCheck, "must call %d", b.CurrentBet-p.Bet)
		}
		return eff, nil

	case Call:
		owed := b.CurrentBet - p.Bet
		if owed <= 0 {
			return Effect{}, ruleErr(seat, kind, ReasonNothingToCall, "nothing to call")
		}
		eff.Commit = min(owed, p.Chips)
		eff.BetTo = p.Bet + eff.Commit
		eff.AllIn = eff.Commit == p.Chips
		return eff, nil

	case Bet:
		if b.CurrentBet != 0 {
			return Effect{}, ruleErr(seat, kind, ReasonBetNotAllowed, "facing a bet of %d, raise instead", b.CurrentBet)
		}
		if amount > total {
			return Effect{}, ruleErr(seat, kind, ReasonInsufficientChips, "bet %d with only %d behind", amount, total)
		}
		if amount <= 0 {
			return Effect{}, ruleErr(seat, kind, ReasonBetTooSmall, "bet must be positive")
		}
		if amount < b.BigBlind && amount != total {
			return Effect{}, ruleErr(seat, kind, ReasonBetTooSmall, "minimum bet is %d", b.BigBlind)
		}
		eff.Commit = amount - p.Bet
		eff.BetTo = amount
		eff.AllIn = eff.Commit == p.Chips
		eff.NewCurrentBet = amount
		if amount >= b.BigBlind {
			eff.FullRaise = true
			eff.NewMinRaise = amount
		}
		return eff, nil

	case Raise:
		if b.CurrentBet == 0 {
			return Effect{}, ruleErr(seat, kind, ReasonRaiseNotAllowed, "no bet to raise, bet instead")
		}
		if amount > total {
			return Effect{}, ruleErr(seat, kind, ReasonInsufficientChips, "raise to %d with only %d behind", amount, total)
		}
		if amount <= b.CurrentBet {
			// A raise-to at or below the current bet is only legal as the
			// actor's entire stack, in which case it is an all-in call.
			if amount != total {
				return Effect{}, ruleErr(seat, kind, ReasonRaiseTooSmall, "raise to %d does not exceed current bet %d", amount, b.CurrentBet)
			}
			eff.Commit = p.Chips
			eff.BetTo = amount
			eff.AllIn = true
			return eff, nil
		}
		if amount < b.CurrentBet+b.MinRaise && amount != total {
			return Effect{}, ruleErr(seat, kind, ReasonRaiseTooSmall, "minimum raise is to %d", b.CurrentBet+b.MinRaise)
		}
		eff.Commit = amount - p.Bet
		eff.BetTo = amount
		eff.AllIn = amount == total
		eff.NewCurrentBet = amount
		if amount >= b.CurrentBet+b.MinRaise {
			// A full raise resets the minimum increment; a short all-in
			// raise leaves it untouched and does not reopen min-raise
			// tracking for earlier actors.
			eff.FullRaise = true
			eff.NewMinRaise = amount - b.CurrentBet
		}
		return eff, nil

	default:
		return Effect{}, ruleErr(seat, kind, ReasonBadActionKind, "kind %d not accepted", int(kind))
	}
}

// ActionOptions enumerates what the seat on turn may legally do, with the
// numeric bounds callers need to build a concrete action.
type ActionOptions struct {
	Kinds      []ActionKind
	CallAmount int // chips owed to call (clamped to stack)
	MinBetTo   int // minimum opening bet, when Bet is legal
	MinRaiseTo int // minimum full raise-to, when Raise is legal
	MaxTo      int // the actor's stack plus round bet (an all-in "to")
}

// ValidActions returns the legal actions for a seat. A seat that has folded
// or is all-in has none.
func (h *HandState) ValidActions(seat int) ActionOptions {
	if seat < 0 || seat >= len(h.Players) {
		return ActionOptions{}
	}
	p := h.Players[seat]
	if !p.CanAct() || h.Street >= Showdown {
		return ActionOptions{}
	}

	b := h.Betting
	opts := ActionOptions{MaxTo: p.Chips + p.Bet}
	owed := b.CurrentBet - p.Bet

	opts.Kinds = append(opts.Kinds, Fold)
	if owed <= 0 {
		opts.Kinds = append(opts.Kinds, Check)
		if b.CurrentBet == 0 && p.Chips > 0 {
			opts.Kinds = append(opts.Kinds, Bet)
			opts.MinBetTo = min(b.BigBlind, opts.MaxTo)
		}
	} else {
		opts.Kinds = append(opts.Kinds, Call)
		opts.CallAmount = min(owed, p.Chips)
	}
	if b.CurrentBet > 0 && p.Chips > owed {
		opts.Kinds = append(opts.Kinds, Raise)
		opts.MinRaiseTo = min(b.CurrentBet+b.MinRaise, opts.MaxTo)
	}

	return opts
}
