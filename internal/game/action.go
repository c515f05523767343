package game

// Street represents the stage of a hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
	HandComplete
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case HandComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// BoardCards returns how many community cards are exposed on a street.
func (s Street) BoardCards() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River, Showdown, HandComplete:
		return 5
	default:
		return 0
	}
}

// ActionKind represents a discrete player decision. PostSmallBlind and
// PostBigBlind only appear in the action log for forced bets; they are not
// accepted by ExecuteAction.
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Bet
	Raise
	PostSmallBlind
	PostBigBlind
)

func (a ActionKind) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case PostSmallBlind:
		return "post_small_blind"
	case PostBigBlind:
		return "post_big_blind"
	default:
		return "unknown"
	}
}

// AppliedAction is one entry in the hand's action log. Amount is the absolute
// "to" amount for bets and raises and the committed delta for calls and blind
// posts; zero for checks and folds.
type AppliedAction struct {
	Seat     int
	Street   Street
	Kind     ActionKind
	Amount   int
	AllIn    bool
	Injected bool
}
