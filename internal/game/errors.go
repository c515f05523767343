package game

import (
	"errors"
	"fmt"
)

// ErrIllegalAction is the category sentinel for every expected rule
// violation. Match with errors.Is; inspect details with errors.As on
// *RuleError.
var ErrIllegalAction = errors.New("illegal action")

// RuleReason is a machine-readable code for why an action was rejected.
type RuleReason string

const (
	ReasonHandOver          RuleReason = "hand_over"
	ReasonWrongActor        RuleReason = "wrong_actor"
	ReasonNotInHand         RuleReason = "not_in_hand"
	ReasonAlreadyAllIn      RuleReason = "already_all_in"
	ReasonCannotCheck       RuleReason = "cannot_check"
	ReasonNothingToCall     RuleReason = "nothing_to_call"
	ReasonBetNotAllowed     RuleReason = "bet_not_allowed"
	ReasonRaiseNotAllowed   RuleReason = "raise_not_allowed"
	ReasonBetTooSmall       RuleReason = "bet_too_small"
	ReasonRaiseTooSmall     RuleReason = "raise_too_small"
	ReasonInsufficientChips RuleReason = "insufficient_chips"
	ReasonBadActionKind     RuleReason = "bad_action_kind"
)

// RuleError reports an action rejected by the betting rules. The hand state
// is guaranteed unchanged; the caller may retry with a legal action.
type RuleError struct {
	Seat   int
	Kind   ActionKind
	Reason RuleReason
	Detail string
}

func (e *RuleError) Error() string {
	msg := fmt.Sprintf("illegal %s by seat %d: %s", e.Kind, e.Seat, e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Is makes every RuleError match ErrIllegalAction.
func (e *RuleError) Is(target error) bool {
	return target == ErrIllegalAction
}

func ruleErr(seat int, kind ActionKind, reason RuleReason, format string, args ...any) error {
	return &RuleError{
		Seat:   seat,
		Kind:   kind,
		Reason: reason,
		Detail: fmt.Sprintf(format, args...),
	}
}

// InvariantError reports a chip-conservation or stack-sign violation. It
// indicates a defect in the engine itself and is never recoverable.
type InvariantError struct {
	Message  string
	Expected int
	Actual   int
	State    Snapshot
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %s (expected %d, got %d) state=%+v",
		e.Message, e.Expected, e.Actual, e.State)
}
