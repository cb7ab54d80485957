package action

import "fmt"

// Action is a turn effect carried by a card. The game resolves the actions of
// a played card in order.
type Action interface {
	fmt.Stringer
}

// DrawCardsAction makes the next player draw amount cards and lose the turn.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) String() string {
	return fmt.Sprintf("draw %d", a.amount)
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) String() string {
	return "reverse"
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) String() string {
	return "skip"
}

// PickColorAction announces the color chosen for the wild card just played.
type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (PickColorAction) String() string {
	return "pick color"
}
