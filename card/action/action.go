// Package action describes what playing a card does to the flow of the
// game. Cards expose a list of these descriptors and the state machine
// applies them one by one, so card behavior stays out of the turn logic.
package action

// Action is a single effect of a played card.
type Action interface{}

// SkipTurnAction moves the turn cursor one extra step.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

// ReverseTurnsAction flips the direction of play.
type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

// PickColorAction marks a card whose color the player chooses when
// playing it.
type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

// DrawCardsAction makes the player the cursor lands on draw from the
// main deck.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

// Amount is the number of cards to draw.
func (a DrawCardsAction) Amount() int {
	return a.amount
}
