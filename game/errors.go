package game

import (
	"errors"
	"fmt"
)

var (
	ErrTooManyPlayers      = errors.New("player count must be between 2 and 4")
	ErrNoCardsLeft         = errors.New("no cards left")
	ErrInvalidPlayerNumber = errors.New("invalid player number")
	ErrCheating            = errors.New("player does not have that card in hand")

	ErrNoMatch      = errors.New("card color and value both don't match")
	ErrWildUnplayed = errors.New("wild card has no color chosen")
)

// NotPlayableError rejects a play whose card does not match the top of the
// discard pile. Reason is ErrNoMatch or ErrWildUnplayed.
type NotPlayableError struct {
	Reason error
}

func (e *NotPlayableError) Error() string {
	return fmt.Sprintf("card not playable: %v", e.Reason)
}

func (e *NotPlayableError) Unwrap() error {
	return e.Reason
}
