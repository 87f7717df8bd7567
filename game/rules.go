package game

import (
	"github.com/uno-online/engine/card"
)

// Playable reports whether candidateCard may be placed on lastPlayedCard,
// the top of the discard pile. It returns nil when the play is legal,
// ErrWildUnplayed when a wild without a chosen color is involved, and
// ErrNoMatch when neither color nor value lines up.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) error {
	switch candidateCard := candidateCard.(type) {
	case card.WildCard, card.WildDrawFourCard:
		// the color must be chosen before the card reaches the pile
		return ErrWildUnplayed
	case card.ColoredCard:
		// only wilds wear the colored wrapper; a wrapped regular card is
		// not a legal play no matter what sits on the pile
		if !isUncoloredWild(candidateCard.Wrapped()) {
			return ErrNoMatch
		}
		// a wild with its color chosen goes on anything
		return nil
	}

	switch lastPlayedCard.(type) {
	case card.WildCard, card.WildDrawFourCard:
		// only played wilds ever sit on the pile
		return ErrWildUnplayed
	}

	if candidateCard.Color() == lastPlayedCard.Color() {
		return nil
	}
	if sameValue(candidateCard, lastPlayedCard) {
		return nil
	}
	return ErrNoMatch
}

func isUncoloredWild(c card.Card) bool {
	switch c.(type) {
	case card.WildCard, card.WildDrawFourCard:
		return true
	}
	return false
}

func sameValue(candidateCard card.Card, lastPlayedCard card.Card) bool {
	switch candidateCard := candidateCard.(type) {
	case card.DrawTwoCard:
		_, isDrawTwoCard := lastPlayedCard.(card.DrawTwoCard)
		return isDrawTwoCard
	case card.ReverseCard:
		_, isReverseCard := lastPlayedCard.(card.ReverseCard)
		return isReverseCard
	case card.SkipCard:
		_, isSkipCard := lastPlayedCard.(card.SkipCard)
		return isSkipCard
	case card.NumberCard:
		lastPlayedCard, isNumberCard := lastPlayedCard.(card.NumberCard)
		return isNumberCard && lastPlayedCard.Number() == candidateCard.Number()
	default:
		return false
	}
}
