package card

import (
	"github.com/uno-online/engine/card/action"
	"github.com/uno-online/engine/card/color"
)

type Card interface {
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	String() string
}

// ColorPermutations returns one card for every (color, value) combination:
// numbers 0-9 plus Skip, Reverse and Draw Two for each of the four colors,
// 52 cards in total. Deck construction uses two of these sets.
func ColorPermutations() []Card {
	cards := make([]Card, 0, 52)
	for _, cardColor := range color.All() {
		for number := 0; number <= 9; number++ {
			cards = append(cards, NewNumberCard(cardColor, number))
		}
		cards = append(cards,
			NewSkipCard(cardColor),
			NewReverseCard(cardColor),
			NewDrawTwoCard(cardColor),
		)
	}
	return cards
}
