package card

import (
	"github.com/uno-online/engine/card/action"
	"github.com/uno-online/engine/card/color"
)

// ColoredCard is a wild in its played state: the wrapped wild plus the color
// chosen at the moment of play. The color is fixed once the card is on the
// discard pile.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

// Wrapped returns the wild this card was created from.
func (c ColoredCard) Wrapped() Card {
	return c.card
}

func (c ColoredCard) Equal(other Card) bool {
	otherColoredCard, typeMatched := other.(ColoredCard)
	return typeMatched && c.card.Equal(otherColoredCard.card) && c.color == otherColoredCard.color
}

func (c ColoredCard) String() string {
	return c.color.Paint(c.card.String())
}
