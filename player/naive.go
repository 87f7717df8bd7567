package player

import (
	"github.com/uno-online/engine/card"
	"github.com/uno-online/engine/card/color"
	"github.com/uno-online/engine/game"
)

// Strategy picks a card to play given a hand and the discard top, or
// reports that nothing is playable.
type Strategy interface {
	Choose(hand []card.Card, lastPlayedCard card.Card) (card.Card, bool)
}

// Naive plays the first playable card it finds. Wilds get the color the
// hand holds most of, Red when the hand has no colored cards at all.
type Naive struct{}

func NewNaive() Naive {
	return Naive{}
}

func (Naive) Choose(hand []card.Card, lastPlayedCard card.Card) (card.Card, bool) {
	for _, candidateCard := range hand {
		playedCard := candidateCard
		switch candidateCard.(type) {
		case card.WildCard, card.WildDrawFourCard:
			playedCard = card.NewColoredCard(candidateCard, dominantColor(hand))
		}
		if game.Playable(playedCard, lastPlayedCard) == nil {
			return playedCard, true
		}
	}
	return nil, false
}

func dominantColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color() != nil {
			counts[handCard.Color()]++
		}
	}
	var dominant color.Color = color.Red
	best := 0
	for _, candidateColor := range color.All() {
		if counts[candidateColor] > best {
			dominant = candidateColor
			best = counts[candidateColor]
		}
	}
	return dominant
}
