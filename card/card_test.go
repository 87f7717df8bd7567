package card_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-online/engine/card"
	"github.com/uno-online/engine/card/color"
)

func TestEqual(t *testing.T) {
	scenarios := []struct {
		description string
		first       card.Card
		second      card.Card
		expected    bool
	}{
		{
			description: "number_cards_with_same_color_and_number",
			first:       card.NewNumberCard(color.Red, 5),
			second:      card.NewNumberCard(color.Red, 5),
			expected:    true,
		},
		{
			description: "number_cards_with_different_number",
			first:       card.NewNumberCard(color.Red, 5),
			second:      card.NewNumberCard(color.Red, 6),
			expected:    false,
		},
		{
			description: "number_cards_with_different_color",
			first:       card.NewNumberCard(color.Red, 5),
			second:      card.NewNumberCard(color.Blue, 5),
			expected:    false,
		},
		{
			description: "action_cards_of_different_kind",
			first:       card.NewSkipCard(color.Red),
			second:      card.NewReverseCard(color.Red),
			expected:    false,
		},
		{
			description: "skip_cards_with_same_color",
			first:       card.NewSkipCard(color.Green),
			second:      card.NewSkipCard(color.Green),
			expected:    true,
		},
		{
			description: "unplayed_wilds",
			first:       card.NewWildCard(),
			second:      card.NewWildCard(),
			expected:    true,
		},
		{
			description: "wild_and_wild_draw_four",
			first:       card.NewWildCard(),
			second:      card.NewWildDrawFourCard(),
			expected:    false,
		},
		{
			description: "played_wilds_with_same_color",
			first:       card.NewColoredCard(card.NewWildCard(), color.Red),
			second:      card.NewColoredCard(card.NewWildCard(), color.Red),
			expected:    true,
		},
		{
			description: "played_wilds_with_different_color",
			first:       card.NewColoredCard(card.NewWildCard(), color.Red),
			second:      card.NewColoredCard(card.NewWildCard(), color.Blue),
			expected:    false,
		},
		{
			description: "played_wild_and_unplayed_wild",
			first:       card.NewColoredCard(card.NewWildCard(), color.Red),
			second:      card.NewWildCard(),
			expected:    false,
		},
		{
			description: "played_wild_and_played_wild_draw_four",
			first:       card.NewColoredCard(card.NewWildCard(), color.Red),
			second:      card.NewColoredCard(card.NewWildDrawFourCard(), color.Red),
			expected:    false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			assert.Equal(t, scenario.expected, scenario.first.Equal(scenario.second))
		})
	}
}

func TestColorPermutations(t *testing.T) {
	permutations := card.ColorPermutations()
	require.Len(t, permutations, 52)

	perColor := make(map[color.Color]int)
	numbers := 0
	skips := 0
	reverses := 0
	drawTwos := 0
	for _, permutationCard := range permutations {
		perColor[permutationCard.Color()]++
		switch permutationCard.(type) {
		case card.NumberCard:
			numbers++
		case card.SkipCard:
			skips++
		case card.ReverseCard:
			reverses++
		case card.DrawTwoCard:
			drawTwos++
		}
	}

	for _, c := range color.All() {
		assert.Equal(t, 13, perColor[c])
	}
	assert.Equal(t, 40, numbers)
	assert.Equal(t, 4, skips)
	assert.Equal(t, 4, reverses)
	assert.Equal(t, 4, drawTwos)
}

func TestColoredCardKeepsWildActions(t *testing.T) {
	playedWild := card.NewColoredCard(card.NewWildDrawFourCard(), color.Green)
	assert.Equal(t, card.NewWildDrawFourCard().Actions(), playedWild.Actions())
	assert.Equal(t, color.Green, playedWild.Color())
	assert.Equal(t, card.NewWildDrawFourCard(), playedWild.Wrapped())
}
