package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-online/engine/card"
	"github.com/uno-online/engine/card/color"
	"github.com/uno-online/engine/game"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("fresh_game", func(t *testing.T) {
		g, err := game.NewWithRand(3, rand.New(rand.NewSource(21)))
		require.NoError(t, err)

		data, err := g.Snapshot().Marshal()
		require.NoError(t, err)

		snapshot, err := game.UnmarshalSnapshot(data)
		require.NoError(t, err)

		restored, err := game.Restore(snapshot)
		require.NoError(t, err)
		assert.Equal(t, g.Snapshot(), restored.Snapshot())
		assert.Equal(t, game.FullDeckSize, restored.CardCount())
	})

	t.Run("mid_game_state_with_a_played_wild", func(t *testing.T) {
		original := game.Snapshot{
			MainDeck:    []game.CardSnapshot{num("green", 1), skip("yellow")},
			DiscardPile: []game.CardSnapshot{num("red", 7), {Kind: "wild", Color: "blue"}},
			Hands: [][]game.CardSnapshot{
				{wildDrawFour(), num("blue", 0)},
				{reverse("green")},
			},
			CurrentTurn: 1,
			Direction:   "counterClockwise",
		}

		g, err := game.Restore(original)
		require.NoError(t, err)
		assert.Equal(t, 1, g.CurrentTurn())
		assert.Equal(t, game.CounterClockwise, g.Direction())
		assert.Equal(t, card.NewColoredCard(card.NewWildCard(), color.Blue), g.DiscardTop())
		assert.Equal(t, []card.Card{
			card.NewWildDrawFourCard(),
			card.NewNumberCard(color.Blue, 0),
		}, g.PlayerHand(0))

		assert.Equal(t, original, g.Snapshot())
	})
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	valid := fourPlayerFixture()

	scenarios := []struct {
		description string
		corrupt     func(*game.Snapshot)
	}{
		{
			description: "no_hands",
			corrupt:     func(s *game.Snapshot) { s.Hands = nil },
		},
		{
			description: "current_turn_out_of_range",
			corrupt:     func(s *game.Snapshot) { s.CurrentTurn = 4 },
		},
		{
			description: "negative_current_turn",
			corrupt:     func(s *game.Snapshot) { s.CurrentTurn = -1 },
		},
		{
			description: "unknown_direction",
			corrupt:     func(s *game.Snapshot) { s.Direction = "widdershins" },
		},
		{
			description: "unknown_card_kind",
			corrupt: func(s *game.Snapshot) {
				s.MainDeck = []game.CardSnapshot{{Kind: "joker", Color: "red"}}
			},
		},
		{
			description: "unknown_color",
			corrupt: func(s *game.Snapshot) {
				s.Hands[0] = []game.CardSnapshot{{Kind: "skip", Color: "purple"}}
			},
		},
		{
			description: "number_out_of_range",
			corrupt: func(s *game.Snapshot) {
				s.MainDeck = []game.CardSnapshot{num("red", 12)}
			},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			snapshot := valid
			snapshot.Hands = append([][]game.CardSnapshot{}, valid.Hands...)
			scenario.corrupt(&snapshot)
			_, err := game.Restore(snapshot)
			require.Error(t, err)
		})
	}
}

// Restore guards the same player range as New, so persisted bytes
// cannot resurrect a table size the engine forbids.
func TestRestoreEnforcesPlayerCount(t *testing.T) {
	undersized := fourPlayerFixture()
	undersized.Hands = undersized.Hands[:1]
	_, err := game.Restore(undersized)
	require.ErrorIs(t, err, game.ErrTooManyPlayers)

	oversized := fourPlayerFixture()
	oversized.Hands = append(oversized.Hands, []game.CardSnapshot{num("yellow", 5)})
	_, err = game.Restore(oversized)
	require.ErrorIs(t, err, game.ErrTooManyPlayers)
}

func TestUnmarshalSnapshotRejectsGarbage(t *testing.T) {
	_, err := game.UnmarshalSnapshot([]byte("{not json"))
	require.Error(t, err)
}
