package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uno-online/engine/card"
	"github.com/uno-online/engine/card/color"
	"github.com/uno-online/engine/event"
)

func TestCardPlayed(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()
	event.CardPlayed.AddListener(listenerOne)
	event.CardPlayed.AddListener(listenerTwo)

	payload := event.CardPlayedPayload{
		Player: 2,
		Card:   card.NewNumberCard(color.Blue, 7),
	}
	event.CardPlayed.Emit(payload)

	require.Equal(t, []interface{}{payload}, listenerOne.ReceivedPayloads())
	require.Equal(t, []interface{}{payload}, listenerTwo.ReceivedPayloads())
}

func TestColorPicked(t *testing.T) {
	listener := event.NewDummyListener()
	event.ColorPicked.AddListener(listener)

	payload := event.ColorPickedPayload{
		Player: 0,
		Color:  color.Green,
	}
	event.ColorPicked.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}

func TestFirstCardPlayed(t *testing.T) {
	listener := event.NewDummyListener()
	event.FirstCardPlayed.AddListener(listener)

	payload := event.FirstCardPlayedPayload{Card: card.NewSkipCard(color.Red)}
	event.FirstCardPlayed.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}

func TestCardsDrawnAndDeckRecycled(t *testing.T) {
	listener := event.NewDummyListener()
	event.CardsDrawn.AddListener(listener)
	event.DeckRecycled.AddListener(listener)
	event.PlayerPassed.AddListener(listener)

	drawn := event.CardsDrawnPayload{Player: 1, Amount: 2}
	recycled := event.DeckRecycledPayload{Amount: 40}
	passed := event.PlayerPassedPayload{Player: 3}
	event.CardsDrawn.Emit(drawn)
	event.DeckRecycled.Emit(recycled)
	event.PlayerPassed.Emit(passed)

	require.Equal(t, []interface{}{drawn, recycled, passed}, listener.ReceivedPayloads())
}
