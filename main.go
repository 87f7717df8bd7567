package main

import (
	"flag"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/uno-online/engine/event"
	"github.com/uno-online/engine/game"
	"github.com/uno-online/engine/player"
)

// Demo runner: seats naive bots at a table and plays until someone empties
// their hand.
func main() {
	players := flag.Int("players", 4, "number of players (2-4)")
	seed := flag.Int64("seed", 0, "deck shuffle seed, 0 for random")
	maxTurns := flag.Int("max-turns", 2000, "abort after this many turns")
	flag.Parse()

	listener := &logListener{}
	event.FirstCardPlayed.AddListener(listener)
	event.CardPlayed.AddListener(listener)
	event.ColorPicked.AddListener(listener)
	event.CardsDrawn.AddListener(listener)
	event.PlayerPassed.AddListener(listener)
	event.DeckRecycled.AddListener(listener)

	var g *game.Game
	var err error
	if *seed != 0 {
		g, err = game.NewWithRand(*players, rand.New(rand.NewSource(*seed)))
	} else {
		g, err = game.New(*players)
	}
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	strategy := player.NewNaive()
	for turn := 0; turn < *maxTurns; turn++ {
		current := g.CurrentTurn()
		chosenCard, ok := strategy.Choose(g.PlayerHand(current), g.DiscardTop())
		if !ok {
			if _, err := g.DrawAndPass(current); err != nil {
				logrus.WithError(err).Fatal("pass rejected")
			}
			continue
		}
		if _, err := g.TryNext(current, chosenCard); err != nil {
			logrus.WithError(err).WithField("player", current).Fatal("play rejected")
		}
		if g.HandSize(current) == 0 {
			logrus.WithField("player", current).Info("wins")
			return
		}
	}
	logrus.Warn("turn limit reached, no winner")
}

type logListener struct{}

func (l *logListener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	logrus.WithField("card", payload.Card.String()).Info("first card flipped")
}

func (l *logListener) OnCardPlayed(payload event.CardPlayedPayload) {
	logrus.WithFields(logrus.Fields{
		"player": payload.Player,
		"card":   payload.Card.String(),
	}).Info("card played")
}

func (l *logListener) OnColorPicked(payload event.ColorPickedPayload) {
	logrus.WithFields(logrus.Fields{
		"player": payload.Player,
		"color":  payload.Color.Name(),
	}).Info("color picked")
}

func (l *logListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	logrus.WithFields(logrus.Fields{
		"player": payload.Player,
		"amount": payload.Amount,
	}).Info("cards drawn")
}

func (l *logListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	logrus.WithField("player", payload.Player).Info("player passed")
}

func (l *logListener) OnDeckRecycled(payload event.DeckRecycledPayload) {
	logrus.WithField("amount", payload.Amount).Info("discard pile recycled into deck")
}
