package game

import (
	"math/rand"

	"github.com/uno-online/engine/card"
	"github.com/uno-online/engine/card/action"
	"github.com/uno-online/engine/event"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Game owns one main deck, one discard pile and one hand per player, plus
// the turn cursor. An accepted play mutates it in place; a rejected play
// leaves it untouched. Calls must be serialized by the caller, one game is
// sequential by nature.
type Game struct {
	deck   *Deck
	pile   *Pile
	hands  []*Hand
	cycler *Cycler
}

// New deals a fresh game: full shuffled deck, seven cards per player, one
// starter card flipped to the discard pile. Player 0 moves first, clockwise.
func New(players int) (*Game, error) {
	return newGame(players, NewDeck())
}

// NewWithRand is New with a caller-controlled shuffle source.
func NewWithRand(players int, rng *rand.Rand) (*Game, error) {
	return newGame(players, NewDeckWithRand(rng))
}

func newGame(players int, deck *Deck) (*Game, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	hands, err := deck.Deal(players)
	if err != nil {
		return nil, err
	}
	firstCard, ok := deck.DrawOne()
	var setAsideWilds []card.Card
	for ok && isUncoloredWild(firstCard) {
		// a wild has no color to match against, so it cannot open the
		// pile; set it aside and flip again
		setAsideWilds = append(setAsideWilds, firstCard)
		firstCard, ok = deck.DrawOne()
	}
	if !ok {
		return nil, ErrNoCardsLeft
	}
	if len(setAsideWilds) > 0 {
		deck.Refill(setAsideWilds)
	}
	pile := NewPile()
	pile.Add(firstCard)
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	return &Game{
		deck:   deck,
		pile:   pile,
		hands:  hands,
		cycler: NewCycler(players),
	}, nil
}

// TryNext is the single state transition: player whosTurn plays whichCard.
// Wilds must already carry their chosen color (card.NewColoredCard); the
// matching unplayed wild is taken from the hand. Validation failures return
// before anything moves, so a rejected play never changes state.
func (g *Game) TryNext(whosTurn int, whichCard card.Card) (*Game, error) {
	if whosTurn < 0 || whosTurn >= len(g.hands) {
		return nil, ErrInvalidPlayerNumber
	}

	handCard := whichCard
	if coloredCard, isColoredCard := whichCard.(card.ColoredCard); isColoredCard && isUncoloredWild(coloredCard.Wrapped()) {
		// hands hold wilds in their uncolored state; anything else inside
		// a colored wrapper is not a card the hand can contain
		handCard = coloredCard.Wrapped()
	}
	hand := g.hands[whosTurn]
	if !hand.Contains(handCard) {
		return nil, ErrCheating
	}

	if err := Playable(whichCard, g.pile.Top()); err != nil {
		return nil, &NotPlayableError{Reason: err}
	}

	hand.RemoveCard(handCard)
	g.pile.Add(whichCard)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		Player: whosTurn,
		Card:   whichCard,
	})

	for _, cardAction := range whichCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.SkipTurnAction:
			g.cycler.Next()
		case action.ReverseTurnsAction:
			g.cycler.Reverse()
		case action.DrawCardsAction:
			drawnCards := g.DrawN(cardAction.Amount())
			g.hands[g.cycler.Current()].AddCards(drawnCards)
			event.CardsDrawn.Emit(event.CardsDrawnPayload{
				Player: g.cycler.Current(),
				Amount: len(drawnCards),
			})
		case action.PickColorAction:
			event.ColorPicked.Emit(event.ColorPickedPayload{
				Player: whosTurn,
				Color:  whichCard.Color(),
			})
		}
	}

	// every accepted play passes the turn along; the effects above stack on
	// top of this baseline advance
	g.cycler.Next()
	return g, nil
}

// DrawAndPass gives whosTurn one card from the deck and passes the turn,
// for when nothing in their hand is playable.
func (g *Game) DrawAndPass(whosTurn int) ([]card.Card, error) {
	if whosTurn < 0 || whosTurn >= len(g.hands) {
		return nil, ErrInvalidPlayerNumber
	}
	drawnCards := g.DrawN(1)
	g.hands[whosTurn].AddCards(drawnCards)
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		Player: whosTurn,
		Amount: len(drawnCards),
	})
	event.PlayerPassed.Emit(event.PlayerPassedPayload{Player: whosTurn})
	g.cycler.Next()
	return drawnCards, nil
}

// DrawN draws n cards from the main deck, recycling the discard pile into
// it whenever the deck runs dry. The discard top card always stays behind.
// Both piles empty at once is unreachable in a legal game and panics.
func (g *Game) DrawN(n int) []card.Card {
	cards := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		drawnCard, ok := g.deck.DrawOne()
		if !ok {
			g.recycleDiscardPile()
			drawnCard, ok = g.deck.DrawOne()
			if !ok {
				panic("uno: main deck and discard pile exhausted at once")
			}
		}
		cards = append(cards, drawnCard)
	}
	return cards
}

func (g *Game) recycleDiscardPile() {
	recycledCards := g.pile.TakeAllButTop()
	if len(recycledCards) == 0 {
		return
	}
	g.deck.Refill(recycledCards)
	event.DeckRecycled.Emit(event.DeckRecycledPayload{Amount: len(recycledCards)})
}

func (g *Game) Players() int {
	return len(g.hands)
}

func (g *Game) CurrentTurn() int {
	return g.cycler.Current()
}

func (g *Game) Direction() TurnDirection {
	return g.cycler.Direction()
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) DiscardTop() card.Card {
	return g.pile.Top()
}

func (g *Game) DiscardSize() int {
	return g.pile.Size()
}

// PlayerHand returns a copy of the player's cards, nil for an out-of-range
// index.
func (g *Game) PlayerHand(player int) []card.Card {
	if player < 0 || player >= len(g.hands) {
		return nil
	}
	return g.hands[player].Cards()
}

func (g *Game) HandSize(player int) int {
	if player < 0 || player >= len(g.hands) {
		return 0
	}
	return g.hands[player].Size()
}

// CardCount is the total across deck, discard pile and hands; always
// FullDeckSize for a game built by New.
func (g *Game) CardCount() int {
	total := g.deck.Size() + g.pile.Size()
	for _, hand := range g.hands {
		total += hand.Size()
	}
	return total
}
