package game

import (
	"fmt"
	"math/rand"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/uno-online/engine/card"
	"github.com/uno-online/engine/card/color"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	kindNumber       = "number"
	kindSkip         = "skip"
	kindReverse      = "reverse"
	kindDrawTwo      = "drawTwo"
	kindWild         = "wild"
	kindWildDrawFour = "wildDrawFour"
)

// CardSnapshot is the serializable form of a single card. A wild carries an
// empty color until played.
type CardSnapshot struct {
	Kind   string `json:"kind"`
	Color  string `json:"color,omitempty"`
	Number int    `json:"number,omitempty"`
}

// Snapshot is the full game state, card for card, in a form a caller can
// persist between turns and restore later.
type Snapshot struct {
	MainDeck    []CardSnapshot   `json:"mainDeck"`
	DiscardPile []CardSnapshot   `json:"discardPile"`
	Hands       [][]CardSnapshot `json:"hands"`
	CurrentTurn int              `json:"currentTurn"`
	Direction   string           `json:"direction"`
}

func (s Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var snapshot Snapshot
	err := json.Unmarshal(data, &snapshot)
	return snapshot, err
}

// Snapshot captures the complete current state.
func (g *Game) Snapshot() Snapshot {
	hands := make([][]CardSnapshot, len(g.hands))
	for i, hand := range g.hands {
		hands[i] = snapshotCards(hand.Cards())
	}
	return Snapshot{
		MainDeck:    snapshotCards(g.deck.cards),
		DiscardPile: snapshotCards(g.pile.Cards()),
		Hands:       hands,
		CurrentTurn: g.cycler.Current(),
		Direction:   g.cycler.Direction().String(),
	}
}

// Restore rebuilds a game from a snapshot. Deck and pile order are kept as
// recorded; nothing is reshuffled.
func Restore(snapshot Snapshot) (*Game, error) {
	if len(snapshot.Hands) < MinPlayers || len(snapshot.Hands) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if snapshot.CurrentTurn < 0 || snapshot.CurrentTurn >= len(snapshot.Hands) {
		return nil, fmt.Errorf("snapshot current turn %d out of range", snapshot.CurrentTurn)
	}

	deckCards, err := restoreCards(snapshot.MainDeck)
	if err != nil {
		return nil, err
	}
	pileCards, err := restoreCards(snapshot.DiscardPile)
	if err != nil {
		return nil, err
	}

	deck := &Deck{
		cards: deckCards,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	pile := NewPile()
	for _, pileCard := range pileCards {
		pile.Add(pileCard)
	}

	hands := make([]*Hand, len(snapshot.Hands))
	for i, handSnapshot := range snapshot.Hands {
		handCards, err := restoreCards(handSnapshot)
		if err != nil {
			return nil, err
		}
		hands[i] = NewHand()
		hands[i].AddCards(handCards)
	}

	cycler := NewCycler(len(hands))
	cycler.current = snapshot.CurrentTurn
	switch snapshot.Direction {
	case Clockwise.String():
	case CounterClockwise.String():
		cycler.direction = left
	default:
		return nil, fmt.Errorf("invalid turn direction '%s'", snapshot.Direction)
	}

	return &Game{
		deck:   deck,
		pile:   pile,
		hands:  hands,
		cycler: cycler,
	}, nil
}

func snapshotCards(cards []card.Card) []CardSnapshot {
	snapshots := make([]CardSnapshot, len(cards))
	for i, c := range cards {
		snapshots[i] = snapshotCard(c)
	}
	return snapshots
}

func snapshotCard(c card.Card) CardSnapshot {
	switch c := c.(type) {
	case card.NumberCard:
		return CardSnapshot{Kind: kindNumber, Color: c.Color().Name(), Number: c.Number()}
	case card.SkipCard:
		return CardSnapshot{Kind: kindSkip, Color: c.Color().Name()}
	case card.ReverseCard:
		return CardSnapshot{Kind: kindReverse, Color: c.Color().Name()}
	case card.DrawTwoCard:
		return CardSnapshot{Kind: kindDrawTwo, Color: c.Color().Name()}
	case card.WildCard:
		return CardSnapshot{Kind: kindWild}
	case card.WildDrawFourCard:
		return CardSnapshot{Kind: kindWildDrawFour}
	case card.ColoredCard:
		snapshot := snapshotCard(c.Wrapped())
		snapshot.Color = c.Color().Name()
		return snapshot
	default:
		panic(fmt.Sprintf("uno: unknown card type %T", c))
	}
}

func restoreCards(snapshots []CardSnapshot) ([]card.Card, error) {
	cards := make([]card.Card, len(snapshots))
	for i, snapshot := range snapshots {
		restoredCard, err := restoreCard(snapshot)
		if err != nil {
			return nil, err
		}
		cards[i] = restoredCard
	}
	return cards, nil
}

func restoreCard(snapshot CardSnapshot) (card.Card, error) {
	switch snapshot.Kind {
	case kindWild, kindWildDrawFour:
		var wild card.Card = card.NewWildCard()
		if snapshot.Kind == kindWildDrawFour {
			wild = card.NewWildDrawFourCard()
		}
		if snapshot.Color == "" {
			return wild, nil
		}
		chosenColor, err := color.ByName(snapshot.Color)
		if err != nil {
			return nil, err
		}
		return card.NewColoredCard(wild, chosenColor), nil
	}

	cardColor, err := color.ByName(snapshot.Color)
	if err != nil {
		return nil, err
	}
	switch snapshot.Kind {
	case kindNumber:
		if snapshot.Number < 0 || snapshot.Number > 9 {
			return nil, fmt.Errorf("invalid card number %d", snapshot.Number)
		}
		return card.NewNumberCard(cardColor, snapshot.Number), nil
	case kindSkip:
		return card.NewSkipCard(cardColor), nil
	case kindReverse:
		return card.NewReverseCard(cardColor), nil
	case kindDrawTwo:
		return card.NewDrawTwoCard(cardColor), nil
	default:
		return nil, fmt.Errorf("unknown card kind '%s'", snapshot.Kind)
	}
}
