package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/uno-online/engine/card"
)

const (
	// FullDeckSize is the number of cards in a complete Uno deck.
	FullDeckSize = 108
	// StartingHandSize is how many cards each player is dealt.
	StartingHandSize = 7
)

// Deck is an ordered card sequence; the last card is the top. It backs the
// main draw deck. Running dry is the caller's concern, the deck itself never
// recycles.
type Deck struct {
	sync.Mutex
	cards []card.Card
	rng   *rand.Rand
}

// NewDeck builds the full shuffled 108-card deck.
func NewDeck() *Deck {
	return NewDeckWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewDeckWithRand builds the full deck shuffled by rng. A seeded source
// makes the deck order deterministic.
func NewDeckWithRand(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	fillDeck(deck)
	return deck
}

func fillDeck(deck *Deck) {
	cards := make([]card.Card, 0, FullDeckSize)

	// two permutation sets, but only one zero per color
	cards = append(cards, card.ColorPermutations()...)
	for _, permutationCard := range card.ColorPermutations() {
		if numberCard, isNumberCard := permutationCard.(card.NumberCard); isNumberCard && numberCard.Number() == 0 {
			continue
		}
		cards = append(cards, permutationCard)
	}

	cards = append(cards, createWildCards()...)

	deck.cards = cards
	deck.shuffle()
}

func createWildCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// DrawOne removes and returns the top card. ok is false when the deck is
// empty.
func (d *Deck) DrawOne() (card.Card, bool) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.cards) == 0 {
		return nil, false
	}
	topCard := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return topCard, true
}

// Deal hands out StartingHandSize cards per player, round-robin one card at
// a time so hands are drawn fairly from the deck order. The deck is left in
// an undefined state when it runs out mid-deal; discard the attempt.
func (d *Deck) Deal(players int) ([]*Hand, error) {
	hands := make([]*Hand, players)
	for i := range hands {
		hands[i] = NewHand()
	}
	for i := 0; i < players*StartingHandSize; i++ {
		drawnCard, ok := d.DrawOne()
		if !ok {
			return nil, ErrNoCardsLeft
		}
		hands[i%players].AddCards([]card.Card{drawnCard})
	}
	return hands, nil
}

// Refill puts cards back into the deck and reshuffles. Used when the
// discard pile is recycled.
func (d *Deck) Refill(cards []card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, cards...)
	d.shuffle()
}

// FromDiscard builds a fresh deck from a discard pile's cards, reshuffled.
func FromDiscard(pile *Pile) *Deck {
	deck := &Deck{
		cards: pile.Cards(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	deck.shuffle()
	return deck
}

func (d *Deck) Size() int {
	return len(d.cards)
}
