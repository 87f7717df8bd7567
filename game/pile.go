package game

import (
	"sync"

	"github.com/uno-online/engine/card"
)

// Pile is the discard pile. The last added card is the top, the only card
// visible for play legality.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

// TakeAllButTop removes and returns every card except the top one, which
// stays behind as the pile's only member. Returns nil when there is nothing
// to take.
func (p *Pile) TakeAllButTop() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) < 2 {
		return nil
	}
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return taken
}

func (p *Pile) Size() int {
	return len(p.cards)
}
