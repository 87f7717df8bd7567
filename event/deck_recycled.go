package event

var DeckRecycled = &deckRecycledEmitter{}

type DeckRecycledPayload struct {
	Amount int
}

type DeckRecycledListener interface {
	OnDeckRecycled(DeckRecycledPayload)
}

type deckRecycledEmitter struct {
	listeners []DeckRecycledListener
}

func (e *deckRecycledEmitter) AddListener(listener DeckRecycledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *deckRecycledEmitter) Emit(payload DeckRecycledPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckRecycled(payload)
	}
}
