package event

import "github.com/ratel-online/uno-gym/card"

type FirstCardRevealedPayload struct {
	Card card.Card
}

type FirstCardRevealedListener interface {
	OnFirstCardRevealed(FirstCardRevealedPayload)
}

type firstCardRevealedEmitter struct {
	listeners []FirstCardRevealedListener
}

func (e *firstCardRevealedEmitter) AddListener(listener FirstCardRevealedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *firstCardRevealedEmitter) Emit(payload FirstCardRevealedPayload) {
	for _, listener := range e.listeners {
		listener.OnFirstCardRevealed(payload)
	}
}
