package event

import "github.com/ratel-online/uno-gym/card"

type CardPlayedPayload struct {
	Seat int
	Card card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
