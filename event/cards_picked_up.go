package event

type CardsPickedUpPayload struct {
	Seat   int
	Amount int
	Reason string
}

type CardsPickedUpListener interface {
	OnCardsPickedUp(CardsPickedUpPayload)
}

type cardsPickedUpEmitter struct {
	listeners []CardsPickedUpListener
}

func (e *cardsPickedUpEmitter) AddListener(listener CardsPickedUpListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsPickedUpEmitter) Emit(payload CardsPickedUpPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsPickedUp(payload)
	}
}
