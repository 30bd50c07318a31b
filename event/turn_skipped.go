package event

type TurnSkippedPayload struct {
	Seat int
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type turnSkippedEmitter struct {
	listeners []TurnSkippedListener
}

func (e *turnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnSkipped(payload)
	}
}
