package event

// Bus groups one game instance's emitters. Every game owns its own bus so
// parallel instances never observe each other's plays.
type Bus struct {
	FirstCardRevealed *firstCardRevealedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	TurnSkipped       *turnSkippedEmitter
	CardsPickedUp     *cardsPickedUpEmitter
	WinnerFound       *winnerFoundEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardRevealed: &firstCardRevealedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		CardsPickedUp:     &cardsPickedUpEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
	}
}
