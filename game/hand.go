package game

import (
	"github.com/ratel-online/uno-gym/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) PlayableCards(top card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if candidateCard.Playable(top) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

func (h *Hand) RemoveCard(played card.Card) {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(played) {
			h.cards[index] = h.cards[len(h.cards)-1]
			h.cards = h.cards[:len(h.cards)-1]
			return
		}
	}
}

// Points is the hand's total point burden, the quantity each play is
// rewarded for reducing.
func (h *Hand) Points() int {
	points := 0
	for _, heldCard := range h.cards {
		points += heldCard.Points()
	}
	return points
}
