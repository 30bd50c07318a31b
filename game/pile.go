package game

import (
	"github.com/ratel-online/uno-gym/card"
)

// Pile holds the played cards in play order. The last card is the
// legality reference for the next play.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(played card.Card) {
	p.cards = append(p.cards, played)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// Top returns the most recently played card, or the zero card when the
// pile is still empty.
func (p *Pile) Top() card.Card {
	if len(p.cards) == 0 {
		return card.Card{}
	}
	return p.cards[len(p.cards)-1]
}

// ReplaceTop swaps the top card, used when a wild card's color resolves.
func (p *Pile) ReplaceTop(resolved card.Card) {
	p.cards[len(p.cards)-1] = resolved
}

// TakeAll empties the pile, handing its cards to deck-exhaustion recovery.
func (p *Pile) TakeAll() []card.Card {
	cards := p.cards
	p.cards = make([]card.Card, 0, 54)
	return cards
}
