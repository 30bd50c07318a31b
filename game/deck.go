package game

import (
	"math/rand"

	"github.com/ratel-online/uno-gym/card"
	"github.com/ratel-online/uno-gym/card/color"
	"github.com/ratel-online/uno-gym/consts"
)

// Deck is the face-down draw pile. The front of the slice is the top.
type Deck struct {
	cards []card.Card
}

func NewDeck(cards []card.Card) *Deck {
	return &Deck{cards: cards}
}

// Build constructs the full unshuffled deck: per color the values 0-8
// twice plus two draw-two, two reverse and two skip cards, then wildCount
// wild and wildCount wild-draw-four cards.
func Build(colors []color.Color, wildCount int) []card.Card {
	cards := make([]card.Card, 0, len(colors)*24+2*wildCount)
	for _, cardColor := range colors {
		cards = append(cards, buildColorSet(cardColor)...)
	}
	for i := 0; i < wildCount; i++ {
		cards = append(cards, card.NewWild(), card.NewWildDraw(consts.StandardWildDrawAmount))
	}
	return cards
}

func buildColorSet(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, 24)
	for value := 0; value <= 8; value++ {
		numberCard := card.NewNumber(cardColor, value)
		cards = append(cards, numberCard, numberCard)
	}
	drawTwoCard := card.NewDraw(cardColor, 2)
	reverseCard := card.NewReverse(cardColor)
	skipCard := card.NewSkip(cardColor)
	cards = append(cards, drawTwoCard, drawTwoCard, reverseCard, reverseCard, skipCard, skipCard)
	return cards
}

// ShuffleAndReveal permutes cards into a fresh draw pile and moves cards
// from its top onto a fresh played pile until the revealed card may open
// the game. Rejected wild cards stay in the played pile face-up; they are
// not reshuffled back in.
func ShuffleAndReveal(cards []card.Card, rng *rand.Rand) (*Deck, *Pile) {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pile := NewPile()
	for len(shuffled) > 0 {
		revealed := shuffled[0]
		shuffled = shuffled[1:]
		pile.Add(revealed)
		if revealed.FirstPlayable() {
			break
		}
	}
	return NewDeck(shuffled), pile
}

// Draw removes up to amount cards from the top of the deck.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := d.cards[:amount]
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) TakeAll() []card.Card {
	cards := d.cards
	d.cards = nil
	return cards
}

// Deal removes playerCount*cardsPerPlayer cards from the top of the deck
// in one contiguous block: seat 1 gets the first cardsPerPlayer cards,
// seat 2 the next, and so on.
func Deal(deck *Deck, playerCount, cardsPerPlayer int) ([]*Hand, error) {
	if playerCount*cardsPerPlayer > deck.Size() {
		return nil, consts.ErrorsInsufficientCards
	}
	hands := make([]*Hand, playerCount)
	for seat := range hands {
		hands[seat] = NewHand()
		hands[seat].AddCards(deck.Draw(cardsPerPlayer))
	}
	return hands, nil
}
