package game

import (
	"github.com/ratel-online/uno-gym/card"
	"github.com/ratel-online/uno-gym/card/color"
)

// Code is one of the three symbolic action categories offered to an
// external controller in place of raw card choice.
type Code string

const (
	CodeNumber Code = "n"
	CodeColor  Code = "c"
	CodeWild   Code = "w"
)

// AllCodes lists every symbolic action code in a fixed order, matching the
// action-vector layout a learning controller indexes into.
var AllCodes = []Code{CodeNumber, CodeColor, CodeWild}

// ActionSet resolves each available symbolic category to one concrete
// card. A nil card means the category is not on offer this turn.
type ActionSet struct {
	Available []Code
	Number    *card.Card
	Color     *card.Card
	Wild      *card.Card
}

func (s ActionSet) Card(code Code) (card.Card, bool) {
	switch code {
	case CodeNumber:
		if s.Number != nil {
			return *s.Number, true
		}
	case CodeColor:
		if s.Color != nil {
			return *s.Color, true
		}
	case CodeWild:
		if s.Wild != nil {
			return *s.Wild, true
		}
	}
	return card.Card{}, false
}

// Actions computes the symbolic action surface for seat against the top of
// the played pile. Each category resolves to exactly one card per query;
// ties are broken randomly after preferring the highest face value.
func (g *Game) Actions(seat int) ActionSet {
	top := g.pile.Top()
	playable := g.hands[seat-1].PlayableCards(top)

	set := ActionSet{}
	if numberCard := g.pickNumberCard(playable, top); numberCard != nil {
		set.Number = numberCard
		set.Available = append(set.Available, CodeNumber)
	}
	if colorCard := g.pickColorCard(playable, top); colorCard != nil {
		set.Color = colorCard
		set.Available = append(set.Available, CodeColor)
	}
	if wildCard := g.pickWildCard(playable); wildCard != nil {
		set.Wild = wildCard
		set.Available = append(set.Available, CodeWild)
	}
	return set
}

// GameState is the observation surface offered to a learning controller:
// whether a color match, a number match and a wild card are available.
func (g *Game) GameState(seat int) [3]bool {
	set := g.Actions(seat)
	return [3]bool{set.Color != nil, set.Number != nil, set.Wild != nil}
}

// A number match shares the top card's face value. Power cards never
// qualify, on either side.
func (g *Game) pickNumberCard(playable []card.Card, top card.Card) *card.Card {
	if top.IsPower() {
		return nil
	}
	var matches []card.Card
	for _, candidate := range playable {
		if candidate.Kind() == card.Number && candidate.Value() == top.Value() {
			matches = append(matches, candidate)
		}
	}
	return g.randomCard(matches)
}

// A color match is a number card sharing the top card's color, preferring
// the highest face value.
func (g *Game) pickColorCard(playable []card.Card, top card.Card) *card.Card {
	if top.Color() == color.None {
		return nil
	}
	var matches []card.Card
	best := -1
	for _, candidate := range playable {
		if candidate.Kind() != card.Number || candidate.Color() != top.Color() {
			continue
		}
		switch {
		case candidate.Value() > best:
			best = candidate.Value()
			matches = append(matches[:0], candidate)
		case candidate.Value() == best:
			matches = append(matches, candidate)
		}
	}
	return g.randomCard(matches)
}

func (g *Game) pickWildCard(playable []card.Card) *card.Card {
	var matches []card.Card
	for _, candidate := range playable {
		if candidate.IsWild() {
			matches = append(matches, candidate)
		}
	}
	return g.randomCard(matches)
}

func (g *Game) randomCard(cards []card.Card) *card.Card {
	if len(cards) == 0 {
		return nil
	}
	chosen := cards[g.rng.Intn(len(cards))]
	return &chosen
}
