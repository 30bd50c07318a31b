package card

import (
	"fmt"

	"github.com/ratel-online/uno-gym/card/color"
	"github.com/ratel-online/uno-gym/consts"
)

// Kind tags the card variant. Effects and playability rules are looked up
// by kind; cards carry no behavior of their own.
type Kind int

const (
	Number Kind = iota
	Draw
	Skip
	Reverse
	Wild
	WildDraw
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Draw:
		return "draw"
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case Wild:
		return "wild"
	case WildDraw:
		return "special_wild"
	}
	return "unknown"
}

// Card is an immutable value. Wild cards start with color.None and gain a
// color through ResolveColor, which returns the resolved copy.
type Card struct {
	kind   Kind
	color  color.Color
	value  int
	pickup int
}

func NewNumber(cardColor color.Color, value int) Card {
	return Card{kind: Number, color: cardColor, value: value}
}

func NewDraw(cardColor color.Color, amount int) Card {
	return Card{kind: Draw, color: cardColor, pickup: amount}
}

func NewSkip(cardColor color.Color) Card {
	return Card{kind: Skip, color: cardColor}
}

func NewReverse(cardColor color.Color) Card {
	return Card{kind: Reverse, color: cardColor}
}

func NewWild() Card {
	return Card{kind: Wild, color: color.None}
}

func NewWildDraw(amount int) Card {
	return Card{kind: WildDraw, color: color.None, pickup: amount}
}

func (c Card) Kind() Kind {
	return c.kind
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Value() int {
	return c.value
}

// Pickup returns how many cards the next seat is forced to draw.
func (c Card) Pickup() int {
	return c.pickup
}

func (c Card) IsPower() bool {
	return c.kind != Number
}

func (c Card) IsWild() bool {
	return c.kind == Wild || c.kind == WildDraw
}

// FirstPlayable reports whether the card may open the game face-up.
// Only the wild family is excluded.
func (c Card) FirstPlayable() bool {
	return !c.IsWild()
}

// Playable reports whether the card may be played on top of top.
// Number cards match by color or by value against another number card;
// other power cards match by resolved color only; wild cards always match.
func (c Card) Playable(top Card) bool {
	switch c.kind {
	case Wild, WildDraw:
		return true
	case Number:
		if c.color == top.color {
			return true
		}
		return top.kind == Number && c.value == top.value
	default:
		return c.color != color.None && c.color == top.color
	}
}

// ResolveColor fixes a wild card's color, exactly once.
func (c Card) ResolveColor(resolved color.Color) (Card, error) {
	if !c.IsWild() {
		return Card{}, consts.ErrorsNotWildCard
	}
	if c.color != color.None {
		return Card{}, consts.ErrorsColorResolved
	}
	if resolved == nil || resolved == color.None {
		return Card{}, consts.ErrorsColorInvalid
	}
	c.color = resolved
	return c, nil
}

// Points is the card's contribution to its holder's hand burden: one point
// for being held, plus 50 for wild family cards, 25 for other power cards
// or the face value for number cards.
func (c Card) Points() int {
	switch {
	case c.IsWild():
		return 51
	case c.IsPower():
		return 26
	default:
		return 1 + c.value
	}
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) String() string {
	switch c.kind {
	case Number:
		return c.color.Paintf("[%d]", c.value)
	case Draw, WildDraw:
		return c.color.Paint(fmt.Sprintf("+%d!", c.pickup))
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	default:
		return c.color.Paint("(*)")
	}
}
