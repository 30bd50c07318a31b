package game

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/ratel-online/uno-gym/card"
	"github.com/ratel-online/uno-gym/card/color"
	"github.com/ratel-online/uno-gym/consts"
	"github.com/ratel-online/uno-gym/event"
	"github.com/ratel-online/uno-gym/ui"
)

const (
	clockwise        = 1
	counterClockwise = -1
)

const winReward = 1000

const pickupReasonNoPlayable = "No playable cards"

// Config describes one game instance.
type Config struct {
	// PlayerCount is the number of seats. A single player is normalized to
	// two by adding one scripted opponent.
	PlayerCount    int
	CardsPerPlayer int
	// TurnFinished, when set, is invoked after every resolved play with a
	// flag telling whether that play ended the game.
	TurnFinished func(gameDone bool)
	// Logging enables human readable progress lines.
	Logging bool
	// Rand seeds all in-game randomness. Defaults to a clock-seeded source.
	Rand *rand.Rand
	// Input is where interactive seats read their choices from.
	// Defaults to stdin.
	Input io.Reader
}

// Game is the turn-by-turn state machine for one table. It is fully
// synchronous: StartGame blocks the calling goroutine until a seat wins,
// and every mutation happens on that goroutine. Instances share nothing,
// so any number of games may run in parallel goroutines.
type Game struct {
	playerCount int
	deck        *Deck
	pile        *Pile
	hands       []*Hand
	robots      map[int]bool

	current     int
	direction   int
	skipped     []int
	winner      int
	active      bool
	cardsPlayed int

	notifiers    map[int]func()
	turnFinished func(bool)

	rng      *rand.Rand
	events   *event.Bus
	log      *ui.Logger
	prompter *ui.Prompter
}

// New builds, shuffles and deals a fresh game.
func New(config Config) (*Game, error) {
	playerCount := config.PlayerCount
	if playerCount < 1 {
		return nil, consts.ErrorsPlayerCountInvalid
	}
	if config.CardsPerPlayer < 1 {
		return nil, consts.ErrorsCardsPerPlayerInvalid
	}

	robots := map[int]bool{}
	if playerCount == 1 {
		playerCount = 2
		robots[2] = true
	}

	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	deck, pile := ShuffleAndReveal(Build(color.Table(), consts.StandardWildCount), rng)
	hands, err := Deal(deck, playerCount, config.CardsPerPlayer)
	if err != nil {
		return nil, err
	}

	input := config.Input
	if input == nil {
		input = os.Stdin
	}

	return &Game{
		playerCount:  playerCount,
		deck:         deck,
		pile:         pile,
		hands:        hands,
		robots:       robots,
		direction:    clockwise,
		notifiers:    map[int]func(){},
		turnFinished: config.TurnFinished,
		rng:          rng,
		events:       event.NewBus(),
		log:          ui.NewLogger(config.Logging),
		prompter:     ui.NewPrompter(input),
	}, nil
}

func (g *Game) PlayerCount() int {
	return g.playerCount
}

func (g *Game) Active() bool {
	return g.active
}

// Winner returns the winning seat, or zero while the game is undecided.
func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) CardsPlayed() int {
	return g.cardsPlayed
}

func (g *Game) IsRobot(seat int) bool {
	return g.robots[seat]
}

func (g *Game) PlayerCards(seat int) []card.Card {
	return g.hands[seat-1].Cards()
}

// Events exposes the instance-scoped event bus for listener registration.
func (g *Game) Events() *event.Bus {
	return g.events
}

// RegisterPlayNotifier hands control of a seat to an external controller.
// The notifier is invoked on the game goroutine whenever that seat has
// playable cards, and must call PlayHand before returning.
func (g *Game) RegisterPlayNotifier(seat int, notifier func()) {
	g.notifiers[seat] = notifier
}

// StartGame runs rounds until a seat empties its hand and returns the
// winning seat.
func (g *Game) StartGame() (int, error) {
	g.current = 0
	g.active = true
	g.events.FirstCardRevealed.Emit(event.FirstCardRevealedPayload{Card: g.pile.Top()})
	g.log.Printfln("First card is %s", g.pile.Top())

	for g.active {
		if err := g.handleRound(); err != nil {
			g.active = false
			return 0, err
		}
	}
	return g.winner, nil
}

// handleRound gives every seat one turn in the current play order. The
// round ends early when a seat still has nothing playable after its forced
// pickup, or when somebody wins.
func (g *Game) handleRound() error {
	for turn := 0; turn < g.playerCount && g.active; turn++ {
		seat, err := g.nextSeat()
		if err != nil {
			return err
		}
		g.current = seat

		if g.consumeSkip(seat) {
			g.log.Printfln("Player %d was skipped!", seat)
			g.events.TurnSkipped.Emit(event.TurnSkippedPayload{Seat: seat})
			continue
		}

		playable := g.hands[seat-1].PlayableCards(g.pile.Top())
		if len(playable) == 0 {
			g.pickup(seat, 1, pickupReasonNoPlayable)
			playable = g.hands[seat-1].PlayableCards(g.pile.Top())
		}
		if len(playable) == 0 {
			return nil
		}

		if notifier := g.notifiers[seat]; notifier != nil {
			notifier()
		} else if g.robots[seat] {
			chosen := playable[g.rng.Intn(len(playable))]
			if _, err := g.playCard(seat, chosen); err != nil {
				return err
			}
		} else {
			if err := g.playInteractive(seat); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) playInteractive(seat int) error {
	hand := g.hands[seat-1]
	g.log.Printfln("\nPlayer %d, it is your turn to play!", seat)
	g.log.Printfln("The last played card was %s", g.pile.Top())
	g.log.Printfln("Here are all your cards (not all are playable): %s", hand.Cards())
	g.log.Printfln("Here are your playable cards: %s", hand.PlayableCards(g.pile.Top()))
	g.log.Printlns([]string{
		"Please select one of the following play options:",
		"Play random same number (n)",
		"Play random same colour (c)",
		"Play wild card (w)",
	})

	selection := g.prompter.PromptOption("Enter 'n', 'c' or 'w':", []string{"n", "c", "w"})
	_, err := g.PlayHand(seat, Code(selection))
	return err
}

// PlayHand resolves the symbolic action for seat and plays the resulting
// card, returning the realized reward. An unavailable action falls back to
// the first available category; when no category is on offer at all the
// play resolves uniformly at random among the playable cards.
func (g *Game) PlayHand(seat int, code Code) (int, error) {
	set := g.Actions(seat)
	chosen, ok := set.Card(code)
	if !ok && len(set.Available) > 0 {
		chosen, ok = set.Card(set.Available[0])
	}
	if !ok {
		playable := g.hands[seat-1].PlayableCards(g.pile.Top())
		if len(playable) == 0 {
			return 0, nil
		}
		chosen = playable[g.rng.Intn(len(playable))]
	}
	return g.playCard(seat, chosen)
}

// playCard applies a chosen card: pile and hand bookkeeping, power effect,
// win evaluation and reward scoring, in that order.
func (g *Game) playCard(seat int, chosen card.Card) (int, error) {
	hand := g.hands[seat-1]
	startingPoints := hand.Points()

	g.pile.Add(chosen)
	hand.RemoveCard(chosen)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{Seat: seat, Card: chosen})
	g.log.Printfln("Player %d played %s, leaving them with %d card(s) remaining!", seat, chosen, hand.Size())

	if chosen.IsPower() {
		if err := g.applyEffect(seat, chosen); err != nil {
			return 0, err
		}
	}

	g.cardsPlayed++

	reward := 0
	gameWon := hand.Empty()
	if gameWon {
		g.handleWin(seat)
		reward = winReward
	}
	reward += startingPoints - hand.Points()

	if g.turnFinished != nil {
		g.turnFinished(gameWon)
	}
	return reward, nil
}

func (g *Game) applyEffect(seat int, played card.Card) error {
	switch played.Kind() {
	case card.Draw:
		return g.pickupNext(played.Pickup())
	case card.Skip:
		next, err := g.nextSeat()
		if err != nil {
			return err
		}
		g.skipSeat(next)
	case card.Reverse:
		g.flipDirection()
	case card.Wild:
		return g.resolveWildColor(seat, played)
	case card.WildDraw:
		if err := g.resolveWildColor(seat, played); err != nil {
			return err
		}
		return g.pickupNext(played.Pickup())
	}
	return nil
}

func (g *Game) pickupNext(amount int) error {
	next, err := g.nextSeat()
	if err != nil {
		return err
	}
	g.pickup(next, amount, fmt.Sprintf("Pickup %d", amount))
	return nil
}

// resolveWildColor fixes the color of the wild card sitting on top of the
// pile. Interactive seats are prompted; every other seat takes the most
// frequent color left in its hand.
func (g *Game) resolveWildColor(seat int, played card.Card) error {
	var chosen color.Color
	if g.interactiveSeat(seat) {
		chosen = g.prompter.PromptColor()
	} else {
		chosen = g.dominantColor(g.hands[seat-1].Cards())
	}
	resolved, err := played.ResolveColor(chosen)
	if err != nil {
		return err
	}
	g.pile.ReplaceTop(resolved)
	g.events.ColorPicked.Emit(event.ColorPickedPayload{Seat: seat, Color: chosen})
	g.log.Printfln("Player %d picked color %s!", seat, chosen)
	return nil
}

func (g *Game) interactiveSeat(seat int) bool {
	return !g.robots[seat] && g.notifiers[seat] == nil
}

func (g *Game) dominantColor(cards []card.Card) color.Color {
	table := color.Table()
	counts := make(map[color.Color]int, len(table))
	for _, held := range cards {
		if held.Color() != color.None {
			counts[held.Color()]++
		}
	}

	best := 0
	for _, amount := range counts {
		if amount > best {
			best = amount
		}
	}
	if best == 0 {
		return table[g.rng.Intn(len(table))]
	}

	var candidates []color.Color
	for _, tableColor := range table {
		if counts[tableColor] == best {
			candidates = append(candidates, tableColor)
		}
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// pickup moves cards from the deck into a seat's hand. A deck holding
// fewer cards than requested is first refilled by reshuffling the played
// pile through the same reveal procedure that opened the game.
func (g *Game) pickup(seat int, amount int, reason string) {
	if amount >= g.deck.Size() {
		g.log.Println("The game deck has been exhausted! Now shuffling played cards...")
		recycled := append(g.deck.TakeAll(), g.pile.TakeAll()...)
		g.deck, g.pile = ShuffleAndReveal(recycled, g.rng)
	}

	cards := g.deck.Draw(amount)
	g.hands[seat-1].AddCards(cards)
	g.events.CardsPickedUp.Emit(event.CardsPickedUpPayload{Seat: seat, Amount: len(cards), Reason: reason})
	g.log.Printfln("\nPlayer %d picked up %d card(s) for the reason: %s", seat, len(cards), reason)
	g.log.Printfln("%s", cards)
}

func (g *Game) handleWin(seat int) {
	g.log.Printfln("Player %d has won!", seat)
	g.winner = seat
	g.active = false
	g.events.WinnerFound.Emit(event.WinnerFoundPayload{Seat: seat, CardsPlayed: g.cardsPlayed})
}

func (g *Game) nextSeat() (int, error) {
	switch g.direction {
	case clockwise:
		next := g.current + 1
		if next > g.playerCount {
			next = 1
		}
		return next, nil
	case counterClockwise:
		next := g.current - 1
		if next < 1 {
			next = g.playerCount
		}
		return next, nil
	}
	return 0, consts.ErrorsPlayDirectionInvalid
}

func (g *Game) flipDirection() {
	if g.direction == clockwise {
		g.direction = counterClockwise
		return
	}
	g.direction = clockwise
}

func (g *Game) skipSeat(seat int) {
	g.skipped = append(g.skipped, seat)
}

func (g *Game) consumeSkip(seat int) bool {
	for index, skippedSeat := range g.skipped {
		if skippedSeat == seat {
			g.skipped = append(g.skipped[:index], g.skipped[index+1:]...)
			return true
		}
	}
	return false
}
