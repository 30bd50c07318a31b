// Package driver adapts the engine's cooperative play-notifier handoff
// into an explicit request/response exchange over channels, so an external
// decision-maker can run on its own goroutine.
package driver

import (
	"github.com/ratel-online/uno-gym/game"
)

// Request is one pending turn of a driven seat. The engine goroutine is
// blocked inside the notifier until Respond is called.
type Request struct {
	Observation [3]bool
	Actions     []game.Code
	respond     chan game.Code
	result      chan playResult
}

type playResult struct {
	reward int
	err    error
}

// Respond answers the turn with a symbolic action code and returns the
// realized reward for the resulting play.
func (r Request) Respond(code game.Code) (int, error) {
	r.respond <- code
	result := <-r.result
	return result.reward, result.err
}

// Driver owns one seat of one game.
type Driver struct {
	seat     int
	game     *game.Game
	requests chan Request
}

// Attach registers the driver as the seat's play notifier. The game must
// not have started yet.
func Attach(g *game.Game, seat int) *Driver {
	d := &Driver{seat: seat, game: g, requests: make(chan Request)}
	g.RegisterPlayNotifier(seat, d.notify)
	return d
}

// Requests delivers one Request per turn the driven seat has to play.
func (d *Driver) Requests() <-chan Request {
	return d.requests
}

// notify runs on the engine goroutine and returns once the play resolved,
// preserving the engine's call/return turn contract.
func (d *Driver) notify() {
	request := Request{
		Observation: d.game.GameState(d.seat),
		Actions:     d.game.Actions(d.seat).Available,
		respond:     make(chan game.Code),
		result:      make(chan playResult),
	}
	d.requests <- request
	code := <-request.respond
	reward, err := d.game.PlayHand(d.seat, code)
	request.result <- playResult{reward: reward, err: err}
}
