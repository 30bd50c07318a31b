package driver

import (
	"math/rand"

	"github.com/ratel-online/uno-gym/game"
)

// Outcome summarizes one driven game from the driven seat's perspective.
type Outcome struct {
	Winner      int
	Won         bool
	CardsPlayed int
	Reward      int
	Turns       int
}

type gameResult struct {
	winner int
	err    error
}

// Play drives seat with policy until the game finishes. The engine runs on
// its own goroutine; the calling goroutine answers its turn requests.
func Play(g *game.Game, seat int, policy Policy, rng *rand.Rand) (Outcome, error) {
	d := Attach(g, seat)

	done := make(chan gameResult, 1)
	go func() {
		winner, err := g.StartGame()
		done <- gameResult{winner: winner, err: err}
	}()

	outcome := Outcome{}
	var playErr error
	for {
		select {
		case request := <-d.requests:
			reward, err := request.Respond(policy(request.Observation, request.Actions, rng))
			if err != nil && playErr == nil {
				playErr = err
			}
			outcome.Reward += reward
			outcome.Turns++
		case result := <-done:
			if result.err != nil {
				return outcome, result.err
			}
			if playErr != nil {
				return outcome, playErr
			}
			outcome.Winner = result.winner
			outcome.Won = result.winner == seat
			outcome.CardsPlayed = g.CardsPlayed()
			return outcome, nil
		}
	}
}
