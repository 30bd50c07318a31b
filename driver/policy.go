package driver

import (
	"math/rand"

	"github.com/ratel-online/uno-gym/game"
)

// Policy selects a symbolic action for one turn.
type Policy func(observation [3]bool, actions []game.Code, rng *rand.Rand) game.Code

// RandomPolicy plays uniformly at random among the offered actions.
func RandomPolicy(observation [3]bool, actions []game.Code, rng *rand.Rand) game.Code {
	if len(actions) == 0 {
		return game.CodeNumber
	}
	return actions[rng.Intn(len(actions))]
}

// GreedyPolicy burns matches before wild cards: number first, then color.
func GreedyPolicy(observation [3]bool, actions []game.Code, rng *rand.Rand) game.Code {
	for _, preferred := range game.AllCodes {
		for _, offered := range actions {
			if offered == preferred {
				return offered
			}
		}
	}
	return RandomPolicy(observation, actions, rng)
}
