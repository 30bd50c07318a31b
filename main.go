package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-gym/card/color"
	"github.com/ratel-online/uno-gym/consts"
	"github.com/ratel-online/uno-gym/driver"
	"github.com/ratel-online/uno-gym/game"
	"github.com/ratel-online/uno-gym/server"
	"github.com/ratel-online/uno-gym/stats"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	mode := flag.String("mode", "play", "play, simulate or serve")
	players := flag.Int("players", 1, "seats at the table (1 adds a scripted opponent)")
	cards := flag.Int("cards", consts.DefaultCardsPerPlayer, "cards dealt to each seat")
	games := flag.Int("games", 100, "games per simulation instance")
	instances := flag.Int("instances", 1, "parallel simulation instances")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	db := flag.String("db", "", "sqlite file for simulation outcomes")
	addr := flag.String("addr", ":9999", "websocket listen address")
	flag.Parse()

	switch *mode {
	case "play":
		runInteractive(*players, *cards)
	case "simulate":
		runSimulation(*instances, *games, *cards, *seed, *db)
	case "serve":
		log.Error(server.New(*addr).Serve())
	default:
		fmt.Printf("unknown mode '%s'\n", *mode)
	}
}

func runInteractive(players, cards int) {
	fmt.Printf(
		"WELCOME TO %s%s%s!!!\n",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
	g, err := game.New(game.Config{
		PlayerCount:    players,
		CardsPerPlayer: cards,
		Logging:        true,
	})
	if err != nil {
		log.Error(err)
		return
	}
	winner, err := g.StartGame()
	if err != nil {
		log.Error(err)
		return
	}
	fmt.Printf("Player %d wins after %d cards played!\n", winner, g.CardsPlayed())
}

func runSimulation(instances, games, cards int, seed int64, dbPath string) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *stats.Store
	if dbPath != "" {
		opened, err := stats.Open(dbPath)
		if err != nil {
			log.Error(err)
			return
		}
		store = opened
		defer store.Close()
	}

	var waitGroup sync.WaitGroup
	for instance := 1; instance <= instances; instance++ {
		instance := instance
		waitGroup.Add(1)
		async.Async(func() {
			defer waitGroup.Done()
			runInstance(instance, games, cards, seed+int64(instance), store)
		})
	}
	waitGroup.Wait()

	if store != nil {
		summary, err := store.Summarize(1)
		if err != nil {
			log.Error(err)
			return
		}
		log.Infof(
			"recorded %d games, seat 1 won %d, avg %.1f cards played, total reward %d\n",
			summary.Games, summary.Wins, summary.AvgCards, summary.TotalReward,
		)
	}
}

func runInstance(instance, games, cards int, seed int64, store *stats.Store) {
	rng := rand.New(rand.NewSource(seed))
	wins := 0
	for i := 0; i < games; i++ {
		g, err := game.New(game.Config{
			PlayerCount:    1,
			CardsPerPlayer: cards,
			Rand:           rand.New(rand.NewSource(rng.Int63())),
		})
		if err != nil {
			log.Error(err)
			return
		}

		started := time.Now()
		outcome, err := driver.Play(g, 1, driver.RandomPolicy, rng)
		if err != nil {
			log.Error(err)
			return
		}
		if outcome.Won {
			wins++
		}

		if store != nil {
			err := store.Record(stats.Outcome{
				Instance:    instance,
				Winner:      outcome.Winner,
				CardsPlayed: outcome.CardsPlayed,
				Reward:      outcome.Reward,
				Duration:    time.Since(started),
			})
			if err != nil {
				log.Error(err)
			}
		}
	}
	log.Infof("instance %d finished %d games, seat 1 won %d\n", instance, games, wins)
}
