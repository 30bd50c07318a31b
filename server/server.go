// Package server exposes the engine to a remote decision-maker over a
// websocket. Every connection owns one private game: the client drives
// seat 1 through the symbolic action surface, the opponent is a scripted
// seat inside the engine.
package server

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-gym/consts"
	"github.com/ratel-online/uno-gym/driver"
	"github.com/ratel-online/uno-gym/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var sessionIds int64 = 0
var sessions = hashmap.New()

type session struct {
	ID        int64
	Game      *game.Game
	StartedAt time.Time
}

func activeSessions() int {
	count := 0
	sessions.Foreach(func(e *hashmap.Entry) {
		count++
	})
	return count
}

type Server struct {
	addr string
}

func New(addr string) *Server {
	return &Server{addr: addr}
}

func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/play", s.ServePlay)
	log.Infof("Websocket server listening on %s\n", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) ServePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	defer conn.Close()
	if err := s.handle(conn, r); err != nil {
		log.Error(err)
	}
}

func (s *Server) handle(conn *websocket.Conn, r *http.Request) error {
	cardsPerPlayer := consts.DefaultCardsPerPlayer
	if raw := r.URL.Query().Get("cards"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			cardsPerPlayer = parsed
		}
	}

	g, err := game.New(game.Config{PlayerCount: 1, CardsPerPlayer: cardsPerPlayer})
	if err != nil {
		return err
	}

	playerSession := &session{
		ID:        atomic.AddInt64(&sessionIds, 1),
		Game:      g,
		StartedAt: time.Now(),
	}
	sessions.Set(playerSession.ID, playerSession)
	defer sessions.Del(playerSession.ID)
	log.Infof("session %d started, %d active\n", playerSession.ID, activeSessions())

	d := driver.Attach(g, 1)
	done := make(chan gameResult, 1)
	async.Async(func() {
		winner, err := g.StartGame()
		done <- gameResult{winner: winner, err: err}
	})

	for {
		select {
		case request := <-d.Requests():
			answered, err := s.exchangeTurn(conn, request)
			if err != nil {
				// the engine may still be waiting for an answer;
				// let a scripted fallback finish the game
				abandon(request, answered, d, done)
				return err
			}
		case result := <-done:
			if result.err != nil {
				return result.err
			}
			log.Infof("session %d finished, winner seat %d\n", playerSession.ID, result.winner)
			return write(conn, doneMessage{
				Type:        "done",
				Winner:      result.winner,
				Won:         result.winner == 1,
				CardsPlayed: g.CardsPlayed(),
			})
		}
	}
}

func (s *Server) exchangeTurn(conn *websocket.Conn, request driver.Request) (bool, error) {
	turn := turnMessage{
		Type:        "turn",
		Observation: request.Observation[:],
		Actions:     make([]string, 0, len(request.Actions)),
	}
	for _, code := range request.Actions {
		turn.Actions = append(turn.Actions, string(code))
	}
	if err := write(conn, turn); err != nil {
		return false, err
	}

	var action actionMessage
	if err := read(conn, &action); err != nil {
		return false, err
	}
	reward, err := request.Respond(game.Code(action.Action))
	if err != nil {
		return true, err
	}
	return true, write(conn, resultMessage{Type: "result", Reward: reward})
}

type gameResult struct {
	winner int
	err    error
}

// abandon answers the pending request and every later one with the first
// offered action until the game runs out, so no engine goroutine leaks
// when a client disconnects mid-game.
func abandon(pending driver.Request, answered bool, d *driver.Driver, done chan gameResult) {
	async.Async(func() {
		if !answered {
			_, _ = pending.Respond(game.CodeNumber)
		}
		for {
			select {
			case request := <-d.Requests():
				_, _ = request.Respond(game.CodeNumber)
			case <-done:
				return
			}
		}
	})
}
