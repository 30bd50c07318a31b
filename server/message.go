package server

import (
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type turnMessage struct {
	Type        string   `json:"type"`
	Observation []bool   `json:"observation"`
	Actions     []string `json:"actions"`
}

type actionMessage struct {
	Action string `json:"action"`
}

type resultMessage struct {
	Type   string `json:"type"`
	Reward int    `json:"reward"`
}

type doneMessage struct {
	Type        string `json:"type"`
	Winner      int    `json:"winner"`
	Won         bool   `json:"won"`
	CardsPlayed int    `json:"cardsPlayed"`
}

func write(conn *websocket.Conn, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func read(conn *websocket.Conn, message interface{}) error {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, message)
}
