package main

import (
	"encoding/json"
	"sync"
)

// Hub fans game events out to connected websocket clients: one "move"
// frame per applied move, a "game_over" frame when the game ends, plus
// "status" and "reset" snapshots.
type Hub struct {
	mu                sync.Mutex
	clients           map[*Client]struct{}
	broadcastMove     chan movePayload
	broadcastGameOver chan gameOverPayload
	broadcastStatus   chan StatusResponse
	broadcastReset    chan StatusResponse
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type movePayload struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"`
}

type gameOverPayload struct {
	Outcome     string `json:"outcome"`
	Winner      int    `json:"winner"`
	WinningLine []Move `json:"winning_line"`
}

func NewHub() *Hub {
	return &Hub{
		clients:           make(map[*Client]struct{}),
		broadcastMove:     make(chan movePayload, 32),
		broadcastGameOver: make(chan gameOverPayload, 8),
		broadcastStatus:   make(chan StatusResponse, 32),
		broadcastReset:    make(chan StatusResponse, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastMove:
			h.broadcast(wsMessage{Type: "move", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastGameOver:
			h.broadcast(wsMessage{Type: "game_over", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastStatus:
			h.broadcast(wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.broadcastReset:
			h.broadcast(wsMessage{Type: "reset", Payload: mustMarshal(payload)})
		}
	}
}

func (h *Hub) broadcast(msg wsMessage) {
	h.mu.Lock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
