package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Outbound event names that are not service event types
const (
	EventState = "state"
	EventError = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is pushed to every client of a session after each transition
type Message struct {
	SessionID string            `json:"session_id"`
	Event     string            `json:"event"`
	GameState *engine.GameState `json:"game_state,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
}

// InboundMessage is an action sent by a client
type InboundMessage struct {
	Action string  `json:"action"` // "select", "key", "click", "rings", "reset", "state"
	Peg    *int    `json:"peg,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Kind   string  `json:"kind,omitempty"` // rings: plus, minus or set
	Value  string  `json:"value,omitempty"`
}

// Client represents a WebSocket client
type Client struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

type directMessage struct {
	client *Client
	data   []byte
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients by lower-cased session ID
	sessions map[string]map[*Client]bool

	// Outbound messages for a session
	broadcast chan *Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Messages for a single client
	direct chan directMessage

	// Applies inbound client actions; nil makes the hub push-only
	service service.GameService

	// Closed when Run returns
	done chan struct{}
}

// NewHub creates a new WebSocket hub. A nil service disables inbound actions.
func NewHub(gameService service.GameService) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		direct:     make(chan directMessage, 16),
		service:    gameService,
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop and returns when ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for key, clients := range h.sessions {
				for client := range clients {
					close(client.send)
				}
				delete(h.sessions, key)
			}
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)

		case dm := <-h.direct:
			h.sendDirect(dm)
		}
	}
}

// ServeWS upgrades the request and attaches the connection to a session.
// The current state is sent as the first message.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:        uuid.NewString(),
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, 256),
		sessionID: sessionID,
	}

	// Not registered yet, so nothing else writes to send
	if h.service != nil {
		if state, err := h.service.GetGameState(r.Context(), sessionID); err == nil {
			if data, err := json.Marshal(&Message{SessionID: sessionID, Event: EventState, GameState: state}); err == nil {
				client.send <- data
			}
		}
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// BroadcastToSession sends a game state update to all clients in a session
func (h *Hub) BroadcastToSession(sessionID, event string, state *engine.GameState) {
	select {
	case h.broadcast <- &Message{SessionID: sessionID, Event: event, GameState: state}:
	case <-h.done:
	}
}

// BroadcastResult sends the outcome of a transition to all clients in a session
func (h *Hub) BroadcastResult(sessionID string, result *service.SelectResult) {
	if result == nil {
		return
	}
	h.BroadcastToSession(sessionID, resultEvent(result), result.GameState)
}

// resultEvent names a result by its most significant event
func resultEvent(result *service.SelectResult) string {
	if len(result.Events) == 0 {
		return EventState
	}
	for _, ev := range result.Events {
		if ev.Type == service.EventVictory {
			return ev.Type
		}
	}
	return result.Events[0].Type
}

// registerClient adds a client to a session
func (h *Hub) registerClient(client *Client) {
	key := strings.ToLower(client.sessionID)
	if h.sessions[key] == nil {
		h.sessions[key] = make(map[*Client]bool)
	}
	h.sessions[key][client] = true

	log.Printf("Client %s registered for session %s (total clients: %d)",
		client.id, client.sessionID, len(h.sessions[key]))
}

// unregisterClient removes a client from a session
func (h *Hub) unregisterClient(client *Client) {
	key := strings.ToLower(client.sessionID)
	if clients, ok := h.sessions[key]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)

			// Clean up empty sessions
			if len(clients) == 0 {
				delete(h.sessions, key)
			}

			log.Printf("Client %s unregistered from session %s (remaining clients: %d)",
				client.id, client.sessionID, len(clients))
		}
	}
}

// broadcastMessage sends a message to all clients in a session
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	if clients, ok := h.sessions[strings.ToLower(message.SessionID)]; ok {
		for client := range clients {
			select {
			case client.send <- data:
			default:
				// Client's send channel is full, drop it
				h.unregisterClient(client)
			}
		}
	}
}

// sendDirect delivers a message to one client if it is still registered
func (h *Hub) sendDirect(dm directMessage) {
	clients, ok := h.sessions[strings.ToLower(dm.client.sessionID)]
	if !ok || !clients[dm.client] {
		return
	}
	select {
	case dm.client.send <- dm.data:
	default:
		h.unregisterClient(dm.client)
	}
}

// sendMessage queues a message for this client only
func (c *Client) sendMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal WebSocket message: %v", err)
		return
	}
	select {
	case c.hub.direct <- directMessage{client: c, data: data}:
	case <-c.hub.done:
	}
}

// readPump reads client actions and applies them to the session
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var msg InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendMessage(&Message{SessionID: c.sessionID, Event: EventError, Data: "invalid message"})
			continue
		}
		c.hub.dispatch(context.Background(), c, msg)
	}
}

// writePump pumps messages from the hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
