// Package websocket provides WebSocket transport for the Tower of Hanoi game.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - State broadcasting after every transition
//   - Player actions sent over the same connection
//
// Architecture:
//
// A central Hub owns the client map and runs in a single goroutine. Each
// connection gets a read pump and a write pump. Broadcasts, registrations
// and per-client replies all pass through the hub's channels.
//
// Message Protocol:
//
// Outgoing messages are JSON objects:
//
//	{"session_id": "ab12", "event": "moved", "game_state": {...}}
//
// The first message on a new connection carries the "state" event. Later
// events are the service event types ("picked", "moved", "rejected",
// "cancelled", "ignored", "victory", "rings_changed", "reset") or "error".
//
// Incoming messages select an action:
//
//	{"action": "select", "peg": 0}
//	{"action": "key", "key": "2"}
//	{"action": "click", "x": 412, "width": 815}
//	{"action": "rings", "kind": "plus"}
//	{"action": "rings", "kind": "set", "value": "7"}
//	{"action": "reset"}
//	{"action": "state"}
//
// Usage:
//
//	hub := websocket.NewHub(gameService)
//	go hub.Run(ctx)
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
package websocket
