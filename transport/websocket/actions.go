package websocket

import (
	"context"
	"fmt"
	"log"

	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/service"
)

// dispatch applies one client action. Results go to every client of the
// session; errors only to the sender.
func (h *Hub) dispatch(ctx context.Context, c *Client, msg InboundMessage) {
	if h.service == nil {
		c.sendMessage(&Message{SessionID: c.sessionID, Event: EventError, Data: "actions are not accepted on this connection"})
		return
	}

	if msg.Action == "state" {
		state, err := h.service.GetGameState(ctx, c.sessionID)
		if err != nil {
			c.sendMessage(&Message{SessionID: c.sessionID, Event: EventError, Data: err.Error()})
			return
		}
		c.sendMessage(&Message{SessionID: c.sessionID, Event: EventState, GameState: state})
		return
	}

	result, err := h.apply(ctx, c.sessionID, msg)
	if err != nil {
		log.Printf("[WS] session=%s client=%s action=%s error=%v", c.sessionID, c.id, msg.Action, err)
		c.sendMessage(&Message{SessionID: c.sessionID, Event: EventError, Data: err.Error()})
		return
	}
	h.BroadcastResult(c.sessionID, result)
}

func (h *Hub) apply(ctx context.Context, sessionID string, msg InboundMessage) (*service.SelectResult, error) {
	switch msg.Action {
	case "select":
		if msg.Peg == nil {
			return nil, fmt.Errorf("select requires peg")
		}
		return h.service.SelectPeg(ctx, sessionID, *msg.Peg)
	case "key":
		return h.service.KeyPress(ctx, sessionID, msg.Key)
	case "click":
		return h.service.Click(ctx, sessionID, msg.X, msg.Width)
	case "rings":
		return h.service.ChangeRingCount(ctx, sessionID, engine.RingChange{
			Kind:  engine.RingChangeKind(msg.Kind),
			Value: msg.Value,
		})
	case "reset":
		return h.service.Reset(ctx, sessionID)
	default:
		return nil, fmt.Errorf("unknown action %q", msg.Action)
	}
}
