// Package mcp exposes the Tower of Hanoi game to AI agents over the Model
// Context Protocol.
//
// The client is a thin proxy: every tool call is translated into a request
// against the REST API, and the JSON answer is rendered back as text with
// an ASCII picture of the board.
//
// MCP Tools:
//   - create_session, list_sessions, get_session: session management
//   - game_state: current board
//   - select_peg: 0-based peg selection (pick or drop)
//   - press_key: 1-based key selection
//   - change_rings: plus, minus or set the ring count
//   - reset_game: restore the initial stack
//   - list_configs: presets with their minimum move counts
//   - game_instructions: rules and strategy
//
// Transport Modes:
//
// The server built by NewClient can be served over stdio with
// server.ServeStdio, or mounted on an HTTP endpoint that feeds request
// bodies to HandleMessage.
package mcp
