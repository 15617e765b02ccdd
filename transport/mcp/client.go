package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/hanoi-game/game/engine"
	"github.com/wricardo/hanoi-game/game/render"
	"github.com/wricardo/hanoi-game/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
	renderer   render.Renderer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		renderer: render.NewTextRenderer(),
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Tower of Hanoi",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Tower of Hanoi - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Move the whole stack of rings from the first peg onto any other peg.
A ring may only rest on an empty peg or on a larger ring.

AVAILABLE TOOLS:
- create_session: Create new game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Get current board
- select_peg: Pick up the top ring of a peg, or drop the held ring on it
- press_key: Same as select_peg but with the 1-based key a player would press
- change_rings: Change the number of rings (plus, minus or set)
- reset_game: Reset to initial state
- list_configs: List available presets
- game_instructions: Get the complete rules`),
	)

	c.registerTools()
}

func sessionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset to use, see list_configs (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board with every peg listed bottom to top",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "select_peg",
		Description: "Select a peg. With no ring held this picks up its top ring; with a ring held it drops the ring there",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"peg": map[string]interface{}{
					"type":        "integer",
					"minimum":     0,
					"description": "0-based peg index",
				},
			},
			Required: []string{"session_id", "peg"},
		},
	}, c.handleSelectPeg)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "press_key",
		Description: "Press a number key; key 1 selects the first peg",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"key": map[string]interface{}{
					"type":        "string",
					"description": "Key label, 1 to the number of pegs",
				},
			},
			Required: []string{"session_id", "key"},
		},
	}, c.handlePressKey)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "change_rings",
		Description: "Change the number of rings. The board is rebuilt with every ring on the first peg",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"plus", "minus", "set"},
					"description": "plus adds a ring, minus removes one, set uses value",
				},
				"value": map[string]interface{}{
					"type":        "string",
					"description": "New ring count when action is set",
				},
			},
			Required: []string{"session_id", "action"},
		},
	}, c.handleChangeRings)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules and tips for solving the puzzle",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

func sessionPath(args map[string]interface{}, suffix string) (string, error) {
	sessionID, _ := args["session_id"].(string)
	if strings.TrimSpace(sessionID) == "" {
		return "", fmt.Errorf("session_id is required")
	}
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix, nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Created session: %s\n\n%s", session.ID, c.formatSessionInfo(&session))), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		line := fmt.Sprintf("- %s (Config: %s, Created: %s)", s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
		if s.GameState != nil {
			line += " " + render.Summary(s.GameState.View())
		}
		b.WriteString(line + "\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", path, nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(c.formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "/state")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", path, nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(c.formatGameState(&state)), nil
}

func (c *Client) handleSelectPeg(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	path, err := sessionPath(args, "/select")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// JSON numbers arrive as float64
	peg, ok := args["peg"].(float64)
	if !ok {
		return mcp.NewToolResultError("peg must be a number"), nil
	}

	return c.postResult(ctx, path, map[string]int{"peg": int(peg)})
}

func (c *Client) handlePressKey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	path, err := sessionPath(args, "/key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	key, _ := args["key"].(string)
	return c.postResult(ctx, path, map[string]string{"key": key})
}

func (c *Client) handleChangeRings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	path, err := sessionPath(args, "/rings")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	action, _ := args["action"].(string)
	body := map[string]string{"action": action}
	switch v := args["value"].(type) {
	case string:
		body["value"] = v
	case float64:
		body["value"] = fmt.Sprintf("%d", int(v))
	}

	return c.postResult(ctx, path, body)
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := sessionPath(arguments(request), "/reset")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return c.postResult(ctx, path, nil)
}

// postResult sends one game operation and formats the returned result
func (c *Client) postResult(ctx context.Context, path string, body interface{}) (*mcp.CallToolResult, error) {
	var result service.SelectResult
	if err := c.apiCall(ctx, "POST", path, body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(c.formatSelectResult(&result)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Pegs: %d, Rings: %d (allowed %d-%d), Minimum moves: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.StickCount, config.RingCount, config.RingMin, config.RingMax,
			engine.MinimumMoves(config.RingCount, config.StickCount))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Tower of Hanoi - Complete Instructions

GAME OBJECTIVE:
All rings start stacked on the first peg, largest at the bottom.
Rebuild the complete stack on any other peg.

RULES:
• Only the top ring of a peg can be moved
• A ring may rest on an empty peg or on a larger ring, never on a smaller one
• Moving is two steps: select the source peg, then select the target peg
• Selecting the held peg again puts the ring back down
• Selecting an empty peg with nothing held does nothing
• An illegal drop cancels the pick unless the preset keeps the selection

BOARD FORMAT:
Pegs are listed bottom to top, ring 1 is the smallest:
  1:[5 4 3 2] 2:[1] 3:[] held=none rings=5 won=false
The picture from game_state marks the held peg with ^ and lifts its top ring.

MOVEMENT COMMANDS:
• select_peg with peg 0, 1, 2 ... (0-based)
• press_key with key "1", "2", "3" ... (1-based, like the keyboard)

RING COUNT:
• change_rings with action plus or minus steps one ring
• change_rings with action set and value "7" jumps directly
• Any ring change rebuilds the board from scratch

STRATEGY:
• With three pegs the optimal solution takes 2^n - 1 moves
• Move the top n-1 rings out of the way, move the largest ring, then
  rebuild the n-1 rings on top of it
• On an odd ring count the smallest ring cycles first -> last -> middle;
  on an even count first -> middle -> last
• Extra pegs shorten the solution, see list_configs for the minimum

VICTORY CONDITIONS:
The game is won the moment every ring sits on one peg other than the first.

Good luck!`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func (c *Client) formatSessionInfo(session *service.SessionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session: %s\nConfig: %s\nCreated: %s\nMinimum moves: %d\n",
		session.ID, session.ConfigName, session.CreatedAt.Format(time.RFC3339), session.MinimumMoves)
	if session.GameState != nil {
		b.WriteString("\n" + c.formatGameState(session.GameState))
	}
	return b.String()
}

func (c *Client) formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state"
	}

	view := state.View()
	var b strings.Builder
	if err := c.renderer.Render(&b, view); err != nil {
		return fmt.Sprintf("Failed to draw board: %v", err)
	}
	b.WriteString("\n")
	b.WriteString(render.Summary(view) + "\n")

	if view.ActiveStick != engine.NoActiveStick {
		fmt.Fprintf(&b, "Holding ring %d from peg %d\n", state.TopOf(view.ActiveStick), view.ActiveStick+1)
	}
	if state.Won {
		b.WriteString("🎉 VICTORY!\n")
	}
	if state.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", state.Message)
	}
	return b.String()
}

func (c *Client) formatSelectResult(result *service.SelectResult) string {
	var b strings.Builder

	switch {
	case result.Outcome == engine.OutcomeRejected:
		b.WriteString("✗ Move rejected\n")
	case result.Outcome != "":
		fmt.Fprintf(&b, "✓ %s\n", result.Outcome)
	case result.Accepted:
		b.WriteString("✓ Accepted\n")
	default:
		b.WriteString("✗ Request rejected\n")
	}

	for _, ev := range result.Events {
		if ev.Type == service.EventVictory {
			fmt.Fprintf(&b, "🎉 %s\n", ev.Message)
		}
	}

	b.WriteString("\n" + c.formatGameState(result.GameState))
	return b.String()
}
