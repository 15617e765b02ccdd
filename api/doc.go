// Package api provides HTTP REST API handlers for the Tower of Hanoi game.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session ({"config_id": "classic"})
//   - GET /api/sessions - List sessions (sort=created|accessed, order=asc|desc, limit=N)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/select - {"peg": 0} (0-based)
//   - POST /api/sessions/{id}/click - {"x": 300, "width": 815}
//   - POST /api/sessions/{id}/key - {"key": "2"} (1-based)
//   - POST /api/sessions/{id}/rings - {"action": "plus|minus|set", "value": "7"}
//   - POST /api/sessions/{id}/reset
//
// Configuration:
//   - GET /api/configs - List available presets
//   - GET /api/configs/{name} - Get one preset
//
// Other:
//   - GET /healthz - Liveness probe
//   - GET /ws?session={id} - WebSocket upgrade for live state
//   - GET / - Embedded browser client
//
// Game operations return a SelectResult and push the new state to every
// WebSocket client of the session.
//
// Error Handling:
//
// Errors are returned as JSON:
//
//	{"error": "session abcd: session not found"}
//
// Unknown sessions and presets map to 404, invalid presets and malformed
// bodies to 400.
package api
