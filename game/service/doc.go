// Package service provides the business logic layer for the Tower of Hanoi game.
//
// The service package implements:
//   - Multi-session game management
//   - Peg selection from indices, pointer positions and key presses
//   - Ring count reconfiguration
//   - Event reporting for every input
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager loads puzzle presets.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Each session owns its own engine instance. A single mutex
// serializes every transition, so an input is processed to completion before
// the next one is looked at.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Lift the top ring of peg 1 and drop it on peg 3
//	gameService.SelectPeg(ctx, info.ID, 0)
//	result, err := gameService.SelectPeg(ctx, info.ID, 2)
//
// Errors:
//
// Gameplay input never fails; bad pegs and keys come back with the
// "ignored" outcome. Lookups fail with ErrSessionNotFound or
// ErrConfigNotFound wrapped with context.
package service
