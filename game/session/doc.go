// Package session keeps Tower of Hanoi game sessions in memory.
//
// Each session owns its own engine.GameEngine plus creation and last access
// times. IDs are 4 hex characters from crypto/rand and are matched
// case-insensitively. Nothing is written to disk; sessions idle longer than
// the configured TTL are dropped by RunCleanup.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sessionID)
//
//	go manager.RunCleanup(ctx, time.Hour, 24*time.Hour)
package session
