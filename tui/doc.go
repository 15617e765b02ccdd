// Package tui plays the puzzle in a terminal with bubbletea.
//
// The game runs against a local engine; no server is needed. Pegs are
// selected with the number keys or a left click, +/- and s change the
// ring count, r resets and q quits.
package tui
