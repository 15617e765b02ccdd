// Package render turns an engine.View into something a player can look at.
//
// The Renderer interface is the seam between the puzzle core and its
// displays: the browser canvas in web/, the terminal UI in tui and the text
// returned to MCP agents all consume the same View. TextRenderer is the
// plain ASCII implementation used by the text transports.
package render
