package engine

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// PegFromPointer maps a horizontal pointer position to a peg index by
// splitting the visible width into stickCount equal bands.
func PegFromPointer(x, width float64, stickCount int) (int, bool) {
	if stickCount <= 0 || width <= 0 || math.IsNaN(x) || x < 0 || x >= width {
		return 0, false
	}
	peg := int(math.Floor(x / (width / float64(stickCount))))
	if peg >= stickCount {
		peg = stickCount - 1
	}
	return peg, true
}

// PegFromKey maps a key press holding a 1-based peg number to a peg index
func PegFromKey(key string, stickCount int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || n < 1 || n > stickCount {
		return 0, false
	}
	return n - 1, true
}

// parseRingEntry reads the leading integer of a text entry, so "7 rings"
// yields 7 and "rings" is rejected.
func parseRingEntry(text string) (int, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
