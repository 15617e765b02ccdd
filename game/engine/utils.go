package engine

import "fmt"

// CheckInvariants verifies that every ring 1..RingCount sits on exactly one
// peg and that no ring rests on a smaller one.
func CheckInvariants(state *GameState) error {
	if len(state.Pegs) != state.StickCount {
		return fmt.Errorf("expected %d pegs, got %d", state.StickCount, len(state.Pegs))
	}
	if state.Active != nil && (*state.Active < 0 || *state.Active >= len(state.Pegs)) {
		return fmt.Errorf("active stick %d out of range", *state.Active)
	}

	seen := make(map[int]int, state.RingCount)
	for i, rings := range state.Pegs {
		for j, ring := range rings {
			if ring < 1 || ring > state.RingCount {
				return fmt.Errorf("peg %d holds ring %d outside 1..%d", i, ring, state.RingCount)
			}
			if prev, dup := seen[ring]; dup {
				return fmt.Errorf("ring %d appears on peg %d and peg %d", ring, prev, i)
			}
			seen[ring] = i
			if j > 0 && ring >= rings[j-1] {
				return fmt.Errorf("peg %d: ring %d rests on smaller ring %d", i, ring, rings[j-1])
			}
		}
	}
	if len(seen) != state.RingCount {
		return fmt.Errorf("expected %d rings on the board, found %d", state.RingCount, len(seen))
	}
	return nil
}

// MinimumMoves returns the fewest moves needed to relocate rings across
// pegs, using the Frame-Stewart recurrence for more than three pegs.
// It returns -1 when the count overflows an int.
func MinimumMoves(rings, pegs int) int {
	if rings <= 0 {
		return 0
	}
	if pegs < 3 {
		return -1
	}
	memo := make(map[[2]int]int)
	var solve func(n, p int) int
	solve = func(n, p int) int {
		if n == 0 {
			return 0
		}
		if n == 1 {
			return 1
		}
		if p == 3 {
			if n >= 62 {
				return -1
			}
			return 1<<uint(n) - 1
		}
		key := [2]int{n, p}
		if v, ok := memo[key]; ok {
			return v
		}
		best := -1
		for k := 1; k < n; k++ {
			top := solve(k, p)
			rest := solve(n-k, p-1)
			if top < 0 || rest < 0 {
				continue
			}
			total := 2*top + rest
			if best < 0 || total < best {
				best = total
			}
		}
		memo[key] = best
		return best
	}
	return solve(rings, pegs)
}
