// Command analyze prints quick, human-readable figures about the presets in
// the project's configs directory. It summarizes peg and ring settings,
// the minimum solution length across the allowed ring range, and flags
// presets whose largest tower is impractical to play by hand.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/wricardo/hanoi-game/game/engine"
)

// handMoveLimit is the solution length above which a tower stops being a
// reasonable game to play by hand
const handMoveLimit = 10000

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	dir := fs.StringP("dir", "d", "configs", "Directory holding preset files")
	rings := fs.IntP("rings", "r", 0, "Also report the minimum moves for this ring count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		var err error
		files, err = filepath.Glob(filepath.Join(*dir, "*.json"))
		if err != nil {
			return fmt.Errorf("finding config files: %w", err)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no config files in %s", *dir)
	}

	for _, configFile := range files {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", filepath.Base(configFile))
		analyzeConfig(w, configFile, *rings)
	}
	return nil
}

func analyzeConfig(w io.Writer, path string, rings int) {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		fmt.Fprintf(w, "Skipping: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Name: %s\n", config.Name)
	fmt.Fprintf(w, "Pegs: %d\n", config.StickCount)
	fmt.Fprintf(w, "Rings: %d (range %d-%d)\n", config.RingCount, config.RingMin, config.RingMax)
	if config.KeepSelectionOnIllegal {
		fmt.Fprintln(w, "Illegal drop: keeps selection")
	} else {
		fmt.Fprintln(w, "Illegal drop: cancels selection")
	}

	fmt.Fprintf(w, "Minimum moves: %d at start, %d at ring_min, %d at ring_max\n",
		engine.MinimumMoves(config.RingCount, config.StickCount),
		engine.MinimumMoves(config.RingMin, config.StickCount),
		engine.MinimumMoves(config.RingMax, config.StickCount))

	if config.StickCount > 3 {
		classic := engine.MinimumMoves(config.RingCount, 3)
		saved := classic - engine.MinimumMoves(config.RingCount, config.StickCount)
		fmt.Fprintf(w, "Extra pegs save %d of %d classic moves\n", saved, classic)
	}

	if rings > 0 {
		if rings < config.RingMin || rings > config.RingMax {
			fmt.Fprintf(w, "%d rings: outside the allowed range\n", rings)
		} else {
			fmt.Fprintf(w, "%d rings: %d moves\n", rings, engine.MinimumMoves(rings, config.StickCount))
		}
	}

	if most := engine.MinimumMoves(config.RingMax, config.StickCount); most > handMoveLimit {
		fmt.Fprintf(w, "⚠️  WARNING: ring_max %d needs %d moves, too many to play by hand\n", config.RingMax, most)
	} else {
		fmt.Fprintln(w, "✅ Every allowed ring count is playable by hand")
	}
}
