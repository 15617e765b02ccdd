// Command validate checks puzzle preset JSON files. By default it scans
// ../configs; files may also be named on the command line. It checks:
//   - JSON structure, with unknown fields rejected
//   - Peg count and ring range limits
//   - The starting ring count lies inside the allowed range
//   - Required message keys and the ring_count placeholder
//
// Valid presets are summarized with their minimum solution length.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/hanoi-game/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single preset file, reporting every
// problem found rather than stopping at the first
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if config.Name == "" {
		result.fail("Missing name")
	}
	if config.Description == "" {
		result.fail("Missing description")
	}

	if config.StickCount < engine.MinStickCount || config.StickCount > engine.MaxStickCount {
		result.fail("stick_count must be between %d and %d, got %d", engine.MinStickCount, engine.MaxStickCount, config.StickCount)
	}

	if config.RingMin < engine.MinRings {
		result.fail("ring_min must be at least %d, got %d", engine.MinRings, config.RingMin)
	}
	if config.RingMax > engine.MaxRings {
		result.fail("ring_max must be at most %d, got %d", engine.MaxRings, config.RingMax)
	}
	if config.RingMin > config.RingMax {
		result.fail("ring_min (%d) cannot exceed ring_max (%d)", config.RingMin, config.RingMax)
	} else if config.RingCount < config.RingMin || config.RingCount > config.RingMax {
		result.fail("ring_count %d is outside [%d, %d]", config.RingCount, config.RingMin, config.RingMax)
	}

	if config.Messages.Welcome == "" {
		result.fail("Missing required message: welcome")
	}
	if config.Messages.Victory == "" {
		result.fail("Missing required message: victory")
	}
	if config.Messages.RingCount != "" && strings.Count(config.Messages.RingCount, "%d") != 1 {
		result.fail("Message ring_count must contain exactly one %%d")
	}

	// engine rules not covered above
	if result.Valid {
		if err := engine.ValidateGameConfig(&config); err != nil {
			result.fail("%v", err)
		}
	}

	if result.Valid {
		result.info("Name: %s", config.Name)
		result.info("Pegs: %d", config.StickCount)
		result.info("Rings: %d (allowed %d-%d)", config.RingCount, config.RingMin, config.RingMax)
		result.info("Minimum moves: %d", engine.MinimumMoves(config.RingCount, config.StickCount))
		if config.KeepSelectionOnIllegal {
			result.info("Illegal drop keeps the selection")
		} else {
			result.info("Illegal drop cancels the selection")
		}
		if missing := missingMessages(config.Messages); len(missing) > 0 {
			result.info("Default text for: %s", strings.Join(missing, ", "))
		}
	}

	return result
}

func missingMessages(m engine.Messages) []string {
	var missing []string
	for name, text := range map[string]string{
		"cancelled":  m.Cancelled,
		"illegal":    m.Illegal,
		"moved":      m.Moved,
		"picked":     m.Picked,
		"ring_count": m.RingCount,
	} {
		if text == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// report validates files and prints a concise report. It returns false if
// any file is invalid.
func report(w io.Writer, files []string) bool {
	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}

func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check Tower of Hanoi preset files",
		ArgsUsage: "[file.json ...]",
		Writer:    w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: "../configs",
				Usage: "directory scanned when no files are given",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				var err error
				files, err = filepath.Glob(filepath.Join(cmd.String("dir"), "*.json"))
				if err != nil {
					return fmt.Errorf("finding config files: %w", err)
				}
				if len(files) == 0 {
					return fmt.Errorf("no config files in %s", cmd.String("dir"))
				}
			}

			if !report(w, files) {
				return fmt.Errorf("some configurations have errors")
			}
			return nil
		},
	}
}

// main validates the presets and exits with non-zero status if any are invalid.
func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
