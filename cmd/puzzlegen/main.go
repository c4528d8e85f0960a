// Command puzzlegen generates puzzles offline, without the HTTP server:
// handy for prefilling content or eyeballing generator output.
//
// Examples:
//   puzzlegen gen --difficulty medium
//   puzzlegen gen -n 3 --difficulty hard --seed 42 -o puzzles.json
//   puzzlegen gen --kind wordsearch --category travel
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tandemapp/go-server/internal/crossword"
	"github.com/tandemapp/go-server/internal/words"
	"github.com/tandemapp/go-server/internal/wordsearch"
)

var (
	numPuzzles int
	difficulty string
	kind       string
	category   string
	seed       int64
	outputFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "puzzlegen",
		Short:         "Generate crossword and word-search puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate one or more puzzles",
		RunE:  runGen,
	}
	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy, medium, or hard")
	genCmd.Flags().StringVarP(&kind, "kind", "k", "crossword", "crossword or wordsearch")
	genCmd.Flags().StringVarP(&category, "category", "c", "", "Restrict the word pool to one category")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write puzzles as JSON to a file instead of stdout")

	rootCmd.AddCommand(genCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	if err := words.Init(); err != nil {
		return fmt.Errorf("load word pool: %w", err)
	}

	diff, err := crossword.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	pool := words.Entries()
	if category != "" {
		pool = words.ByCategory(category)
		if len(pool) == 0 {
			return fmt.Errorf("no words in category %q", category)
		}
	}

	var out []any
	for i := 0; i < numPuzzles; i++ {
		// Offset the seed per puzzle so -n with --seed stays reproducible
		// without producing identical grids.
		s := seed
		if s != 0 {
			s += int64(i)
		}

		switch kind {
		case "crossword":
			grid, err := crossword.GeneratePuzzle(diff, pool, crossword.Options{Seed: s})
			if err != nil {
				return err
			}
			if outputFile == "" {
				printCrossword(grid)
			}
			out = append(out, map[string]any{
				"size": grid.Size, "letters": grid.Letters(), "words": grid.Words,
			})
		case "wordsearch":
			size, count := wordSearchDims(diff)
			grid := wordsearch.Generate(size, count, pool, wordsearch.Options{Seed: s})
			if outputFile == "" {
				printWordSearch(grid)
			}
			out = append(out, map[string]any{
				"size": grid.Size, "letters": grid.Letters(), "placements": grid.Placements,
			})
		default:
			return fmt.Errorf("unknown kind %q (crossword or wordsearch)", kind)
		}
	}

	if outputFile != "" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputFile, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outputFile, err)
		}
		fmt.Printf("wrote %d puzzle(s) to %s\n", len(out), outputFile)
	}
	return nil
}

// wordSearchDims maps difficulty onto word-search grid size and word count.
func wordSearchDims(d crossword.Difficulty) (size, count int) {
	switch d {
	case crossword.Easy:
		return 8, 6
	case crossword.Hard:
		return 12, 10
	default:
		return 10, 8
	}
}

func printCrossword(g *crossword.Grid) {
	fmt.Println(strings.Repeat("=", 2*g.Size+1))
	for _, row := range g.Letters() {
		var sb strings.Builder
		for _, cell := range row {
			if cell == "" {
				cell = "."
			}
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
		fmt.Println(sb.String())
	}
	for _, pw := range g.Words {
		fmt.Printf("%2d. (%d,%d) %-6s %-10s %s\n",
			pw.SequenceNumber, pw.StartRow, pw.StartCol, pw.Direction, pw.Word, pw.Clue)
	}
}

func printWordSearch(g *wordsearch.Grid) {
	fmt.Println(strings.Repeat("=", 2*g.Size+1))
	for _, row := range g.Letters() {
		fmt.Println(strings.Join(row, " "))
	}
	for _, p := range g.Placements {
		fmt.Printf("  %-10s %s\n", p.Word, p.Clue)
	}
}
