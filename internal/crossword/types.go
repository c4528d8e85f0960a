// internal/crossword/types.go
//
// Core type definitions for the crossword generator.
// Defines:
//   - Direction: placement axis of a word (across/down).
//   - Difficulty: grid size + word count presets (easy/medium/hard).
//   - PlacedWord: a word fixed on the grid with its clue metadata.
//   - Grid: the finished layout handed to callers.

package crossword

import "fmt"

// Direction is the axis a word is written along.
type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

// perpendicular returns the crossing axis.
func (d Direction) perpendicular() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// Difficulty selects grid dimensions and how many words are attempted.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// dimensions is the enum-keyed preset table: grid size and target word count.
var dimensions = map[Difficulty]struct{ Size, WordCount int }{
	Easy:   {7, 10},
	Medium: {9, 15},
	Hard:   {12, 20},
}

// Dimensions returns the grid size and target word count for a difficulty.
func (d Difficulty) Dimensions() (size, wordCount int) {
	p, ok := dimensions[d]
	if !ok {
		p = dimensions[Medium]
	}
	return p.Size, p.WordCount
}

// String returns the difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty: %q", s)
	}
}

// PlacedWord is a word fixed on the grid. SequenceNumber follows placement
// order starting at 1; it is not spatial crossword numbering.
type PlacedWord struct {
	Word           string    `json:"word"`
	Clue           string    `json:"clue"`
	Category       string    `json:"category"`
	Direction      Direction `json:"direction"`
	StartRow       int       `json:"startRow"`
	StartCol       int       `json:"startCol"`
	SequenceNumber int       `json:"sequenceNumber"`
}

// cellAt returns the grid coordinate of letter i of the word.
func (p PlacedWord) cellAt(i int) (row, col int) {
	if p.Direction == Across {
		return p.StartRow, p.StartCol + i
	}
	return p.StartRow + i, p.StartCol
}

// Grid is a finished crossword layout. Cells hold 0 for empty positions or
// an uppercase letter. The grid is immutable once returned by a Generator.
type Grid struct {
	Size  int          `json:"size"`
	Cells [][]rune     `json:"-"`
	Words []PlacedWord `json:"words"`
}

// Letters renders the cells as strings, empty cells as "". Used for JSON
// responses and the CLI rendering; rune matrices do not marshal usefully.
func (g *Grid) Letters() [][]string {
	out := make([][]string, g.Size)
	for r := range out {
		out[r] = make([]string, g.Size)
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c] != 0 {
				out[r][c] = string(g.Cells[r][c])
			}
		}
	}
	return out
}
