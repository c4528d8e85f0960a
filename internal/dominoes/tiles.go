// internal/dominoes/tiles.go
//
// Tile type and the standard double-six set.

package dominoes

import "fmt"

// Tile is one domino. Left/Right hold 0-6 pips. Orientation is
// normalized when a tile is attached to the line, so Tile{2,5} and
// Tile{5,2} are the same bone.
type Tile struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Pips returns the pip sum of the tile.
func (t Tile) Pips() int { return t.Left + t.Right }

// IsDouble reports whether both halves match.
func (t Tile) IsDouble() bool { return t.Left == t.Right }

// matches reports whether either half shows v.
func (t Tile) matches(v int) bool { return t.Left == v || t.Right == v }

// same reports tile equality ignoring orientation.
func (t Tile) same(o Tile) bool {
	return (t.Left == o.Left && t.Right == o.Right) ||
		(t.Left == o.Right && t.Right == o.Left)
}

// flip returns the tile with its halves swapped.
func (t Tile) flip() Tile { return Tile{Left: t.Right, Right: t.Left} }

// String renders the tile as [l|r].
func (t Tile) String() string { return fmt.Sprintf("[%d|%d]", t.Left, t.Right) }

// fullSet returns the 28 tiles of a double-six set.
func fullSet() []Tile {
	set := make([]Tile, 0, 28)
	for l := 0; l <= 6; l++ {
		for r := l; r <= 6; r++ {
			set = append(set, Tile{Left: l, Right: r})
		}
	}
	return set
}

// pipTotal sums the pips of a hand.
func pipTotal(hand []Tile) int {
	total := 0
	for _, t := range hand {
		total += t.Pips()
	}
	return total
}
