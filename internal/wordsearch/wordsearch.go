// internal/wordsearch/wordsearch.go
//
// Word-search grid generation: hide words in a letter matrix.
// Words are placed in any of eight directions at random positions, letters
// may overlap when they agree, and leftover cells are filled with random
// letters so the hidden words disappear into noise.

package wordsearch

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tandemapp/go-server/internal/words"
)

// maxPlacementTries bounds random (position, direction) probes per word.
const maxPlacementTries = 200

// directions are the eight rays a word may be written along.
var directions = [8][2]int{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Placement records where a hidden word starts and the ray it follows.
type Placement struct {
	Word     string `json:"word"`
	Clue     string `json:"clue"`
	Category string `json:"category"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	DRow     int    `json:"dRow"`
	DCol     int    `json:"dCol"`
}

// Grid is a finished word-search puzzle. Every cell holds a letter.
type Grid struct {
	Size       int         `json:"size"`
	Cells      [][]rune    `json:"-"`
	Placements []Placement `json:"placements"`
}

// Letters renders the cells as strings for JSON and CLI output.
func (g *Grid) Letters() [][]string {
	out := make([][]string, g.Size)
	for r := range out {
		out[r] = make([]string, g.Size)
		for c := 0; c < g.Size; c++ {
			out[r][c] = string(g.Cells[r][c])
		}
	}
	return out
}

// Options configures generation. Seed 0 means time-based.
type Options struct {
	Seed int64
}

// Generate hides up to count words from the pool in a size x size matrix.
// Longest words are placed first since they are the hardest to fit; words
// that fit nowhere after the try budget are dropped. Unused cells are
// filled with uniform random letters.
func Generate(size, count int, pool []words.Entry, opts Options) *Grid {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	usable := words.FitMaxLen(pool, size)
	rng.Shuffle(len(usable), func(i, j int) {
		usable[i], usable[j] = usable[j], usable[i]
	})
	if count < len(usable) {
		usable = usable[:count]
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return len(usable[i].Word) > len(usable[j].Word)
	})

	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	g := &Grid{Size: size, Cells: cells}

	for _, e := range usable {
		word := strings.ToUpper(e.Word)
		if p, ok := tryPlace(g, rng, word); ok {
			p.Clue = e.Clue
			p.Category = e.Category
			g.Placements = append(g.Placements, p)
		} else {
			log.Debug().Str("word", word).Msg("word search: word dropped")
		}
	}

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if g.Cells[r][c] == 0 {
				g.Cells[r][c] = rune('A' + rng.Intn(26))
			}
		}
	}
	return g
}

// tryPlace probes random starts and directions until the word fits.
func tryPlace(g *Grid, rng *rand.Rand, word string) (Placement, bool) {
	for try := 0; try < maxPlacementTries; try++ {
		d := directions[rng.Intn(len(directions))]
		row := rng.Intn(g.Size)
		col := rng.Intn(g.Size)
		if !fits(g, word, row, col, d[0], d[1]) {
			continue
		}
		for i, r := range word {
			g.Cells[row+i*d[0]][col+i*d[1]] = r
		}
		return Placement{Word: word, Row: row, Col: col, DRow: d[0], DCol: d[1]}, true
	}
	return Placement{}, false
}

// fits reports whether the word can be written from (row, col) along
// (dRow, dCol): the run stays in bounds and every cell is empty or already
// holds the matching letter.
func fits(g *Grid, word string, row, col, dRow, dCol int) bool {
	endRow := row + (len(word)-1)*dRow
	endCol := col + (len(word)-1)*dCol
	if endRow < 0 || endRow >= g.Size || endCol < 0 || endCol >= g.Size {
		return false
	}
	for i, r := range word {
		cur := g.Cells[row+i*dRow][col+i*dCol]
		if cur != 0 && cur != r {
			return false
		}
	}
	return true
}
