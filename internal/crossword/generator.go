// internal/crossword/generator.go
//
// Randomized intersection-based crossword layout construction.
// Responsibilities:
//   - Own an isolated grid + placed-word list for one generation run.
//   - Place the first word across near the top-left corner.
//   - Place each remaining word by shuffling all letter-intersection
//     candidates against already-placed words and accepting the first
//     candidate that validates (bounds, letter agreement, separators).
//
// Notes:
//   - Each Generator carries its own *rand.Rand; there is no global state,
//     so independent generations may run concurrently.
//   - Words that fit nowhere are dropped, not treated as errors.

package crossword

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tandemapp/go-server/internal/words"
)

// maxCandidateScans bounds how many intersection candidates are tried for a
// single word before it is given up on.
const maxCandidateScans = 500

// preferredLen is the word length tried first; lengths are ordered by their
// distance from it. Mid-length words open the most crossing opportunities.
const preferredLen = 5

// Options configures a Generator.
type Options struct {
	// Seed makes layouts reproducible. 0 means a time-based seed.
	Seed int64
}

// Generator builds one crossword layout. Not safe for reuse across calls;
// construct a fresh Generator per puzzle.
type Generator struct {
	size   int
	cells  [][]rune
	placed []PlacedWord
	rng    *rand.Rand
}

// New creates a Generator for a size x size grid.
func New(size int, opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Generator{
		size:  size,
		cells: cells,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// candidate is a potential crossing: letter newIdx of the incoming word
// coincides with letter placedIdx of placed word p.
type candidate struct {
	p         int
	placedIdx int
	newIdx    int
}

// Generate places as many of the given words as possible and returns the
// resulting grid. The caller must ensure every word fits the grid
// (len <= size); longer words are never placeable and waste attempts.
// An empty word list yields an empty grid.
func (g *Generator) Generate(pool []words.Entry) *Grid {
	entries := make([]words.Entry, len(pool))
	copy(entries, pool)
	sortByAnchorLength(entries)

	for i, e := range entries {
		word := strings.ToUpper(e.Word)
		if i == 0 {
			g.placeFirst(word, e)
			continue
		}
		if !g.placeIntersecting(word, e) {
			log.Debug().Str("word", word).Msg("no valid placement, word dropped")
		}
	}
	return &Grid{Size: g.size, Cells: g.cells, Words: g.placed}
}

// Placed reports how many words have been placed so far.
func (g *Generator) Placed() int { return len(g.placed) }

// sortByAnchorLength orders words by |len - preferredLen| ascending, so
// mid-length words are placed first. The sort is stable: ties keep the
// caller's (shuffled) order.
func sortByAnchorLength(entries []words.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return lenDist(entries[i].Word) < lenDist(entries[j].Word)
	})
}

func lenDist(w string) int {
	d := len(w) - preferredLen
	if d < 0 {
		return -d
	}
	return d
}

// placeFirst writes the first word across at (1,1), leaving a one-cell
// margin so crossing down-words have room above.
func (g *Generator) placeFirst(word string, e words.Entry) {
	row, col := 1, 1
	if len(word) > g.size-col {
		col = 0
	}
	g.commit(PlacedWord{
		Word:      word,
		Clue:      e.Clue,
		Category:  e.Category,
		Direction: Across,
		StartRow:  row,
		StartCol:  col,
	})
}

// placeIntersecting tries every shuffled intersection candidate and commits
// the first one that validates. Returns false if the word fits nowhere.
func (g *Generator) placeIntersecting(word string, e words.Entry) bool {
	cands := g.intersections(word)
	g.rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})

	scans := 0
	for _, c := range cands {
		if scans >= maxCandidateScans {
			break
		}
		scans++

		host := g.placed[c.p]
		pw := anchor(word, host, c)
		if !g.canPlace(pw) {
			continue
		}
		pw.Clue = e.Clue
		pw.Category = e.Category
		g.commit(pw)
		return true
	}
	return false
}

// intersections enumerates every (placed word, placed letter, new letter)
// triple where the letters match.
func (g *Generator) intersections(word string) []candidate {
	var out []candidate
	for p, placed := range g.placed {
		for pi, pr := range placed.Word {
			for ni, nr := range word {
				if pr == nr {
					out = append(out, candidate{p: p, placedIdx: pi, newIdx: ni})
				}
			}
		}
	}
	return out
}

// anchor computes the position of word crossing host so that letter
// c.newIdx lands on host's letter c.placedIdx.
func anchor(word string, host PlacedWord, c candidate) PlacedWord {
	pw := PlacedWord{Word: word, Direction: host.Direction.perpendicular()}
	if host.Direction == Across {
		pw.StartRow = host.StartRow - c.newIdx
		pw.StartCol = host.StartCol + c.placedIdx
	} else {
		pw.StartRow = host.StartRow + c.placedIdx
		pw.StartCol = host.StartCol - c.newIdx
	}
	return pw
}

// canPlace validates a candidate placement:
//   - the whole run fits the grid;
//   - every occupied cell is empty or already holds the matching letter;
//   - the cells just before the start and just after the end (on the word's
//     own axis) are empty or off-grid, so runs never merge end-to-end;
//   - non-crossing cells have empty perpendicular neighbors, so no
//     unintended adjacent words are spelled. Crossing cells are exempt.
func (g *Generator) canPlace(pw PlacedWord) bool {
	n := len(pw.Word)
	if pw.StartRow < 0 || pw.StartCol < 0 {
		return false
	}
	if pw.Direction == Across {
		if pw.StartCol+n > g.size || pw.StartRow >= g.size {
			return false
		}
	} else {
		if pw.StartRow+n > g.size || pw.StartCol >= g.size {
			return false
		}
	}

	// End separators.
	if g.letterAt(pw.cellAt(-1)) != 0 || g.letterAt(pw.cellAt(n)) != 0 {
		return false
	}

	for i, r := range pw.Word {
		row, col := pw.cellAt(i)
		cur := g.cells[row][col]
		if cur != 0 {
			if cur != r {
				return false
			}
			continue // crossing cell, neighbors are fine
		}
		// Fresh cell: both perpendicular neighbors must be empty.
		if pw.Direction == Across {
			if g.letterAt(row-1, col) != 0 || g.letterAt(row+1, col) != 0 {
				return false
			}
		} else {
			if g.letterAt(row, col-1) != 0 || g.letterAt(row, col+1) != 0 {
				return false
			}
		}
	}
	return true
}

// letterAt returns the letter at (row, col), or 0 when empty or off-grid.
func (g *Generator) letterAt(row, col int) rune {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0
	}
	return g.cells[row][col]
}

// commit writes the word's letters into the grid and appends it to the
// placed list with the next sequence number.
func (g *Generator) commit(pw PlacedWord) {
	for i, r := range pw.Word {
		row, col := pw.cellAt(i)
		g.cells[row][col] = r
	}
	pw.SequenceNumber = len(g.placed) + 1
	g.placed = append(g.placed, pw)
}
