// internal/crossword/puzzle.go
//
// Top-level puzzle assembly: difficulty presets, word pool selection, and
// the bounded regeneration loop around the Generator.

package crossword

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tandemapp/go-server/internal/words"
)

// maxGenerateAttempts caps full regenerations before giving up. A pool
// that can never yield enough crossing words must fail instead of hanging.
const maxGenerateAttempts = 10

// minAcceptablePlaced is the floor on placed words before a layout is
// accepted: min(5, wordCount/2).
func minAcceptablePlaced(wordCount int) int {
	if m := wordCount / 2; m < 5 {
		return m
	}
	return 5
}

var (
	// ErrEmptyPool is returned when no usable words fit the grid.
	ErrEmptyPool = errors.New("crossword: word pool is empty or no word fits the grid")

	// ErrInsufficientWords is returned when repeated regeneration never
	// placed enough words for the requested difficulty.
	ErrInsufficientWords = errors.New("crossword: not enough intersecting words for this grid size")
)

// GeneratePuzzle builds a crossword for the given difficulty from the pool.
// The pool is filtered to words that fit the grid, shuffled, and trimmed to
// the difficulty's word count. Layouts placing fewer than
// min(5, wordCount/2) words are discarded and regenerated from a fresh
// shuffle, up to maxGenerateAttempts times.
func GeneratePuzzle(difficulty Difficulty, pool []words.Entry, opts Options) (*Grid, error) {
	size, wordCount := difficulty.Dimensions()

	usable := make([]words.Entry, 0, len(pool))
	for _, e := range pool {
		if n := len(e.Word); n >= 1 && n <= size {
			usable = append(usable, e)
		}
	}
	if len(usable) == 0 {
		return nil, ErrEmptyPool
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	want := wordCount
	if want > len(usable) {
		want = len(usable)
	}
	minPlaced := minAcceptablePlaced(wordCount)

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		rng.Shuffle(len(usable), func(i, j int) {
			usable[i], usable[j] = usable[j], usable[i]
		})
		picked := usable[:want]

		gen := New(size, Options{Seed: rng.Int63()})
		grid := gen.Generate(picked)
		if len(grid.Words) >= minPlaced {
			return grid, nil
		}
		log.Debug().
			Int("attempt", attempt).
			Int("placed", len(grid.Words)).
			Int("min", minPlaced).
			Str("difficulty", difficulty.String()).
			Msg("crossword layout below yield floor, regenerating")
	}
	return nil, ErrInsufficientWords
}
