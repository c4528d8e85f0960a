package crossword

import (
	"errors"
	"reflect"
	"testing"
)

func TestDifficultyDimensions(t *testing.T) {
	cases := []struct {
		d         Difficulty
		size      int
		wordCount int
	}{
		{Easy, 7, 10},
		{Medium, 9, 15},
		{Hard, 12, 20},
	}
	for _, tc := range cases {
		size, wc := tc.d.Dimensions()
		if size != tc.size || wc != tc.wordCount {
			t.Errorf("%s: got (%d,%d), want (%d,%d)", tc.d, size, wc, tc.size, tc.wordCount)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"easy", "medium", "hard"} {
		d, err := ParseDifficulty(s)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", s, err)
		}
		if d.String() != s {
			t.Fatalf("round trip %q -> %q", s, d.String())
		}
	}
	if _, err := ParseDifficulty("brutal"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	// Empty defaults to medium.
	if d, err := ParseDifficulty(""); err != nil || d != Medium {
		t.Fatalf("empty: got %v, %v", d, err)
	}
}

func TestGeneratePuzzleYield(t *testing.T) {
	// Short, heavily overlapping words: an easy puzzle must reach the
	// min(5, wordCount/2) = 5 placed-word floor.
	pool := entries(
		"TEA", "EAT", "TEN", "NET", "NOTE",
		"TONE", "NEAT", "ANTE", "EATS", "SEAT",
	)
	grid, err := GeneratePuzzle(Easy, pool, Options{Seed: 7})
	if err != nil {
		t.Fatalf("GeneratePuzzle: %v", err)
	}
	if len(grid.Words) < 5 {
		t.Fatalf("placed %d words, want at least 5", len(grid.Words))
	}
	validateGrid(t, grid)
}

func TestGeneratePuzzleDisjointPoolFails(t *testing.T) {
	// No two words share a letter: only one can ever be placed, so the
	// regeneration loop must terminate with an error instead of hanging.
	pool := entries("BCD", "FGH", "JKL", "MNP", "QRS", "TVW", "XYZ")
	_, err := GeneratePuzzle(Easy, pool, Options{Seed: 1})
	if !errors.Is(err, ErrInsufficientWords) {
		t.Fatalf("expected ErrInsufficientWords, got %v", err)
	}
}

func TestGeneratePuzzleEmptyPool(t *testing.T) {
	if _, err := GeneratePuzzle(Easy, nil, Options{}); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("nil pool: expected ErrEmptyPool, got %v", err)
	}
	// Words longer than the grid are filtered before generation.
	long := entries("UNBELIEVABLE")
	if _, err := GeneratePuzzle(Easy, long, Options{}); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("oversized pool: expected ErrEmptyPool, got %v", err)
	}
}

func TestGeneratePuzzleDeterministicSeed(t *testing.T) {
	pool := entries(
		"HEART", "ROSE", "TOAST", "STONE", "NOTES",
		"SHORE", "EARTH", "HORSE", "ASTER", "ROAST",
	)
	a, err := GeneratePuzzle(Medium, pool, Options{Seed: 42})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := GeneratePuzzle(Medium, pool, Options{Seed: 42})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !reflect.DeepEqual(a.Words, b.Words) {
		t.Fatal("same seed produced different layouts")
	}
}

func TestMinAcceptablePlaced(t *testing.T) {
	cases := []struct{ wordCount, want int }{
		{10, 5}, {15, 5}, {20, 5}, {8, 4}, {4, 2}, {1, 0},
	}
	for _, tc := range cases {
		if got := minAcceptablePlaced(tc.wordCount); got != tc.want {
			t.Errorf("minAcceptablePlaced(%d) = %d, want %d", tc.wordCount, got, tc.want)
		}
	}
}
