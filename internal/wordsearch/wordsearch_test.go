package wordsearch

import (
	"reflect"
	"testing"

	"github.com/tandemapp/go-server/internal/words"
)

func pool(ws ...string) []words.Entry {
	out := make([]words.Entry, len(ws))
	for i, w := range ws {
		out[i] = words.Entry{Word: w, Clue: "clue", Category: "test"}
	}
	return out
}

func TestGeneratePlacementsSpellWords(t *testing.T) {
	p := pool("SOFA", "CANDLE", "GARDEN", "PHOTO", "PLANT", "MIRROR")
	for seed := int64(1); seed <= 25; seed++ {
		g := Generate(10, 6, p, Options{Seed: seed})

		if len(g.Placements) == 0 {
			t.Fatalf("seed %d: nothing placed", seed)
		}
		for _, pl := range g.Placements {
			for i, r := range pl.Word {
				row := pl.Row + i*pl.DRow
				col := pl.Col + i*pl.DCol
				if row < 0 || row >= g.Size || col < 0 || col >= g.Size {
					t.Fatalf("seed %d: %q runs off the grid at letter %d", seed, pl.Word, i)
				}
				if g.Cells[row][col] != r {
					t.Fatalf("seed %d: %q letter %d: got %q at (%d,%d)",
						seed, pl.Word, i, g.Cells[row][col], row, col)
				}
			}
		}
	}
}

func TestGenerateFillsEveryCell(t *testing.T) {
	g := Generate(8, 4, pool("KISS", "HUG", "DATE"), Options{Seed: 3})
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c] < 'A' || g.Cells[r][c] > 'Z' {
				t.Fatalf("cell (%d,%d) not a letter: %q", r, c, g.Cells[r][c])
			}
		}
	}
}

func TestGenerateRespectsCount(t *testing.T) {
	g := Generate(10, 2, pool("SOFA", "CANDLE", "GARDEN", "PHOTO"), Options{Seed: 5})
	if len(g.Placements) > 2 {
		t.Fatalf("placed %d words, want at most 2", len(g.Placements))
	}
}

func TestGenerateSkipsOversizedWords(t *testing.T) {
	g := Generate(5, 3, pool("BLANKET", "HUG"), Options{Seed: 2})
	for _, pl := range g.Placements {
		if pl.Word == "BLANKET" {
			t.Fatal("7-letter word placed on a 5x5 grid")
		}
	}
}

func TestGenerateDeterministicSeed(t *testing.T) {
	p := pool("SOFA", "CANDLE", "GARDEN", "PHOTO")
	a := Generate(10, 4, p, Options{Seed: 11})
	b := Generate(10, 4, p, Options{Seed: 11})
	if !reflect.DeepEqual(a.Letters(), b.Letters()) {
		t.Fatal("same seed produced different grids")
	}
	if !reflect.DeepEqual(a.Placements, b.Placements) {
		t.Fatal("same seed produced different placements")
	}
}
