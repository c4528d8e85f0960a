// internal/words/words.go
//
// Themed word pool for the puzzle generators.
//
// Responsibilities:
//   - Load word/clue/category triples from an environment-provided file or
//     fall back to the embedded default list.
//   - Normalize words to uppercase alphabetic; reject malformed lines.
//   - Supply pool accessors: Entries, Categories, ByCategory, FitMaxLen.
//
// File format: one entry per line, "word,clue,category". The clue is the
// middle of the line between the first and last comma, so it may itself
// contain commas.
//
// Environment variables:
//   WORDS_FILE=/path/to/wordlist.txt
//
// Initialization runs once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tandemapp/go-server/assets"
)

// Entry is one candidate word with its clue metadata. Words are stored
// uppercase; puzzles treat them case-insensitively.
type Entry struct {
	Word     string `json:"word"`
	Clue     string `json:"clue"`
	Category string `json:"category"`
}

var (
	initOnce   sync.Once
	pool       []Entry
	categories []string
	initialErr error
)

// Init loads the word pool exactly once.
// Returns an error if the pool ends up empty.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		var err error

		if path := os.Getenv("WORDS_FILE"); path != "" {
			lines, err = readLines(path)
		} else {
			lines, err = assets.WordLines()
		}
		if err != nil {
			initialErr = err
			return
		}

		seenCat := map[string]bool{}
		for _, line := range lines {
			e, err := parseLine(line)
			if err != nil {
				initialErr = err
				return
			}
			pool = append(pool, e)
			if !seenCat[e.Category] {
				seenCat[e.Category] = true
				categories = append(categories, e.Category)
			}
		}

		if len(pool) == 0 {
			initialErr = errors.New("words: pool is empty")
		}
	})
	return initialErr
}

// parseLine splits "word,clue,category" and validates the word.
func parseLine(line string) (Entry, error) {
	first := strings.Index(line, ",")
	last := strings.LastIndex(line, ",")
	if first < 0 || last <= first {
		return Entry{}, fmt.Errorf("words: malformed line %q", line)
	}
	e := Entry{
		Word:     strings.ToUpper(strings.TrimSpace(line[:first])),
		Clue:     strings.TrimSpace(line[first+1 : last]),
		Category: strings.ToLower(strings.TrimSpace(line[last+1:])),
	}
	if e.Word == "" || !isAlpha(e.Word) {
		return Entry{}, fmt.Errorf("words: invalid word in line %q", line)
	}
	return e, nil
}

// readLines loads entries from a file, skipping blanks and # comments.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Entries returns a copy of the full pool.
func Entries() []Entry {
	out := make([]Entry, len(pool))
	copy(out, pool)
	return out
}

// Categories returns the category names in file order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ByCategory returns the entries of one category.
func ByCategory(cat string) []Entry {
	cat = strings.ToLower(cat)
	var out []Entry
	for _, e := range pool {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// FitMaxLen returns the entries whose word fits in n cells.
func FitMaxLen(entries []Entry, n int) []Entry {
	var out []Entry
	for _, e := range entries {
		if len(e.Word) <= n {
			out = append(out, e)
		}
	}
	return out
}

// Stats returns the pool size and category count.
func Stats() (entryCount, categoryCount int) {
	return len(pool), len(categories)
}
