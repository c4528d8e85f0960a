package words

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseLine(t *testing.T) {
	e, err := parseLine("sofa,Comfy seat for two,home")
	if err != nil {
		t.Fatalf("parseLine: %v", err)
	}
	if e.Word != "SOFA" || e.Clue != "Comfy seat for two" || e.Category != "home" {
		t.Fatalf("got %+v", e)
	}

	// The clue is everything between the first and last comma.
	e, err = parseLine("tapas,Small plates, shared,food")
	if err != nil {
		t.Fatalf("parseLine with comma clue: %v", err)
	}
	if e.Clue != "Small plates, shared" {
		t.Fatalf("clue %q", e.Clue)
	}

	for _, bad := range []string{
		"noclue",
		"onlyone,comma",
		"wor d,clue,cat",
		"w0rd,clue,cat",
		",clue,cat",
	} {
		if _, err := parseLine(bad); err == nil {
			t.Errorf("parseLine(%q): expected error", bad)
		}
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# themed list\nsofa,Comfy seat,home\n\ncandle,Date night glow,home\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := readLines(path)
	if err != nil {
		t.Fatalf("readLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (comments and blanks skipped)", len(lines))
	}
	if lines[0] != "sofa,Comfy seat,home" {
		t.Fatalf("first line %q", lines[0])
	}

	if _, err := readLines(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFitMaxLen(t *testing.T) {
	pool := []Entry{
		{Word: "HUG"}, {Word: "CANDLE"}, {Word: "PASSPORT"},
	}
	got := FitMaxLen(pool, 6)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	for _, e := range got {
		if len(e.Word) > 6 {
			t.Fatalf("%q does not fit in 6 cells", e.Word)
		}
	}
}

func TestInitEmbeddedPool(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	entries, cats := Stats()
	if entries == 0 || cats == 0 {
		t.Fatalf("empty pool after Init: %d entries, %d categories", entries, cats)
	}

	for _, e := range Entries() {
		if !isAlpha(e.Word) {
			t.Fatalf("non-alphabetic word %q in embedded pool", e.Word)
		}
	}

	for _, cat := range Categories() {
		if len(ByCategory(cat)) == 0 {
			t.Fatalf("category %q has no entries", cat)
		}
	}
	if len(ByCategory("no-such-category")) != 0 {
		t.Fatal("unknown category returned entries")
	}
}
