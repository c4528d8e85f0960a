package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	d := time.Date(2025, 3, 14, 23, 30, 0, 0, loc)
	if got := DateKey(d); got != "2025-03-15" {
		t.Fatalf("DateKey = %q, want 2025-03-15", got)
	}
}

func TestSeedDeterministic(t *testing.T) {
	d := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := Seed(d, "salt")
	b := Seed(d, "salt")
	if a != b {
		t.Fatalf("same date and salt produced %d and %d", a, b)
	}
	// Time of day within the same UTC date must not matter.
	later := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	if Seed(later, "salt") != a {
		t.Fatal("seed changed within the same date")
	}
}

func TestSeedVaries(t *testing.T) {
	d1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	if Seed(d1, "salt") == Seed(d2, "salt") {
		t.Fatal("different dates produced the same seed")
	}
	if Seed(d1, "salt") == Seed(d1, "pepper") {
		t.Fatal("different salts produced the same seed")
	}
}

func TestSeedAlwaysPositive(t *testing.T) {
	d := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		if s := Seed(d.AddDate(0, 0, i), "salt"); s <= 0 {
			t.Fatalf("seed %d for %s not positive", s, DateKey(d.AddDate(0, 0, i)))
		}
	}
}
