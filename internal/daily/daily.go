// Package daily derives deterministic generator seeds for the daily puzzle:
// everyone who requests the daily crossword on the same date gets the same
// layout, without storing anything.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic generator seed for a date using
// HMAC-SHA256(salt, YYYY-MM-DD). The result is always positive and never
// zero, so it is usable directly as a reproducible seed.
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
	if n == 0 {
		n = 1
	}
	return n
}
