package dominoes

import (
	"errors"
	"testing"
)

func TestNewGameDeal(t *testing.T) {
	g, err := NewGame("g1", []string{"alice", "bob"}, Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if len(g.hands["alice"]) != 7 || len(g.hands["bob"]) != 7 {
		t.Fatalf("two-player hands: %d/%d, want 7/7", len(g.hands["alice"]), len(g.hands["bob"]))
	}
	if len(g.boneyard) != 28-14 {
		t.Fatalf("boneyard %d, want 14", len(g.boneyard))
	}

	g3, err := NewGame("g2", []string{"a", "b", "c"}, Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewGame 3p: %v", err)
	}
	for _, p := range g3.Players {
		if len(g3.hands[p]) != 5 {
			t.Fatalf("three-player hand %s: %d, want 5", p, len(g3.hands[p]))
		}
	}
}

func TestNewGamePlayerValidation(t *testing.T) {
	if _, err := NewGame("g", []string{"solo"}, Options{}); err == nil {
		t.Fatal("expected error for one player")
	}
	if _, err := NewGame("g", []string{"a", "b", "c", "d", "e"}, Options{}); err == nil {
		t.Fatal("expected error for five players")
	}
	if _, err := NewGame("g", []string{"dup", "dup"}, Options{}); err == nil {
		t.Fatal("expected error for duplicate names")
	}
	if _, err := NewGame("g", []string{"", "b"}, Options{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestOpenerHoldsHighestDouble(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := NewGame("g", []string{"alice", "bob"}, Options{Seed: seed})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		bestPlayer, bestDouble := "", -1
		for _, p := range g.Players {
			for _, tl := range g.hands[p] {
				if tl.IsDouble() && tl.Left > bestDouble {
					bestDouble = tl.Left
					bestPlayer = p
				}
			}
		}
		if bestDouble == -1 {
			continue // no doubles dealt, opener falls back to highest pips
		}
		if got := g.Snapshot("").Turn; got != bestPlayer {
			t.Fatalf("seed %d: opener %s, want %s (double %d)", seed, got, bestPlayer, bestDouble)
		}
	}
}

// fixture builds a mid-game state directly: alice to move, line [2|5].
func fixture() *Game {
	return &Game{
		ID:      "fix",
		Players: []string{"alice", "bob"},
		hands: map[string][]Tile{
			"alice": {{Left: 5, Right: 1}, {Left: 3, Right: 3}},
			"bob":   {{Left: 6, Right: 6}, {Left: 2, Right: 4}},
		},
		line:  []Tile{{Left: 2, Right: 5}},
		state: StatePlaying,
		turn:  0,
	}
}

func TestPlayMatchingEnd(t *testing.T) {
	g := fixture()
	// [5|1] matches the right end (5); given as [1|5] it must be flipped.
	if err := g.Play("alice", Tile{Left: 1, Right: 5}, EndRight); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if got := g.line[len(g.line)-1]; got.Left != 5 || got.Right != 1 {
		t.Fatalf("right end tile %v, want [5|1]", got)
	}
	if g.Snapshot("").Turn != "bob" {
		t.Fatal("turn did not advance to bob")
	}
}

func TestPlayRejections(t *testing.T) {
	g := fixture()

	if err := g.Play("bob", Tile{Left: 2, Right: 4}, EndLeft); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("out-of-turn play: %v", err)
	}
	if err := g.Play("alice", Tile{Left: 6, Right: 6}, EndRight); !errors.Is(err, ErrTileNotHeld) {
		t.Fatalf("unheld tile: %v", err)
	}
	if err := g.Play("alice", Tile{Left: 3, Right: 3}, EndRight); !errors.Is(err, ErrTileMismatch) {
		t.Fatalf("mismatched tile: %v", err)
	}
	if err := g.Play("carol", Tile{Left: 5, Right: 1}, EndRight); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("unknown player: %v", err)
	}
}

func TestFirstTileMayBeAnything(t *testing.T) {
	g := fixture()
	g.line = nil
	if err := g.Play("alice", Tile{Left: 3, Right: 3}, EndRight); err != nil {
		t.Fatalf("opening play: %v", err)
	}
	if len(g.line) != 1 {
		t.Fatalf("line length %d, want 1", len(g.line))
	}
}

func TestDrawOnlyWithoutPlayableTile(t *testing.T) {
	g := fixture()
	g.boneyard = []Tile{{Left: 0, Right: 0}}

	// Alice holds [5|1] which plays on the 5 end.
	if _, err := g.Draw("alice"); !errors.Is(err, ErrMustPlay) {
		t.Fatalf("draw with playable tile: %v", err)
	}

	// Remove the playable tile; now drawing is legal and keeps the turn.
	g.hands["alice"] = []Tile{{Left: 3, Right: 3}}
	tl, err := g.Draw("alice")
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if tl.Left != 0 || tl.Right != 0 {
		t.Fatalf("drew %v, want [0|0]", tl)
	}
	if g.Snapshot("").Turn != "alice" {
		t.Fatal("turn must stay with the drawing player")
	}
	if len(g.boneyard) != 0 {
		t.Fatal("boneyard not consumed")
	}
}

func TestPassRules(t *testing.T) {
	g := fixture()
	g.hands["alice"] = []Tile{{Left: 3, Right: 3}} // no match for ends 2/5
	g.boneyard = []Tile{{Left: 0, Right: 0}}

	if err := g.Pass("alice"); !errors.Is(err, ErrMustDraw) {
		t.Fatalf("pass with non-empty boneyard: %v", err)
	}

	g.boneyard = nil
	if err := g.Pass("alice"); err != nil {
		t.Fatalf("Pass: %v", err)
	}
	if g.Snapshot("").Turn != "bob" {
		t.Fatal("turn did not advance after pass")
	}
}

func TestWinOnEmptyHand(t *testing.T) {
	g := fixture()
	g.hands["alice"] = []Tile{{Left: 5, Right: 1}}

	if err := g.Play("alice", Tile{Left: 5, Right: 1}, EndRight); err != nil {
		t.Fatalf("Play: %v", err)
	}
	snap := g.Snapshot("")
	if snap.State != StateWon || snap.Winner != "alice" {
		t.Fatalf("state %s winner %s, want won/alice", snap.State, snap.Winner)
	}
	// Score is bob's remaining pips: [6|6] + [2|4] = 18.
	if snap.Score != 18 {
		t.Fatalf("score %d, want 18", snap.Score)
	}
	if err := g.Play("bob", Tile{Left: 2, Right: 4}, EndLeft); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after game over: %v", err)
	}
}

func TestBlockedGameLowestPipsWins(t *testing.T) {
	g := fixture()
	g.hands["alice"] = []Tile{{Left: 3, Right: 3}} // 6 pips, no match
	g.hands["bob"] = []Tile{{Left: 6, Right: 6}}   // 12 pips, no match
	g.boneyard = nil

	if err := g.Pass("alice"); err != nil {
		t.Fatalf("alice pass: %v", err)
	}
	if err := g.Pass("bob"); err != nil {
		t.Fatalf("bob pass: %v", err)
	}
	snap := g.Snapshot("")
	if snap.State != StateWon || snap.Winner != "alice" {
		t.Fatalf("state %s winner %s, want won/alice", snap.State, snap.Winner)
	}
	if snap.Score != 6 { // 12 - 6
		t.Fatalf("score %d, want 6", snap.Score)
	}
}

func TestBlockedGameTieIsDraw(t *testing.T) {
	g := fixture()
	g.hands["alice"] = []Tile{{Left: 3, Right: 3}}
	g.hands["bob"] = []Tile{{Left: 6, Right: 0}} // same 6 pips
	g.boneyard = nil

	if err := g.Pass("alice"); err != nil {
		t.Fatalf("alice pass: %v", err)
	}
	if err := g.Pass("bob"); err != nil {
		t.Fatalf("bob pass: %v", err)
	}
	if snap := g.Snapshot(""); snap.State != StateDraw {
		t.Fatalf("state %s, want draw", snap.State)
	}
}

func TestSnapshotHidesOtherHands(t *testing.T) {
	g, err := NewGame("g", []string{"alice", "bob"}, Options{Seed: 9})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	snap := g.Snapshot("alice")
	if len(snap.Hand) != 7 {
		t.Fatalf("alice sees %d tiles, want 7", len(snap.Hand))
	}
	if snap.HandCounts["bob"] != 7 {
		t.Fatalf("bob hand count %d, want 7", snap.HandCounts["bob"])
	}
	if spect := g.Snapshot(""); spect.Hand != nil {
		t.Fatal("spectator view must not include a hand")
	}
}
