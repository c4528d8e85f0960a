// internal/dominoes/game.go
//
// Turn-based dominoes state machine for 2-4 players.
// Responsibilities:
//   - Deal the double-six set and pick the opening player (highest double,
//     falling back to highest pip tile).
//   - Validate moves: turn order, tile possession, end matching.
//   - Enforce draw/pass legality: draw only with no playable tile, pass
//     only when the boneyard is also empty.
//   - Resolve the game: win on empty hand, blocked game to the lowest pip
//     total (tie means draw), winner scores opponents' remaining pips.
//
// Sessions are mutex-guarded; concurrent HTTP handlers share one *Game.

package dominoes

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// State is the lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateDraw    State = "draw"
)

// End selects which open end of the line a tile attaches to.
type End string

const (
	EndLeft  End = "left"
	EndRight End = "right"
)

var (
	ErrNotYourTurn   = errors.New("dominoes: not your turn")
	ErrGameOver      = errors.New("dominoes: game is finished")
	ErrTileNotHeld   = errors.New("dominoes: tile not in hand")
	ErrTileMismatch  = errors.New("dominoes: tile does not match that end")
	ErrMustPlay      = errors.New("dominoes: a playable tile is in hand")
	ErrBoneyardEmpty = errors.New("dominoes: boneyard is empty, pass instead")
	ErrMustDraw      = errors.New("dominoes: boneyard not empty, draw instead")
	ErrUnknownPlayer = errors.New("dominoes: unknown player")
)

// Options configures a new game. Seed 0 means time-based.
type Options struct {
	Seed int64
}

// Game is one dominoes session.
type Game struct {
	ID      string
	Players []string

	mu       sync.Mutex
	hands    map[string][]Tile
	line     []Tile
	boneyard []Tile
	turn     int
	state    State
	winner   string
	score    int
	passes   int
}

// NewGame deals a double-six set to 2-4 named players. Two players get
// seven tiles each, three or four get five. The holder of the highest
// double opens; with no doubles dealt, the highest pip tile decides.
func NewGame(id string, players []string, opts Options) (*Game, error) {
	if len(players) < 2 || len(players) > 4 {
		return nil, fmt.Errorf("dominoes: need 2-4 players, got %d", len(players))
	}
	seen := map[string]bool{}
	for _, p := range players {
		if p == "" || seen[p] {
			return nil, fmt.Errorf("dominoes: player names must be unique and non-empty")
		}
		seen[p] = true
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	set := fullSet()
	rng.Shuffle(len(set), func(i, j int) { set[i], set[j] = set[j], set[i] })

	handSize := 7
	if len(players) > 2 {
		handSize = 5
	}

	g := &Game{
		ID:      id,
		Players: append([]string{}, players...),
		hands:   make(map[string][]Tile, len(players)),
		state:   StatePlaying,
	}
	for _, p := range players {
		// Copy: hands grow on draws and must not share the deck's array.
		g.hands[p] = append([]Tile(nil), set[:handSize]...)
		set = set[handSize:]
	}
	g.boneyard = set
	g.turn = g.openerIndex()
	return g, nil
}

// openerIndex picks the opening player: highest double first, then highest
// pip tile.
func (g *Game) openerIndex() int {
	bestIdx, bestDouble, bestPips := 0, -1, -1
	for i, p := range g.Players {
		for _, t := range g.hands[p] {
			if t.IsDouble() && t.Left > bestDouble {
				bestDouble = t.Left
				bestIdx = i
			}
		}
	}
	if bestDouble >= 0 {
		return bestIdx
	}
	for i, p := range g.Players {
		for _, t := range g.hands[p] {
			if t.Pips() > bestPips {
				bestPips = t.Pips()
				bestIdx = i
			}
		}
	}
	return bestIdx
}

// ends returns the open values of the line. Valid only when the line is
// non-empty.
func (g *Game) ends() (left, right int) {
	return g.line[0].Left, g.line[len(g.line)-1].Right
}

// canPlay reports whether any tile in hand attaches to the line.
func (g *Game) canPlay(hand []Tile) bool {
	if len(g.line) == 0 {
		return len(hand) > 0
	}
	l, r := g.ends()
	for _, t := range hand {
		if t.matches(l) || t.matches(r) {
			return true
		}
	}
	return false
}

// Play attaches a tile from the player's hand to the chosen end. The first
// tile of the game may be any tile. Orientation is normalized so the
// matching half always touches the line.
func (g *Game) Play(player string, tile Tile, end End) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, err := g.checkTurn(player)
	if err != nil {
		return err
	}

	held := -1
	for i, t := range hand {
		if t.same(tile) {
			held = i
			break
		}
	}
	if held == -1 {
		return ErrTileNotHeld
	}
	tile = hand[held]

	if len(g.line) == 0 {
		g.line = []Tile{tile}
	} else {
		l, r := g.ends()
		switch end {
		case EndLeft:
			if !tile.matches(l) {
				return ErrTileMismatch
			}
			if tile.Right != l {
				tile = tile.flip()
			}
			g.line = append([]Tile{tile}, g.line...)
		case EndRight:
			if !tile.matches(r) {
				return ErrTileMismatch
			}
			if tile.Left != r {
				tile = tile.flip()
			}
			g.line = append(g.line, tile)
		default:
			return fmt.Errorf("dominoes: unknown end %q", end)
		}
	}

	g.hands[player] = append(hand[:held], hand[held+1:]...)
	g.passes = 0

	if len(g.hands[player]) == 0 {
		g.finish(player)
		return nil
	}
	g.advance()
	return nil
}

// Draw moves one tile from the boneyard to the player's hand. Only legal
// when the player has no playable tile. The turn stays with the player.
func (g *Game) Draw(player string) (Tile, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, err := g.checkTurn(player)
	if err != nil {
		return Tile{}, err
	}
	if g.canPlay(hand) {
		return Tile{}, ErrMustPlay
	}
	if len(g.boneyard) == 0 {
		return Tile{}, ErrBoneyardEmpty
	}

	t := g.boneyard[len(g.boneyard)-1]
	g.boneyard = g.boneyard[:len(g.boneyard)-1]
	g.hands[player] = append(hand, t)
	return t, nil
}

// Pass skips the turn. Only legal with no playable tile and an empty
// boneyard. When every player passes in a row the game is blocked and the
// lowest pip total wins; a tie is a draw.
func (g *Game) Pass(player string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, err := g.checkTurn(player)
	if err != nil {
		return err
	}
	if g.canPlay(hand) {
		return ErrMustPlay
	}
	if len(g.boneyard) > 0 {
		return ErrMustDraw
	}

	g.passes++
	if g.passes >= len(g.Players) {
		g.resolveBlocked()
		return nil
	}
	g.advance()
	return nil
}

// checkTurn validates game state, player membership, and turn order, and
// returns the player's hand.
func (g *Game) checkTurn(player string) ([]Tile, error) {
	if g.state != StatePlaying {
		return nil, ErrGameOver
	}
	hand, ok := g.hands[player]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if g.Players[g.turn] != player {
		return nil, ErrNotYourTurn
	}
	return hand, nil
}

// advance rotates the turn to the next player.
func (g *Game) advance() {
	g.turn = (g.turn + 1) % len(g.Players)
}

// finish marks the game won by player; the score is the pip total left in
// the other hands.
func (g *Game) finish(player string) {
	g.state = StateWon
	g.winner = player
	for p, h := range g.hands {
		if p != player {
			g.score += pipTotal(h)
		}
	}
}

// resolveBlocked ends a blocked game: lowest pip total wins, ties draw.
func (g *Game) resolveBlocked() {
	best, bestTotal, tie := "", -1, false
	for _, p := range g.Players {
		total := pipTotal(g.hands[p])
		switch {
		case bestTotal == -1 || total < bestTotal:
			best, bestTotal, tie = p, total, false
		case total == bestTotal:
			tie = true
		}
	}
	if tie {
		g.state = StateDraw
		return
	}
	g.state = StateWon
	g.winner = best
	for _, p := range g.Players {
		if p != best {
			g.score += pipTotal(g.hands[p]) - bestTotal
		}
	}
}

// View is a player-scoped snapshot: other hands appear only as counts.
type View struct {
	ID            string         `json:"id"`
	Players       []string       `json:"players"`
	Line          []Tile         `json:"line"`
	Turn          string         `json:"turn"`
	State         State          `json:"state"`
	Winner        string         `json:"winner,omitempty"`
	Score         int            `json:"score,omitempty"`
	Hand          []Tile         `json:"hand,omitempty"`
	HandCounts    map[string]int `json:"handCounts"`
	BoneyardCount int            `json:"boneyardCount"`
}

// Snapshot returns the game as seen by one player. An empty player name
// yields a spectator view with no hand.
func (g *Game) Snapshot(player string) View {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := View{
		ID:            g.ID,
		Players:       append([]string{}, g.Players...),
		Line:          append([]Tile{}, g.line...),
		Turn:          g.Players[g.turn],
		State:         g.state,
		Winner:        g.winner,
		Score:         g.score,
		HandCounts:    make(map[string]int, len(g.Players)),
		BoneyardCount: len(g.boneyard),
	}
	for p, h := range g.hands {
		v.HandCounts[p] = len(h)
	}
	if h, ok := g.hands[player]; ok {
		v.Hand = append([]Tile{}, h...)
	}
	return v
}
