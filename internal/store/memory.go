// internal/store/memory.go
//
// In-memory session store for active dominoes games. Games are transient:
// finished results are persisted to SQLite by the HTTP layer, the live
// session state only ever lives here.
//
// Characteristics:
//   - Keyed by Game.ID in a map, RWMutex-guarded.
//   - State is lost when the process restarts.
//   - Errors are returned for missing game IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/tandemapp/go-server/internal/dominoes"
)

// ErrNotFound is returned when a game ID has no session.
var ErrNotFound = errors.New("store: game not found")

// GameStore defines the persistence interface for dominoes sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type GameStore interface {
	// Save persists or updates a game session.
	Save(ctx context.Context, g *dominoes.Game) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*dominoes.Game, error)
}

// memory is an in-memory map-based GameStore implementation.
type memory struct {
	mu    sync.RWMutex
	games map[string]*dominoes.Game
}

// NewMemoryStore constructs a new in-memory GameStore.
func NewMemoryStore() GameStore {
	return &memory{games: make(map[string]*dominoes.Game)}
}

func (m *memory) Save(ctx context.Context, g *dominoes.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*dominoes.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}
