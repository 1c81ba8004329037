package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/klondike/game"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrFnGameExists  = func(gameID string) error {
		return fmt.Errorf("game with id %q already exists", gameID)
	}
)

// GameStore maps game id to a running game
type GameStore interface {
	FindGame(gameID string) *game.Klondike
	AddGame(gameID string, g *game.Klondike) error
	RemoveGame(gameID string)
	GameCount() int
}

// InMemoryGameStore holds all live games in memory. Safe for
// concurrent use by the HTTP handlers; the games themselves are
// single-writer and guarded separately by the server.
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*game.Klondike
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*game.Klondike{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *game.Klondike {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.games[gameID]
}

func (s *InMemoryGameStore) AddGame(gameID string, g *game.Klondike) error {
	if g == nil {
		return errors.New("cannot store a nil game")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; exists {
		return ErrFnGameExists(gameID)
	}

	s.games[gameID] = g
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.games, gameID)
}

func (s *InMemoryGameStore) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.games)
}
