package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/exp/maps"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager is the registry of live games.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex

	idleTTL time.Duration
	done    chan struct{}
	once    sync.Once
}

// NewGameManager returns an empty registry. With a positive idleTTL a
// background sweep removes games nobody has watched or touched for that
// long; Close stops it.
func NewGameManager(idleTTL time.Duration) *GameManager {
	gm := &GameManager{
		games:   make(map[string]*model.Game),
		idleTTL: idleTTL,
		done:    make(chan struct{}),
	}
	if idleTTL > 0 {
		go gm.sweepIdle(idleTTL / 2)
	}
	return gm
}

func (gm *GameManager) sweepIdle(every time.Duration) {
	if every < time.Second {
		every = time.Second
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-gm.done:
			return
		case now := <-ticker.C:
			if n := gm.Sweep(now.Add(-gm.idleTTL)); n > 0 {
				log.Infof("removed %d idle games", n)
			}
		}
	}
}

// Sweep removes every game idle since before cutoff and returns how many it
// removed.
func (gm *GameManager) Sweep(cutoff time.Time) int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	removed := 0
	for id, game := range gm.games {
		if game.Idle(cutoff) {
			delete(gm.games, id)
			removed++
		}
	}
	return removed
}

func (gm *GameManager) Close() {
	gm.once.Do(func() { close(gm.done) })
}

func (gm *GameManager) CreateGame(gameID string) (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameExists)
	}

	game := model.NewGame(gameID)
	gm.games[gameID] = game
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}

	return game, nil
}

func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return fmt.Errorf("game %s: %w", gameID, ErrGameNotFound)
	}
	delete(gm.games, gameID)
	return nil
}

// ListGames returns the ids of all live games in sorted order.
func (gm *GameManager) ListGames() []string {
	gm.mu.RLock()
	ids := maps.Keys(gm.games)
	gm.mu.RUnlock()

	sort.Strings(ids)
	return ids
}
