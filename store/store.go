package store

import (
	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/uno-online/engine/game"
)

// Store keeps independent game instances addressable by id. Games share
// nothing with each other; each one is still driven sequentially by its own
// caller.
type Store struct {
	games *hashmap.HashMap
}

func New() *Store {
	return &Store{games: hashmap.New()}
}

// Create starts a fresh game and registers it under a new id.
func (s *Store) Create(players int) (string, *game.Game, error) {
	g, err := game.New(players)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()
	s.games.Set(id, g)
	logrus.WithFields(logrus.Fields{
		"game":    id,
		"players": players,
	}).Info("game created")
	return id, g, nil
}

// Get returns the game registered under id, nil when there is none.
func (s *Store) Get(id string) *game.Game {
	if v, ok := s.games.Get(id); ok {
		return v.(*game.Game)
	}
	return nil
}

func (s *Store) Delete(id string) {
	s.games.Del(id)
	logrus.WithField("game", id).Info("game deleted")
}

func (s *Store) Count() int {
	count := 0
	s.games.Foreach(func(e *hashmap.Entry) {
		count++
	})
	return count
}

// Save serializes the game's full state so a caller can persist it between
// turns.
func (s *Store) Save(id string) ([]byte, error) {
	g := s.Get(id)
	if g == nil {
		return nil, ErrGameNotFound
	}
	return g.Snapshot().Marshal()
}

// Load restores a previously saved game under a new id.
func (s *Store) Load(data []byte) (string, *game.Game, error) {
	snapshot, err := game.UnmarshalSnapshot(data)
	if err != nil {
		return "", nil, err
	}
	g, err := game.Restore(snapshot)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()
	s.games.Set(id, g)
	logrus.WithField("game", id).Info("game restored")
	return id, g, nil
}
