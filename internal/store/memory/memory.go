package memory

import (
	"sync"

	"go.uber.org/zap"
	"userapi/internal/model"
)

// Store keeps users in a map guarded by a single mutex. Every exported
// operation holds the lock for its whole duration and never hands out
// references into the map.
type Store struct {
	mu    sync.Mutex
	users map[uint32]model.User
	log   *zap.Logger
}

func New(logger *zap.Logger, seed ...model.User) *Store {
	s := &Store{users: make(map[uint32]model.User, len(seed)), log: logger}
	for _, u := range seed {
		s.users[u.ID] = u
	}
	return s
}

// nextID must be called with mu held. Ids of a deleted maximum are handed
// out again, matching the max+1 assignment rule.
func (s *Store) nextID() uint32 {
	var highest uint32
	for id := range s.users {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}
