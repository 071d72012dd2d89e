package memory

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"userapi/internal/domain"
	"userapi/internal/model"
)

func (s *Store) ListUsers(_ context.Context, limit, offset int) ([]model.User, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.users)
	result := make([]model.User, 0)
	if limit <= 0 || offset >= total {
		return result, total, nil
	}
	if offset < 0 {
		offset = 0
	}

	ids := make([]uint32, 0, total)
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	end := total
	if limit < total-offset {
		end = offset + limit
	}
	for _, id := range ids[offset:end] {
		result = append(result, s.users[id])
	}
	return result, total, nil
}

func (s *Store) GetUser(_ context.Context, id uint32) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) CreateUser(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID()
	s.users[user.ID] = user
	s.log.Debug("user stored", zap.Uint32("id", user.ID))
	return user, nil
}

func (s *Store) UpdateUser(_ context.Context, id uint32, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return model.User{}, domain.ErrUserNotFound
	}
	user.ID = id
	s.users[id] = user
	return user, nil
}

// DeleteUser removes the user and returns the record as it was stored.
func (s *Store) DeleteUser(_ context.Context, id uint32) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, domain.ErrUserNotFound
	}
	delete(s.users, id)
	s.log.Debug("user removed", zap.Uint32("id", id))
	return user, nil
}
