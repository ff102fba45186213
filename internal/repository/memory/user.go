package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/sessionkeeper/internal/model"
)

var _ model.UserStore = (*UserStore)(nil)

// UserStore keeps users in memory with the same uniqueness rules as the
// users table.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[int64]model.User
	byEmail map[string]int64
	nextID  int64
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[int64]model.User),
		byEmail: make(map[string]int64),
	}
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return s.byID[id], nil
}

func (s *UserStore) GetByID(_ context.Context, id int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *UserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return model.User{}, model.ErrConflict
	}
	s.nextID++
	now := time.Now()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user.ID
	return user, nil
}

func (s *UserStore) UpdatePassword(_ context.Context, id int64, passwordHash []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	s.byID[id] = u
	return nil
}

// Delete removes a user. Only used to simulate collaborator-side deletion.
func (s *UserStore) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.byID[id]; ok {
		delete(s.byEmail, u.Email)
		delete(s.byID, id)
	}
}
