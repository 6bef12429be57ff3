package users

import (
	"context"
	"sync"
	"time"

	"truckboard/internal/entities"
	"truckboard/internal/service/auth"
)

// Memory keeps users in process memory. It is the default storage
// driver and mirrors the sentinel behavior of the postgres driver.
type Memory struct {
	mu     sync.RWMutex
	users  map[int64]entities.User
	nextID int64
}

func NewMemory() *Memory {
	return &Memory{users: make(map[int64]entities.User)}
}

func (r *Memory) Create(_ context.Context, user entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, auth.ErrUsernameTaken
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.users[user.ID] = user

	return &user, nil
}

func (r *Memory) GetByID(_ context.Context, id int64) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}

	return &user, nil
}

func (r *Memory) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return &user, nil
		}
	}

	return nil, auth.ErrUserNotFound
}
