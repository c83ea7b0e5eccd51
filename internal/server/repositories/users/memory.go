package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps records in insertion order. Safe for concurrent use.
type InMemoryRepository struct {
	mu       sync.RWMutex
	users    []*models.User
	byEmail  map[string]int
	byMobile map[string]int
	now      func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail:  make(map[string]int),
		byMobile: make(map[string]int),
		now:      time.Now,
	}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorDuplicateEmail
	}
	if _, ok := r.byMobile[user.Mobile]; ok {
		return nil, common.ErrorDuplicateMobile
	}

	ts := r.now().UTC()
	user.ID = uuid.NewString()
	user.CreatedAt = ts
	user.UpdatedAt = ts

	stored := *user
	r.users = append(r.users, &stored)
	r.byEmail[user.Email] = len(r.users) - 1
	r.byMobile[user.Mobile] = len(r.users) - 1

	return user, nil
}

func (r *InMemoryRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return r.lookup(r.byEmail, email)
}

func (r *InMemoryRepository) GetUserByMobile(_ context.Context, mobile string) (*models.User, error) {
	return r.lookup(r.byMobile, mobile)
}

func (r *InMemoryRepository) lookup(index map[string]int, key string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := index[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.users[i]
	return &u, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		c := *u
		result = append(result, &c)
	}
	return result, nil
}
