package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userregistry/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps everything in process memory. WithinTx
// serialises units of work, so check-then-insert is atomic here.
type InMemoryRepositoryManager struct {
	mu    sync.Mutex
	users *users.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) WithinTx(ctx context.Context, fn UnitOfWork) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m.users)
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Ping(context.Context) error          { return nil }
func (m *InMemoryRepositoryManager) Close(context.Context) error         { return nil }
