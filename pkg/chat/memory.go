package chat

import (
	"context"
	"sync"
)

// MemoryRepository guarda o histórico em memória
type MemoryRepository struct {
	mu       sync.RWMutex
	messages map[string][]Message
}

// NewMemoryRepository cria um repositório em memória
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{messages: make(map[string][]Message)}
}

func (r *MemoryRepository) SaveMessage(_ context.Context, message *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[message.UserID] = append(r.messages[message.UserID], *message)
	return nil
}

func (r *MemoryRepository) GetUserHistory(_ context.Context, userID string, limit, offset int) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.messages[userID], limit, offset), nil
}

func (r *MemoryRepository) DeleteUserHistory(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.messages, userID)
	return nil
}

func (r *MemoryRepository) CountUserMessages(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages[userID]), nil
}
