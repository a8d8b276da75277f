package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrEmptyConversationID é retornado quando a conversa não é identificada.
var ErrEmptyConversationID = errors.New("id da conversa não informado")

// Store persiste o contexto de cada conversa.
type Store interface {
	// Load retorna o contexto da conversa, ou um contexto ocioso se não existir
	Load(ctx context.Context, conversationID string) (Context, error)

	// Save grava o contexto
	Save(ctx context.Context, sc Context) error

	// Delete remove o contexto da conversa
	Delete(ctx context.Context, conversationID string) error
}

type memoryEntry struct {
	ctx       Context
	expiresAt time.Time
}

// MemoryStore guarda os contextos em memória, com expiração opcional.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore cria um store em memória. ttl <= 0 desativa a expiração.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, conversationID string) (Context, error) {
	if conversationID == "" {
		return Context{}, ErrEmptyConversationID
	}

	s.mu.RLock()
	entry, ok := s.entries[conversationID]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && s.now().After(entry.expiresAt)) {
		return New(conversationID), nil
	}
	return entry.ctx, nil
}

func (s *MemoryStore) Save(_ context.Context, sc Context) error {
	if sc.ConversationID == "" {
		return ErrEmptyConversationID
	}

	now := s.now()
	sc.UpdatedAt = now

	entry := memoryEntry{ctx: sc}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[sc.ConversationID] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, conversationID string) error {
	s.mu.Lock()
	delete(s.entries, conversationID)
	s.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
