package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore guarda os contextos no Redis como JSON, renovando o TTL a cada
// gravação.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedisStore cria um store sobre o cliente informado.
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// sessionKey e lockKey usam prefixos distintos: o id da conversa vem do
// usuário e não pode fazer uma chave alcançar a outra.
func sessionKey(conversationID string) string {
	return fmt.Sprintf("session:ctx:%s", conversationID)
}

func lockKey(conversationID string) string {
	return fmt.Sprintf("lock:session:%s", conversationID)
}

func (s *RedisStore) key(conversationID string) string {
	return sessionKey(conversationID)
}

func (s *RedisStore) Load(ctx context.Context, conversationID string) (Context, error) {
	if conversationID == "" {
		return Context{}, ErrEmptyConversationID
	}

	raw, err := s.rdb.Get(ctx, s.key(conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(conversationID), nil
	}
	if err != nil {
		return Context{}, fmt.Errorf("erro ao carregar sessão: %w", err)
	}

	var sc Context
	if err := json.Unmarshal(raw, &sc); err != nil {
		return Context{}, fmt.Errorf("erro ao decodificar sessão: %w", err)
	}
	return sc, nil
}

func (s *RedisStore) Save(ctx context.Context, sc Context) error {
	if sc.ConversationID == "" {
		return ErrEmptyConversationID
	}

	sc.UpdatedAt = time.Now()
	raw, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("erro ao codificar sessão: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key(sc.ConversationID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao salvar sessão: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	if err := s.rdb.Del(ctx, s.key(conversationID)).Err(); err != nil {
		return fmt.Errorf("erro ao remover sessão: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
