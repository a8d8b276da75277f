package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository guarda o histórico como uma lista Redis por usuário
type RedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedisRepository cria o repositório. ttl > 0 renova a expiração do
// histórico a cada nova mensagem.
func NewRedisRepository(rdb redis.Cmdable, ttl time.Duration) *RedisRepository {
	return &RedisRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisRepository) key(userID string) string {
	return fmt.Sprintf("chat:%s", userID)
}

func (r *RedisRepository) SaveMessage(ctx context.Context, message *Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	key := r.key(message.UserID)
	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}
	return nil
}

func (r *RedisRepository) GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]Message, error) {
	if offset < 0 {
		offset = 0
	}
	stop := int64(-1)
	if limit > 0 {
		stop = int64(offset + limit - 1)
	}

	raw, err := r.rdb.LRange(ctx, r.key(userID), int64(offset), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *RedisRepository) DeleteUserHistory(ctx context.Context, userID string) error {
	if err := r.rdb.Del(ctx, r.key(userID)).Err(); err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}

func (r *RedisRepository) CountUserMessages(ctx context.Context, userID string) (int, error) {
	n, err := r.rdb.LLen(ctx, r.key(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}
	return int(n), nil
}
