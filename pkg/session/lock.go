package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Locker serializa o processamento de mensagens de uma mesma conversa.
type Locker interface {
	// Lock bloqueia até obter a conversa ou ctx ser cancelado. A função
	// retornada libera o lock.
	Lock(ctx context.Context, conversationID string) (func(), error)
}

type localLock struct {
	ch   chan struct{}
	refs int
}

// LocalLocker mantém um lock por conversa dentro do processo. Conversas
// diferentes não competem entre si.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*localLock
}

// NewLocalLocker cria um LocalLocker vazio.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*localLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, conversationID string) (func(), error) {
	l.mu.Lock()
	lk, ok := l.locks[conversationID]
	if !ok {
		lk = &localLock{ch: make(chan struct{}, 1)}
		l.locks[conversationID] = lk
	}
	lk.refs++
	l.mu.Unlock()

	select {
	case lk.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(conversationID, lk)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lk.ch
			l.release(conversationID, lk)
		})
	}, nil
}

func (l *LocalLocker) release(conversationID string, lk *localLock) {
	l.mu.Lock()
	lk.refs--
	if lk.refs == 0 {
		delete(l.locks, conversationID)
	}
	l.mu.Unlock()
}

// active retorna quantas conversas têm lock alocado.
func (l *LocalLocker) active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

// ErrLockTimeout é retornado quando o lock distribuído não é obtido a tempo.
var ErrLockTimeout = errors.New("tempo esgotado aguardando a conversa")

var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker usa SET NX com token para serializar conversas entre
// várias instâncias do serviço.
type RedisLocker struct {
	rdb   redis.Cmdable
	lease time.Duration
	retry time.Duration
	log   logger.Logger
}

// NewRedisLocker cria um locker distribuído. lease limita quanto tempo um
// lock esquecido pode segurar a conversa.
func NewRedisLocker(rdb redis.Cmdable, lease time.Duration, log logger.Logger) *RedisLocker {
	if lease <= 0 {
		lease = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RedisLocker{rdb: rdb, lease: lease, retry: 25 * time.Millisecond, log: log}
}

func (l *RedisLocker) Lock(ctx context.Context, conversationID string) (func(), error) {
	key := lockKey(conversationID)
	token := uuid.NewString()

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.lease).Result()
		if err != nil {
			return nil, fmt.Errorf("erro ao obter lock da conversa: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
		case <-time.After(l.retry):
		}
	}

	return func() {
		// contexto próprio: a requisição pode já ter sido cancelada
		unlockCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		released, err := unlockScript.Run(unlockCtx, l.rdb, []string{key}, token).Int()
		if err != nil {
			l.log.Error("Falha ao liberar lock da conversa", "conversation_id", conversationID, "key", key, "error", err)
			return
		}
		if released == 0 {
			l.log.Warn("Lock da conversa expirou antes da liberação", "conversation_id", conversationID, "lease", l.lease.String())
		}
	}, nil
}

var (
	_ Locker = (*LocalLocker)(nil)
	_ Locker = (*RedisLocker)(nil)
)
