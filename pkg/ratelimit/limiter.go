// Package ratelimit limita a taxa de mensagens por cliente.
package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/constru-ia/internal/adapter/api/dto"
	"github.com/hugohenrick/constru-ia/pkg/metrics"
	"golang.org/x/time/rate"
)

// Config define a taxa permitida por cliente
type Config struct {
	// Rate é o número de requisições por segundo; <= 0 desativa o limite
	Rate  float64
	Burst int

	// IdleTimeout remove limitadores de clientes inativos
	IdleTimeout time.Duration
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter mantém um limitador por chave de cliente
type Limiter struct {
	config      Config
	mu          sync.Mutex
	clients     map[string]*entry
	lastCleanup time.Time
	now         func() time.Time
}

// New cria um limitador
func New(config Config) *Limiter {
	if config.Burst <= 0 {
		config.Burst = 1
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = 10 * time.Minute
	}
	return &Limiter{
		config:      config,
		clients:     make(map[string]*entry),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// Allow informa se a chave ainda tem saldo
func (l *Limiter) Allow(key string) bool {
	if l.config.Rate <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.clients[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(l.config.Rate), l.config.Burst)}
		l.clients[key] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	if now.Sub(l.lastCleanup) >= l.config.IdleTimeout {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) >= l.config.IdleTimeout {
				delete(l.clients, k)
			}
		}
		l.lastCleanup = now
	}
	return allowed
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Middleware recusa com 429 as requisições acima da taxa, por IP do cliente
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.RecordRateLimited()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				http.StatusTooManyRequests,
				"Muitas requisições",
				"Aguarde alguns instantes antes de enviar outra mensagem",
			))
			return
		}
		c.Next()
	}
}
