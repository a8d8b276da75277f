package sienge

import (
	"sync"
	"time"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
	"github.com/hugohenrick/constru-ia/pkg/metrics"
)

// State é o estado do circuit breaker.
type State int

const (
	StateClosed   State = iota // chamadas liberadas
	StateOpen                  // chamadas bloqueadas
	StateHalfOpen              // testando se o ERP voltou
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

const breakerComponent = "sienge"

// CircuitBreaker suspende as chamadas ao ERP após falhas consecutivas.
type CircuitBreaker struct {
	mu               sync.Mutex
	state            State
	failures         int
	failureThreshold int
	resetTimeout     time.Duration
	lastFailure      time.Time
	now              func() time.Time
}

// NewCircuitBreaker cria um circuit breaker. threshold <= 0 desativa a
// abertura do circuito.
func NewCircuitBreaker(threshold int, resetTimeout time.Duration) *CircuitBreaker {
	cb := &CircuitBreaker{
		state:            StateClosed,
		failureThreshold: threshold,
		resetTimeout:     resetTimeout,
		now:              time.Now,
	}
	metrics.SetCircuitBreakerState(breakerComponent, cb.state.String())
	return cb
}

// Execute executa fn se o circuito permitir. Erros retornados por fn contam
// como falha.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.allow() {
		return erp.ErrCircuitOpen
	}

	if err := fn(); err != nil {
		cb.recordFailure()
		return err
	}
	cb.recordSuccess()
	return nil
}

// State retorna o estado atual.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.lastFailure) > cb.resetTimeout {
		cb.transition(StateHalfOpen)
		return true
	}
	return false
}

func (cb *CircuitBreaker) recordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.lastFailure = cb.now()

	if cb.state == StateHalfOpen ||
		(cb.failureThreshold > 0 && cb.failures >= cb.failureThreshold && cb.state == StateClosed) {
		cb.transition(StateOpen)
		metrics.RecordCircuitBreakerTrip(breakerComponent)
	}
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.transition(StateClosed)
}

// transition deve ser chamada com mu travado.
func (cb *CircuitBreaker) transition(to State) {
	if cb.state == to {
		return
	}
	cb.state = to
	metrics.SetCircuitBreakerState(breakerComponent, to.String())
}
