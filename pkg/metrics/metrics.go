// Package metrics expõe os coletores Prometheus do assistente.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "constru_messages_total",
		Help: "Mensagens processadas por ação classificada",
	}, []string{"action"})

	dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "constru_dispatch_duration_seconds",
		Help:    "Duração do despacho de uma intenção",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})

	dispatchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "constru_dispatch_failures_total",
		Help: "Despachos convertidos na resposta genérica de falha",
	}, []string{"action"})

	replaysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "constru_replays_total",
		Help: "Comandos repetidos respondidos sem nova chamada ao ERP",
	}, []string{"action"})

	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "constru_erp_requests_total",
		Help: "Chamadas ao ERP por operação e resultado",
	}, []string{"op", "outcome"})

	gatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "constru_erp_request_duration_seconds",
		Help:    "Duração das chamadas ao ERP",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	circuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "constru_circuit_breaker_state",
		Help: "Estado do circuit breaker por componente (1 no estado ativo, 0 nos demais)",
	}, []string{"component", "state"})

	circuitBreakerTrips = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "constru_circuit_breaker_trips_total",
		Help: "Aberturas do circuit breaker",
	}, []string{"component"})

	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "constru_rate_limited_total",
		Help: "Requisições recusadas pelo limitador de taxa",
	})
)

// ObserveDispatch registra uma mensagem despachada e sua duração.
func ObserveDispatch(action string, d time.Duration) {
	messagesTotal.WithLabelValues(action).Inc()
	dispatchDuration.WithLabelValues(action).Observe(d.Seconds())
}

// RecordDispatchFailure conta um despacho que terminou na resposta genérica.
func RecordDispatchFailure(action string) {
	dispatchFailures.WithLabelValues(action).Inc()
}

// RecordReplay conta uma resposta reaproveitada pelo request_id.
func RecordReplay(action string) {
	replaysTotal.WithLabelValues(action).Inc()
}

// ObserveGatewayCall registra uma chamada ao ERP.
func ObserveGatewayCall(op, outcome string, d time.Duration) {
	gatewayRequests.WithLabelValues(op, outcome).Inc()
	gatewayDuration.WithLabelValues(op).Observe(d.Seconds())
}

var circuitStates = []string{"closed", "half-open", "open"}

// SetCircuitBreakerState marca o estado ativo do circuit breaker de um componente.
func SetCircuitBreakerState(component, state string) {
	for _, s := range circuitStates {
		value := 0.0
		if s == state {
			value = 1.0
		}
		circuitBreakerState.WithLabelValues(component, s).Set(value)
	}
}

// RecordCircuitBreakerTrip conta uma abertura do circuit breaker.
func RecordCircuitBreakerTrip(component string) {
	circuitBreakerTrips.WithLabelValues(component).Inc()
}

// RecordRateLimited conta uma requisição recusada por excesso de taxa.
func RecordRateLimited() {
	rateLimited.Inc()
}
