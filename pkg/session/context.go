// Package session guarda o contexto pendente de cada conversa.
package session

import (
	"time"

	"github.com/hugohenrick/constru-ia/pkg/reply"
)

// Step é a etapa pendente de uma conversa de múltiplos turnos.
type Step string

const (
	// StepIdle indica que não há etapa pendente.
	StepIdle Step = ""
	// StepAwaitingTaxID indica que o assistente aguarda o CPF do titular.
	StepAwaitingTaxID Step = "awaiting_tax_id"
)

// Mutation registra a última operação que alterou o ERP, para que a
// repetição da mesma requisição não dispare a chamada novamente.
type Mutation struct {
	RequestID string         `json:"request_id"`
	Reply     reply.Envelope `json:"reply"`
}

// Context é o estado mutável de uma conversa. Contém no máximo uma etapa
// pendente.
type Context struct {
	ConversationID string    `json:"conversation_id"`
	Pending        Step      `json:"pending_step,omitempty"`
	TaxID          string    `json:"tax_id,omitempty"`
	LastMutation   *Mutation `json:"last_mutation,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// New cria o contexto ocioso de uma conversa.
func New(conversationID string) Context {
	return Context{ConversationID: conversationID}
}

// Awaiting informa se a conversa aguarda a etapa indicada.
func (c Context) Awaiting(step Step) bool {
	return step != StepIdle && c.Pending == step
}

// Await retorna uma cópia aguardando a etapa indicada.
func (c Context) Await(step Step) Context {
	c.Pending = step
	return c
}

// WithTaxID retorna uma cópia com o CPF capturado.
func (c Context) WithTaxID(taxID string) Context {
	c.TaxID = taxID
	return c
}

// Clear retorna uma cópia ociosa, sem dados parciais da etapa anterior.
func (c Context) Clear() Context {
	c.Pending = StepIdle
	c.TaxID = ""
	return c
}

// Remember retorna uma cópia com a última mutação registrada.
func (c Context) Remember(requestID string, env reply.Envelope) Context {
	if requestID == "" {
		return c
	}
	c.LastMutation = &Mutation{RequestID: requestID, Reply: env}
	return c
}

// Replay devolve a resposta já enviada para requestID, se houver.
func (c Context) Replay(requestID string) (reply.Envelope, bool) {
	if requestID == "" || c.LastMutation == nil || c.LastMutation.RequestID != requestID {
		return reply.Envelope{}, false
	}
	return c.LastMutation.Reply, true
}
