package dto

import (
	"github.com/hugohenrick/constru-ia/pkg/chat"
	"github.com/hugohenrick/constru-ia/pkg/reply"
)

// MessageRequest representa uma mensagem enviada pelo chat
type MessageRequest struct {
	User      string `json:"user" binding:"required"`
	Text      string `json:"text"`
	RequestID string `json:"request_id,omitempty"`
}

// ReplyResponse documenta o envelope devolvido por POST /mensagem. Apenas
// um de table, pedidos e pdf_base64 vem preenchido.
type ReplyResponse struct {
	Text      string               `json:"text"`
	Buttons   []reply.Button       `json:"buttons,omitempty"`
	Table     *reply.Table         `json:"table,omitempty"`
	Pedidos   []reply.OrderSummary `json:"pedidos,omitempty"`
	PDFBase64 string               `json:"pdf_base64,omitempty"`
}

// HealthResponse representa o estado do serviço
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Status  string `json:"status"`
}

// HistoryResponse representa uma página do histórico de uma conversa
type HistoryResponse struct {
	User     string         `json:"user"`
	Messages []chat.Message `json:"messages"`
	Total    int            `json:"total"`
	Pagination
}

// NewHistoryResponse cria a resposta do histórico
func NewHistoryResponse(user string, messages []chat.Message, total int, p Pagination) HistoryResponse {
	if messages == nil {
		messages = []chat.Message{}
	}
	return HistoryResponse{
		User:       user,
		Messages:   messages,
		Total:      total,
		Pagination: p,
	}
}
