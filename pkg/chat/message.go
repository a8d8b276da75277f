package chat

import (
	"time"

	"github.com/google/uuid"
)

// Papéis de uma mensagem
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message representa uma mensagem no histórico do chat
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage cria uma mensagem com ID e horário preenchidos
func NewMessage(userID, role, content string) *Message {
	return &Message{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
