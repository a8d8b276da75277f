// Package chat guarda o histórico de mensagens de cada conversa.
package chat

import (
	"context"
)

// Repository define a interface para operações de repositório do histórico de chat
type Repository interface {
	// SaveMessage salva uma nova mensagem no histórico
	SaveMessage(ctx context.Context, message *Message) error

	// GetUserHistory retorna o histórico de mensagens de um usuário, da mais
	// antiga para a mais recente. limit <= 0 retorna todas.
	GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]Message, error)

	// DeleteUserHistory deleta todo o histórico de um usuário
	DeleteUserHistory(ctx context.Context, userID string) error

	// CountUserMessages conta quantas mensagens um usuário tem
	CountUserMessages(ctx context.Context, userID string) (int, error)
}

// Append grava uma mensagem da conversa com o papel indicado
func Append(ctx context.Context, repo Repository, userID, role, content string) (*Message, error) {
	msg := NewMessage(userID, role, content)
	if err := repo.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func page(messages []Message, limit, offset int) []Message {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(messages) {
		return []Message{}
	}
	end := len(messages)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]Message, end-offset)
	copy(out, messages[offset:end])
	return out
}
