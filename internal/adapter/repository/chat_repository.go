package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/constru-ia/pkg/chat"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository guarda o histórico das conversas no PostgreSQL
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository cria um novo repositório de histórico
func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

func (r *ChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	query := `
		INSERT INTO chat_history (id, user_id, role, content, kind, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
	`

	// Se o ID da mensagem estiver vazio, gerar um novo
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.UserID,
		message.Role,
		message.Content,
		message.Kind,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

func (r *ChatRepository) GetUserHistory(ctx context.Context, userID string, limit, offset int) ([]chat.Message, error) {
	query := `
		SELECT id, role, content, COALESCE(kind, ''), created_at
		FROM chat_history
		WHERE user_id = $1
		ORDER BY seq ASC
		LIMIT $2 OFFSET $3
	`

	// LIMIT NULL equivale a sem limite
	var lim interface{}
	if limit > 0 {
		lim = limit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, query, userID, lim, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	messages := []chat.Message{}
	for rows.Next() {
		var msg chat.Message
		err := rows.Scan(
			&msg.ID,
			&msg.Role,
			&msg.Content,
			&msg.Kind,
			&msg.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		msg.UserID = userID
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return messages, nil
}

func (r *ChatRepository) DeleteUserHistory(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}

func (r *ChatRepository) CountUserMessages(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_history WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}
	return count, nil
}
