package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/hugohenrick/constru-ia/internal/infrastructure/database"
	"github.com/hugohenrick/constru-ia/pkg/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requer um PostgreSQL real em TEST_DATABASE_URL.
func TestChatRepositoryPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL não definida")
	}

	_, err := database.RunMigrations(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	pool, err := database.NewPostgresDB(ctx, database.PostgresConfig{URL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewChatRepository(pool)
	user := "test-" + uuid.New().String()
	t.Cleanup(func() { _ = repo.DeleteUserHistory(ctx, user) })

	for _, content := range []string{"oi", "menu", "pedidos pendentes"} {
		_, err := chat.Append(ctx, repo, user, chat.RoleUser, content)
		require.NoError(t, err)
	}

	history, err := repo.GetUserHistory(ctx, user, 0, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "oi", history[0].Content)
	assert.Equal(t, "pedidos pendentes", history[2].Content)

	paged, err := repo.GetUserHistory(ctx, user, 1, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "menu", paged[0].Content)

	n, err := repo.CountUserMessages(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, repo.DeleteUserHistory(ctx, user))
	n, err = repo.CountUserMessages(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, n)
}
