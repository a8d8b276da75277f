package chat

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseRepository(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	for _, content := range []string{"oi", "👋 Olá!", "pedidos pendentes"} {
		role := RoleUser
		if content == "👋 Olá!" {
			role = RoleAssistant
		}
		_, err := Append(ctx, repo, "u1", role, content)
		require.NoError(t, err)
	}
	_, err := Append(ctx, repo, "u2", RoleUser, "menu")
	require.NoError(t, err)

	all, err := repo.GetUserHistory(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "oi", all[0].Content)
	assert.Equal(t, RoleAssistant, all[1].Role)
	assert.Equal(t, "pedidos pendentes", all[2].Content)
	assert.NotEmpty(t, all[0].ID)

	paged, err := repo.GetUserHistory(ctx, "u1", 1, 1)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "👋 Olá!", paged[0].Content)

	beyond, err := repo.GetUserHistory(ctx, "u1", 10, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	n, err := repo.CountUserMessages(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, repo.DeleteUserHistory(ctx, "u1"))
	n, err = repo.CountUserMessages(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.CountUserMessages(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewMemoryRepository())
}

func TestRedisRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseRepository(t, NewRedisRepository(rdb, time.Hour))
}

func TestRedisRepositoryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewRedisRepository(rdb, time.Minute)
	_, err := Append(context.Background(), repo, "u1", RoleUser, "oi")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL("chat:u1"))

	mr.FastForward(2 * time.Minute)
	n, err := repo.CountUserMessages(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPageDoesNotAlias(t *testing.T) {
	src := []Message{{Content: "a"}, {Content: "b"}}
	out := page(src, 0, 0)
	out[0].Content = "x"
	assert.Equal(t, "a", src[0].Content)
}
