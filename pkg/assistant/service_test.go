package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/constru-ia/pkg/chat"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/hugohenrick/constru-ia/pkg/reply"
	"github.com/hugohenrick/constru-ia/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	gw       *fakeGateway
	sessions *session.MemoryStore
	history  *chat.MemoryRepository
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		gw:       newFakeGateway(),
		sessions: session.NewMemoryStore(time.Hour),
		history:  chat.NewMemoryRepository(),
	}
	f.svc = NewService(NewDispatcher(f.gw, logger.Nop()), f.sessions, session.NewLocalLocker(), f.history, logger.Nop())
	return f
}

func TestHandleRequiresUser(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Handle(context.Background(), Request{ConversationID: "  ", Text: "oi"})
	assert.ErrorIs(t, err, ErrEmptyUser)
}

func TestHandlePersistsSessionAndHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	env, err := f.svc.Handle(ctx, Request{ConversationID: "u1", Text: "segunda via cpf"})
	require.NoError(t, err)
	assert.Equal(t, reply.BackButton(), env.Buttons)

	sc, err := f.sessions.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, session.StepAwaitingTaxID, sc.Pending)
	assert.False(t, sc.UpdatedAt.IsZero())

	_, err = f.svc.Handle(ctx, Request{ConversationID: "u1", Text: "menu"})
	require.NoError(t, err)
	sc, err = f.sessions.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, session.StepIdle, sc.Pending)

	messages, total, err := f.svc.History(ctx, "u1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, messages, 4)
	assert.Equal(t, "segunda via cpf", messages[0].Content)
	assert.Equal(t, chat.RoleUser, messages[0].Role)
	assert.Equal(t, askTaxIDText, messages[1].Content)
	assert.Equal(t, chat.RoleAssistant, messages[1].Role)
	assert.Equal(t, "text", messages[1].Kind)
	assert.Equal(t, "menu", messages[2].Content)
}

func TestReplayDoesNotRepeatMutation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	req := Request{ConversationID: "u1", Text: "autorizar pedido 42", RequestID: "req-1"}

	first, err := f.svc.Handle(ctx, req)
	require.NoError(t, err)
	second, err := f.svc.Handle(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.gw.count("AuthorizeOrder"))

	// a repetição também entra no histórico
	messages, total, err := f.svc.History(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 4, total)
	assert.Equal(t, req.Text, messages[2].Content)
	assert.Equal(t, chat.RoleUser, messages[2].Role)
	assert.Equal(t, second.Text, messages[3].Content)
	assert.Equal(t, chat.RoleAssistant, messages[3].Role)

	// um novo envio do mesmo comando é uma nova confirmação do usuário
	_, err = f.svc.Handle(ctx, Request{ConversationID: "u1", Text: "autorizar pedido 42", RequestID: "req-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, f.gw.count("AuthorizeOrder"))

	// sem request_id não há como reconhecer a repetição
	_, err = f.svc.Handle(ctx, Request{ConversationID: "u1", Text: "autorizar pedido 42"})
	require.NoError(t, err)
	assert.Equal(t, 3, f.gw.count("AuthorizeOrder"))
}

func TestReplayRemembersFailures(t *testing.T) {
	f := newFixture()
	f.gw.errs["RejectOrder"] = errors.New("timeout")
	req := Request{ConversationID: "u1", Text: "reprovar pedido 8", RequestID: "req-1"}

	env, err := f.svc.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, failureText, env.Text)

	_, err = f.svc.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, f.gw.count("RejectOrder"))
}

func TestConversationMessagesAreSerialized(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.Handle(ctx, Request{ConversationID: "u1", Text: fmt.Sprintf("msg %d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	messages, _, err := f.svc.History(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2*n)
	for i := 0; i < len(messages); i += 2 {
		assert.Equal(t, chat.RoleUser, messages[i].Role)
		assert.Equal(t, chat.RoleAssistant, messages[i+1].Role)
		assert.Equal(t, unknownText, messages[i+1].Content)
	}
}

func TestReset(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Handle(ctx, Request{ConversationID: "u1", Text: "boleto cpf"})
	require.NoError(t, err)
	require.NoError(t, f.svc.Reset(ctx, "u1"))

	sc, err := f.sessions.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, session.StepIdle, sc.Pending)

	_, total, err := f.svc.History(ctx, "u1", 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.ErrorIs(t, f.svc.Reset(ctx, ""), ErrEmptyUser)
}

type failingLocker struct{}

func (failingLocker) Lock(context.Context, string) (func(), error) {
	return nil, session.ErrLockTimeout
}

func TestLockFailureStillReplies(t *testing.T) {
	f := newFixture()
	svc := NewService(NewDispatcher(f.gw, logger.Nop()), f.sessions, failingLocker{}, f.history, logger.Nop())

	env, err := svc.Handle(context.Background(), Request{ConversationID: "u1", Text: "pedidos pendentes"})
	require.NoError(t, err)
	assert.Equal(t, failureText, env.Text)
	assert.Zero(t, f.gw.count("ListPendingOrders"))
}
