package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hugohenrick/constru-ia/pkg/chat"
	"github.com/hugohenrick/constru-ia/pkg/intent"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/hugohenrick/constru-ia/pkg/metrics"
	"github.com/hugohenrick/constru-ia/pkg/reply"
	"github.com/hugohenrick/constru-ia/pkg/session"
)

// ErrEmptyUser é retornado quando a mensagem não identifica o usuário
var ErrEmptyUser = errors.New("usuário não informado")

// Request é uma mensagem recebida do chat
type Request struct {
	// ConversationID identifica a conversa (o usuário do chat)
	ConversationID string

	// Text é o texto digitado ou o código de um botão
	Text string

	// RequestID identifica o envio; repetições de um comando que altera o
	// ERP com o mesmo RequestID recebem a resposta já dada
	RequestID string
}

// Service orquestra o processamento de uma mensagem: trava a conversa,
// classifica o texto, despacha a intenção, grava o novo contexto e o
// histórico.
type Service struct {
	dispatcher *Dispatcher
	sessions   session.Store
	locker     session.Locker
	history    chat.Repository
	log        logger.Logger
	now        func() time.Time
}

// NewService cria o serviço do assistente
func NewService(dispatcher *Dispatcher, sessions session.Store, locker session.Locker, history chat.Repository, log logger.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		sessions:   sessions,
		locker:     locker,
		history:    history,
		log:        log,
		now:        time.Now,
	}
}

// Handle processa uma mensagem. As mensagens de uma mesma conversa são
// processadas uma de cada vez, na ordem em que obtêm a trava; conversas
// diferentes correm em paralelo. Só retorna erro para requisições
// inválidas: falhas internas viram a resposta genérica de falha.
func (s *Service) Handle(ctx context.Context, req Request) (reply.Envelope, error) {
	conversationID := strings.TrimSpace(req.ConversationID)
	if conversationID == "" {
		return reply.Envelope{}, ErrEmptyUser
	}

	unlock, err := s.locker.Lock(ctx, conversationID)
	if err != nil {
		s.log.Error("Falha ao travar conversa", "conversation_id", conversationID, "error", err)
		return failure(), nil
	}
	defer unlock()

	sc, err := s.sessions.Load(ctx, conversationID)
	if err != nil {
		s.log.Warn("Falha ao carregar contexto, seguindo com contexto vazio", "conversation_id", conversationID, "error", err)
		sc = session.New(conversationID)
	}

	in := intent.Resolve(req.Text, sc)

	if in.Action.Mutating() {
		if env, ok := sc.Replay(req.RequestID); ok {
			s.log.Info("Comando repetido, devolvendo resposta anterior",
				"conversation_id", conversationID, "request_id", req.RequestID, "action", in.Action)
			metrics.RecordReplay(string(in.Action))
			s.record(ctx, conversationID, req.Text, env)
			return env, nil
		}
	}

	env, next := s.dispatcher.Dispatch(ctx, in, sc)
	if in.Action.Mutating() {
		next = next.Remember(req.RequestID, env)
	}
	next.UpdatedAt = s.now().UTC()

	if err := s.sessions.Save(ctx, next); err != nil {
		s.log.Error("Falha ao salvar contexto", "conversation_id", conversationID, "error", err)
	}
	s.record(ctx, conversationID, req.Text, env)

	return env, nil
}

// record grava a mensagem do usuário e a resposta, nessa ordem. O
// histórico é acessório: falhas são apenas registradas.
func (s *Service) record(ctx context.Context, conversationID, text string, env reply.Envelope) {
	if s.history == nil {
		return
	}

	if _, err := chat.Append(ctx, s.history, conversationID, chat.RoleUser, text); err != nil {
		s.log.Warn("Falha ao gravar mensagem do usuário", "conversation_id", conversationID, "error", err)
		return
	}

	msg := chat.NewMessage(conversationID, chat.RoleAssistant, env.Text)
	msg.Kind = env.Kind()
	if err := s.history.SaveMessage(ctx, msg); err != nil {
		s.log.Warn("Falha ao gravar resposta", "conversation_id", conversationID, "error", err)
	}
}

// History lista as mensagens de uma conversa em ordem cronológica
func (s *Service) History(ctx context.Context, conversationID string, limit, offset int) ([]chat.Message, int, error) {
	if conversationID == "" {
		return nil, 0, ErrEmptyUser
	}
	messages, err := s.history.GetUserHistory(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.history.CountUserMessages(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// Reset apaga o histórico e o contexto de uma conversa
func (s *Service) Reset(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return ErrEmptyUser
	}

	unlock, err := s.locker.Lock(ctx, conversationID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.history.DeleteUserHistory(ctx, conversationID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, conversationID)
}
