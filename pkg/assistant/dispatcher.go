// Package assistant executa as intenções classificadas contra o ERP e
// monta a resposta de cada mensagem.
package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
	"github.com/hugohenrick/constru-ia/pkg/intent"
	"github.com/hugohenrick/constru-ia/pkg/logger"
	"github.com/hugohenrick/constru-ia/pkg/metrics"
	"github.com/hugohenrick/constru-ia/pkg/reply"
	"github.com/hugohenrick/constru-ia/pkg/session"
)

type handler func(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error)

// Dispatcher executa uma intenção e devolve a resposta e o novo contexto
// da conversa.
type Dispatcher struct {
	gateway  erp.Gateway
	log      logger.Logger
	handlers map[intent.Action]handler
}

// NewDispatcher cria um novo dispatcher
func NewDispatcher(gateway erp.Gateway, log logger.Logger) *Dispatcher {
	d := &Dispatcher{gateway: gateway, log: log}
	d.handlers = map[intent.Action]handler{
		intent.ShowMenu:              d.showMenu,
		intent.Unknown:               d.unknown,
		intent.ListPendingOrders:     d.listPendingOrders,
		intent.ShowOrderItems:        d.showOrderItems,
		intent.AuthorizeOrder:        d.authorizeOrder,
		intent.RejectOrder:           d.rejectOrder,
		intent.GenerateOrderPdf:      d.generateOrderPdf,
		intent.SearchInvoicesByTaxID: d.searchInvoicesByTaxID,
		intent.ProvideTaxID:          d.provideTaxID,
		intent.ConfirmSearch:         d.confirmSearch,
		intent.GenerateInvoiceLink:   d.generateInvoiceLink,
		intent.EmailInvoice:          d.emailInvoice,
	}
	return d
}

// Dispatch nunca falha: erros do ERP e pânicos viram a resposta genérica de
// falha com o menu, e parâmetros ausentes viram um pedido de esclarecimento.
func (d *Dispatcher) Dispatch(ctx context.Context, in intent.Intent, sc session.Context) (env reply.Envelope, next session.Context) {
	start := time.Now()
	next = settle(in, sc)

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Pânico ao despachar intenção",
				"panic", r,
				"action", in.Action,
				"params", safeParams(in),
				"conversation_id", sc.ConversationID,
			)
			metrics.RecordDispatchFailure(string(in.Action))
			env, next = failure(), sc.Clear()
		}
		metrics.ObserveDispatch(string(in.Action), time.Since(start))
	}()

	h, ok := d.handlers[in.Action]
	if !ok {
		h = d.unknown
	}

	env, handled, err := h(ctx, in, next)
	if err == nil {
		return env, handled
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		d.log.Debug("Parâmetro ausente", "action", verr.Action, "param", verr.Param, "conversation_id", sc.ConversationID)
		return clarify(verr), next
	}

	d.log.Error("Falha ao despachar intenção",
		"error", err,
		"action", in.Action,
		"params", safeParams(in),
		"conversation_id", sc.ConversationID,
	)
	metrics.RecordDispatchFailure(string(in.Action))
	return failure(), next
}

// settle aplica a regra de etapa pendente: a busca por CPF passa a aguardar
// o CPF, a captura do CPF mantém a etapa e qualquer outra intenção a
// descarta.
func settle(in intent.Intent, sc session.Context) session.Context {
	switch {
	case in.Action == intent.SearchInvoicesByTaxID:
		return sc.Clear().Await(session.StepAwaitingTaxID)
	case in.Action == intent.ProvideTaxID, in.Incomplete == intent.ProvideTaxID:
		return sc
	default:
		return sc.Clear()
	}
}

func failure() reply.Envelope {
	return reply.Text(failureText, reply.BuildMenu()...)
}

func clarify(err *ValidationError) reply.Envelope {
	switch err.Param {
	case intent.ParamTitleID, intent.ParamParcelaID:
		return reply.Text(askInvoiceText, reply.BuildMenu()...)
	case intent.ParamTaxID:
		return reply.Text(invalidTaxIDText, reply.BackButton()...)
	}
	if err.Ambiguous {
		return reply.Text(ambiguousText, reply.BuildMenu()...)
	}
	return reply.Text(askOrderText, reply.BuildMenu()...)
}

// safeParams mascara o CPF antes de ir para o log.
func safeParams(in intent.Intent) map[string]interface{} {
	out := make(map[string]interface{}, len(in.Params))
	for k, v := range in.Params {
		if k == intent.ParamTaxID {
			v = "***"
		}
		out[k] = v
	}
	return out
}

func orderID(in intent.Intent) (int64, error) {
	id, ok := in.Int(intent.ParamOrderID)
	if !ok {
		return 0, &ValidationError{Action: in.Action, Param: intent.ParamOrderID}
	}
	return id, nil
}

func titleAndInstallment(in intent.Intent) (int64, int64, error) {
	title, ok := in.Int(intent.ParamTitleID)
	if !ok {
		return 0, 0, &ValidationError{Action: in.Action, Param: intent.ParamTitleID}
	}
	installment, ok := in.Int(intent.ParamParcelaID)
	if !ok {
		return 0, 0, &ValidationError{Action: in.Action, Param: intent.ParamParcelaID}
	}
	return title, installment, nil
}

func (d *Dispatcher) showMenu(_ context.Context, _ intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	return reply.Text(menuText, reply.BuildMenu()...), sc, nil
}

func (d *Dispatcher) unknown(_ context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	if in.Incomplete != "" {
		return reply.Envelope{}, sc, &ValidationError{
			Action:    in.Incomplete,
			Param:     requiredParam(in.Incomplete),
			Ambiguous: in.Ambiguous,
		}
	}
	return reply.Text(unknownText, reply.BuildMenu()...), sc, nil
}
