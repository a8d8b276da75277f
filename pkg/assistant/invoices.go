package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
	"github.com/hugohenrick/constru-ia/pkg/intent"
	"github.com/hugohenrick/constru-ia/pkg/reply"
	"github.com/hugohenrick/constru-ia/pkg/session"
)

func (d *Dispatcher) searchInvoicesByTaxID(_ context.Context, _ intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	return reply.Text(askTaxIDText, reply.BackButton()...), sc, nil
}

func (d *Dispatcher) provideTaxID(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	taxID, ok := in.String(intent.ParamTaxID)
	if !ok {
		return reply.Envelope{}, sc, &ValidationError{Action: in.Action, Param: intent.ParamTaxID}
	}

	customer, err := d.gateway.FindCustomerByTaxID(ctx, taxID)
	if errors.Is(err, erp.ErrNotFound) || (err == nil && customer == nil) {
		return reply.Text(customerNotFoundText, reply.BackButton()...), sc, nil
	}
	if err != nil {
		return reply.Envelope{}, sc, err
	}

	name := customer.Name
	if name == "" {
		name = "-"
	}
	return reply.Text(fmt.Sprintf(customerFoundFormat, name), reply.BackButton()...), sc.WithTaxID(taxID), nil
}

// confirmSearch só devolve o aviso de espera: o resultado da busca é
// entregue depois, fora desta conversa.
func (d *Dispatcher) confirmSearch(_ context.Context, _ intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	return reply.Text(searchingText), sc, nil
}

func (d *Dispatcher) generateInvoiceLink(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	title, installment, err := titleAndInstallment(in)
	if err != nil {
		return reply.Envelope{}, sc, err
	}

	link, err := d.gateway.GenerateInvoiceLink(ctx, title, installment)
	if err != nil {
		return d.userFacing(in, sc, err)
	}

	barCode := link.BarCode
	if barCode == "" {
		barCode = "-"
	}
	return reply.Text(fmt.Sprintf(invoiceLinkFormat, link.Link, barCode), reply.BuildMenu()...), sc, nil
}

func (d *Dispatcher) emailInvoice(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	title, installment, err := titleAndInstallment(in)
	if err != nil {
		return reply.Envelope{}, sc, err
	}

	if err := d.gateway.SendInvoiceEmail(ctx, title, installment); err != nil {
		return d.userFacing(in, sc, err)
	}
	return reply.Text(invoiceEmailSentText, reply.BuildMenu()...), sc, nil
}

// userFacing repassa ao usuário a mensagem pronta do ERP; sem ela, a falha
// segue como erro.
func (d *Dispatcher) userFacing(in intent.Intent, sc session.Context, err error) (reply.Envelope, session.Context, error) {
	msg, ok := erp.UserMessage(err)
	if !ok {
		return reply.Envelope{}, sc, err
	}
	d.log.Warn("Falha no boleto", "action", in.Action, "params", safeParams(in), "error", err)
	return reply.Text(msg, reply.BuildMenu()...), sc, nil
}
