package sienge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
)

const paymentSlipNotification = "/payment-slip-notification"

// GenerateInvoiceLink gera o link de segunda via de um boleto. Os erros
// retornados trazem uma mensagem pronta para o usuário.
func (c *Client) GenerateInvoiceLink(ctx context.Context, titleID, installment int64) (*erp.InvoiceLink, error) {
	const op = "link_boleto"
	query := url.Values{}
	query.Set("titleId", strconv.FormatInt(titleID, 10))
	query.Set("installmentNumber", strconv.FormatInt(installment, 10))

	res, err := c.call(ctx, op, request{method: http.MethodGet, path: paymentSlipNotification, query: query})
	if err != nil {
		return nil, withUserMessage(err, "❌ Erro ao gerar link do boleto. Tente novamente em instantes.",
			"❌ Falha ao gerar link do boleto (%d).")
	}
	if res.status != http.StatusOK {
		return nil, &erp.Error{
			Op:          op,
			Status:      res.status,
			UserMessage: fmt.Sprintf("❌ Falha ao gerar link do boleto (%d).", res.status),
		}
	}

	var out erp.InvoiceLink
	if err := json.Unmarshal(res.body, &out); err != nil || out.Link == "" {
		return nil, &erp.Error{
			Op:          op,
			Status:      res.status,
			UserMessage: "❌ Nenhum link retornado pela API do Sienge.",
			Err:         err,
		}
	}
	return &out, nil
}

// SendInvoiceEmail pede ao Sienge o envio da segunda via por e-mail ao
// cliente vinculado ao título.
func (c *Client) SendInvoiceEmail(ctx context.Context, titleID, installment int64) error {
	const op = "enviar_boleto"
	body := map[string]int64{
		"titleId":           titleID,
		"installmentNumber": installment,
	}

	res, err := c.call(ctx, op, request{method: http.MethodPost, path: paymentSlipNotification, body: body})
	if err != nil {
		return withUserMessage(err, "❌ Erro ao enviar boleto. Tente novamente em instantes.",
			"❌ Falha ao enviar boleto (%d).")
	}

	switch {
	case res.ok():
		return nil
	case res.status == http.StatusNotFound:
		return &erp.Error{Op: op, Status: res.status, Err: erp.ErrNotFound,
			UserMessage: "❌ Título ou parcela não encontrados no Sienge."}
	case res.status == http.StatusBadRequest:
		return &erp.Error{Op: op, Status: res.status,
			UserMessage: "⚠️ Requisição inválida. Verifique os parâmetros enviados."}
	default:
		return &erp.Error{Op: op, Status: res.status,
			UserMessage: fmt.Sprintf("❌ Falha ao enviar boleto (%d).", res.status)}
	}
}

// FindCustomerByTaxID busca o cliente pelo CPF (somente dígitos).
func (c *Client) FindCustomerByTaxID(ctx context.Context, cpf string) (*erp.Customer, error) {
	const op = "buscar_cliente"
	query := url.Values{}
	query.Set("cpf", cpf)

	res, err := c.call(ctx, op, request{method: http.MethodGet, path: "/customers", query: query})
	if err != nil {
		return nil, err
	}
	switch res.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &erp.Error{Op: op, Status: res.status, Err: erp.ErrNotFound}
	default:
		return nil, &erp.Error{Op: op, Status: res.status}
	}

	customers, err := decodeList[erp.Customer](res.body)
	if err != nil {
		return nil, &erp.Error{Op: op, Err: fmt.Errorf("resposta inválida: %w", err)}
	}
	if len(customers) == 0 {
		return nil, &erp.Error{Op: op, Status: res.status, Err: erp.ErrNotFound}
	}
	return &customers[0], nil
}

// withUserMessage completa a mensagem amigável de uma falha de transporte
// (transport) ou de uma resposta 5xx (statusFormat).
func withUserMessage(err error, transport, statusFormat string) error {
	var e *erp.Error
	if !errors.As(err, &e) || e.UserMessage != "" {
		return err
	}
	if e.Status != 0 {
		e.UserMessage = fmt.Sprintf(statusFormat, e.Status)
	} else {
		e.UserMessage = transport
	}
	return e
}
