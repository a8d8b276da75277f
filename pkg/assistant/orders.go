package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
	"github.com/hugohenrick/constru-ia/pkg/intent"
	"github.com/hugohenrick/constru-ia/pkg/reply"
	"github.com/hugohenrick/constru-ia/pkg/session"
)

func (d *Dispatcher) listPendingOrders(ctx context.Context, _ intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	orders, err := d.gateway.ListPendingOrders(ctx)
	if err != nil {
		return reply.Envelope{}, sc, err
	}
	if len(orders) == 0 {
		return reply.Text(noPendingText, reply.BuildMenu()...), sc, nil
	}

	lines := make([]string, 0, len(orders))
	summaries := make([]reply.OrderSummary, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf(pendingLineFormat, o.ID, reply.Money(o.TotalAmount)))
		summaries = append(summaries, reply.OrderSummary{
			ID:          o.ID,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			Date:        o.Date,
		})
	}
	text := pendingHeaderText + strings.Join(lines, "\n")
	return reply.WithOrders(text, summaries, reply.BuildMenu()...), sc, nil
}

func (d *Dispatcher) showOrderItems(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	id, err := orderID(in)
	if err != nil {
		return reply.Envelope{}, sc, err
	}

	order, err := d.gateway.GetOrder(ctx, id)
	if errors.Is(err, erp.ErrNotFound) || (err == nil && order == nil) {
		return reply.Text(fmt.Sprintf(orderNotFoundFormat, id), reply.BuildMenu()...), sc, nil
	}
	if err != nil {
		return reply.Envelope{}, sc, err
	}

	building := d.relatedName(ctx, "obra", order.BuildingID, func(ctx context.Context, id int64) (string, error) {
		b, err := d.gateway.GetBuilding(ctx, id)
		if err != nil || b == nil {
			return "", err
		}
		return b.Label(), nil
	})
	costCenter := d.relatedName(ctx, "centro_custo", order.CostCenterID, func(ctx context.Context, id int64) (string, error) {
		c, err := d.gateway.GetCostCenter(ctx, id)
		if err != nil || c == nil {
			return "", err
		}
		return c.Label(), nil
	})
	supplier := d.relatedName(ctx, "fornecedor", order.SupplierID, func(ctx context.Context, id int64) (string, error) {
		s, err := d.gateway.GetSupplier(ctx, id)
		if err != nil || s == nil {
			return "", err
		}
		return s.Name, nil
	})

	text := fmt.Sprintf(orderSummaryFormat, order.ID, building, costCenter, supplier, reply.Money(order.TotalAmount))

	items, err := d.gateway.ListOrderItems(ctx, id)
	if err != nil {
		d.log.Warn("Falha ao buscar itens do pedido", "order_id", id, "error", err)
		return reply.Text(text, reply.BuildMenu()...), sc, nil
	}
	if len(items) == 0 {
		return reply.Text(text, reply.BuildMenu()...), sc, nil
	}

	rows := make([][]string, 0, len(items))
	total := 0.0
	for _, item := range items {
		number := "?"
		if item.ItemNumber != 0 {
			number = strconv.Itoa(item.ItemNumber)
		}
		price := item.Price()
		total += item.Quantity * price
		rows = append(rows, []string{number, item.Label(), reply.Quantity(item.Quantity), reply.Money(price)})
	}
	table := reply.BuildOrderTable(itemsHeaders, rows, &total)
	return reply.WithTable(text, table, reply.BuildMenu()...), sc, nil
}

// relatedName busca o nome de uma entidade ligada ao pedido. Ausência ou
// falha viram "-".
func (d *Dispatcher) relatedName(ctx context.Context, entity string, id int64, fetch func(context.Context, int64) (string, error)) string {
	if id == 0 {
		return "-"
	}
	name, err := fetch(ctx, id)
	if err != nil {
		if !errors.Is(err, erp.ErrNotFound) {
			d.log.Warn("Falha ao buscar entidade do pedido", "entity", entity, "id", id, "error", err)
		}
		return "-"
	}
	if name == "" {
		return "-"
	}
	return name
}

func (d *Dispatcher) authorizeOrder(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	return d.review(ctx, in, sc, d.gateway.AuthorizeOrder, authorizedText, authorizeFailedText)
}

func (d *Dispatcher) rejectOrder(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	return d.review(ctx, in, sc, d.gateway.RejectOrder, rejectedText, rejectFailedText)
}

func (d *Dispatcher) review(
	ctx context.Context,
	in intent.Intent,
	sc session.Context,
	call func(context.Context, int64, string) error,
	okText, failText string,
) (reply.Envelope, session.Context, error) {
	id, err := orderID(in)
	if err != nil {
		return reply.Envelope{}, sc, err
	}

	err = call(ctx, id, "")
	switch {
	case err == nil:
		d.log.Info("Pedido revisado", "action", in.Action, "order_id", id, "conversation_id", sc.ConversationID)
		return reply.Text(okText, reply.BuildMenu()...), sc, nil
	case erp.Rejected(err):
		d.log.Warn("ERP recusou a revisão do pedido", "action", in.Action, "order_id", id, "error", err)
		return reply.Text(failText, reply.BuildMenu()...), sc, nil
	default:
		return reply.Envelope{}, sc, err
	}
}

func (d *Dispatcher) generateOrderPdf(ctx context.Context, in intent.Intent, sc session.Context) (reply.Envelope, session.Context, error) {
	id, err := orderID(in)
	if err != nil {
		return reply.Envelope{}, sc, err
	}

	data, err := d.gateway.RenderOrderPdf(ctx, id)
	if err != nil && !erp.Rejected(err) {
		return reply.Envelope{}, sc, err
	}
	if len(data) == 0 {
		d.log.Warn("PDF do pedido não gerado", "order_id", id, "error", err)
		return reply.Text(pdfFailedText, reply.BuildMenu()...), sc, nil
	}
	return reply.WithPDF(fmt.Sprintf(pdfOKFormat, id), data), sc, nil
}
