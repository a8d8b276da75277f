package sienge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
)

const purchaseOrders = "/purchase-orders"

// ListPendingOrders lista os pedidos de compra pendentes de autorização.
func (c *Client) ListPendingOrders(ctx context.Context) ([]erp.Order, error) {
	const op = "listar_pedidos"
	res, err := c.call(ctx, op, request{method: http.MethodGet, path: purchaseOrders})
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, &erp.Error{Op: op, Status: res.status}
	}
	orders, err := decodeList[erp.Order](res.body)
	if err != nil {
		return nil, &erp.Error{Op: op, Err: fmt.Errorf("resposta inválida: %w", err)}
	}
	return orders, nil
}

// GetOrder busca um pedido de compra.
func (c *Client) GetOrder(ctx context.Context, id int64) (*erp.Order, error) {
	var out erp.Order
	if err := c.getEntity(ctx, "buscar_pedido", pathID(purchaseOrders, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrderItems lista os itens de um pedido de compra.
func (c *Client) ListOrderItems(ctx context.Context, id int64) ([]erp.OrderItem, error) {
	const op = "itens_pedido"
	res, err := c.call(ctx, op, request{method: http.MethodGet, path: pathID(purchaseOrders, id, "/items")})
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK {
		return nil, &erp.Error{Op: op, Status: res.status}
	}
	items, err := decodeList[erp.OrderItem](res.body)
	if err != nil {
		return nil, &erp.Error{Op: op, Err: fmt.Errorf("resposta inválida: %w", err)}
	}
	return items, nil
}

// GetBuilding busca uma obra.
func (c *Client) GetBuilding(ctx context.Context, id int64) (*erp.Building, error) {
	var out erp.Building
	if err := c.getEntity(ctx, "buscar_obra", pathID("/enterprises", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCostCenter busca um centro de custo.
func (c *Client) GetCostCenter(ctx context.Context, id int64) (*erp.CostCenter, error) {
	var out erp.CostCenter
	if err := c.getEntity(ctx, "buscar_centro_custo", pathID("/cost-centers", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSupplier busca um fornecedor.
func (c *Client) GetSupplier(ctx context.Context, id int64) (*erp.Supplier, error) {
	var out erp.Supplier
	if err := c.getEntity(ctx, "buscar_fornecedor", pathID("/creditors", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuthorizeOrder autoriza um pedido de compra.
func (c *Client) AuthorizeOrder(ctx context.Context, id int64, observation string) error {
	return c.review(ctx, "autorizar_pedido", pathID(purchaseOrders, id, "/authorize"), observation)
}

// RejectOrder reprova um pedido de compra.
func (c *Client) RejectOrder(ctx context.Context, id int64, observation string) error {
	return c.review(ctx, "reprovar_pedido", pathID(purchaseOrders, id, "/reject"), observation)
}

// RenderOrderPdf baixa o PDF de análise do pedido.
func (c *Client) RenderOrderPdf(ctx context.Context, id int64) ([]byte, error) {
	const op = "pdf_pedido"
	res, err := c.call(ctx, op, request{
		method: http.MethodGet,
		path:   pathID(purchaseOrders, id, "/analysis/pdf"),
		accept: "application/pdf",
	})
	if err != nil {
		return nil, err
	}
	if res.status == http.StatusNotFound {
		return nil, &erp.Error{Op: op, Status: res.status, Err: erp.ErrNotFound}
	}
	if res.status != http.StatusOK {
		return nil, &erp.Error{Op: op, Status: res.status}
	}
	return res.body, nil
}

func (c *Client) review(ctx context.Context, op, path, observation string) error {
	body := map[string]interface{}{"observation": nil}
	if observation != "" {
		body["observation"] = observation
	}

	res, err := c.call(ctx, op, request{method: http.MethodPost, path: path, body: body})
	if err != nil {
		return err
	}
	if res.status != http.StatusOK && res.status != http.StatusNoContent {
		return &erp.Error{Op: op, Status: res.status}
	}
	return nil
}

func (c *Client) getEntity(ctx context.Context, op, path string, out interface{}) error {
	res, err := c.call(ctx, op, request{method: http.MethodGet, path: path})
	if err != nil {
		return err
	}
	switch res.status {
	case http.StatusOK:
	case http.StatusNotFound:
		return &erp.Error{Op: op, Status: res.status, Err: erp.ErrNotFound}
	default:
		return &erp.Error{Op: op, Status: res.status}
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return &erp.Error{Op: op, Err: fmt.Errorf("resposta inválida: %w", err)}
	}
	return nil
}
