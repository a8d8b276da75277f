package erp

import (
	"context"
)

// Gateway define as operações do ERP usadas pelo assistente. Os métodos
// Get* retornam um erro que satisfaz errors.Is(err, ErrNotFound) quando a
// entidade não existe.
type Gateway interface {
	// ListPendingOrders lista os pedidos pendentes de autorização
	ListPendingOrders(ctx context.Context) ([]Order, error)

	// GetOrder busca um pedido pelo ID
	GetOrder(ctx context.Context, id int64) (*Order, error)

	// ListOrderItems lista os itens de um pedido
	ListOrderItems(ctx context.Context, id int64) ([]OrderItem, error)

	// GetBuilding busca uma obra pelo ID
	GetBuilding(ctx context.Context, id int64) (*Building, error)

	// GetCostCenter busca um centro de custo pelo ID
	GetCostCenter(ctx context.Context, id int64) (*CostCenter, error)

	// GetSupplier busca um fornecedor pelo ID
	GetSupplier(ctx context.Context, id int64) (*Supplier, error)

	// AuthorizeOrder autoriza um pedido
	AuthorizeOrder(ctx context.Context, id int64, observation string) error

	// RejectOrder reprova um pedido
	RejectOrder(ctx context.Context, id int64, observation string) error

	// RenderOrderPdf gera o PDF de análise de um pedido
	RenderOrderPdf(ctx context.Context, id int64) ([]byte, error)

	// GenerateInvoiceLink gera o link de segunda via de um boleto
	GenerateInvoiceLink(ctx context.Context, titleID, installment int64) (*InvoiceLink, error)

	// SendInvoiceEmail envia a segunda via do boleto por e-mail ao titular
	SendInvoiceEmail(ctx context.Context, titleID, installment int64) error

	// FindCustomerByTaxID busca um cliente pelo CPF
	FindCustomerByTaxID(ctx context.Context, cpf string) (*Customer, error)
}
