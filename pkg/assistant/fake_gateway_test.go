package assistant

import (
	"context"
	"sync"

	"github.com/hugohenrick/constru-ia/internal/domain/erp"
)

// fakeGateway responde a partir de dados em memória e conta as chamadas.
type fakeGateway struct {
	mu    sync.Mutex
	calls map[string]int

	orders      map[int64]erp.Order
	pending     []erp.Order
	items       map[int64][]erp.OrderItem
	buildings   map[int64]erp.Building
	costCenters map[int64]erp.CostCenter
	suppliers   map[int64]erp.Supplier
	customers   map[string]erp.Customer
	pdf         []byte
	link        *erp.InvoiceLink

	// err, quando definido para uma operação, é retornado no lugar do resultado
	errs map[string]error
	// panics faz a operação entrar em pânico
	panics map[string]bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		calls:       map[string]int{},
		orders:      map[int64]erp.Order{},
		items:       map[int64][]erp.OrderItem{},
		buildings:   map[int64]erp.Building{},
		costCenters: map[int64]erp.CostCenter{},
		suppliers:   map[int64]erp.Supplier{},
		customers:   map[string]erp.Customer{},
		errs:        map[string]error{},
		panics:      map[string]bool{},
	}
}

func (f *fakeGateway) enter(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if f.panics[op] {
		panic("falha inesperada em " + op)
	}
	return f.errs[op]
}

func (f *fakeGateway) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func notFound(op string) error {
	return &erp.Error{Op: op, Status: 404, Err: erp.ErrNotFound}
}

func (f *fakeGateway) ListPendingOrders(context.Context) ([]erp.Order, error) {
	if err := f.enter("ListPendingOrders"); err != nil {
		return nil, err
	}
	return f.pending, nil
}

func (f *fakeGateway) GetOrder(_ context.Context, id int64) (*erp.Order, error) {
	if err := f.enter("GetOrder"); err != nil {
		return nil, err
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, notFound("GetOrder")
	}
	return &o, nil
}

func (f *fakeGateway) ListOrderItems(_ context.Context, id int64) ([]erp.OrderItem, error) {
	if err := f.enter("ListOrderItems"); err != nil {
		return nil, err
	}
	return f.items[id], nil
}

func (f *fakeGateway) GetBuilding(_ context.Context, id int64) (*erp.Building, error) {
	if err := f.enter("GetBuilding"); err != nil {
		return nil, err
	}
	b, ok := f.buildings[id]
	if !ok {
		return nil, notFound("GetBuilding")
	}
	return &b, nil
}

func (f *fakeGateway) GetCostCenter(_ context.Context, id int64) (*erp.CostCenter, error) {
	if err := f.enter("GetCostCenter"); err != nil {
		return nil, err
	}
	c, ok := f.costCenters[id]
	if !ok {
		return nil, notFound("GetCostCenter")
	}
	return &c, nil
}

func (f *fakeGateway) GetSupplier(_ context.Context, id int64) (*erp.Supplier, error) {
	if err := f.enter("GetSupplier"); err != nil {
		return nil, err
	}
	s, ok := f.suppliers[id]
	if !ok {
		return nil, notFound("GetSupplier")
	}
	return &s, nil
}

func (f *fakeGateway) AuthorizeOrder(context.Context, int64, string) error {
	return f.enter("AuthorizeOrder")
}

func (f *fakeGateway) RejectOrder(context.Context, int64, string) error {
	return f.enter("RejectOrder")
}

func (f *fakeGateway) RenderOrderPdf(context.Context, int64) ([]byte, error) {
	if err := f.enter("RenderOrderPdf"); err != nil {
		return nil, err
	}
	return f.pdf, nil
}

func (f *fakeGateway) GenerateInvoiceLink(context.Context, int64, int64) (*erp.InvoiceLink, error) {
	if err := f.enter("GenerateInvoiceLink"); err != nil {
		return nil, err
	}
	return f.link, nil
}

func (f *fakeGateway) SendInvoiceEmail(context.Context, int64, int64) error {
	return f.enter("SendInvoiceEmail")
}

func (f *fakeGateway) FindCustomerByTaxID(_ context.Context, cpf string) (*erp.Customer, error) {
	if err := f.enter("FindCustomerByTaxID"); err != nil {
		return nil, err
	}
	c, ok := f.customers[cpf]
	if !ok {
		return nil, notFound("FindCustomerByTaxID")
	}
	return &c, nil
}
