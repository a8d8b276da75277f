// Package erp descreve as entidades e operações do ERP consumidas pelo
// assistente.
package erp

import "strings"

// Order representa um pedido de compra
type Order struct {
	ID           int64   `json:"id"`
	TotalAmount  float64 `json:"totalAmount"`
	BuildingID   int64   `json:"buildingId"`
	CostCenterID int64   `json:"costCenterId"`
	SupplierID   int64   `json:"supplierId"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
}

// OrderItem representa um item de um pedido de compra
type OrderItem struct {
	ItemNumber          int     `json:"itemNumber"`
	ResourceDescription string  `json:"resourceDescription"`
	ItemDescription     string  `json:"itemDescription"`
	Description         string  `json:"description"`
	Quantity            float64 `json:"quantity"`
	UnitPrice           float64 `json:"unitPrice"`
	TotalAmount         float64 `json:"totalAmount"`
}

// Label retorna a melhor descrição disponível do item.
func (i OrderItem) Label() string {
	if s := firstNonBlank(i.ResourceDescription, i.ItemDescription, i.Description); s != "" {
		return s
	}
	return "Sem descrição"
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Price retorna o preço unitário, ou o valor total do item quando o ERP
// não informa o unitário.
func (i OrderItem) Price() float64 {
	if i.UnitPrice != 0 {
		return i.UnitPrice
	}
	return i.TotalAmount
}

// Building representa uma obra (empreendimento). O Sienge devolve o nome
// da obra em description.
type Building struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Name        string `json:"name"`
}

// Label retorna description, ou name quando ela vier vazia
func (b Building) Label() string {
	return firstNonBlank(b.Description, b.Name)
}

// CostCenter representa um centro de custo
type CostCenter struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Name        string `json:"name"`
}

// Label retorna description, ou name quando ela vier vazia
func (c CostCenter) Label() string {
	return firstNonBlank(c.Description, c.Name)
}

// Supplier representa um fornecedor (credor)
type Supplier struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Customer representa um cliente
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

// InvoiceLink é o link de segunda via de um boleto
type InvoiceLink struct {
	Link    string `json:"link"`
	BarCode string `json:"barCode"`
}
