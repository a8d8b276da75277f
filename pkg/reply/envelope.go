// Package reply monta o envelope de resposta devolvido ao chat.
package reply

// Button é uma ação clicável anexada a uma resposta.
type Button struct {
	Label   string `json:"label"`
	Action  string `json:"action"`
	OrderID int64  `json:"pedido_id,omitempty"`
}

// Table é uma listagem tabular com total opcional.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Total   *float64   `json:"total,omitempty"`
}

// OrderSummary é a forma resumida de um pedido enviada ao frontend.
type OrderSummary struct {
	ID          int64   `json:"id"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status,omitempty"`
	Date        string  `json:"date,omitempty"`
}

// Body é a carga exclusiva de uma resposta. Cada envelope carrega no
// máximo uma: texto puro, tabela, lista de pedidos ou PDF.
type Body interface {
	kind() string
}

// TextReply é uma resposta somente texto.
type TextReply struct{}

// TableReply acompanha o texto com uma tabela.
type TableReply struct {
	Table Table
}

// OrdersReply acompanha o texto com a lista de pedidos.
type OrdersReply struct {
	Orders []OrderSummary
}

// PdfReply carrega um documento PDF.
type PdfReply struct {
	Data []byte
}

func (TextReply) kind() string   { return "text" }
func (TableReply) kind() string  { return "table" }
func (OrdersReply) kind() string { return "pedidos" }
func (PdfReply) kind() string    { return "pdf" }

// Envelope é a resposta uniforme do assistente.
type Envelope struct {
	Text    string
	Buttons []Button
	Body    Body
}

// Kind retorna o tipo da carga ("text" quando não há carga).
func (e Envelope) Kind() string {
	if e.Body == nil {
		return TextReply{}.kind()
	}
	return e.Body.kind()
}

// Text cria uma resposta de texto.
func Text(text string, buttons ...Button) Envelope {
	return Envelope{Text: text, Buttons: buttons, Body: TextReply{}}
}

// WithTable cria uma resposta com tabela.
func WithTable(text string, table Table, buttons ...Button) Envelope {
	return Envelope{Text: text, Buttons: buttons, Body: TableReply{Table: table}}
}

// WithOrders cria uma resposta com a lista de pedidos.
func WithOrders(text string, orders []OrderSummary, buttons ...Button) Envelope {
	return Envelope{Text: text, Buttons: buttons, Body: OrdersReply{Orders: orders}}
}

// WithPDF cria uma resposta com documento PDF. Não leva botões.
func WithPDF(text string, data []byte) Envelope {
	return Envelope{Text: text, Body: PdfReply{Data: data}}
}
