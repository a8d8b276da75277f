package intent

// Action identifica a operação classificada a partir do texto.
type Action string

const (
	ShowMenu              Action = "menu_inicial"
	ListPendingOrders     Action = "listar_pedidos_pendentes"
	ShowOrderItems        Action = "itens_pedido"
	AuthorizeOrder        Action = "autorizar_pedido"
	RejectOrder           Action = "reprovar_pedido"
	GenerateOrderPdf      Action = "relatorio_pdf"
	SearchInvoicesByTaxID Action = "buscar_boletos_cpf"
	ConfirmSearch         Action = "confirmar_busca"
	ProvideTaxID          Action = "informar_cpf"
	GenerateInvoiceLink   Action = "link_boleto"
	EmailInvoice          Action = "enviar_boleto_email"
	Unknown               Action = "desconhecido"
)

// Chaves de parâmetros
const (
	ParamOrderID   = "orderId"
	ParamTitleID   = "titleId"
	ParamParcelaID = "parcelaId"
	ParamTaxID     = "taxId"
)

// Mutating informa se a ação altera o estado do ERP.
func (a Action) Mutating() bool {
	return a == AuthorizeOrder || a == RejectOrder
}

// Intent representa uma intenção detectada em uma mensagem do usuário
type Intent struct {
	// Ação classificada
	Action Action `json:"action"`

	// Parâmetros extraídos do texto (int64 para números, string para o CPF)
	Params map[string]interface{} `json:"parameters,omitempty"`

	// Para Unknown: o comando reconhecido cujo parâmetro não foi extraído
	Incomplete Action `json:"incomplete,omitempty"`

	// Para Unknown: o texto trazia números conflitantes para o mesmo comando
	Ambiguous bool `json:"ambiguous,omitempty"`
}

// Int retorna um parâmetro numérico.
func (i Intent) Int(key string) (int64, bool) {
	v, ok := i.Params[key].(int64)
	return v, ok
}

// String retorna um parâmetro textual.
func (i Intent) String(key string) (string, bool) {
	v, ok := i.Params[key].(string)
	return v, ok && v != ""
}

func newIntent(action Action, kv ...interface{}) Intent {
	in := Intent{Action: action, Params: map[string]interface{}{}}
	for j := 0; j+1 < len(kv); j += 2 {
		in.Params[kv[j].(string)] = kv[j+1]
	}
	return in
}

func incomplete(action Action) Intent {
	return Intent{Action: Unknown, Params: map[string]interface{}{}, Incomplete: action}
}
