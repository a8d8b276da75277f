// Package intent classifica o texto do usuário em uma intenção tipada.
//
// A classificação é determinística: uma lista ordenada de regras é avaliada
// e a primeira que casar vence. Frases mais específicas vêm antes das
// genéricas para que uma frase curta não esconda uma mais longa.
package intent

import (
	"github.com/hugohenrick/constru-ia/pkg/session"
)

// input é o texto já normalizado entregue às regras.
type input struct {
	text    string
	tokens  []token
	pending session.Step
}

// rule é uma regra de classificação.
type rule struct {
	name  string
	match func(in input) bool
	build func(in input) Intent
}

var (
	greetings        = []string{"olá", "ola", "oi", "menu", "início", "inicio", "começar", "comecar", string(ShowMenu)}
	pendingPhrases   = []string{"pedidos pendentes", "listar pendentes", string(ListPendingOrders)}
	authorizePhrases = []string{"autorizar pedido"}
	rejectPhrases    = []string{"reprovar pedido"}
	itemsPhrases     = []string{"itens do pedido"}
	pdfPhrases       = []string{"gerar pdf", "pdf pedido", "relatório pedido", "relatorio pedido", string(GenerateOrderPdf)}
	taxIDPhrases     = []string{"segunda via cpf", "boleto cpf", string(SearchInvoicesByTaxID)}
	emailPhrases     = []string{"enviar boleto", "boleto por email", "boleto por e-mail"}
	invoicePhrases   = []string{"2ª via", "2a via", "segunda via", "gerar boleto"}
)

// rules é a ordem de precedência da classificação.
var rules = []rule{
	{
		name:  "menu",
		match: func(in input) bool { return exactAny(in.text, greetings) },
		build: func(input) Intent { return newIntent(ShowMenu) },
	},
	{
		name:  "pedidos_pendentes",
		match: func(in input) bool { return containsAny(in.text, pendingPhrases) },
		build: func(input) Intent { return newIntent(ListPendingOrders) },
	},
	{
		name:  "autorizar_pedido",
		match: func(in input) bool { return containsAny(in.text, authorizePhrases) },
		build: func(in input) Intent { return mutatingOrder(in, AuthorizeOrder, authorizePhrases) },
	},
	{
		name:  "reprovar_pedido",
		match: func(in input) bool { return containsAny(in.text, rejectPhrases) },
		build: func(in input) Intent { return mutatingOrder(in, RejectOrder, rejectPhrases) },
	},
	{
		name:  "itens_pedido",
		match: func(in input) bool { return containsAny(in.text, itemsPhrases) },
		build: func(in input) Intent { return singleOrder(in, ShowOrderItems) },
	},
	{
		name:  "relatorio_pdf",
		match: func(in input) bool { return containsAny(in.text, pdfPhrases) },
		build: func(in input) Intent { return singleOrder(in, GenerateOrderPdf) },
	},
	{
		name:  "boletos_cpf",
		match: func(in input) bool { return containsAny(in.text, taxIDPhrases) },
		build: func(input) Intent { return newIntent(SearchInvoicesByTaxID) },
	},
	{
		name: "confirmar_busca",
		match: func(in input) bool {
			return in.pending == session.StepAwaitingTaxID &&
				(in.text == "confirmar" || containsAny(in.text, []string{"confirmar cpf"}))
		},
		build: func(input) Intent { return newIntent(ConfirmSearch) },
	},
	{
		name: "informar_cpf",
		match: func(in input) bool {
			return in.pending == session.StepAwaitingTaxID && taxIDDigits(in.text) != ""
		},
		build: func(in input) Intent { return newIntent(ProvideTaxID, ParamTaxID, taxIDDigits(in.text)) },
	},
	{
		name: "cpf_invalido",
		match: func(in input) bool {
			return in.pending == session.StepAwaitingTaxID && looksLikeTaxID(in.text)
		},
		build: func(input) Intent { return incomplete(ProvideTaxID) },
	},
	{
		name:  "enviar_boleto",
		match: func(in input) bool { return containsAny(in.text, emailPhrases) },
		build: func(in input) Intent { return titleAndInstallment(in, EmailInvoice) },
	},
	{
		name:  "link_boleto",
		match: func(in input) bool { return containsAny(in.text, invoicePhrases) },
		build: func(in input) Intent { return titleAndInstallment(in, GenerateInvoiceLink) },
	},
}

// Resolve classifica o texto. Apenas lê a sessão: as transições de etapa
// ficam a cargo de quem despacha a intenção.
func Resolve(text string, sc session.Context) Intent {
	in := input{pending: sc.Pending}
	in.text = normalize(text)
	in.tokens = integerTokens(in.text)

	for _, r := range rules {
		if r.match(in) {
			return r.build(in)
		}
	}
	return Intent{Action: Unknown, Params: map[string]interface{}{}}
}

func exactAny(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

func singleOrder(in input, action Action) Intent {
	if len(in.tokens) == 0 {
		return incomplete(action)
	}
	return newIntent(action, ParamOrderID, in.tokens[0].value)
}

// mutatingOrder recusa textos como "pedido 1 autorizar pedido 2", em que há
// números antes e depois do comando: não há como saber qual pedido alterar.
func mutatingOrder(in input, action Action, phrases []string) Intent {
	phrase, at := firstPhrase(in.text, phrases)
	var before, after bool
	for _, tk := range in.tokens {
		if tk.end <= at {
			before = true
		}
		if tk.start >= at+len(phrase) {
			after = true
		}
	}
	if before && after {
		out := incomplete(action)
		out.Ambiguous = true
		return out
	}
	return singleOrder(in, action)
}

func titleAndInstallment(in input, action Action) Intent {
	if len(in.tokens) < 2 {
		return incomplete(action)
	}
	return newIntent(action, ParamTitleID, in.tokens[0].value, ParamParcelaID, in.tokens[1].value)
}
