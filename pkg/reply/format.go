package reply

// Códigos de ação dos botões. O frontend reenvia o código como texto.
const (
	ActionMenu          = "menu_inicial"
	ActionPendingOrders = "listar_pedidos_pendentes"
	ActionOrderPDF      = "relatorio_pdf"
	ActionInvoiceByCPF  = "buscar_boletos_cpf"
)

// BuildMenu retorna o menu fixo de três opções.
func BuildMenu() []Button {
	return []Button{
		{Label: "📋 Pedidos Pendentes", Action: ActionPendingOrders},
		{Label: "📄 Gerar PDF", Action: ActionOrderPDF},
		{Label: "💳 Segunda Via de Boletos", Action: ActionInvoiceByCPF},
	}
}

// BackButton retorna o conjunto reduzido usado durante a captura do CPF.
func BackButton() []Button {
	return []Button{{Label: "🔙 Voltar", Action: ActionMenu}}
}

// BuildOrderTable monta uma tabela; total nil omite a linha de total.
func BuildOrderTable(headers []string, rows [][]string, total *float64) Table {
	h := make([]string, len(headers))
	copy(h, headers)

	r := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(h))
		copy(cells, row)
		r = append(r, cells)
	}

	t := Table{Headers: h, Rows: r}
	if total != nil {
		v := *total
		t.Total = &v
	}
	return t
}
