package assistant

import (
	"fmt"

	"github.com/hugohenrick/constru-ia/pkg/intent"
)

// ValidationError indica um comando reconhecido sem o parâmetro numérico
// obrigatório. Vira uma resposta de esclarecimento, nunca uma falha.
type ValidationError struct {
	Action    intent.Action
	Param     string
	Ambiguous bool
}

func (e *ValidationError) Error() string {
	if e.Ambiguous {
		return fmt.Sprintf("%s: parâmetro %s ambíguo", e.Action, e.Param)
	}
	return fmt.Sprintf("%s: parâmetro %s ausente", e.Action, e.Param)
}

// requiredParam informa o parâmetro obrigatório de cada comando.
func requiredParam(action intent.Action) string {
	switch action {
	case intent.AuthorizeOrder, intent.RejectOrder, intent.ShowOrderItems, intent.GenerateOrderPdf:
		return intent.ParamOrderID
	case intent.GenerateInvoiceLink, intent.EmailInvoice:
		return intent.ParamTitleID
	case intent.ProvideTaxID:
		return intent.ParamTaxID
	default:
		return ""
	}
}
