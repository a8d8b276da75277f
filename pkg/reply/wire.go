package reply

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// wireEnvelope é o formato JSON consumido pelo frontend.
type wireEnvelope struct {
	Text      string         `json:"text"`
	Buttons   []Button       `json:"buttons,omitempty"`
	Table     *Table         `json:"table,omitempty"`
	Pedidos   []OrderSummary `json:"pedidos,omitempty"`
	PDFBase64 string         `json:"pdf_base64,omitempty"`
}

// MarshalJSON codifica o envelope com no máximo um de table/pedidos/pdf_base64.
func (e Envelope) MarshalJSON() ([]byte, error) {
	w := wireEnvelope{Text: e.Text, Buttons: e.Buttons}

	switch b := e.Body.(type) {
	case nil, TextReply:
	case TableReply:
		t := b.Table
		w.Table = &t
	case OrdersReply:
		w.Pedidos = b.Orders
		if w.Pedidos == nil {
			w.Pedidos = []OrderSummary{}
		}
	case PdfReply:
		w.PDFBase64 = base64.StdEncoding.EncodeToString(b.Data)
	default:
		return nil, fmt.Errorf("tipo de resposta desconhecido: %T", b)
	}

	return json.Marshal(w)
}

// UnmarshalJSON reconstrói o envelope a partir do formato de rede.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var w wireEnvelope
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	e.Text = w.Text
	e.Buttons = w.Buttons

	switch {
	case w.PDFBase64 != "":
		raw, err := base64.StdEncoding.DecodeString(w.PDFBase64)
		if err != nil {
			return fmt.Errorf("pdf_base64 inválido: %w", err)
		}
		e.Body = PdfReply{Data: raw}
	case w.Table != nil:
		e.Body = TableReply{Table: *w.Table}
	case w.Pedidos != nil:
		e.Body = OrdersReply{Orders: w.Pedidos}
	default:
		e.Body = TextReply{}
	}

	return nil
}
