package reply

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const zeroMoney = "R$ 0,00"

var brl = message.NewPrinter(language.BrazilianPortuguese)

// Money formata um valor em reais ("R$ 1.234,50"). Entradas inválidas
// viram "R$ 0,00".
func Money(v interface{}) string {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return zeroMoney
	}
	return "R$ " + brl.Sprintf("%.2f", roundCents(f))
}

// roundCents arredonda para centavos e troca -0 por 0.
func roundCents(f float64) float64 {
	f = math.Round(f*100) / 100
	if f == 0 {
		return 0
	}
	return f
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case *float64:
		if n == nil {
			return 0, false
		}
		return *n, true
	default:
		return 0, false
	}
}

// Quantity formata uma quantidade: inteiros sem casas decimais, frações
// com duas casas ("1,50").
func Quantity(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return brl.Sprintf("%.2f", roundCents(v))
}
