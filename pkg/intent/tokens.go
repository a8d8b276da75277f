package intent

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalize apara, coloca em minúsculas e colapsa espaços.
func normalize(text string) string {
	lower := cases.Lower(language.BrazilianPortuguese).String(text)
	return strings.Join(strings.Fields(lower), " ")
}

type token struct {
	value int64
	start int
	end   int
}

const tokenPunct = ".,;:!?()[]#\"'"

// integerTokens devolve, da esquerda para a direita, as palavras separadas
// por espaço que são inteiros sem sinal. Pontuação nas bordas é ignorada,
// então "2ª" não conta mas "267," conta.
func integerTokens(text string) []token {
	var out []token
	i := 0
	for i < len(text) {
		for i < len(text) && text[i] == ' ' {
			i++
		}
		start := i
		for i < len(text) && text[i] != ' ' {
			i++
		}
		if start == i {
			break
		}

		word := strings.Trim(text[start:i], tokenPunct)
		if !isDigits(word) {
			continue
		}
		n, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, token{value: n, start: start, end: i})
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// taxIDDigits extrai os 11 dígitos de um CPF escrito com ou sem
// formatação. Retorna "" se o texto tiver qualquer outra coisa.
func taxIDDigits(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == ' ' || r == '/':
		default:
			return ""
		}
	}
	digits := b.String()
	if !validCPF(digits) {
		return ""
	}
	return digits
}

// looksLikeTaxID informa se o texto tem apenas dígitos e separadores de CPF.
func looksLikeTaxID(text string) bool {
	digits := 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == '-' || r == ' ' || r == '/':
		default:
			return false
		}
	}
	return digits > 0
}

func validCPF(d string) bool {
	if len(d) != 11 {
		return false
	}
	if strings.Count(d, d[:1]) == 11 {
		return false
	}
	for _, pos := range []int{9, 10} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(d[i]-'0') * (pos + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		if check != int(d[pos]-'0') {
			return false
		}
	}
	return true
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func firstPhrase(s string, needles []string) (string, int) {
	for _, n := range needles {
		if i := strings.Index(s, n); i >= 0 {
			return n, i
		}
	}
	return "", -1
}
