package erp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indica que a entidade não existe no ERP
	ErrNotFound = errors.New("registro não encontrado no ERP")

	// ErrCircuitOpen indica que as chamadas ao ERP estão suspensas
	ErrCircuitOpen = errors.New("ERP indisponível: circuit breaker aberto")
)

// Error é uma falha de uma chamada ao ERP. UserMessage, quando preenchida,
// pode ser mostrada ao usuário como está.
type Error struct {
	Op          string
	Status      int
	UserMessage string
	Err         error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage extrai a mensagem amigável de um erro do ERP, se houver.
func UserMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.UserMessage != "" {
		return e.UserMessage, true
	}
	return "", false
}

// Rejected informa se o ERP respondeu à chamada recusando-a, em vez de uma
// falha de transporte.
func Rejected(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status != 0
}
