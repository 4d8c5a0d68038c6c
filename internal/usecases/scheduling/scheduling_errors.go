package scheduling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de agendamentos
var (
	// Erros de validação
	ErrInvalidSlot      = errors.New("invalid schedule slot")
	ErrDuplicateSlot    = errors.New("duplicate schedule slot")
	ErrSlotLimit        = errors.New("schedule slot limit exceeded")
	ErrSlotNotFound     = errors.New("schedule slot not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrAccountOwned     = errors.New("ad account managed by another user")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// SchedulingError é um erro com contexto adicional para agendamentos
type SchedulingError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	AdAccountID string // Conta de anúncio envolvida (quando aplicável)
	Details     string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SchedulingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SchedulingError) Unwrap() error {
	return e.Err
}

// NewSchedulingError cria um novo SchedulingError
func NewSchedulingError(err error, code string, details string) *SchedulingError {
	return &SchedulingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewSchedulingErrorWithAccount cria um novo SchedulingError com a conta
func NewSchedulingErrorWithAccount(err error, code string, adAccountID string, details string) *SchedulingError {
	return &SchedulingError{
		Err:         err,
		Code:        code,
		AdAccountID: adAccountID,
		Details:     details,
	}
}
