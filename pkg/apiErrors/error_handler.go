package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API de operação
const (
	// Erros de autorização (AUTH)
	ErrInvalidToken          = "AUTH_001" // Token de operação inválido
	ErrInsufficientPrivilege = "AUTH_002" // Privilégios insuficientes

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de agendamento (SCH)
	ErrScheduleNotFound   = "SCH_001" // Nenhum agendamento para a conta
	ErrDuplicateSlot      = "SCH_002" // Horário duplicado (time, campaign_code, watch)
	ErrSlotLimitExceeded  = "SCH_003" // Mais de 20 horários para a conta
	ErrAccountOwnedByUser = "SCH_004" // Conta já gerenciada por outro usuário

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro na plataforma de anúncios
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrScheduleNotFound:      http.StatusNotFound,
	ErrDuplicateSlot:         http.StatusBadRequest,
	ErrSlotLimitExceeded:     http.StatusBadRequest,
	ErrAccountOwnedByUser:    http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
