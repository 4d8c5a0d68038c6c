package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é o erro tipado devolvido quando a plataforma responde com um
// envelope de erro ou com status não-2xx. Carrega o código/mensagem da
// plataforma em vez de estourar exceção.
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return fmt.Sprintf("meta api: %s (code: %d, type: %s)", e.Details.Message, e.Details.Code, e.Details.Type)
	}
	return fmt.Sprintf("meta api: status HTTP %d", e.StatusCode)
}

// IsTransient informa se o erro deve ser tratado como transitório.
// O código 2 da plataforma indica um problema temporário do serviço.
func (e *APIError) IsTransient() bool {
	return e.Details.Code == 2 || e.StatusCode >= 500
}
