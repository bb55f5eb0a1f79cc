package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Autenticação e autorização
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrUserAlreadyExists     = "AUTH_009"
	ErrInvalidWebhookToken   = "AUTH_010"

	// Validação
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrMethodNotAllowed    = "VAL_004"

	// Recursos
	ErrResourceNotFound  = "RES_001"
	ErrResourceConflict  = "RES_002"
	ErrInvalidTransition = "RES_003"

	// Servidor
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
)

type codeInfo struct {
	status  int
	message string
}

// codes associa cada código ao status HTTP e à mensagem usada quando o handler não informa uma
var codes = map[string]codeInfo{
	ErrInvalidCredentials:    {http.StatusUnauthorized, "Credenciais inválidas"},
	ErrUserDisabled:          {http.StatusForbidden, "Usuário desativado"},
	ErrUserNotFound:          {http.StatusNotFound, "Usuário não encontrado"},
	ErrInvalidToken:          {http.StatusUnauthorized, "Token inválido"},
	ErrExpiredToken:          {http.StatusUnauthorized, "Token expirado"},
	ErrInsufficientPrivilege: {http.StatusForbidden, "Privilégios insuficientes"},
	ErrUserAlreadyExists:     {http.StatusBadRequest, "Usuário já existe"},
	ErrInvalidWebhookToken:   {http.StatusUnauthorized, "Token de webhook inválido"},
	ErrInvalidRequest:        {http.StatusBadRequest, "Requisição inválida"},
	ErrMissingRequiredData:   {http.StatusBadRequest, "Dados obrigatórios ausentes"},
	ErrInvalidFormat:         {http.StatusBadRequest, "Formato de dados inválido"},
	ErrMethodNotAllowed:      {http.StatusMethodNotAllowed, "Método não permitido"},
	ErrResourceNotFound:      {http.StatusNotFound, "Registro não encontrado"},
	ErrResourceConflict:      {http.StatusConflict, "Registro duplicado"},
	ErrInvalidTransition:     {http.StatusUnprocessableEntity, "Transição de status não permitida"},
	ErrInternalServer:        {http.StatusInternalServerError, "Erro interno do servidor"},
	ErrDatabaseOperation:     {http.StatusInternalServerError, "Erro ao acessar o banco de dados"},
	ErrExternalService:       {http.StatusBadGateway, "Erro em serviço externo"},
}

// APIError é o corpo padrão das respostas de erro
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	info, exists := codes[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return info.status
}

// WriteError escreve o erro padronizado; sem mensagem usa a padrão do código
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	if message == "" {
		message = codes[code].message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
