package handler

import (
	"net/http"
	"strconv"

	"github.com/boraedu/bora-hub-api/infrastructure/storage"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/authenticating"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/boraedu/bora-hub-api/pkg/apiErrors"
	"github.com/boraedu/bora-hub-api/pkg/log"
	"github.com/boraedu/bora-hub-api/pkg/middleware"
	"github.com/boraedu/bora-hub-api/pkg/validation"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar resposta")
	}
}

// decodeBody decodifica e valida o corpo; em caso de erro a resposta já foi escrita
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	details, err := validation.Struct(dst)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao validar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar requisição", nil)
		return false
	}
	if len(details) > 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campos inválidos", details)
		return false
	}

	return true
}

// claimsFrom devolve as claims do usuário autenticado; sem claims a resposta já foi escrita
func claimsFrom(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value := param(r, name)
	if value == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}

	return id, true
}

// periodQuery lê start_date e end_date (yyyy-mm-dd), ambos opcionais
func periodQuery(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	query := r.URL.Query()
	period, err := domain.ParsePeriod(query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido: use start_date e end_date no formato yyyy-mm-dd", nil)
		return domain.Period{}, false
	}
	return period, true
}

func optionalIntQuery(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, true
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" inválido", map[string]string{"param": name})
		return nil, false
	}

	return &parsed, true
}

// writeServiceError traduz erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := errorCode(err)

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch code {
	case apiErrors.ErrInternalServer, apiErrors.ErrDatabaseOperation:
		apiErrors.WriteError(w, code, message, nil)
	default:
		apiErrors.WriteError(w, code, err.Error(), nil)
	}
}

func errorCode(err error) string {
	var authErr *authenticating.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.Code
	case errors.Is(err, domain.ErrNotFound):
		return apiErrors.ErrResourceNotFound
	case errors.Is(err, domain.ErrConflict):
		return apiErrors.ErrResourceConflict
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return apiErrors.ErrInvalidTransition
	case errors.Is(err, domain.ErrInvalidInput):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, domain.ErrForbidden):
		return apiErrors.ErrInsufficientPrivilege
	case errors.Is(err, reconciling.ErrInvalidWebhookToken):
		return apiErrors.ErrInvalidWebhookToken
	case errors.Is(err, storage.ErrDisabled):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}
