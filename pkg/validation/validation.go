package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError descreve um campo inválido da requisição
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Usa o nome do campo no JSON nas mensagens de erro
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct valida a struct e devolve os campos inválidos; erros que não são de validação retornam em err
func Struct(s any) ([]FieldError, error) {
	err := instance().Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, FieldError{
			Field:   e.Field(),
			Message: message(e),
		})
	}

	return details, nil
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Email inválido"
	case "min":
		if e.Kind() == reflect.String {
			return "Deve ter pelo menos " + e.Param() + " caracteres"
		}
		if e.Kind() == reflect.Slice {
			return "Deve ter pelo menos " + e.Param() + " itens"
		}
		return "Deve ser no mínimo " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Deve ter no máximo " + e.Param() + " caracteres"
		}
		return "Deve ser no máximo " + e.Param()
	case "uuid":
		return "UUID inválido"
	case "oneof":
		return "Deve ser um dos valores: " + e.Param()
	case "datetime":
		return "Data inválida, use o formato " + e.Param()
	case "url":
		return "URL inválida"
	default:
		return "Valor inválido"
	}
}
