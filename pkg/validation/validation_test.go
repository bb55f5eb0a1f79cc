package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title    string   `json:"title" validate:"required,max=5"`
	Priority string   `json:"priority" validate:"required,oneof=baixa alta"`
	Due      *string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Scopes   []string `json:"scopes" validate:"required,min=1"`
}

func TestStruct(t *testing.T) {
	details, err := Struct(sample{Title: "ok", Priority: "alta", Scopes: []string{"vendas"}})
	require.NoError(t, err)
	assert.Empty(t, details)

	due := "31/01/2024"
	details, err = Struct(sample{Title: "muito longo", Priority: "media", Due: &due})
	require.NoError(t, err)

	fields := map[string]string{}
	for _, detail := range details {
		fields[detail.Field] = detail.Message
	}

	assert.Equal(t, "Deve ter no máximo 5 caracteres", fields["title"])
	assert.Equal(t, "Deve ser um dos valores: baixa alta", fields["priority"])
	assert.Equal(t, "Data inválida, use o formato 2006-01-02", fields["due_date"])
	assert.Equal(t, "Campo obrigatório", fields["scopes"])
}
