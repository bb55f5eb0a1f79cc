package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Sem caracteres ambíguos (0/O, 1/I) para códigos lidos por pessoas
const codeCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewID gera o identificador das entidades
func NewID() string {
	return uuid.NewString()
}

// GenerateCode gera um código curto legível, usado nos protocolos de chamados
func GenerateCode(prefix string) (string, error) {
	code, err := gonanoid.Generate(codeCharacters, 6)
	if err != nil {
		return "", err
	}
	return prefix + code, nil
}
