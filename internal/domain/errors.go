package domain

import "errors"

// Erros compartilhados entre os casos de uso
var (
	ErrNotFound                = errors.New("registro não encontrado")
	ErrInvalidInput            = errors.New("dados inválidos")
	ErrInvalidStatusTransition = errors.New("transição de status não permitida")
	ErrConflict                = errors.New("registro já existe")
	ErrForbidden               = errors.New("acesso negado")
)
