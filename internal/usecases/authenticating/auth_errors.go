package authenticating

import (
	"errors"
)

// Erros de validação do token de acesso
var (
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrMissingSecret  = errors.New("SECRET_KEY não configurada")
	ErrInvalidSubject = errors.New("token sem usuário ou perfil")
)

// IsExpired verifica se a falha de validação foi por expiração do token
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpiredToken)
}
