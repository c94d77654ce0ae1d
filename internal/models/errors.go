package models

import "errors"

var (
	ErrInvalidAction      = errors.New("ação de interação inválida (use: view, click, like, bookmark, dismiss)")
	ErrResourceIDRequired = errors.New("resource_id é obrigatório")
	ErrIdentityRequired   = errors.New("identidade não resolvida")
	ErrBackendUnavailable = errors.New("backend de ranking indisponível")
	ErrResourceNotFound   = errors.New("resource não encontrado")
)
