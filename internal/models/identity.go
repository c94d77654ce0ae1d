package models

import "github.com/google/uuid"

// IdentityKeyFor deriva a chave estável de um requester: u:<id> para usuário
// autenticado, s:<sessão> para sessão anônima. Tráfego sem nenhum dos dois
// recebe uma chave anônima não correlacionável (nunca cacheia nem precomputa
// nada reaproveitável).
func IdentityKeyFor(userID, sessionID string) string {
	if userID != "" {
		return "u:" + userID
	}
	if sessionID != "" {
		return "s:" + sessionID
	}
	return "anon:" + uuid.NewString()
}

// IsAnonKey indica se a chave foi gerada para tráfego sem identidade.
func IsAnonKey(key string) bool {
	return len(key) > 5 && key[:5] == "anon:"
}
