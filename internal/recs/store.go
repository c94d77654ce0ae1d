package recs

import (
	"context"
	"time"

	"github.com/founderhub/app-recs-engine/internal/models"
)

// DefaultCacheTTL é o TTL fixo das entradas de cache de resultado.
const DefaultCacheTTL = 5 * time.Minute

// CacheStore é a tabela lógica cache[key] → (entry, expires_at). Entradas
// expiram exclusivamente por TTL; novas interações não invalidam entradas em
// voo (as chaves são hashes, não dá para enumerá-las por identidade; a
// staleness fica limitada pelo TTL).
type CacheStore interface {
	// GetCache retorna a entrada viva sob a chave, ou ok=false para miss ou
	// entrada expirada.
	GetCache(ctx context.Context, key string) (entry []models.Recommendation, ok bool, err error)

	// SetCache grava a entrada com o TTL dado. Last-writer-wins: requisições
	// idênticas concorrentes podem sobrescrever a mesma chave sem dano.
	SetCache(ctx context.Context, key string, entry []models.Recommendation, ttl time.Duration) error
}

// PrecomputeStore é a tabela lógica precomputed[identity_key] →
// (entry, updated_at), alimentada pelo job periódico.
type PrecomputeStore interface {
	// GetPrecomputed retorna a lista precomputada da identidade e o instante
	// da última atualização, ou ok=false quando não há entrada.
	GetPrecomputed(ctx context.Context, identityKey string) (entry []models.Recommendation, updatedAt time.Time, ok bool, err error)

	// UpsertPrecomputed substitui a entrada da identidade.
	UpsertPrecomputed(ctx context.Context, identityKey string, entry []models.Recommendation) error
}

// Store combina as duas tabelas (o backend SQLite implementa ambas).
type Store interface {
	CacheStore
	PrecomputeStore
}
