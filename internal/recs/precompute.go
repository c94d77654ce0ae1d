package recs

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/founderhub/app-recs-engine/internal/models"
)

// Parâmetros de referência do job de precompute.
const (
	// Janela de atividade que qualifica uma identidade para precompute
	PrecomputeActivityWindow = 7 * 24 * time.Hour
	// Máximo de identidades por rodada
	PrecomputeMaxIdentities = 500
	// Tamanho fixo das listas precomputadas
	PrecomputeSize = 20
)

// ActivityReader lista identidades com interação recente, mais ativas primeiro.
type ActivityReader interface {
	ActiveIdentities(ctx context.Context, since time.Time, limit int) ([]string, error)
}

// Precomputer materializa listas de recomendação para identidades ativas.
// Upsert last-writer-wins por identidade; falha em uma identidade não
// aborta a rodada.
type Precomputer struct {
	engine   *Engine
	activity ActivityReader
	store    PrecomputeStore
}

// NewPrecomputer monta o job sobre a engine remota.
func NewPrecomputer(engine *Engine, activity ActivityReader, store PrecomputeStore) *Precomputer {
	return &Precomputer{engine: engine, activity: activity, store: store}
}

// Run executa uma rodada: identidades ativas na janela, lista fixa de
// PrecomputeSize itens por identidade, derivada só do contexto da identidade
// (sem query nem overrides). Retorna quantas identidades foram atualizadas.
func (p *Precomputer) Run(ctx context.Context) (int, error) {
	since := time.Now().Add(-PrecomputeActivityWindow)

	identities, err := p.activity.ActiveIdentities(ctx, since, PrecomputeMaxIdentities)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, identityKey := range identities {
		req, ok := requestForIdentity(identityKey)
		if !ok {
			continue
		}

		results, err := p.engine.compute(ctx, req, identityKey)
		if err != nil {
			log.Printf("precompute falhou para %s: %v", identityKey, err)
			continue
		}

		if err := p.store.UpsertPrecomputed(ctx, identityKey, results); err != nil {
			log.Printf("precompute upsert falhou para %s: %v", identityKey, err)
			continue
		}
		updated++
	}

	return updated, nil
}

// requestForIdentity reconstrói a requisição só-identidade a partir da chave.
// Chaves anônimas não são precomputadas.
func requestForIdentity(identityKey string) (*models.RecRequest, bool) {
	req := &models.RecRequest{Limit: PrecomputeSize}
	switch {
	case strings.HasPrefix(identityKey, "u:"):
		req.UserID = strings.TrimPrefix(identityKey, "u:")
	case strings.HasPrefix(identityKey, "s:"):
		req.SessionID = strings.TrimPrefix(identityKey, "s:")
	default:
		return nil, false
	}
	return req, true
}
