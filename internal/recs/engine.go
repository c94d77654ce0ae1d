package recs

import (
	"context"
	"log"
	"time"

	"github.com/founderhub/app-recs-engine/internal/catalog"
	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/recs/ranking"
)

// ProfileReader resolve o perfil persistido de um usuário autenticado,
// usado como fallback de contexto quando a requisição não traz override.
// Retorna nil sem erro quando não há perfil.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

// Engine é a estratégia remota: pipeline completo de cache → precompute →
// fetch → score → boost → assemble sobre o Candidate Source e o ledger.
type Engine struct {
	source   catalog.Source
	scorer   *ranking.Scorer
	boosters []ranking.Booster
	store    Store
	profiles ProfileReader
	cacheTTL time.Duration
}

// EngineOptions configura a montagem da engine.
type EngineOptions struct {
	// Categorias com boost rule-based (default: fundraising)
	HighValueCategories []string
	// TTL do cache de resultados (default: 5 min)
	CacheTTL time.Duration
	// Perfis persistidos; pode ser nil
	Profiles ProfileReader
}

// NewEngine monta a estratégia remota com os boosters padrão.
func NewEngine(source catalog.Source, ledgerReader ranking.LedgerReader, store Store, opts EngineOptions) *Engine {
	categories := opts.HighValueCategories
	if len(categories) == 0 {
		categories = []string{"fundraising"}
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Engine{
		source: source,
		scorer: ranking.NewScorer(ledgerReader, categories),
		boosters: []ranking.Booster{
			ranking.NewCollaborativeBooster(ledgerReader),
			ranking.NewEmbeddingBooster(),
		},
		store:    store,
		profiles: opts.Profiles,
		cacheTTL: ttl,
	}
}

// Recommend executa o fluxo por requisição:
//  1. deriva a chave de identidade e a chave de cache
//  2. cache vivo retorna verbatim, sem recomputar
//  3. requisição só-identidade com entrada precomputada retorna a entrada
//  4. senão computa fresco, grava no cache sob o TTL e retorna
func (e *Engine) Recommend(ctx context.Context, req *models.RecRequest) (*models.RecResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	identityKey := models.IdentityKeyFor(req.UserID, req.SessionID)
	cacheKey := CacheKey(identityKey, req)

	if entry, ok, err := e.store.GetCache(ctx, cacheKey); err == nil && ok {
		return &models.RecResponse{Results: entry, Count: len(entry), Strategy: StrategyRemote}, nil
	} else if err != nil {
		// cache indisponível não derruba a requisição
		log.Printf("cache lookup falhou para %s: %v", cacheKey, err)
	}

	if req.IsDefaultShape() && !models.IsAnonKey(identityKey) {
		if entry, _, ok, err := e.store.GetPrecomputed(ctx, identityKey); err == nil && ok {
			// listas precomputadas têm tamanho fixo maior que o limit default
			if len(entry) > req.Limit {
				entry = entry[:req.Limit]
			}
			return &models.RecResponse{Results: entry, Count: len(entry), Strategy: StrategyRemote}, nil
		}
	}

	results, err := e.compute(ctx, req, identityKey)
	if err != nil {
		return nil, err
	}

	if err := e.store.SetCache(ctx, cacheKey, results, e.cacheTTL); err != nil {
		log.Printf("cache store falhou para %s: %v", cacheKey, err)
	}

	return &models.RecResponse{Results: results, Count: len(results), Strategy: StrategyRemote}, nil
}

// compute roda fetch → score → boost → assemble.
func (e *Engine) compute(ctx context.Context, req *models.RecRequest, identityKey string) ([]models.Recommendation, error) {
	rctx := e.resolveContext(ctx, req)

	resources, err := e.source.Fetch(ctx, rctx, rctx.Limit)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		// zero candidatos é resultado vazio válido, nunca erro
		return []models.Recommendation{}, nil
	}

	candidates, err := e.scorer.ScoreAll(ctx, resources, rctx, identityKey)
	if err != nil {
		return nil, err
	}

	// boosters pressupõem identidade conhecida; anon: não carrega histórico
	boosterKey := identityKey
	if models.IsAnonKey(identityKey) {
		boosterKey = ""
	}
	for _, booster := range e.boosters {
		if err := booster.Apply(ctx, boosterKey, candidates); err != nil {
			return nil, err
		}
	}

	return ranking.Assemble(candidates, rctx, rctx.Limit), nil
}

// resolveContext combina overrides da requisição com o perfil persistido.
func (e *Engine) resolveContext(ctx context.Context, req *models.RecRequest) models.RecContext {
	rctx := models.RecContext{
		Industry: req.Industry,
		Stage:    req.Stage,
		Region:   req.Region,
		Query:    req.Query,
		Limit:    req.Limit,
	}

	if e.profiles == nil || req.UserID == "" {
		return rctx
	}

	profile, err := e.profiles.GetProfile(ctx, req.UserID)
	if err != nil || profile == nil {
		return rctx
	}
	if rctx.Industry == "" {
		rctx.Industry = profile.Industry
	}
	if rctx.Stage == "" {
		rctx.Stage = profile.Stage
	}
	if rctx.Region == "" {
		rctx.Region = profile.Region
	}
	return rctx
}
