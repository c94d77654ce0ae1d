package ranking

import (
	"context"
	"math"

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/utils"
)

// LedgerReader fornece os sinais comportamentais consumidos pelo scorer e
// pelos boosters.
type LedgerReader interface {
	PopularWeight(ctx context.Context, resourceID string) (float64, error)
	SelfWeight(ctx context.Context, identityKey, resourceID string) (float64, error)
	InteractedResources(ctx context.Context, identityKey string) ([]string, error)
}

// Pesos dos termos de score do modo remoto. Cada termo que dispara anexa a
// reason correspondente, então a explicação reconstrói exatamente os termos
// que contribuíram.
const (
	industryWeight   = 3.0
	stageWeight      = 3.0
	regionWeight     = 2.0
	selfWeight       = 0.5
	highValueWeight  = 0.5
	popularityCap    = 2.0
	trendCap         = 2.0
	trendDivisor     = 10.0
	popularReasonMin = 0.1
)

// Reason strings expostas na explicação de cada candidato.
const (
	ReasonIndustry    = "matches your industry"
	ReasonStage       = "aligned to your stage"
	ReasonRegion      = "relevant to your region"
	ReasonPopular     = "popular with similar founders"
	ReasonSelfHistory = "similar to items you engaged with"
	ReasonTrending    = "trending this week"
	ReasonFunding     = "funding-related tips"
)

// Candidate é um resource com score acumulado durante o pipeline.
type Candidate struct {
	Resource models.Resource
	Score    float64
	Reasons  []string
}

// Scorer calcula o score base de cada candidato: acumulador aditivo não
// negativo e não limitado, somando termos independentes sem short-circuit.
// Candidato sem termo disparado mantém score 0 e segue no pipeline; a
// exclusão por contagem é papel do assembler.
type Scorer struct {
	ledger              LedgerReader
	highValueCategories map[string]bool
}

// NewScorer cria um scorer sobre o ledger dado. highValueCategories são as
// categorias com boost rule-based (ex: fundraising).
func NewScorer(ledger LedgerReader, highValueCategories []string) *Scorer {
	set := make(map[string]bool, len(highValueCategories))
	for _, c := range highValueCategories {
		set[utils.NormalizeTerm(c)] = true
	}
	return &Scorer{
		ledger:              ledger,
		highValueCategories: set,
	}
}

// Score calcula o score base e as reasons de um resource para o contexto e
// identidade dados. identityKey vazio pula os termos de histórico próprio.
func (s *Scorer) Score(ctx context.Context, r *models.Resource, rctx models.RecContext, identityKey string) (float64, []string, error) {
	var score float64
	var reasons []string

	// Matches de contexto (substring case-insensitive sobre as tags)
	if rctx.Industry != "" && utils.AnyTagContainsFold(r.IndustryTags, rctx.Industry) {
		score += industryWeight
		reasons = append(reasons, ReasonIndustry)
	}
	if rctx.Stage != "" && utils.AnyTagContainsFold(r.StageTags, rctx.Stage) {
		score += stageWeight
		reasons = append(reasons, ReasonStage)
	}
	if rctx.Region != "" && utils.AnyTagContainsFold(r.RegionTags, rctx.Region) {
		score += regionWeight
		reasons = append(reasons, ReasonRegion)
	}

	// Popularidade populacional: log-dampened, cap 2
	pop, err := s.ledger.PopularWeight(ctx, r.ID)
	if err != nil {
		return 0, nil, err
	}
	boost := math.Min(popularityCap, math.Log(1+pop)/2.0)
	score += boost
	if boost > popularReasonMin {
		reasons = append(reasons, ReasonPopular)
	}

	// Histórico próprio: qualquer interação passada com o resource
	if identityKey != "" {
		self, err := s.ledger.SelfWeight(ctx, identityKey, r.ID)
		if err != nil {
			return 0, nil, err
		}
		if self > 0 {
			score += selfWeight
			reasons = append(reasons, ReasonSelfHistory)
		}
	}

	// Trend: contador mantido externamente
	if r.Trend > 0 {
		score += math.Min(trendCap, float64(r.Trend)/trendDivisor)
		reasons = append(reasons, ReasonTrending)
	}

	// Rule-based: categorias de alto valor
	if s.highValueCategories[utils.NormalizeTerm(r.Category)] {
		score += highValueWeight
		reasons = append(reasons, ReasonFunding)
	}

	return score, reasons, nil
}

// ScoreAll pontua todos os candidatos preservando a ordem de chegada do
// Candidate Source (relevante para o desempate estável do assembler).
func (s *Scorer) ScoreAll(ctx context.Context, resources []models.Resource, rctx models.RecContext, identityKey string) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(resources))
	for i := range resources {
		score, reasons, err := s.Score(ctx, &resources[i], rctx, identityKey)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Resource: resources[i],
			Score:    score,
			Reasons:  reasons,
		})
	}
	return candidates, nil
}
