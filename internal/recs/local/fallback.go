// Package local implementa a estratégia de fallback: um pipeline heurístico
// auto-contido sobre dados em memória, usado quando nenhum backend de ranking
// está configurado ou alcançável. As escalas numéricas são deliberadamente
// diferentes do modo remoto (clamp em [0,1], penalidade para itens já vistos)
// e nunca devem ser normalizadas contra ele.
package local

import (
	"context"
	"sort"
	"strings"

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/recs"
	"github.com/founderhub/app-recs-engine/internal/utils"
)

// Pesos e limites do modo local.
const (
	industryMatch    = 0.3
	stageMatch       = 0.3
	seenPenalty      = 0.5
	highRatingBoost  = 0.2
	highViewBoost    = 0.1
	tagAffinityUnit  = 0.05
	highRatingFloor  = 4.5
	highViewFloor    = 10000
	maxResults       = 12
	relatedMax       = 6
	relatedThreshold = 0.2
	similarPeers     = 10
	collaborativeMax = 6
)

// Reasons exclusivas do modo local.
const (
	reasonHighRating  = "highly rated by other founders"
	reasonHighViews   = "popular with the community"
	reasonTagAffinity = "similar topics to items you engaged with"
	reasonDefault     = "recommended for startups like yours"
)

// Cataloger fornece o conjunto completo de resources em memória.
type Cataloger interface {
	All(ctx context.Context) ([]models.Resource, error)
}

// EventSource fornece o histórico local de interações.
type EventSource interface {
	Events(ctx context.Context) ([]models.Interaction, error)
}

// Fallback é a estratégia local.
type Fallback struct {
	catalog Cataloger
	events  EventSource
}

// NewFallback monta a estratégia sobre o catálogo e o histórico locais.
func NewFallback(catalog Cataloger, events EventSource) *Fallback {
	return &Fallback{catalog: catalog, events: events}
}

// Recommend pontua o catálogo inteiro com os pesos locais, clampa cada score
// em [0,1], descarta candidatos não-positivos e retorna os maxResults
// melhores. Itens já vistos recebem penalidade fixa em vez do bônus de
// histórico do modo remoto.
func (f *Fallback) Recommend(ctx context.Context, req *models.RecRequest) (*models.RecResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resources, err := f.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	identityKey := models.IdentityKeyFor(req.UserID, req.SessionID)
	seen, err := f.seenResources(ctx, identityKey)
	if err != nil {
		return nil, err
	}
	affinityTags := f.affinityTags(resources, seen)

	type scored struct {
		resource *models.Resource
		score    float64
		reasons  []string
	}

	candidates := make([]scored, 0, len(resources))
	for i := range resources {
		r := &resources[i]
		var score float64
		var reasons []string

		if req.Industry != "" && utils.AnyTagContainsFold(r.IndustryTags, req.Industry) {
			score += industryMatch
			reasons = append(reasons, "matches your industry")
		}
		if req.Stage != "" && utils.AnyTagContainsFold(r.StageTags, req.Stage) {
			score += stageMatch
			reasons = append(reasons, "aligned to your stage")
		}
		if r.RatingAvg >= highRatingFloor {
			score += highRatingBoost
			reasons = append(reasons, reasonHighRating)
		}
		if r.ViewCount > highViewFloor {
			score += highViewBoost
			reasons = append(reasons, reasonHighViews)
		}
		if overlap := tagOverlap(r.Tags, affinityTags); overlap > 0 {
			score += float64(overlap) * tagAffinityUnit
			reasons = append(reasons, reasonTagAffinity)
		}
		if seen[r.ID] {
			score -= seenPenalty
		}

		if score <= 0 {
			continue
		}
		if score > 1 {
			score = 1
		}
		candidates = append(candidates, scored{resource: r, score: score, reasons: reasons})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	results := make([]models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		reasons := c.reasons
		if len(reasons) == 0 {
			reasons = []string{reasonDefault}
		}
		results = append(results, models.Recommendation{
			ResourceID:  c.resource.ID,
			Title:       c.resource.Title,
			Excerpt:     utils.ExcerptFromMarkdown(c.resource.Body),
			Permalink:   c.resource.Permalink,
			Score:       c.score,
			Reasons:     reasons,
			Explanation: models.BuildExplanation(reasons, req.Stage, req.Region),
		})
	}

	return &models.RecResponse{
		Results:  results,
		Count:    len(results),
		Strategy: recs.StrategyLocal,
	}, nil
}

// Related retorna até relatedMax resources similares ao alvo por conteúdo:
// mesma categoria, overlap de tags e industry tags, mesma dificuldade.
// Candidatos abaixo do threshold ficam de fora.
func (f *Fallback) Related(ctx context.Context, resourceID string) ([]models.Recommendation, error) {
	resources, err := f.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	var target *models.Resource
	for i := range resources {
		if resources[i].ID == resourceID {
			target = &resources[i]
			break
		}
	}
	if target == nil {
		return nil, models.ErrResourceNotFound
	}

	type scored struct {
		resource *models.Resource
		score    float64
		reasons  []string
	}

	var candidates []scored
	for i := range resources {
		r := &resources[i]
		if r.ID == target.ID {
			continue
		}

		var score float64
		var reasons []string
		if target.Category != "" && strings.EqualFold(r.Category, target.Category) {
			score += 0.3
			reasons = append(reasons, "same category")
		}
		if overlap := tagOverlap(r.Tags, toSet(target.Tags)); overlap > 0 {
			score += float64(overlap) * 0.1
			reasons = append(reasons, "overlapping topics")
		}
		if target.Difficulty != "" && strings.EqualFold(r.Difficulty, target.Difficulty) {
			score += 0.1
			reasons = append(reasons, "same difficulty")
		}
		if overlap := tagOverlap(r.IndustryTags, toSet(target.IndustryTags)); overlap > 0 {
			score += float64(overlap) * 0.15
			reasons = append(reasons, "same industry focus")
		}

		if score <= relatedThreshold {
			continue
		}
		candidates = append(candidates, scored{resource: r, score: score, reasons: reasons})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > relatedMax {
		candidates = candidates[:relatedMax]
	}

	results := make([]models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, models.Recommendation{
			ResourceID:  c.resource.ID,
			Title:       c.resource.Title,
			Excerpt:     utils.ExcerptFromMarkdown(c.resource.Body),
			Permalink:   c.resource.Permalink,
			Score:       c.score,
			Reasons:     c.reasons,
			Explanation: strings.Join(c.reasons, "; "),
		})
	}
	return results, nil
}

// Collaborative encontra as similarPeers identidades mais parecidas com a do
// requester (pela contagem de resource ids em comum) e retorna até
// collaborativeMax resources que elas tocaram e o requester ainda não viu.
func (f *Fallback) Collaborative(ctx context.Context, req *models.RecRequest) ([]models.Recommendation, error) {
	identityKey := models.IdentityKeyFor(req.UserID, req.SessionID)
	mine, err := f.seenResources(ctx, identityKey)
	if err != nil {
		return nil, err
	}
	if len(mine) == 0 {
		return []models.Recommendation{}, nil
	}

	events, err := f.events.Events(ctx)
	if err != nil {
		return nil, err
	}

	byIdentity := make(map[string]map[string]bool)
	for _, e := range events {
		key := e.IdentityKey()
		if key == "" || key == identityKey {
			continue
		}
		if byIdentity[key] == nil {
			byIdentity[key] = make(map[string]bool)
		}
		byIdentity[key][e.ResourceID] = true
	}

	type peer struct {
		key    string
		shared int
	}
	var peers []peer
	for key, touched := range byIdentity {
		shared := 0
		for id := range touched {
			if mine[id] {
				shared++
			}
		}
		if shared > 0 {
			peers = append(peers, peer{key: key, shared: shared})
		}
	}
	sort.SliceStable(peers, func(i, j int) bool {
		if peers[i].shared != peers[j].shared {
			return peers[i].shared > peers[j].shared
		}
		return peers[i].key < peers[j].key
	})
	if len(peers) > similarPeers {
		peers = peers[:similarPeers]
	}

	// quantas identidades similares tocaram cada resource não visto
	votes := make(map[string]int)
	for _, p := range peers {
		for id := range byIdentity[p.key] {
			if !mine[id] {
				votes[id]++
			}
		}
	}
	if len(votes) == 0 {
		return []models.Recommendation{}, nil
	}

	resources, err := f.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		resource *models.Resource
		score    float64
	}
	var candidates []scored
	for i := range resources {
		r := &resources[i]
		count, ok := votes[r.ID]
		if !ok {
			continue
		}
		score := float64(count) / float64(similarPeers)
		if score > 1 {
			score = 1
		}
		candidates = append(candidates, scored{resource: r, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > collaborativeMax {
		candidates = candidates[:collaborativeMax]
	}

	reasons := []string{"founders like you engaged with this"}
	results := make([]models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, models.Recommendation{
			ResourceID:  c.resource.ID,
			Title:       c.resource.Title,
			Excerpt:     utils.ExcerptFromMarkdown(c.resource.Body),
			Permalink:   c.resource.Permalink,
			Score:       c.score,
			Reasons:     reasons,
			Explanation: models.BuildExplanation(reasons, req.Stage, req.Region),
		})
	}
	return results, nil
}

// seenResources retorna o conjunto de resources que a identidade já tocou.
func (f *Fallback) seenResources(ctx context.Context, identityKey string) (map[string]bool, error) {
	seen := make(map[string]bool)
	if models.IsAnonKey(identityKey) {
		return seen, nil
	}
	events, err := f.events.Events(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.IdentityKey() == identityKey {
			seen[e.ResourceID] = true
		}
	}
	return seen, nil
}

// affinityTags agrega as tags dos resources já vistos, base do sinal de
// afinidade por conteúdo.
func (f *Fallback) affinityTags(resources []models.Resource, seen map[string]bool) map[string]bool {
	tags := make(map[string]bool)
	if len(seen) == 0 {
		return tags
	}
	for i := range resources {
		if !seen[resources[i].ID] {
			continue
		}
		for _, tag := range resources[i].Tags {
			tags[utils.NormalizeTerm(tag)] = true
		}
	}
	return tags
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[utils.NormalizeTerm(tag)] = true
	}
	return set
}

func tagOverlap(tags []string, set map[string]bool) int {
	if len(set) == 0 {
		return 0
	}
	count := 0
	for _, tag := range tags {
		if set[utils.NormalizeTerm(tag)] {
			count++
		}
	}
	return count
}
