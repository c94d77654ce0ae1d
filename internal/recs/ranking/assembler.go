package ranking

import (
	"sort"

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/utils"
)

// Assemble ordena os candidatos por score decrescente (estável: empate
// preserva a ordem de chegada do Candidate Source), trunca ao limit e embala
// cada sobrevivente com a explicação sintetizada. Ids duplicados são
// descartados mantendo a primeira ocorrência.
func Assemble(candidates []Candidate, rctx models.RecContext, limit int) []models.Recommendation {
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	seen := make(map[string]bool, limit)
	out := make([]models.Recommendation, 0, limit)
	for _, c := range sorted {
		if seen[c.Resource.ID] {
			continue
		}
		seen[c.Resource.ID] = true

		out = append(out, models.Recommendation{
			ResourceID:  c.Resource.ID,
			Title:       c.Resource.Title,
			Excerpt:     utils.ExcerptFromMarkdown(c.Resource.Body),
			Permalink:   c.Resource.Permalink,
			Score:       c.Score,
			Reasons:     c.Reasons,
			Explanation: models.BuildExplanation(c.Reasons, rctx.Stage, rctx.Region),
		})
		if len(out) >= limit {
			break
		}
	}
	return out
}
