package catalog

import (
	"context"

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/utils"
)

// OverfetchFactor: o source devolve até limit×5 candidatos para o scorer
// poder ser seletivo.
const OverfetchFactor = 5

// Source fornece o pool de resources elegíveis para ranking. O pré-filtro
// por industry/stage/region/q é grosseiro (containment), nunca uma decisão
// de score: quem passa não ganha boost por isso.
type Source interface {
	// Fetch retorna até limit×OverfetchFactor resources que passam no
	// pré-filtro do contexto. Somente leitura.
	Fetch(ctx context.Context, rctx models.RecContext, limit int) ([]models.Resource, error)

	// Get retorna um resource por id, ou models.ErrResourceNotFound.
	Get(ctx context.Context, id string) (*models.Resource, error)
}

// matchesContext aplica o pré-filtro grosseiro compartilhado pelas
// implementações em memória.
func matchesContext(r *models.Resource, rctx models.RecContext) bool {
	if rctx.Industry != "" && !utils.AnyTagContainsFold(r.IndustryTags, rctx.Industry) {
		return false
	}
	if rctx.Stage != "" && !utils.AnyTagContainsFold(r.StageTags, rctx.Stage) {
		return false
	}
	if rctx.Region != "" && !utils.AnyTagContainsFold(r.RegionTags, rctx.Region) {
		return false
	}
	if rctx.Query != "" {
		if !utils.ContainsFold(r.Title, rctx.Query) &&
			!utils.ContainsFold(r.Body, rctx.Query) &&
			!utils.AnyTagContainsFold(r.Tags, rctx.Query) {
			return false
		}
	}
	return true
}
