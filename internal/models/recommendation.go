package models

import "strings"

// Limites de paginação do modo remoto.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// RecRequest representa uma requisição de recomendações.
// @Description Parâmetros de requisição para recomendações personalizadas.
type RecRequest struct {
	// Identidade: no máximo um dos dois é necessário
	UserID    string `form:"user_id" example:"184"`
	SessionID string `form:"session_id" example:"b2f1c0de"`

	// Quantidade de resultados (default: 10, clamp 1-50)
	Limit int `form:"limit" example:"10" minimum:"1" maximum:"50"`

	// Overrides de contexto; quando vazios, o perfil persistido do usuário
	// é usado como fallback
	Industry string `form:"industry" example:"Fintech"`
	Stage    string `form:"stage" example:"Seed"`
	Region   string `form:"region" example:"LATAM"`

	// Busca textual livre (pré-filtro, não é termo de score)
	Query string `form:"q" example:"pitch deck"`
}

// Validate aplica defaults e clamps à requisição.
func (r *RecRequest) Validate() error {
	if r.Limit <= 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
	return nil
}

// IsDefaultShape indica se a requisição carrega apenas identidade: sem query
// livre, sem override de industry/stage/region e sem limit explícito fora do
// default. Só nesse shape a entrada precomputada pode ser servida.
func (r *RecRequest) IsDefaultShape() bool {
	return r.Query == "" && r.Industry == "" && r.Stage == "" && r.Region == "" &&
		(r.Limit == 0 || r.Limit == DefaultLimit)
}

// RecContext é o contexto efetivo de scoring (request + perfil persistido).
type RecContext struct {
	Industry string
	Stage    string
	Region   string
	Query    string
	Limit    int
}

// Recommendation é um candidato pontuado e explicado.
// @Description Resource recomendado com score e explicação legível.
type Recommendation struct {
	ResourceID  string   `json:"resource_id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Permalink   string   `json:"permalink"`
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons,omitempty"`
	Explanation string   `json:"explanation"`
}

// RecResponse embala a lista ordenada de recomendações.
type RecResponse struct {
	Results []Recommendation `json:"results"`
	Count   int              `json:"count"`
	// Estratégia que produziu a lista: "remote" ou "local"
	Strategy string `json:"strategy,omitempty"`
}

// BuildExplanation sintetiza a explicação final de um candidato: prefixo de
// contexto ("stage X and region Y", com fallback "your profile") seguido das
// reasons deduplicadas na ordem em que dispararam.
func BuildExplanation(reasons []string, stage, region string) string {
	var prefix []string
	if stage != "" {
		prefix = append(prefix, "stage "+stage)
	}
	if region != "" {
		prefix = append(prefix, "region "+region)
	}
	pfx := "your profile"
	if len(prefix) > 0 {
		pfx = strings.Join(prefix, " and ")
	}

	seen := make(map[string]bool, len(reasons))
	unique := make([]string, 0, len(reasons))
	for _, reason := range reasons {
		if reason == "" || seen[reason] {
			continue
		}
		seen[reason] = true
		unique = append(unique, reason)
	}

	return "Based on your " + pfx + ", we recommend this because: " + strings.Join(unique, "; ")
}
