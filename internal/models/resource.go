package models

import "time"

// Resource representa um item de conteúdo recomendável (artigo, curso, ferramenta).
// A engine de recomendação trata resources como imutáveis; quem escreve é o
// Candidate Source.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	ContentType string `json:"content_type"` // "article", "course", "tool"
	Category    string `json:"category"`
	Permalink   string `json:"permalink,omitempty"`

	// Free-form tags plus coarse audience tags used by the pre-filter
	// and by the scoring engine's context matches.
	Tags         []string `json:"tags,omitempty"`
	IndustryTags []string `json:"industry_tags,omitempty"`
	StageTags    []string `json:"stage_tags,omitempty"`
	RegionTags   []string `json:"region_tags,omitempty"`

	Difficulty string `json:"difficulty,omitempty"` // beginner, intermediate, advanced

	// Popularity counters maintained by the content backend.
	ViewCount   int     `json:"view_count"`
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`

	// Trend é um contador mantido externamente (surto recente de acessos).
	Trend int `json:"trend"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// HasTag verifica se o resource carrega uma tag exata.
func (r *Resource) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
