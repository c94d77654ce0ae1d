package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
)

// TypesenseSource é o Candidate Source remoto, servido por uma collection
// Typesense com os metadados do catálogo de conteúdo.
type TypesenseSource struct {
	client     *typesense.Client
	collection string
}

// NewTypesenseSource cria o adapter para a collection configurada.
func NewTypesenseSource(serverURL, apiKey, collection string) *TypesenseSource {
	client := typesense.NewClient(
		typesense.WithServer(serverURL),
		typesense.WithAPIKey(apiKey),
		typesense.WithConnectionTimeout(10*time.Second),
	)
	return &TypesenseSource{
		client:     client,
		collection: collection,
	}
}

// Fetch busca até limit×OverfetchFactor candidatos. O filtro de
// industry/stage/region vai como filter_by (pré-filtro grosseiro); a query
// livre vai como busca textual em título/corpo/tags.
func (s *TypesenseSource) Fetch(ctx context.Context, rctx models.RecContext, limit int) ([]models.Resource, error) {
	perPage := limit * OverfetchFactor
	if perPage <= 0 {
		perPage = models.DefaultLimit * OverfetchFactor
	}

	query := rctx.Query
	if query == "" {
		query = "*"
	}
	queryBy := "title,body,tags"
	page := 1

	searchParams := &api.SearchCollectionParams{
		Q:       &query,
		QueryBy: &queryBy,
		Page:    &page,
		PerPage: &perPage,
	}

	if filterBy := buildFilterBy(rctx); filterBy != "" {
		searchParams.FilterBy = &filterBy
	}

	result, err := s.client.Collection(s.collection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}

	if result.Hits == nil {
		return nil, nil
	}

	resources := make([]models.Resource, 0, len(*result.Hits))
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		resources = append(resources, documentToResource(*hit.Document))
	}
	return resources, nil
}

// Get retorna um resource por id.
func (s *TypesenseSource) Get(ctx context.Context, id string) (*models.Resource, error) {
	raw, err := s.client.Collection(s.collection).Document(id).Retrieve(ctx)
	if err != nil {
		return nil, models.ErrResourceNotFound
	}
	r := documentToResource(raw)
	return &r, nil
}

// All retorna o catálogo inteiro (até exportCap documentos), usado pelos
// modos de similaridade de conteúdo e pelo refresh de embeddings.
func (s *TypesenseSource) All(ctx context.Context) ([]models.Resource, error) {
	const exportCap = 250

	query := "*"
	queryBy := "title"
	page := 1
	perPage := exportCap

	result, err := s.client.Collection(s.collection).Documents().Search(ctx, &api.SearchCollectionParams{
		Q:       &query,
		QueryBy: &queryBy,
		Page:    &page,
		PerPage: &perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}
	if result.Hits == nil {
		return nil, nil
	}

	resources := make([]models.Resource, 0, len(*result.Hits))
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		resources = append(resources, documentToResource(*hit.Document))
	}
	return resources, nil
}

// Healthy verifica a conectividade com o Typesense (readiness probe).
func (s *TypesenseSource) Healthy(ctx context.Context) bool {
	_, err := s.client.Health(ctx, 2*time.Second)
	return err == nil
}

// buildFilterBy monta o filter_by do Typesense a partir do contexto.
func buildFilterBy(rctx models.RecContext) string {
	var filters []string
	if rctx.Industry != "" {
		filters = append(filters, fmt.Sprintf("industry_tags:=%s", rctx.Industry))
	}
	if rctx.Stage != "" {
		filters = append(filters, fmt.Sprintf("stage_tags:=%s", rctx.Stage))
	}
	if rctx.Region != "" {
		filters = append(filters, fmt.Sprintf("region_tags:=%s", rctx.Region))
	}
	return strings.Join(filters, " && ")
}

// documentToResource converte um documento Typesense no modelo interno.
func documentToResource(doc map[string]interface{}) models.Resource {
	return models.Resource{
		ID:           getString(doc, "id"),
		Title:        getString(doc, "title"),
		Body:         getString(doc, "body"),
		ContentType:  getString(doc, "content_type"),
		Category:     getString(doc, "category"),
		Permalink:    getString(doc, "permalink"),
		Tags:         getStrings(doc, "tags"),
		IndustryTags: getStrings(doc, "industry_tags"),
		StageTags:    getStrings(doc, "stage_tags"),
		RegionTags:   getStrings(doc, "region_tags"),
		Difficulty:   getString(doc, "difficulty"),
		ViewCount:    getInt(doc, "view_count"),
		RatingAvg:    getFloat(doc, "rating_avg"),
		RatingCount:  getInt(doc, "rating_count"),
		Trend:        getInt(doc, "trend"),
		CreatedAt:    getTime(doc, "created_at"),
		UpdatedAt:    getTime(doc, "updated_at"),
	}
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getStrings(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func getFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case float64:
		if v > 0 {
			return time.Unix(int64(v), 0).UTC()
		}
	case int64:
		if v > 0 {
			return time.Unix(v, 0).UTC()
		}
	}
	return time.Time{}
}
