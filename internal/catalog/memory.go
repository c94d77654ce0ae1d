package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/utils"
)

// MemorySource é um Candidate Source em memória, usado em testes e em
// deployments sem Typesense (modo local).
type MemorySource struct {
	mu        sync.RWMutex
	resources []models.Resource
	byID      map[string]int
}

// NewMemorySource cria um source a partir de um conjunto fixo de resources.
// Permalinks vazios ganham slug derivado do título.
func NewMemorySource(resources []models.Resource) *MemorySource {
	s := &MemorySource{
		resources: make([]models.Resource, len(resources)),
		byID:      make(map[string]int, len(resources)),
	}
	copy(s.resources, resources)
	for i := range s.resources {
		if s.resources[i].Permalink == "" {
			s.resources[i].Permalink = "/resources/" + utils.GenerateSlug(s.resources[i].Title, s.resources[i].ID)
		}
		s.byID[s.resources[i].ID] = i
	}
	return s
}

// NewMemorySourceFromFile carrega o catálogo de um arquivo JSON (array de
// resources). Usado no modo local.
func NewMemorySourceFromFile(path string) (*MemorySource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lendo catálogo: %w", err)
	}

	var resources []models.Resource
	if err := json.Unmarshal(raw, &resources); err != nil {
		return nil, fmt.Errorf("decodificando catálogo: %w", err)
	}
	return NewMemorySource(resources), nil
}

// Fetch retorna até limit×OverfetchFactor resources que passam no pré-filtro,
// na ordem do catálogo.
func (s *MemorySource) Fetch(_ context.Context, rctx models.RecContext, limit int) ([]models.Resource, error) {
	max := 0
	if limit > 0 {
		max = limit * OverfetchFactor
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resource, 0, max)
	for i := range s.resources {
		if !matchesContext(&s.resources[i], rctx) {
			continue
		}
		out = append(out, s.resources[i])
		if max > 0 && len(out) >= max {
			break
		}
	}
	return out, nil
}

// Get retorna um resource por id.
func (s *MemorySource) Get(_ context.Context, id string) (*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.byID[id]; ok {
		r := s.resources[i]
		return &r, nil
	}
	return nil, models.ErrResourceNotFound
}

// All retorna uma cópia do catálogo inteiro (estratégia local e refresh de
// embeddings).
func (s *MemorySource) All(_ context.Context) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resource, len(s.resources))
	copy(out, s.resources)
	return out, nil
}
