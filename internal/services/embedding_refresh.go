package services

import (
	"context"
	"fmt"
	"log"

	"github.com/founderhub/app-recs-engine/internal/models"
)

// ResourceLister fornece o catálogo completo para o refresh.
type ResourceLister interface {
	All(ctx context.Context) ([]models.Resource, error)
}

// EmbeddingStore persiste os vetores gerados.
type EmbeddingStore interface {
	UpsertEmbedding(ctx context.Context, resourceID string, vector []float32) error
}

// EmbeddingRefresher regenera os embeddings de todo o catálogo. Disparado
// por endpoint administrativo; uma falha individual não aborta o lote.
type EmbeddingRefresher struct {
	provider EmbeddingProvider
	catalog  ResourceLister
	store    EmbeddingStore
}

// NewEmbeddingRefresher monta o serviço de refresh.
func NewEmbeddingRefresher(provider EmbeddingProvider, catalog ResourceLister, store EmbeddingStore) *EmbeddingRefresher {
	return &EmbeddingRefresher{provider: provider, catalog: catalog, store: store}
}

// RefreshAll regenera e persiste o embedding de cada resource. Retorna
// quantos foram atualizados e quantos falharam.
func (r *EmbeddingRefresher) RefreshAll(ctx context.Context) (updated, failed int, err error) {
	resources, err := r.catalog.All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("listando catálogo: %w", err)
	}

	for i := range resources {
		res := &resources[i]
		text := res.Title + "\n" + res.Body

		vector, genErr := r.provider.GenerateEmbedding(ctx, text)
		if genErr != nil {
			log.Printf("embedding falhou para %s: %v", res.ID, genErr)
			failed++
			continue
		}
		if storeErr := r.store.UpsertEmbedding(ctx, res.ID, vector); storeErr != nil {
			log.Printf("persistência de embedding falhou para %s: %v", res.ID, storeErr)
			failed++
			continue
		}
		updated++
	}

	log.Printf("refresh de embeddings concluído: %d atualizados, %d falhas (modelo %s)",
		updated, failed, r.provider.GetModelName())
	return updated, failed, nil
}
