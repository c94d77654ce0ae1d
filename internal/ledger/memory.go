package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/google/uuid"
)

// MemoryLedger é um ledger em memória, usado em testes e quando o serviço
// roda sem banco configurado.
type MemoryLedger struct {
	mu     sync.RWMutex
	events []models.Interaction
}

// NewMemoryLedger cria um ledger vazio.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// Seed pré-carrega eventos (testes e modo local).
func (l *MemoryLedger) Seed(events []models.Interaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, events...)
}

// Append grava um evento. Nunca rejeita duplicatas.
func (l *MemoryLedger) Append(_ context.Context, event models.Interaction) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

// PopularWeight soma pesos do resource na janela de 30 dias.
func (l *MemoryLedger) PopularWeight(_ context.Context, resourceID string) (float64, error) {
	cutoff := time.Now().Add(-PopularityWindow)

	l.mu.RLock()
	defer l.mu.RUnlock()

	var total float64
	for _, e := range l.events {
		if e.ResourceID == resourceID && e.CreatedAt.After(cutoff) {
			total += e.Weight
		}
	}
	return total, nil
}

// SelfWeight soma pesos históricos do par (identidade, resource).
func (l *MemoryLedger) SelfWeight(_ context.Context, identityKey, resourceID string) (float64, error) {
	if identityKey == "" {
		return 0, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var total float64
	for _, e := range l.events {
		if e.ResourceID == resourceID && e.IdentityKey() == identityKey {
			total += e.Weight
		}
	}
	return total, nil
}

// InteractedResources retorna os resource ids da identidade, na ordem da
// primeira interação.
func (l *MemoryLedger) InteractedResources(_ context.Context, identityKey string) ([]string, error) {
	if identityKey == "" {
		return nil, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	var ids []string
	for _, e := range l.events {
		if e.IdentityKey() != identityKey || seen[e.ResourceID] {
			continue
		}
		seen[e.ResourceID] = true
		ids = append(ids, e.ResourceID)
	}
	return ids, nil
}

// ActiveIdentities retorna até limit identidades com interação desde o
// instante dado.
func (l *MemoryLedger) ActiveIdentities(_ context.Context, since time.Time, limit int) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	var keys []string
	for _, e := range l.events {
		key := e.IdentityKey()
		if key == "" || seen[key] || !e.CreatedAt.After(since) {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
		if limit > 0 && len(keys) >= limit {
			break
		}
	}
	return keys, nil
}

// Events retorna uma cópia de todos os eventos (usado pela estratégia local).
func (l *MemoryLedger) Events(_ context.Context) ([]models.Interaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Interaction, len(l.events))
	copy(out, l.events)
	return out, nil
}
