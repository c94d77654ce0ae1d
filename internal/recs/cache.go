package recs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/founderhub/app-recs-engine/internal/models"
)

// CacheKey gera a chave de cache de uma requisição: hash da chave de
// identidade junto com o conjunto completo de parâmetros normalizados.
func CacheKey(identityKey string, req *models.RecRequest) string {
	keyData := fmt.Sprintf(
		"%s|%d|%s|%s|%s|%s",
		identityKey,
		req.Limit,
		req.Industry,
		req.Stage,
		req.Region,
		req.Query,
	)

	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:16])
}

// MemoryStore implementa CacheStore e PrecomputeStore em memória, usado em
// testes e quando o serviço roda sem banco configurado.
type MemoryStore struct {
	mu          sync.RWMutex
	cache       map[string]*cacheEntry
	precomputed map[string]*precomputedEntry
	maxSize     int
}

type cacheEntry struct {
	entry     []models.Recommendation
	expiresAt time.Time
}

type precomputedEntry struct {
	entry     []models.Recommendation
	updatedAt time.Time
}

// NewMemoryStore cria o store vazio. maxSize limita o número de entradas de
// cache (as mais antigas são recolhidas quando cheio).
func NewMemoryStore(maxSize int) *MemoryStore {
	if maxSize <= 0 {
		maxSize = 500
	}
	return &MemoryStore{
		cache:       make(map[string]*cacheEntry),
		precomputed: make(map[string]*precomputedEntry),
		maxSize:     maxSize,
	}
}

// GetCache retorna a entrada viva sob a chave.
func (s *MemoryStore) GetCache(_ context.Context, key string) ([]models.Recommendation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.cache[key]; ok && time.Now().Before(c.expiresAt) {
		return c.entry, true, nil
	}
	return nil, false, nil
}

// SetCache grava a entrada com o TTL dado.
func (s *MemoryStore) SetCache(_ context.Context, key string, entry []models.Recommendation, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cache) >= s.maxSize {
		s.cleanup()
	}

	s.cache[key] = &cacheEntry{
		entry:     entry,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// GetPrecomputed retorna a lista precomputada da identidade.
func (s *MemoryStore) GetPrecomputed(_ context.Context, identityKey string) ([]models.Recommendation, time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.precomputed[identityKey]; ok {
		return p.entry, p.updatedAt, true, nil
	}
	return nil, time.Time{}, false, nil
}

// UpsertPrecomputed substitui a entrada da identidade.
func (s *MemoryStore) UpsertPrecomputed(_ context.Context, identityKey string, entry []models.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.precomputed[identityKey] = &precomputedEntry{
		entry:     entry,
		updatedAt: time.Now(),
	}
	return nil
}

// cleanup remove entradas expiradas; se ainda cheio, remove a mais antiga.
// Chamado com o lock de escrita tomado.
func (s *MemoryStore) cleanup() {
	now := time.Now()
	for key, c := range s.cache {
		if now.After(c.expiresAt) {
			delete(s.cache, key)
		}
	}

	if len(s.cache) >= s.maxSize {
		oldest := time.Time{}
		oldestKey := ""
		for key, c := range s.cache {
			if oldestKey == "" || c.expiresAt.Before(oldest) {
				oldest = c.expiresAt
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(s.cache, oldestKey)
		}
	}
}
