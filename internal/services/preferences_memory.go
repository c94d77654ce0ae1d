package services

import (
	"context"
	"sync"

	"github.com/founderhub/app-recs-engine/internal/models"
)

// MemoryPreferenceStore guarda preferências e perfis em memória, usado em
// testes e quando o serviço roda sem banco configurado.
type MemoryPreferenceStore struct {
	mu       sync.RWMutex
	prefs    map[string]models.Preferences
	profiles map[string]models.Profile
}

// NewMemoryPreferenceStore cria o store vazio.
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{
		prefs:    make(map[string]models.Preferences),
		profiles: make(map[string]models.Profile),
	}
}

// GetPreferences retorna as preferências do usuário, ou defaults.
func (s *MemoryPreferenceStore) GetPreferences(_ context.Context, userID string) (*models.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.prefs[userID]; ok {
		return &p, nil
	}
	defaults := models.DefaultPreferences()
	return &defaults, nil
}

// SetPreferences substitui as preferências do usuário.
func (s *MemoryPreferenceStore) SetPreferences(_ context.Context, userID string, prefs *models.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID] = *prefs
	return nil
}

// GetProfile retorna o perfil do usuário, ou nil.
func (s *MemoryPreferenceStore) GetProfile(_ context.Context, userID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

// UpsertProfile substitui o perfil do usuário.
func (s *MemoryPreferenceStore) UpsertProfile(_ context.Context, userID string, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = *p
	return nil
}
