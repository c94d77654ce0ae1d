package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/founderhub/app-recs-engine/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "recs.db"))
	if err != nil {
		t.Fatalf("NewStore retornou erro: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreLedgerAggregation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	now := time.Now().UTC()

	events := []models.Interaction{
		{UserID: "1", ResourceID: "r1", Action: models.ActionView, Weight: 1, CreatedAt: now.Add(-time.Hour)},
		{UserID: "1", ResourceID: "r1", Action: models.ActionLike, Weight: 3, CreatedAt: now.Add(-time.Minute)},
		{UserID: "2", ResourceID: "r1", Action: models.ActionView, Weight: 1, CreatedAt: now.Add(-time.Hour)},
		{SessionID: "abc", ResourceID: "r2", Action: models.ActionClick, Weight: 2, CreatedAt: now.Add(-time.Hour)},
		// fora da janela de popularidade de 30 dias
		{UserID: "3", ResourceID: "r1", Action: models.ActionView, Weight: 10, CreatedAt: now.Add(-40 * 24 * time.Hour)},
	}
	for _, e := range events {
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append retornou erro: %v", err)
		}
	}

	popular, err := store.PopularWeight(ctx, "r1")
	if err != nil {
		t.Fatalf("PopularWeight retornou erro: %v", err)
	}
	if popular != 5 {
		t.Errorf("PopularWeight(r1) = %v, esperado 5 (evento antigo fora da janela)", popular)
	}

	self, err := store.SelfWeight(ctx, "u:1", "r1")
	if err != nil {
		t.Fatalf("SelfWeight retornou erro: %v", err)
	}
	if self != 4 {
		t.Errorf("SelfWeight(u:1, r1) = %v, esperado 4", self)
	}

	// SelfWeight fora da janela ainda conta (histórico completo)
	selfOld, err := store.SelfWeight(ctx, "u:3", "r1")
	if err != nil {
		t.Fatalf("SelfWeight retornou erro: %v", err)
	}
	if selfOld != 10 {
		t.Errorf("SelfWeight(u:3, r1) = %v, esperado 10", selfOld)
	}

	ids, err := store.InteractedResources(ctx, "s:abc")
	if err != nil {
		t.Fatalf("InteractedResources retornou erro: %v", err)
	}
	if len(ids) != 1 || ids[0] != "r2" {
		t.Errorf("InteractedResources(s:abc) = %v, esperado [r2]", ids)
	}

	active, err := store.ActiveIdentities(ctx, now.Add(-7*24*time.Hour), 500)
	if err != nil {
		t.Fatalf("ActiveIdentities retornou erro: %v", err)
	}
	if len(active) != 3 {
		t.Errorf("ActiveIdentities = %v, esperado 3 identidades", active)
	}
	if active[0] != "u:1" {
		t.Errorf("identidade mais ativa %q, esperado u:1", active[0])
	}
}

func TestStoreLedgerEmptyIdentity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if w, err := store.SelfWeight(ctx, "u:ghost", "r1"); err != nil || w != 0 {
		t.Errorf("identidade sem histórico: weight=%v err=%v, esperado 0, nil", w, err)
	}
	if ids, err := store.InteractedResources(ctx, "u:ghost"); err != nil || len(ids) != 0 {
		t.Errorf("identidade sem histórico: ids=%v err=%v, esperado vazio, nil", ids, err)
	}
}

func TestStoreCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	entry := []models.Recommendation{{ResourceID: "r1", Title: "Raising a Seed Round", Score: 3.5}}
	if err := store.SetCache(ctx, "abc", entry, time.Minute); err != nil {
		t.Fatalf("SetCache retornou erro: %v", err)
	}

	got, ok, err := store.GetCache(ctx, "abc")
	if err != nil || !ok {
		t.Fatalf("GetCache: ok=%v err=%v, esperado hit", ok, err)
	}
	if len(got) != 1 || got[0].ResourceID != "r1" || got[0].Score != 3.5 {
		t.Errorf("entrada divergente após round-trip: %+v", got)
	}

	// entrada expirada conta como miss
	if err := store.SetCache(ctx, "old", entry, -time.Minute); err != nil {
		t.Fatalf("SetCache retornou erro: %v", err)
	}
	if _, ok, _ := store.GetCache(ctx, "old"); ok {
		t.Error("entrada expirada não deveria ser servida")
	}

	pruned, err := store.PruneCache(ctx)
	if err != nil {
		t.Fatalf("PruneCache retornou erro: %v", err)
	}
	if pruned != 1 {
		t.Errorf("PruneCache removeu %d, esperado 1", pruned)
	}
}

func TestStorePrecomputedUpsert(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, _, ok, _ := store.GetPrecomputed(ctx, "u:7"); ok {
		t.Fatal("identidade sem precompute não deveria ter entrada")
	}

	if err := store.UpsertPrecomputed(ctx, "u:7", []models.Recommendation{{ResourceID: "r1"}}); err != nil {
		t.Fatalf("UpsertPrecomputed retornou erro: %v", err)
	}
	if err := store.UpsertPrecomputed(ctx, "u:7", []models.Recommendation{{ResourceID: "r2"}}); err != nil {
		t.Fatalf("UpsertPrecomputed retornou erro: %v", err)
	}

	entry, updatedAt, ok, err := store.GetPrecomputed(ctx, "u:7")
	if err != nil || !ok {
		t.Fatalf("GetPrecomputed: ok=%v err=%v", ok, err)
	}
	if len(entry) != 1 || entry[0].ResourceID != "r2" {
		t.Errorf("upsert não substituiu: %+v", entry)
	}
	if updatedAt.IsZero() {
		t.Error("updatedAt zerado")
	}
}

func TestStoreEmbeddings(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	vector := []float32{0.1, -0.2, 0.3}
	if err := store.UpsertEmbedding(ctx, "r1", vector); err != nil {
		t.Fatalf("UpsertEmbedding retornou erro: %v", err)
	}

	got, ok, err := store.GetEmbedding(ctx, "r1")
	if err != nil || !ok {
		t.Fatalf("GetEmbedding: ok=%v err=%v", ok, err)
	}
	if len(got) != 3 || got[1] != -0.2 {
		t.Errorf("vetor divergente: %v", got)
	}

	if _, ok, _ := store.GetEmbedding(ctx, "r9"); ok {
		t.Error("resource sem embedding não deveria ter entrada")
	}
}

func TestStorePreferencesAndProfile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// sem gravação prévia, defaults
	prefs, err := store.GetPreferences(ctx, "7")
	if err != nil {
		t.Fatalf("GetPreferences retornou erro: %v", err)
	}
	if prefs.PreferredDifficulty != "intermediate" {
		t.Errorf("default de dificuldade %q, esperado intermediate", prefs.PreferredDifficulty)
	}

	prefs.PreferredIndustries = []string{"Fintech"}
	prefs.NotificationFrequency = "daily"
	if err := store.SetPreferences(ctx, "7", prefs); err != nil {
		t.Fatalf("SetPreferences retornou erro: %v", err)
	}

	got, err := store.GetPreferences(ctx, "7")
	if err != nil {
		t.Fatalf("GetPreferences retornou erro: %v", err)
	}
	if len(got.PreferredIndustries) != 1 || got.NotificationFrequency != "daily" {
		t.Errorf("preferências divergentes: %+v", got)
	}

	if p, err := store.GetProfile(ctx, "7"); err != nil || p != nil {
		t.Errorf("usuário sem perfil: p=%v err=%v, esperado nil, nil", p, err)
	}

	profile := &models.Profile{Industry: "Fintech", Stage: "Seed", Region: "LATAM"}
	if err := store.UpsertProfile(ctx, "7", profile); err != nil {
		t.Fatalf("UpsertProfile retornou erro: %v", err)
	}
	p, err := store.GetProfile(ctx, "7")
	if err != nil || p == nil {
		t.Fatalf("GetProfile: p=%v err=%v", p, err)
	}
	if p.Stage != "Seed" || p.Region != "LATAM" {
		t.Errorf("perfil divergente: %+v", p)
	}
}
