package ranking

import (
	"context"
	"strings"
	"testing"

	"github.com/founderhub/app-recs-engine/internal/models"
)

func TestAssembleSortsDescendingStable(t *testing.T) {
	candidates := []Candidate{
		{Resource: models.Resource{ID: "a"}, Score: 1},
		{Resource: models.Resource{ID: "b"}, Score: 3},
		{Resource: models.Resource{ID: "c"}, Score: 3},
		{Resource: models.Resource{ID: "d"}, Score: 2},
	}

	out := Assemble(candidates, models.RecContext{}, 10)

	wantOrder := []string{"b", "c", "d", "a"}
	if len(out) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(out), len(wantOrder))
	}
	for i, want := range wantOrder {
		if out[i].ResourceID != want {
			t.Errorf("out[%d] = %s, want %s (empate deve preservar ordem de chegada)", i, out[i].ResourceID, want)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Errorf("lista não está em ordem decrescente na posição %d", i)
		}
	}
}

func TestAssembleTruncatesAndClamps(t *testing.T) {
	candidates := make([]Candidate, 0, 60)
	for i := 0; i < 60; i++ {
		candidates = append(candidates, Candidate{
			Resource: models.Resource{ID: string(rune('A' + i))},
			Score:    float64(60 - i),
		})
	}

	if got := Assemble(candidates, models.RecContext{}, 5); len(got) != 5 {
		t.Errorf("limit=5 deveria truncar em 5, got %d", len(got))
	}
	if got := Assemble(candidates, models.RecContext{}, 0); len(got) != models.DefaultLimit {
		t.Errorf("limit=0 deveria usar default %d, got %d", models.DefaultLimit, len(got))
	}
	if got := Assemble(candidates, models.RecContext{}, 200); len(got) != models.MaxLimit {
		t.Errorf("limit=200 deveria saturar em %d, got %d", models.MaxLimit, len(got))
	}
}

func TestAssembleUniqueResourceIDs(t *testing.T) {
	candidates := []Candidate{
		{Resource: models.Resource{ID: "a"}, Score: 3},
		{Resource: models.Resource{ID: "a"}, Score: 1},
		{Resource: models.Resource{ID: "b"}, Score: 2},
	}

	out := Assemble(candidates, models.RecContext{}, 10)

	if len(out) != 2 {
		t.Fatalf("ids duplicados deveriam ser descartados, got %d itens", len(out))
	}
	seen := make(map[string]bool)
	for _, rec := range out {
		if seen[rec.ResourceID] {
			t.Errorf("resource id %s duplicado no resultado", rec.ResourceID)
		}
		seen[rec.ResourceID] = true
	}
}

func TestAssembleExplanation(t *testing.T) {
	candidates := []Candidate{
		{
			Resource: models.Resource{ID: "a", Title: "Raising a Seed Round", Body: "How to **pitch**"},
			Score:    3,
			Reasons:  []string{ReasonIndustry, ReasonIndustry, ReasonTrending},
		},
	}

	out := Assemble(candidates, models.RecContext{Stage: "Seed", Region: "LATAM"}, 10)
	if len(out) != 1 {
		t.Fatalf("len = %d", len(out))
	}

	want := "Based on your stage Seed and region LATAM, we recommend this because: " +
		ReasonIndustry + "; " + ReasonTrending
	if out[0].Explanation != want {
		t.Errorf("Explanation = %q, want %q", out[0].Explanation, want)
	}
	if out[0].Excerpt != "How to pitch" {
		t.Errorf("Excerpt = %q, markdown deveria ser removido", out[0].Excerpt)
	}
}

func TestAssembleExplanationEmptyContext(t *testing.T) {
	candidates := []Candidate{
		{Resource: models.Resource{ID: "a"}, Score: 1, Reasons: []string{ReasonTrending}},
	}

	out := Assemble(candidates, models.RecContext{}, 10)
	if !strings.HasPrefix(out[0].Explanation, "Based on your profile, ") {
		t.Errorf("contexto vazio deveria usar prefixo 'your profile': %q", out[0].Explanation)
	}
}

func TestBoosters(t *testing.T) {
	ledger := emptyLedger()
	ledger.history["u:1"] = []string{"r9"}

	candidates := []Candidate{
		{Resource: models.Resource{ID: "a"}, Score: 1},
		{Resource: models.Resource{ID: "b"}, Score: 0},
	}

	collab := NewCollaborativeBooster(ledger)
	embed := NewEmbeddingBooster()

	if err := collab.Apply(context.Background(), "u:1", candidates); err != nil {
		t.Fatalf("collab.Apply: %v", err)
	}
	if err := embed.Apply(context.Background(), "u:1", candidates); err != nil {
		t.Fatalf("embed.Apply: %v", err)
	}

	if candidates[0].Score != 1.3 {
		t.Errorf("score = %v, want 1.3 (1 + 0.2 + 0.1)", candidates[0].Score)
	}
	if candidates[1].Score != 0.3 {
		t.Errorf("score = %v, want 0.3", candidates[1].Score)
	}
	// ordem intocada
	if candidates[0].Resource.ID != "a" || candidates[1].Resource.ID != "b" {
		t.Error("boosters não podem reordenar candidatos")
	}
}

func TestBoostersSkipWithoutIdentity(t *testing.T) {
	ledger := emptyLedger()
	ledger.history["u:1"] = []string{"r9"}

	candidates := []Candidate{{Resource: models.Resource{ID: "a"}, Score: 1}}

	_ = NewCollaborativeBooster(ledger).Apply(context.Background(), "", candidates)
	_ = NewEmbeddingBooster().Apply(context.Background(), "", candidates)

	if candidates[0].Score != 1 {
		t.Errorf("sem identidade nenhum booster aplica, got %v", candidates[0].Score)
	}
}

func TestCollaborativeBoosterNoHistory(t *testing.T) {
	candidates := []Candidate{{Resource: models.Resource{ID: "a"}, Score: 1}}

	if err := NewCollaborativeBooster(emptyLedger()).Apply(context.Background(), "u:77", candidates); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if candidates[0].Score != 1 {
		t.Errorf("identidade sem histórico não recebe boost colaborativo, got %v", candidates[0].Score)
	}
}
