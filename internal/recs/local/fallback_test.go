package local

import (
	"context"
	"math"
	"testing"

	"github.com/founderhub/app-recs-engine/internal/catalog"
	"github.com/founderhub/app-recs-engine/internal/ledger"
	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/recs"
)

func testResources() []models.Resource {
	return []models.Resource{
		{
			ID:           "r1",
			Title:        "Raising a Seed Round",
			Body:         "Structuring your first priced round.",
			Category:     "fundraising",
			Difficulty:   "intermediate",
			Tags:         []string{"fundraising", "pitch"},
			IndustryTags: []string{"Fintech"},
			StageTags:    []string{"Seed"},
		},
		{
			ID:           "r2",
			Title:        "Term Sheets Explained",
			Body:         "Reading the clauses that matter.",
			Category:     "fundraising",
			Difficulty:   "intermediate",
			Tags:         []string{"fundraising", "legal"},
			IndustryTags: []string{"Fintech"},
			StageTags:    []string{"Seed"},
		},
		{
			ID:         "r3",
			Title:      "Hiring Your First Engineer",
			Body:       "Closing early hires.",
			Category:   "hiring",
			Difficulty: "beginner",
			Tags:       []string{"hiring"},
			ViewCount:  20000,
			RatingAvg:  4.8,
		},
	}
}

func newFallback(events []models.Interaction) *Fallback {
	l := ledger.NewMemoryLedger()
	l.Seed(events)
	return NewFallback(catalog.NewMemorySource(testResources()), l)
}

func TestFallbackRecommendScoresAndClamps(t *testing.T) {
	f := newFallback(nil)

	resp, err := f.Recommend(context.Background(), &models.RecRequest{
		UserID:   "7",
		Industry: "Fintech",
		Stage:    "Seed",
	})
	if err != nil {
		t.Fatalf("Recommend retornou erro: %v", err)
	}
	if resp.Strategy != recs.StrategyLocal {
		t.Errorf("strategy %q, esperado %q", resp.Strategy, recs.StrategyLocal)
	}

	for _, rec := range resp.Results {
		if rec.Score <= 0 || rec.Score > 1 {
			t.Errorf("%s: score %v fora de (0,1]", rec.ResourceID, rec.Score)
		}
	}

	// r1 e r2: industry (0.3) + stage (0.3); r3: rating (0.2) + views (0.1)
	if len(resp.Results) != 3 {
		t.Fatalf("count %d, esperado 3", resp.Count)
	}
	first := resp.Results[0]
	if first.ResourceID != "r1" {
		t.Errorf("primeiro resultado %q, esperado r1 (empate resolvido pela ordem do catálogo)", first.ResourceID)
	}
	if math.Abs(first.Score-0.6) > 1e-9 {
		t.Errorf("score %v, esperado 0.6", first.Score)
	}
	last := resp.Results[2]
	if last.ResourceID != "r3" || math.Abs(last.Score-0.3) > 1e-9 {
		t.Errorf("último resultado %+v, esperado r3 com 0.3", last)
	}
}

func TestFallbackSeenPenaltyDropsResource(t *testing.T) {
	events := []models.Interaction{
		{UserID: "7", ResourceID: "r3", Action: models.ActionView, Weight: 1},
	}
	f := newFallback(events)

	// r3 valeria 0.3 (rating + views); com a penalidade de -0.5 cai para
	// não-positivo e some da lista
	resp, err := f.Recommend(context.Background(), &models.RecRequest{UserID: "7", Industry: "Fintech"})
	if err != nil {
		t.Fatalf("Recommend retornou erro: %v", err)
	}
	for _, rec := range resp.Results {
		if rec.ResourceID == "r3" {
			t.Errorf("resource já visto com score não-positivo apareceu na lista: %+v", rec)
		}
	}
	if resp.Count == 0 {
		t.Error("os demais resources deveriam permanecer")
	}
}

func TestFallbackDropsNonPositive(t *testing.T) {
	f := newFallback(nil)

	// sem contexto e sem histórico, só r3 tem sinais (rating + views)
	resp, err := f.Recommend(context.Background(), &models.RecRequest{UserID: "7"})
	if err != nil {
		t.Fatalf("Recommend retornou erro: %v", err)
	}
	if resp.Count != 1 || resp.Results[0].ResourceID != "r3" {
		t.Errorf("esperado apenas r3, veio %+v", resp.Results)
	}
}

func TestFallbackRelated(t *testing.T) {
	f := newFallback(nil)

	related, err := f.Related(context.Background(), "r1")
	if err != nil {
		t.Fatalf("Related retornou erro: %v", err)
	}

	// r2: categoria (0.3) + 1 tag (0.1) + dificuldade (0.1) + 1 industry (0.15)
	if len(related) != 1 {
		t.Fatalf("esperado 1 relacionado, veio %d", len(related))
	}
	rec := related[0]
	if rec.ResourceID != "r2" {
		t.Errorf("relacionado %q, esperado r2", rec.ResourceID)
	}
	if math.Abs(rec.Score-0.65) > 1e-9 {
		t.Errorf("score %v, esperado 0.65", rec.Score)
	}

	for _, r := range related {
		if r.ResourceID == "r1" {
			t.Error("o próprio alvo apareceu como relacionado")
		}
	}
}

func TestFallbackRelatedNotFound(t *testing.T) {
	f := newFallback(nil)
	if _, err := f.Related(context.Background(), "inexistente"); err != models.ErrResourceNotFound {
		t.Errorf("erro %v, esperado ErrResourceNotFound", err)
	}
}

func TestFallbackCollaborative(t *testing.T) {
	events := []models.Interaction{
		// requester viu r1
		{UserID: "7", ResourceID: "r1", Action: models.ActionView, Weight: 1},
		// peer compartilha r1 e tocou r2 e r3
		{UserID: "9", ResourceID: "r1", Action: models.ActionView, Weight: 1},
		{UserID: "9", ResourceID: "r2", Action: models.ActionLike, Weight: 3},
		{UserID: "9", ResourceID: "r3", Action: models.ActionView, Weight: 1},
		// identidade sem overlap não contribui
		{UserID: "11", ResourceID: "r3", Action: models.ActionView, Weight: 1},
	}
	f := newFallback(events)

	recsOut, err := f.Collaborative(context.Background(), &models.RecRequest{UserID: "7"})
	if err != nil {
		t.Fatalf("Collaborative retornou erro: %v", err)
	}

	ids := make(map[string]bool)
	for _, rec := range recsOut {
		ids[rec.ResourceID] = true
	}
	if ids["r1"] {
		t.Error("resource já visto pelo requester apareceu nas sugestões")
	}
	if !ids["r2"] || !ids["r3"] {
		t.Errorf("esperado r2 e r3 nas sugestões, veio %v", ids)
	}
}

func TestFallbackCollaborativeNoHistory(t *testing.T) {
	f := newFallback(nil)

	recsOut, err := f.Collaborative(context.Background(), &models.RecRequest{UserID: "7"})
	if err != nil {
		t.Fatalf("Collaborative retornou erro: %v", err)
	}
	if len(recsOut) != 0 {
		t.Errorf("requester sem histórico deveria receber lista vazia, veio %v", recsOut)
	}
}
