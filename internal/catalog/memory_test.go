package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/founderhub/app-recs-engine/internal/models"
)

func testResources() []models.Resource {
	return []models.Resource{
		{ID: "r1", Title: "Raising a Seed Round", Body: "How to build a pitch deck", Category: "fundraising",
			IndustryTags: []string{"Fintech"}, StageTags: []string{"Seed"}, RegionTags: []string{"LATAM"}, Tags: []string{"pitch", "vc"}},
		{ID: "r2", Title: "Hiring Your First Engineer", Body: "Recruiting basics", Category: "hiring",
			IndustryTags: []string{"SaaS"}, StageTags: []string{"Seed", "Series A"}, RegionTags: []string{"US"}, Tags: []string{"hiring"}},
		{ID: "r3", Title: "Growth Loops Explained", Body: "Retention and loops", Category: "growth",
			IndustryTags: []string{"Fintech & Banking"}, StageTags: []string{"Growth"}, RegionTags: []string{"LATAM"}, Tags: []string{"growth"}},
	}
}

func TestMemorySourceFetchFilters(t *testing.T) {
	src := NewMemorySource(testResources())

	tests := []struct {
		name    string
		rctx    models.RecContext
		wantIDs []string
	}{
		{
			name:    "sem filtro retorna tudo",
			rctx:    models.RecContext{},
			wantIDs: []string{"r1", "r2", "r3"},
		},
		{
			name:    "industry por substring case-insensitive",
			rctx:    models.RecContext{Industry: "fintech"},
			wantIDs: []string{"r1", "r3"},
		},
		{
			name:    "stage",
			rctx:    models.RecContext{Stage: "Seed"},
			wantIDs: []string{"r1", "r2"},
		},
		{
			name:    "region e industry combinados",
			rctx:    models.RecContext{Industry: "Fintech", Region: "LATAM"},
			wantIDs: []string{"r1", "r3"},
		},
		{
			name:    "query textual sobre título",
			rctx:    models.RecContext{Query: "seed round"},
			wantIDs: []string{"r1"},
		},
		{
			name:    "query sem match retorna vazio",
			rctx:    models.RecContext{Query: "kubernetes"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Fetch(context.Background(), tt.rctx, 10)
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Fetch retornou %d resources, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("Fetch[%d].ID = %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestMemorySourceFetchOverfetchCap(t *testing.T) {
	resources := make([]models.Resource, 0, 30)
	for i := 0; i < 30; i++ {
		resources = append(resources, models.Resource{ID: string(rune('a' + i)), Title: "Resource"})
	}
	src := NewMemorySource(resources)

	got, err := src.Fetch(context.Background(), models.RecContext{}, 2)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 2*OverfetchFactor {
		t.Errorf("Fetch com limit=2 deveria retornar no máximo %d, got %d", 2*OverfetchFactor, len(got))
	}
}

func TestMemorySourceGet(t *testing.T) {
	src := NewMemorySource(testResources())

	r, err := src.Get(context.Background(), "r2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Title != "Hiring Your First Engineer" {
		t.Errorf("Get(r2).Title = %q", r.Title)
	}
	if r.Permalink == "" {
		t.Error("permalink deveria ser derivado do título")
	}

	if _, err := src.Get(context.Background(), "nope"); !errors.Is(err, models.ErrResourceNotFound) {
		t.Errorf("Get(nope) = %v, want ErrResourceNotFound", err)
	}
}
