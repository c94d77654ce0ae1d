package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/app-recs-engine/internal/catalog"
	"github.com/founderhub/app-recs-engine/internal/ledger"
	middlewares "github.com/founderhub/app-recs-engine/internal/middleware"
	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/recs/local"
	"github.com/founderhub/app-recs-engine/internal/services"
)

func testRouter(t *testing.T) (*gin.Engine, *ledger.MemoryLedger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	events := ledger.NewMemoryLedger()
	source := catalog.NewMemorySource([]models.Resource{
		{
			ID:           "r1",
			Title:        "Raising a Seed Round",
			Body:         "Structuring your first priced round.",
			Category:     "fundraising",
			IndustryTags: []string{"Fintech"},
			StageTags:    []string{"Seed"},
		},
		{ID: "r2", Title: "Hiring Your First Engineer", Body: "Closing early hires.", RatingAvg: 4.9},
	})
	fallback := local.NewFallback(source, events)

	recHandler := NewRecommendationsHandler(fallback, fallback)
	interactionsHandler := NewInteractionsHandler(events)
	prefsHandler := NewPreferencesHandler(services.NewMemoryPreferenceStore())

	r := gin.New()
	r.Use(middlewares.ExtractIdentity())
	api := r.Group("/api/v1")
	api.GET("/recommendations", recHandler.Recommendations)
	api.GET("/recommendations/collaborative", recHandler.Collaborative)
	api.GET("/resources/:id/related", recHandler.Related)
	api.POST("/interactions", interactionsHandler.Record)
	authed := api.Group("", middlewares.RequireUser())
	authed.GET("/preferences", prefsHandler.Get)
	authed.POST("/preferences", prefsHandler.Set)

	return r, events
}

func TestRecordInteraction(t *testing.T) {
	r, events := testRouter(t)

	body := `{"user_id":"7","resource_id":"r1","action":"like","weight":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status %d, esperado 202: %s", w.Code, w.Body.String())
	}

	stored, _ := events.Events(context.Background())
	if len(stored) != 1 || stored[0].Action != models.ActionLike || stored[0].Weight != 3 {
		t.Errorf("evento não gravado como esperado: %+v", stored)
	}
}

func TestRecordInteractionRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"ação inválida", `{"user_id":"7","resource_id":"r1","action":"purchase"}`},
		{"sem resource_id", `{"user_id":"7","action":"view"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, events := testRouter(t)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status %d, esperado 400", w.Code)
			}
			if stored, _ := events.Events(context.Background()); len(stored) != 0 {
				t.Errorf("requisição rejeitada não deveria gravar nada: %+v", stored)
			}
		})
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?industry=Fintech&stage=Seed", nil)
	req.Header.Set("X-User-ID", "7")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, esperado 200: %s", w.Code, w.Body.String())
	}

	var resp models.RecResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp.Strategy != "local" {
		t.Errorf("strategy %q, esperado local", resp.Strategy)
	}
	if resp.Count == 0 {
		t.Error("esperado pelo menos um resultado para o contexto Fintech/Seed")
	}
	for _, rec := range resp.Results {
		if rec.Explanation == "" {
			t.Errorf("%s sem explanation", rec.ResourceID)
		}
	}
}

func TestRelatedEndpointNotFound(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/nope/related", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, esperado 404", w.Code)
	}
}

func TestPreferencesRequireIdentity(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("sem identidade: status %d, esperado 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	req.Header.Set("X-User-ID", "7")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("com identidade: status %d, esperado 200", w.Code)
	}

	var prefs models.Preferences
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if prefs.PreferredDifficulty != "intermediate" {
		t.Errorf("default de dificuldade %q, esperado intermediate", prefs.PreferredDifficulty)
	}
}

func TestPreferencesWriteRoundTrip(t *testing.T) {
	r, _ := testRouter(t)

	body := `{"preferred_industries":["Fintech"],"preferred_difficulty":"advanced","notification_frequency":"daily"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/preferences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, esperado 200: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)
	req.Header.Set("X-User-ID", "7")
	r.ServeHTTP(w, req)

	var prefs models.Preferences
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if prefs.PreferredDifficulty != "advanced" || len(prefs.PreferredIndustries) != 1 {
		t.Errorf("preferências divergentes após escrita: %+v", prefs)
	}
}

func TestPreferencesRejectInvalidEnum(t *testing.T) {
	r, _ := testRouter(t)

	body := `{"preferred_difficulty":"expert"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/preferences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, esperado 400", w.Code)
	}
}
