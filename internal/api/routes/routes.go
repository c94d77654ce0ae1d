package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"google.golang.org/genai"

	"github.com/founderhub/app-recs-engine/internal/api/handlers"
	"github.com/founderhub/app-recs-engine/internal/catalog"
	"github.com/founderhub/app-recs-engine/internal/config"
	"github.com/founderhub/app-recs-engine/internal/ledger"
	middlewares "github.com/founderhub/app-recs-engine/internal/middleware"
	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/recs"
	"github.com/founderhub/app-recs-engine/internal/recs/local"
	"github.com/founderhub/app-recs-engine/internal/services"
	"github.com/founderhub/app-recs-engine/internal/storage/sqlite"
)

// candidateSource é o que as rotas exigem de um Candidate Source: o contrato
// de ranking mais a listagem completa usada pelos modos de similaridade.
type candidateSource interface {
	catalog.Source
	All(ctx context.Context) ([]models.Resource, error)
}

// ledgerStore combina leitura, escrita e a listagem de eventos da estratégia
// local.
type ledgerStore interface {
	ledger.Ledger
	Events(ctx context.Context) ([]models.Interaction, error)
}

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.ExtractIdentity())
	if cfg.TracingEnabled {
		r.Use(middlewares.RequestTiming())
	}

	var (
		events   ledgerStore
		store    recs.Store
		prefs    handlers.PreferenceStore
		embStore services.EmbeddingStore
	)
	if cfg.SQLitePath != "" {
		sqlStore, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Erro ao abrir SQLite: %v", err)
		}
		events, store, prefs, embStore = sqlStore, sqlStore, sqlStore, sqlStore
	} else {
		events = ledger.NewMemoryLedger()
		store = recs.NewMemoryStore(0)
		prefs = services.NewMemoryPreferenceStore()
	}

	var (
		source candidateSource
		prober handlers.BackendProber
	)
	if cfg.RemoteEnabled() {
		ts := catalog.NewTypesenseSource(cfg.TypesenseURL(), cfg.TypesenseAPIKey, cfg.TypesenseCollection)
		source, prober = ts, ts
	} else if cfg.CatalogPath != "" {
		ms, err := catalog.NewMemorySourceFromFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Erro ao carregar catálogo local: %v", err)
		}
		source = ms
	} else {
		source = catalog.NewMemorySource(nil)
	}

	fallback := local.NewFallback(source, events)

	var strategy recs.Strategy = fallback
	var precomputer *recs.Precomputer
	if cfg.RemoteEnabled() {
		engine := recs.NewEngine(source, events, store, recs.EngineOptions{
			HighValueCategories: cfg.HighValueCategories,
			CacheTTL:            cfg.CacheTTL,
			Profiles:            prefs,
		})
		strategy = engine
		precomputer = recs.NewPrecomputer(engine, events, store)
	}

	var refresher *services.EmbeddingRefresher
	if embStore != nil {
		refresher = services.NewEmbeddingRefresher(newEmbeddingProvider(cfg), source, embStore)
	}

	recHandler := handlers.NewRecommendationsHandler(strategy, fallback)
	interactionsHandler := handlers.NewInteractionsHandler(events)
	prefsHandler := handlers.NewPreferencesHandler(prefs)
	adminHandler := handlers.NewAdminHandler(precomputer, refresher)
	healthHandler := handlers.NewHealthHandler(prober)

	api := r.Group("/api/v1")
	{
		api.GET("/recommendations", recHandler.Recommendations)
		api.GET("/recommendations/collaborative", recHandler.Collaborative)
		api.GET("/resources/:id/related", recHandler.Related)
		api.POST("/interactions", interactionsHandler.Record)

		authed := api.Group("", middlewares.RequireUser())
		{
			authed.GET("/preferences", prefsHandler.Get)
			authed.POST("/preferences", prefsHandler.Set)
			authed.GET("/profile", prefsHandler.GetProfile)
			authed.POST("/profile", prefsHandler.SetProfile)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/precompute", adminHandler.Precompute)
			admin.POST("/embeddings/refresh", adminHandler.RefreshEmbeddings)
		}
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// newEmbeddingProvider escolhe o provider: Gemini quando há API key, senão o
// fallback determinístico por keywords.
func newEmbeddingProvider(cfg *config.Config) services.EmbeddingProvider {
	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.GeminiAPIKey,
		})
		if err == nil {
			cache := services.NewLRUCache(cfg.EmbeddingCacheMaxSize)
			return services.NewGeminiEmbeddingProvider(client, cfg.GeminiEmbeddingModel, cache)
		}
		log.Printf("Erro ao inicializar cliente Gemini, usando fallback por keywords: %v", err)
	}
	return services.NewKeywordEmbeddingProvider(768)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-User-ID, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
