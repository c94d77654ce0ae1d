// Batch runner de precompute: materializa listas de recomendação para as
// identidades ativas e sai. O agendamento (cron, Kubernetes CronJob) fica
// fora; este binário é uma rodada única, a mesma operação do endpoint
// administrativo.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/founderhub/app-recs-engine/internal/catalog"
	"github.com/founderhub/app-recs-engine/internal/config"
	"github.com/founderhub/app-recs-engine/internal/recs"
	"github.com/founderhub/app-recs-engine/internal/storage/sqlite"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Minute, "Tempo máximo da rodada")
	flag.Parse()

	cfg := config.LoadConfig()

	if !cfg.RemoteEnabled() {
		log.Fatal("Precompute exige a estratégia remota (TYPESENSE_API_KEY configurado)")
	}
	if cfg.SQLitePath == "" {
		log.Fatal("Precompute exige persistência (SQLITE_PATH configurado)")
	}

	store, err := sqlite.NewStore(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Erro ao abrir SQLite: %v", err)
	}
	defer store.Close()

	source := catalog.NewTypesenseSource(cfg.TypesenseURL(), cfg.TypesenseAPIKey, cfg.TypesenseCollection)
	engine := recs.NewEngine(source, store, store, recs.EngineOptions{
		HighValueCategories: cfg.HighValueCategories,
		CacheTTL:            cfg.CacheTTL,
		Profiles:            store,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	updated, err := recs.NewPrecomputer(engine, store, store).Run(ctx)
	if err != nil {
		log.Fatalf("Erro na rodada de precompute: %v", err)
	}

	log.Printf("Precompute concluído: %d identidades atualizadas em %s", updated, time.Since(start).Round(time.Millisecond))
}
