package main

import (
	"log"

	_ "github.com/founderhub/app-recs-engine/docs"
	"github.com/founderhub/app-recs-engine/internal/api/routes"
	"github.com/founderhub/app-recs-engine/internal/config"
	"github.com/founderhub/app-recs-engine/internal/observability"
)

//go:generate swag init -g main.go -d .,../../internal -o ../../docs

// @title           Founder Resources Recommendation API
// @version         1.0
// @description     API de recomendação de conteúdo para founders: scoring server-side com cache e precompute, fallback heurístico local e ingestão de interações

// @contact.name   FounderHub
// @contact.url    https://founderhub.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {

	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Servidor iniciado na porta %s (estratégia %s)", cfg.ServerPort, cfg.RankingBackend)
	err := r.Run(":" + cfg.ServerPort)
	if err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
