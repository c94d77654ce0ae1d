package recs

import (
	"context"

	"github.com/founderhub/app-recs-engine/internal/models"
)

// Nomes das estratégias expostos na resposta.
const (
	StrategyRemote = "remote"
	StrategyLocal  = "local"
)

// Strategy é o contrato de ranking implementado pela engine remota e pelo
// fallback local. A seleção acontece uma única vez na montagem do serviço
// (backend configurado ou não); nenhuma lógica compartilhada deve ramificar
// nessa flag. As escalas numéricas das duas implementações são
// deliberadamente diferentes (remota não limitada, local em [0,1]) e nunca
// são comparadas nem mescladas entre si.
type Strategy interface {
	Recommend(ctx context.Context, req *models.RecRequest) (*models.RecResponse, error)
}
