package ledger

import (
	"context"
	"time"

	"github.com/founderhub/app-recs-engine/internal/models"
)

// PopularityWindow é a janela de agregação da popularidade populacional.
const PopularityWindow = 30 * 24 * time.Hour

// ActivityWindow é a janela usada pelo job de precompute para selecionar
// identidades ativas.
const ActivityWindow = 7 * 24 * time.Hour

// Reader é a visão somente-leitura do log de interações. Identidades sem
// histórico retornam zero/vazio, nunca erro.
type Reader interface {
	// PopularWeight soma os pesos de interação com o resource na janela de
	// 30 dias, através de todas as identidades.
	PopularWeight(ctx context.Context, resourceID string) (float64, error)

	// SelfWeight soma os pesos históricos do par (identidade, resource).
	SelfWeight(ctx context.Context, identityKey, resourceID string) (float64, error)

	// InteractedResources retorna o conjunto histórico completo de resource
	// ids com que a identidade interagiu, na ordem da primeira interação.
	InteractedResources(ctx context.Context, identityKey string) ([]string, error)

	// ActiveIdentities retorna até limit chaves de identidade com alguma
	// interação desde o instante dado.
	ActiveIdentities(ctx context.Context, since time.Time, limit int) ([]string, error)
}

// Writer grava eventos no ledger. Append puro: duplicatas nunca são
// rejeitadas.
type Writer interface {
	Append(ctx context.Context, event models.Interaction) error
}

// Ledger combina leitura e escrita sobre o mesmo log.
type Ledger interface {
	Reader
	Writer
}
