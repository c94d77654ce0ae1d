package ranking

import "context"

// Incrementos de referência dos boosters.
const (
	DefaultCollaborativeIncrement = 0.2
	DefaultEmbeddingIncrement     = 0.1
)

// Booster é um passo de pós-processamento aplicado a todos os candidatos já
// pontuados. Ajuste puramente aditivo: nunca reordena nem remove.
type Booster interface {
	Apply(ctx context.Context, identityKey string, candidates []Candidate) error
}

// CollaborativeBooster aplica um incremento fixo quando a identidade tem
// qualquer histórico de interação. Trocar por collaborative filtering
// user-user real não toca o scorer.
type CollaborativeBooster struct {
	Increment float64
	Ledger    LedgerReader
}

// NewCollaborativeBooster cria o booster com o incremento de referência.
func NewCollaborativeBooster(ledger LedgerReader) *CollaborativeBooster {
	return &CollaborativeBooster{
		Increment: DefaultCollaborativeIncrement,
		Ledger:    ledger,
	}
}

// Apply soma o incremento a todos os candidatos se a identidade tem histórico.
func (b *CollaborativeBooster) Apply(ctx context.Context, identityKey string, candidates []Candidate) error {
	if identityKey == "" || len(candidates) == 0 {
		return nil
	}

	history, err := b.Ledger.InteractedResources(ctx, identityKey)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return nil
	}

	for i := range candidates {
		candidates[i].Score += b.Increment
	}
	return nil
}

// EmbeddingBooster aplica um incremento fixo no lugar de similaridade por
// cosseno sobre vetores de conteúdo. Ponto de extensão explícito: uma
// implementação real recebe os vetores persistidos pelo embedding provider.
type EmbeddingBooster struct {
	Increment float64
}

// NewEmbeddingBooster cria o booster com o incremento de referência.
func NewEmbeddingBooster() *EmbeddingBooster {
	return &EmbeddingBooster{Increment: DefaultEmbeddingIncrement}
}

// Apply soma o incremento a todos os candidatos.
func (b *EmbeddingBooster) Apply(_ context.Context, identityKey string, candidates []Candidate) error {
	if identityKey == "" {
		return nil
	}
	for i := range candidates {
		candidates[i].Score += b.Increment
	}
	return nil
}
