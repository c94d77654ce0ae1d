package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"strings"
	"time"

	"google.golang.org/genai"
)

// EmbeddingProvider gera vetores de conteúdo para resources. Os vetores
// alimentam o booster de similaridade; hoje o booster usa um incremento
// fixo, mas os vetores já ficam persistidos para a troca futura por
// similaridade de cosseno real.
type EmbeddingProvider interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GetDimensions() int
	GetModelName() string
}

// GeminiEmbeddingProvider implementa EmbeddingProvider usando Google Gemini.
type GeminiEmbeddingProvider struct {
	client     *genai.Client
	modelName  string
	dimensions int
	timeout    time.Duration
	cache      Cache
	maxRetries int
}

// NewGeminiEmbeddingProvider cria o provider Gemini. Dimensão fixa em 768.
func NewGeminiEmbeddingProvider(client *genai.Client, modelName string, cache Cache) *GeminiEmbeddingProvider {
	return &GeminiEmbeddingProvider{
		client:     client,
		modelName:  modelName,
		dimensions: 768,
		timeout:    15 * time.Second,
		cache:      cache,
		maxRetries: 3,
	}
}

// GenerateEmbedding gera o embedding de um texto, com cache e retry.
func (g *GeminiEmbeddingProvider) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	const maxChars = 10000
	if len(text) > maxChars {
		text = text[:maxChars]
	}

	cacheKey := g.getCacheKey(text)
	if cached := g.cache.Get(cacheKey); cached != nil {
		return cached.([]float32), nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var embedding []float32
	var lastErr error

	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		embedding, lastErr = g.generate(ctxWithTimeout, text)
		if lastErr == nil {
			g.cache.Set(cacheKey, embedding, 30*time.Minute)
			return embedding, nil
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context canceled: %w", ctx.Err())
		}

		if attempt < g.maxRetries {
			log.Printf("geração de embedding falhou (tentativa %d/%d): %v", attempt, g.maxRetries, lastErr)
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	return nil, fmt.Errorf("falha após %d tentativas: %w", g.maxRetries, lastErr)
}

func (g *GeminiEmbeddingProvider) generate(ctx context.Context, text string) ([]float32, error) {
	content := genai.NewContentFromText(text, genai.RoleUser)
	outputDim := int32(g.dimensions)
	config := &genai.EmbedContentConfig{
		OutputDimensionality: &outputDim,
	}

	resp, err := g.client.Models.EmbedContent(ctx, g.modelName, []*genai.Content{content}, config)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar embedding: %w", err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("nenhum embedding foi gerado")
	}

	embedding := resp.Embeddings[0].Values
	if len(embedding) != g.dimensions {
		return nil, fmt.Errorf("embedding retornou %d dimensões, esperado %d", len(embedding), g.dimensions)
	}
	return embedding, nil
}

// GetDimensions retorna o número de dimensões dos embeddings.
func (g *GeminiEmbeddingProvider) GetDimensions() int {
	return g.dimensions
}

// GetModelName retorna o nome do modelo usado.
func (g *GeminiEmbeddingProvider) GetModelName() string {
	return g.modelName
}

func (g *GeminiEmbeddingProvider) getCacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "embedding:" + hex.EncodeToString(hash[:])
}

// KeywordEmbeddingProvider é o fallback sem API key: projeta os tokens do
// texto em um vetor fixo por hashing, normalizado em L2. Determinístico e
// barato; suficiente para o booster stub e para testes.
type KeywordEmbeddingProvider struct {
	dimensions int
}

// Máximo de tokens únicos considerados por texto.
const maxKeywordTokens = 128

// NewKeywordEmbeddingProvider cria o provider de fallback.
func NewKeywordEmbeddingProvider(dimensions int) *KeywordEmbeddingProvider {
	if dimensions <= 0 {
		dimensions = 768
	}
	return &KeywordEmbeddingProvider{dimensions: dimensions}
}

// GenerateEmbedding projeta os primeiros maxKeywordTokens tokens únicos do
// texto (minúsculos) no vetor.
func (k *KeywordEmbeddingProvider) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, k.dimensions)

	seen := make(map[string]bool)
	count := 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?\"'()[]")
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true

		h := fnv.New32a()
		h.Write([]byte(token))
		vector[h.Sum32()%uint32(k.dimensions)] += 1

		count++
		if count >= maxKeywordTokens {
			break
		}
	}

	var norm float64
	for _, v := range vector {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vector {
			vector[i] *= scale
		}
	}
	return vector, nil
}

// GetDimensions retorna o número de dimensões dos embeddings.
func (k *KeywordEmbeddingProvider) GetDimensions() int {
	return k.dimensions
}

// GetModelName retorna o identificador do fallback.
func (k *KeywordEmbeddingProvider) GetModelName() string {
	return "keyword-hash"
}
