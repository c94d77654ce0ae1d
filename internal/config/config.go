// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta do servidor HTTP (default: 8080)
//
// ## Estratégia de ranking
//   - RANKING_BACKEND: "remote" usa o Typesense como Candidate Source;
//     "local" roda a heurística de fallback em memória (default: remote,
//     rebaixado para local quando TYPESENSE_API_KEY está vazio)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//   - TYPESENSE_COLLECTION: Collection de resources (default: founder_resources)
//
// ## Armazenamento
//   - SQLITE_PATH: Caminho do arquivo SQLite; vazio usa stores em memória
//   - CATALOG_PATH: Arquivo JSON com o catálogo de resources para o modo
//     local; vazio inicia com catálogo vazio
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini; vazio usa o provider de
//     fallback por keywords
//   - GEMINI_EMBEDDING_MODEL: Modelo para embeddings (default: text-embedding-004)
//
// ## Recomendações
//   - RECS_CACHE_TTL_MINUTES: TTL do cache de resultados (default: 5)
//   - RECS_HIGH_VALUE_CATEGORIES: Categorias com boost rule-based, CSV
//     (default: fundraising)
//   - EMBEDDING_CACHE_MAX_SIZE: Tamanho do cache LRU de embeddings (default: 1000)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// "remote" ou "local"
	RankingBackend string

	TypesenseHost       string
	TypesensePort       string
	TypesenseAPIKey     string
	TypesenseProtocol   string
	TypesenseCollection string

	SQLitePath  string
	CatalogPath string

	// Gemini configuration
	GeminiAPIKey         string
	GeminiEmbeddingModel string

	// Recommendation tuning
	CacheTTL              time.Duration
	HighValueCategories   []string
	EmbeddingCacheMaxSize int

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		RankingBackend: getEnv("RANKING_BACKEND", "remote"),

		TypesenseHost:       getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:       getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:     getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol:   getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseCollection: getEnv("TYPESENSE_COLLECTION", "founder_resources"),

		SQLitePath:  getEnv("SQLITE_PATH", ""),
		CatalogPath: getEnv("CATALOG_PATH", ""),

		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiEmbeddingModel: getEnv("GEMINI_EMBEDDING_MODEL", "text-embedding-004"),

		CacheTTL:              time.Duration(getEnvInt("RECS_CACHE_TTL_MINUTES", 5)) * time.Minute,
		EmbeddingCacheMaxSize: getEnvInt("EMBEDDING_CACHE_MAX_SIZE", 1000),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	// Sem credencial do backend remoto, só a estratégia local funciona
	if cfg.TypesenseAPIKey == "" {
		cfg.RankingBackend = "local"
	}

	categoriesCSV := getEnv("RECS_HIGH_VALUE_CATEGORIES", "fundraising")
	for _, category := range strings.Split(categoriesCSV, ",") {
		if category = strings.TrimSpace(category); category != "" {
			cfg.HighValueCategories = append(cfg.HighValueCategories, category)
		}
	}

	return cfg
}

// RemoteEnabled indica se a estratégia remota deve ser montada.
func (c *Config) RemoteEnabled() bool {
	return c.RankingBackend == "remote"
}

// TypesenseURL retorna a URL base do servidor Typesense.
func (c *Config) TypesenseURL() string {
	return c.TypesenseProtocol + "://" + c.TypesenseHost + ":" + c.TypesensePort
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
