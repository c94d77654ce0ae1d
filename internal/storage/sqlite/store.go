// Package sqlite persiste o ledger de interações, o cache de resultados, as
// listas precomputadas, os embeddings e as preferências em um único arquivo
// SQLite. O serviço funciona sem ele (stores em memória), mas perde histórico
// a cada restart.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // driver SQLite

	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/google/uuid"
)

const schema = `
CREATE TABLE IF NOT EXISTS interactions (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL DEFAULT '',
	session_id   TEXT NOT NULL DEFAULT '',
	identity_key TEXT NOT NULL DEFAULT '',
	resource_id  TEXT NOT NULL,
	action       TEXT NOT NULL,
	weight       REAL NOT NULL DEFAULT 1.0,
	detail       TEXT,
	created_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_interactions_resource ON interactions(resource_id, created_at);
CREATE INDEX IF NOT EXISTS idx_interactions_identity ON interactions(identity_key, created_at);

CREATE TABLE IF NOT EXISTS rec_cache (
	key        TEXT PRIMARY KEY,
	entry      TEXT NOT NULL,
	expires_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS precomputed (
	identity_key TEXT PRIMARY KEY,
	entry        TEXT NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS embeddings (
	resource_id TEXT PRIMARY KEY,
	vector      TEXT NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS preferences (
	user_id    TEXT PRIMARY KEY,
	prefs      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS profiles (
	user_id    TEXT PRIMARY KEY,
	industry   TEXT NOT NULL DEFAULT '',
	stage      TEXT NOT NULL DEFAULT '',
	team_size  TEXT NOT NULL DEFAULT '',
	funding    TEXT NOT NULL DEFAULT '',
	region     TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL
);
`

// Store é o backend SQLite unificado. Implementa ledger.Ledger, recs.Store,
// o destino de embeddings e o armazenamento de preferências/perfis.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore abre (ou cria) o banco no caminho dado, em modo WAL.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = filepath.Join(".", "data", "recs.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("criando diretório de dados: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("abrindo banco: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("criando schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close fecha a conexão com o banco.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path retorna o caminho do arquivo do banco.
func (s *Store) Path() string {
	return s.path
}

// Append grava um evento no ledger. Append puro: nunca rejeita duplicatas.
func (s *Store) Append(ctx context.Context, event models.Interaction) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	var detail any
	if len(event.Detail) > 0 {
		detail = string(event.Detail)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (id, user_id, session_id, identity_key, resource_id, action, weight, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.UserID, event.SessionID, event.IdentityKey(),
		event.ResourceID, event.Action, event.Weight, detail, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("gravando interação: %w", err)
	}
	return nil
}

// PopularWeight soma os pesos do resource na janela móvel de 30 dias, todas
// as identidades.
func (s *Store) PopularWeight(ctx context.Context, resourceID string) (float64, error) {
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT SUM(weight) FROM interactions
		WHERE resource_id = ? AND created_at > ?`,
		resourceID, cutoff,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("agregando popularidade: %w", err)
	}
	return total.Float64, nil
}

// SelfWeight soma os pesos históricos do par (identidade, resource).
func (s *Store) SelfWeight(ctx context.Context, identityKey, resourceID string) (float64, error) {
	if identityKey == "" {
		return 0, nil
	}

	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT SUM(weight) FROM interactions
		WHERE identity_key = ? AND resource_id = ?`,
		identityKey, resourceID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("agregando engajamento próprio: %w", err)
	}
	return total.Float64, nil
}

// InteractedResources retorna os resource ids da identidade, na ordem da
// primeira interação.
func (s *Store) InteractedResources(ctx context.Context, identityKey string) ([]string, error) {
	if identityKey == "" {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT resource_id FROM interactions
		WHERE identity_key = ?
		GROUP BY resource_id
		ORDER BY MIN(created_at)`,
		identityKey,
	)
	if err != nil {
		return nil, fmt.Errorf("listando histórico: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ActiveIdentities retorna até limit identidades com interação desde o
// instante dado, mais ativas primeiro.
func (s *Store) ActiveIdentities(ctx context.Context, since time.Time, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT identity_key FROM interactions
		WHERE identity_key != '' AND created_at > ?
		GROUP BY identity_key
		ORDER BY COUNT(*) DESC
		LIMIT ?`,
		since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listando identidades ativas: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Events retorna os eventos mais recentes do ledger (cap de 5000), na ordem
// de gravação. Alimenta a estratégia local.
func (s *Store) Events(ctx context.Context) ([]models.Interaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, session_id, resource_id, action, weight, detail, created_at
		FROM interactions
		ORDER BY created_at DESC
		LIMIT 5000`,
	)
	if err != nil {
		return nil, fmt.Errorf("listando eventos: %w", err)
	}
	defer rows.Close()

	var events []models.Interaction
	for rows.Next() {
		var e models.Interaction
		var detail sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.SessionID, &e.ResourceID,
			&e.Action, &e.Weight, &detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		if detail.Valid {
			e.Detail = json.RawMessage(detail.String)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// ordem cronológica
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

// GetCache retorna a entrada viva sob a chave.
func (s *Store) GetCache(ctx context.Context, key string) ([]models.Recommendation, bool, error) {
	var raw string
	var expiresAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT entry, expires_at FROM rec_cache WHERE key = ?`, key,
	).Scan(&raw, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lendo cache: %w", err)
	}
	if time.Now().After(expiresAt) {
		return nil, false, nil
	}

	var entry []models.Recommendation
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, false, fmt.Errorf("decodificando entrada de cache: %w", err)
	}
	return entry, true, nil
}

// SetCache grava a entrada com o TTL dado. Upsert last-writer-wins.
func (s *Store) SetCache(ctx context.Context, key string, entry []models.Recommendation, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("codificando entrada de cache: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rec_cache (key, entry, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET entry = excluded.entry, expires_at = excluded.expires_at`,
		key, string(raw), time.Now().Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("gravando cache: %w", err)
	}
	return nil
}

// PruneCache remove entradas expiradas. Housekeeping opcional; a leitura já
// ignora entradas vencidas.
func (s *Store) PruneCache(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rec_cache WHERE expires_at < ?`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("limpando cache: %w", err)
	}
	return res.RowsAffected()
}

// GetPrecomputed retorna a lista precomputada da identidade.
func (s *Store) GetPrecomputed(ctx context.Context, identityKey string) ([]models.Recommendation, time.Time, bool, error) {
	var raw string
	var updatedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT entry, updated_at FROM precomputed WHERE identity_key = ?`, identityKey,
	).Scan(&raw, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("lendo precomputado: %w", err)
	}

	var entry []models.Recommendation
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("decodificando precomputado: %w", err)
	}
	return entry, updatedAt, true, nil
}

// UpsertPrecomputed substitui a entrada da identidade.
func (s *Store) UpsertPrecomputed(ctx context.Context, identityKey string, entry []models.Recommendation) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("codificando precomputado: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO precomputed (identity_key, entry, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(identity_key) DO UPDATE SET entry = excluded.entry, updated_at = excluded.updated_at`,
		identityKey, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("gravando precomputado: %w", err)
	}
	return nil
}

// UpsertEmbedding grava o vetor de conteúdo de um resource.
func (s *Store) UpsertEmbedding(ctx context.Context, resourceID string, vector []float32) error {
	raw, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("codificando embedding: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO embeddings (resource_id, vector, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(resource_id) DO UPDATE SET vector = excluded.vector, updated_at = excluded.updated_at`,
		resourceID, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("gravando embedding: %w", err)
	}
	return nil
}

// GetEmbedding retorna o vetor persistido de um resource, se houver.
func (s *Store) GetEmbedding(ctx context.Context, resourceID string) ([]float32, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT vector FROM embeddings WHERE resource_id = ?`, resourceID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lendo embedding: %w", err)
	}

	var vector []float32
	if err := json.Unmarshal([]byte(raw), &vector); err != nil {
		return nil, false, fmt.Errorf("decodificando embedding: %w", err)
	}
	return vector, true, nil
}

// GetPreferences retorna as preferências do usuário, ou defaults quando
// nunca gravadas.
func (s *Store) GetPreferences(ctx context.Context, userID string) (*models.Preferences, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT prefs FROM preferences WHERE user_id = ?`, userID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		defaults := models.DefaultPreferences()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lendo preferências: %w", err)
	}

	var prefs models.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil, fmt.Errorf("decodificando preferências: %w", err)
	}
	return &prefs, nil
}

// SetPreferences substitui as preferências do usuário.
func (s *Store) SetPreferences(ctx context.Context, userID string, prefs *models.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("codificando preferências: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO preferences (user_id, prefs, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET prefs = excluded.prefs, updated_at = excluded.updated_at`,
		userID, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("gravando preferências: %w", err)
	}
	return nil
}

// GetProfile retorna o perfil persistido do usuário, ou nil quando não há.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT industry, stage, team_size, funding, region
		FROM profiles WHERE user_id = ?`, userID,
	).Scan(&p.Industry, &p.Stage, &p.TeamSize, &p.Funding, &p.Region)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lendo perfil: %w", err)
	}
	return &p, nil
}

// UpsertProfile substitui o perfil do usuário.
func (s *Store) UpsertProfile(ctx context.Context, userID string, p *models.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, industry, stage, team_size, funding, region, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			industry = excluded.industry, stage = excluded.stage,
			team_size = excluded.team_size, funding = excluded.funding,
			region = excluded.region, updated_at = excluded.updated_at`,
		userID, p.Industry, p.Stage, p.TeamSize, p.Funding, p.Region, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("gravando perfil: %w", err)
	}
	return nil
}
