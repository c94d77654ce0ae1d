package models

import (
	"encoding/json"
	"time"
)

// Ações registráveis no ledger. A API pública de ingestão aceita apenas as
// cinco primeiras; rate/share/complete chegam por outros produtores e são
// agregadas da mesma forma pelo reader.
const (
	ActionView     = "view"
	ActionClick    = "click"
	ActionLike     = "like"
	ActionBookmark = "bookmark"
	ActionDismiss  = "dismiss"
	ActionRate     = "rate"
	ActionShare    = "share"
	ActionComplete = "complete"
)

var validActions = map[string]bool{
	ActionView:     true,
	ActionClick:    true,
	ActionLike:     true,
	ActionBookmark: true,
	ActionDismiss:  true,
	ActionRate:     true,
	ActionShare:    true,
	ActionComplete: true,
}

// IsValidAction verifica se a ação é conhecida pelo ledger.
func IsValidAction(action string) bool {
	return validActions[action]
}

// Interaction é um evento append-only do ledger. A engine nunca muta nem
// apaga interactions, apenas agrega.
type Interaction struct {
	ID         string          `json:"id,omitempty"`
	UserID     string          `json:"user_id,omitempty"`
	SessionID  string          `json:"session_id,omitempty"`
	ResourceID string          `json:"resource_id"`
	Action     string          `json:"action"`
	Weight     float64         `json:"weight"`
	Detail     json.RawMessage `json:"detail,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// IdentityKey retorna a chave de identidade do evento (u:<id> ou s:<sessão>).
// Eventos totalmente anônimos retornam string vazia.
func (i *Interaction) IdentityKey() string {
	if i.UserID != "" {
		return "u:" + i.UserID
	}
	if i.SessionID != "" {
		return "s:" + i.SessionID
	}
	return ""
}

// InteractionRequest é o payload de ingestão via API.
// @Description Registro de interação de um usuário com um resource.
type InteractionRequest struct {
	UserID     string `json:"user_id"`
	SessionID  string `json:"session_id"`
	ResourceID string `json:"resource_id" binding:"required"`
	// Ação pública: view, click, like, bookmark, dismiss
	Action string  `json:"action" binding:"required,oneof=view click like bookmark dismiss"`
	Weight float64 `json:"weight"`
	// Payload estruturado opaco (ex: posição do card, origem do clique)
	Detail json.RawMessage `json:"detail,omitempty" swaggertype:"object"`
}

// ToInteraction converte o payload em evento do ledger, aplicando defaults.
func (r *InteractionRequest) ToInteraction() Interaction {
	weight := r.Weight
	if weight == 0 {
		weight = 1.0
	}
	return Interaction{
		UserID:     r.UserID,
		SessionID:  r.SessionID,
		ResourceID: r.ResourceID,
		Action:     r.Action,
		Weight:     weight,
		Detail:     r.Detail,
		CreatedAt:  time.Now().UTC(),
	}
}
