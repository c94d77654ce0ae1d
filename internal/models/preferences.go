package models

// Preferences são as preferências persistidas de um usuário autenticado.
// Ficam fora do core de scoring; o perfil (industry/stage/region) derivado
// delas serve de fallback de contexto quando a requisição não traz override.
// @Description Preferências de conteúdo do usuário.
type Preferences struct {
	PreferredIndustries   []string `json:"preferred_industries"`
	PreferredContentTypes []string `json:"preferred_content_types"`
	// Dificuldade preferida: beginner, intermediate, advanced
	PreferredDifficulty string   `json:"preferred_difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	ExcludedTags        []string `json:"excluded_tags"`
	// Frequência de notificação: daily, weekly, monthly, never
	NotificationFrequency string `json:"notification_frequency" binding:"omitempty,oneof=daily weekly monthly never"`
}

// DefaultPreferences retorna o estado inicial de um usuário sem preferências.
func DefaultPreferences() Preferences {
	return Preferences{
		PreferredIndustries:   []string{},
		PreferredContentTypes: []string{},
		PreferredDifficulty:   "intermediate",
		ExcludedTags:          []string{},
		NotificationFrequency: "weekly",
	}
}

// Profile são os atributos de contexto persistidos de um founder.
type Profile struct {
	Industry string `json:"industry"`
	Stage    string `json:"stage"`
	TeamSize string `json:"team_size,omitempty"`
	Funding  string `json:"funding,omitempty"`
	Region   string `json:"region"`
}
