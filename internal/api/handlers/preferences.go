package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	middlewares "github.com/founderhub/app-recs-engine/internal/middleware"
	"github.com/founderhub/app-recs-engine/internal/models"
)

// PreferenceStore persiste preferências e o perfil de contexto do usuário.
type PreferenceStore interface {
	GetPreferences(ctx context.Context, userID string) (*models.Preferences, error)
	SetPreferences(ctx context.Context, userID string, prefs *models.Preferences) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, userID string, p *models.Profile) error
}

// PreferencesHandler serve leitura e escrita de preferências. Todas as rotas
// exigem usuário autenticado (middleware RequireUser).
type PreferencesHandler struct {
	store PreferenceStore
}

// NewPreferencesHandler cria o handler de preferências.
func NewPreferencesHandler(store PreferenceStore) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

// Get godoc
// @Summary Lê as preferências do usuário
// @Description Retorna as preferências persistidas, ou defaults quando nunca gravadas
// @Tags preferences
// @Produce json
// @Success 200 {object} models.Preferences
// @Failure 401 {object} map[string]string
// @Router /api/v1/preferences [get]
func (h *PreferencesHandler) Get(c *gin.Context) {
	prefs, err := h.store.GetPreferences(c.Request.Context(), middlewares.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// Set godoc
// @Summary Grava as preferências do usuário
// @Description Substitui o conjunto completo de preferências. Payload inválido → 400, nada é gravado.
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body models.Preferences true "Preferências"
// @Success 200 {object} models.Preferences
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/preferences [post]
func (h *PreferencesHandler) Set(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SetPreferences(c.Request.Context(), middlewares.GetUserID(c), &prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// GetProfile godoc
// @Summary Lê o perfil de contexto do usuário
// @Description Industry/stage/region usados como fallback de contexto nas recomendações
// @Tags preferences
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *PreferencesHandler) GetProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context(), middlewares.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "perfil não cadastrado"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SetProfile godoc
// @Summary Grava o perfil de contexto do usuário
// @Tags preferences
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Perfil"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/profile [post]
func (h *PreferencesHandler) SetProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpsertProfile(c.Request.Context(), middlewares.GetUserID(c), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}
