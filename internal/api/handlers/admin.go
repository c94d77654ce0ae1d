package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/app-recs-engine/internal/recs"
	"github.com/founderhub/app-recs-engine/internal/services"
)

// AdminHandler expõe as operações administrativas: rodada de precompute e
// refresh de embeddings. O agendamento fica fora do serviço; estas rotas são
// o gatilho externo.
type AdminHandler struct {
	precomputer *recs.Precomputer
	refresher   *services.EmbeddingRefresher
}

// NewAdminHandler cria o handler administrativo. Qualquer dependência pode
// ser nil quando a operação não está disponível no deployment.
func NewAdminHandler(precomputer *recs.Precomputer, refresher *services.EmbeddingRefresher) *AdminHandler {
	return &AdminHandler{precomputer: precomputer, refresher: refresher}
}

// Precompute godoc
// @Summary Roda uma rodada de precompute
// @Description Materializa listas de recomendação para identidades ativas nos últimos 7 dias (máximo 500 por rodada)
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 503 {object} map[string]string
// @Router /api/v1/admin/precompute [post]
func (h *AdminHandler) Precompute(c *gin.Context) {
	if h.precomputer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "precompute indisponível neste deployment"})
		return
	}

	updated, err := h.precomputer.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// RefreshEmbeddings godoc
// @Summary Regenera os embeddings do catálogo
// @Description Gera e persiste um vetor de conteúdo por resource, via Gemini ou fallback por keywords
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 503 {object} map[string]string
// @Router /api/v1/admin/embeddings/refresh [post]
func (h *AdminHandler) RefreshEmbeddings(c *gin.Context) {
	if h.refresher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "refresh de embeddings indisponível neste deployment"})
		return
	}

	updated, failed, err := h.refresher.RefreshAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated, "failed": failed})
}
