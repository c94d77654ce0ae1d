package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	middlewares "github.com/founderhub/app-recs-engine/internal/middleware"
	"github.com/founderhub/app-recs-engine/internal/models"
	"github.com/founderhub/app-recs-engine/internal/recs"
	"github.com/founderhub/app-recs-engine/internal/recs/local"
)

// RecommendationsHandler serve as rotas de recomendação. A estratégia
// primária vem da configuração; quando o backend remoto está indisponível a
// requisição cai para o fallback local em vez de devolver erro ao cliente.
type RecommendationsHandler struct {
	strategy recs.Strategy
	fallback *local.Fallback
}

// NewRecommendationsHandler cria o handler. fallback pode ser a própria
// estratégia primária em deployments sem backend remoto.
func NewRecommendationsHandler(strategy recs.Strategy, fallback *local.Fallback) *RecommendationsHandler {
	return &RecommendationsHandler{strategy: strategy, fallback: fallback}
}

// Recommendations godoc
// @Summary Recomendações personalizadas
// @Description Lista ranqueada de resources para a identidade/contexto do requester
// @Tags recommendations
// @Produce json
// @Param user_id query string false "ID do usuário autenticado"
// @Param session_id query string false "ID de sessão anônima"
// @Param limit query int false "Quantidade de resultados (default 10, clamp 1-50)"
// @Param industry query string false "Override de indústria"
// @Param stage query string false "Override de estágio"
// @Param region query string false "Override de região"
// @Param q query string false "Busca textual livre"
// @Success 200 {object} models.RecResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/recommendations [get]
func (h *RecommendationsHandler) Recommendations(c *gin.Context) {
	var req models.RecRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// headers do gateway têm precedência sobre a query string
	if userID := middlewares.GetUserID(c); userID != "" {
		req.UserID = userID
	}
	if sessionID := middlewares.GetSessionID(c); sessionID != "" {
		req.SessionID = sessionID
	}

	resp, err := h.strategy.Recommend(c.Request.Context(), &req)
	if err != nil && errors.Is(err, models.ErrBackendUnavailable) && h.fallback != nil {
		resp, err = h.fallback.Recommend(c.Request.Context(), &req)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Related godoc
// @Summary Resources relacionados
// @Description Similaridade de conteúdo sobre um resource alvo (categoria, tags, dificuldade)
// @Tags recommendations
// @Produce json
// @Param id path string true "ID do resource alvo"
// @Success 200 {object} models.RecResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/resources/{id}/related [get]
func (h *RecommendationsHandler) Related(c *gin.Context) {
	results, err := h.fallback.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.RecResponse{Results: results, Count: len(results)})
}

// Collaborative godoc
// @Summary Sugestões colaborativas
// @Description Resources tocados por founders com histórico similar ao do requester
// @Tags recommendations
// @Produce json
// @Param user_id query string false "ID do usuário autenticado"
// @Param session_id query string false "ID de sessão anônima"
// @Success 200 {object} models.RecResponse
// @Router /api/v1/recommendations/collaborative [get]
func (h *RecommendationsHandler) Collaborative(c *gin.Context) {
	req := models.RecRequest{
		UserID:    middlewares.GetUserID(c),
		SessionID: middlewares.GetSessionID(c),
	}
	if req.UserID == "" {
		req.UserID = c.Query("user_id")
	}
	if req.SessionID == "" {
		req.SessionID = c.Query("session_id")
	}

	results, err := h.fallback.Collaborative(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.RecResponse{Results: results, Count: len(results)})
}
