package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderhub/app-recs-engine/internal/ledger"
	middlewares "github.com/founderhub/app-recs-engine/internal/middleware"
	"github.com/founderhub/app-recs-engine/internal/models"
)

// InteractionsHandler registra eventos no ledger.
type InteractionsHandler struct {
	writer ledger.Writer
}

// NewInteractionsHandler cria o handler de ingestão.
func NewInteractionsHandler(writer ledger.Writer) *InteractionsHandler {
	return &InteractionsHandler{writer: writer}
}

// Record godoc
// @Summary Registra uma interação
// @Description Append puro no ledger; duplicatas nunca são rejeitadas. Ação inválida ou resource_id ausente → 400, nada é gravado.
// @Tags interactions
// @Accept json
// @Produce json
// @Param interaction body models.InteractionRequest true "Evento de interação"
// @Success 202 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/v1/interactions [post]
func (h *InteractionsHandler) Record(c *gin.Context) {
	var req models.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// headers do gateway têm precedência sobre o corpo
	if userID := middlewares.GetUserID(c); userID != "" {
		req.UserID = userID
	}
	if sessionID := middlewares.GetSessionID(c); sessionID != "" {
		req.SessionID = sessionID
	}

	event := req.ToInteraction()
	if err := h.writer.Append(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"ok": true})
}
