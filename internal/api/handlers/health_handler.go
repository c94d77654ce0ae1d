package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// BackendProber verifica a conectividade com o backend de ranking.
type BackendProber interface {
	Healthy(ctx context.Context) bool
}

// HealthHandler gerencia os endpoints de health check.
type HealthHandler struct {
	prober BackendProber
}

// NewHealthHandler cria o handler. prober é nil em deployments só-local, e
// nesse caso o readiness não depende de nada externo.
func NewHealthHandler(prober BackendProber) *HealthHandler {
	return &HealthHandler{prober: prober}
}

// HealthResponse representa a resposta do health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe
// @Description Verifica se a aplicação está viva, sem checar dependências externas
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe
// @Description Verifica se a aplicação está pronta para receber tráfego (valida o backend de ranking quando configurado)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.prober != nil {
		if h.prober.Healthy(ctx) {
			response.Checks["ranking_backend"] = "ok"
		} else {
			response.Checks["ranking_backend"] = "failed"
			response.Status = "not_ready"
			response.Error = "ranking backend não disponível"
		}
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
