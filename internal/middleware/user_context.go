package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey    = "user_id"
	SessionIDKey = "session_id"
)

// ExtractIdentity extrai a identidade do requester dos headers injetados pelo
// gateway após validar o JWT:
// - X-User-ID: id do usuário autenticado (extraído de sub)
// - X-Session-ID: id de sessão anônima gerado pelo cliente
// A query string (user_id/session_id) serve de fallback para clientes sem
// gateway. Nenhum dos dois é obrigatório; requisições sem identidade são
// tratadas como anônimas pela engine.
func ExtractIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = c.Query("user_id")
		}
		if userID != "" {
			c.Set(UserIDKey, userID)
		}

		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = c.Query("session_id")
		}
		if sessionID != "" {
			c.Set(SessionIDKey, sessionID)
		}

		c.Next()
	}
}

// GetUserID retorna o id do usuário autenticado, ou vazio.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if s, ok := userID.(string); ok {
			return s
		}
	}
	return ""
}

// GetSessionID retorna o id da sessão anônima, ou vazio.
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionIDKey); exists {
		if s, ok := sessionID.(string); ok {
			return s
		}
	}
	return ""
}

// RequireUser exige um usuário autenticado. Usado nas rotas de preferências:
// escrita sem identidade resolvível é rejeitada sem mudança parcial de
// estado.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuário não autenticado"})
			c.Abort()
			return
		}
		c.Next()
	}
}
