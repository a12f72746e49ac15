package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/barbertime/agenda-api/internal/audit"
)

const ContextRequestID = "requestID"

// RequestID aceita o X-Request-ID do cliente ou gera um novo; o id
// acompanha a resposta e os registros de auditoria
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Request = c.Request.WithContext(audit.WithRequestID(c.Request.Context(), id))
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
