package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/middleware"
)

func dispatchAudit(
	c *gin.Context,
	dispatcher *audit.Dispatcher,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	requestID, _ := c.Get(middleware.ContextRequestID)
	rid, _ := requestID.(string)

	dispatcher.Dispatch(audit.Event{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		RequestID: rid,
		Metadata:  meta,
	})
}
