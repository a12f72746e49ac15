package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/agenda-api/internal/httperr"
	"github.com/barbertime/agenda-api/internal/httpresp"
	"github.com/barbertime/agenda-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	q := h.db.Session(&gorm.Session{})

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
