package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbertime/agenda-api/internal/httperr"
	"github.com/barbertime/agenda-api/internal/httpresp"
	"github.com/barbertime/agenda-api/internal/timezone"
	ucAppointment "github.com/barbertime/agenda-api/internal/usecase/appointment"
)

type DashboardHandler struct {
	summaryUC *ucAppointment.DashboardSummary
	tz        string
}

func NewDashboardHandler(
	summaryUC *ucAppointment.DashboardSummary,
	tz string,
) *DashboardHandler {
	return &DashboardHandler{summaryUC: summaryUC, tz: tz}
}

// Overview responde a visão geral do dia; sem date na query usa hoje
func (h *DashboardHandler) Overview(c *gin.Context) {
	date := timezone.NowIn(h.tz)

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDateIn(h.tz, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	summary, err := h.summaryUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, summary)
}
