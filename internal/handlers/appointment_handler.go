package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/httperr"
	"github.com/barbertime/agenda-api/internal/httpresp"
	ucAppointment "github.com/barbertime/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	availabilityUC *ucAppointment.GetAvailability
	changeStatusUC *ucAppointment.ChangeStatus
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listByMonthUC  *ucAppointment.ListAppointmentsByMonth

	tz string
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	availabilityUC *ucAppointment.GetAvailability,
	changeStatusUC *ucAppointment.ChangeStatus,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		availabilityUC: availabilityUC,
		changeStatusUC: changeStatusUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		tz:             tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       uint   `json:"client_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceIDs     []uint `json:"service_ids" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
	AllowPast      bool   `json:"allow_past"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTimeIn(h.tz, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceIDs:     req.ServiceIDs,
		StartTime:      start,
		Notes:          req.Notes,
		AllowPast:      req.AllowPast,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	professionalID, err := strconv.ParseUint(c.Query("professional_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Identificador inválido.")
		return
	}

	date, err := parseDateIn(h.tz, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	serviceIDs, err := parseIDList(c.Query("service_ids"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: uint(professionalID),
		ServiceIDs:     serviceIDs,
		Date:           date,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, slots)
}

// "1,4" → []uint{1, 4}
func parseIDList(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, uint(id))
	}
	return out, nil
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDateIn(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	professionalID, err := optionalProfessionalID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Identificador inválido.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido.")
		return
	}

	professionalID, err := optionalProfessionalID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Identificador inválido.")
		return
	}

	loc := locationFor(h.tz)

	out, err := h.listByMonthUC.Execute(c.Request.Context(), professionalID, year, month, loc)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, out)
}

// professional_id ausente ou "all" significa todos
func optionalProfessionalID(c *gin.Context) (*uint, error) {
	raw := strings.TrimSpace(c.Query("professional_id"))
	if raw == "" || raw == "all" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}

	out := uint(id)
	return &out, nil
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) changeStatus(c *gin.Context, to domain.Status) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador inválido.")
		return
	}

	ap, err := h.changeStatusUC.Execute(c.Request.Context(), uint(id), to)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}
