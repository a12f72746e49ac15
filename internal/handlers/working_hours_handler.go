package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/cache"
	"github.com/barbertime/agenda-api/internal/httperr"
	"github.com/barbertime/agenda-api/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewWorkingHoursHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	cache *cache.Availability,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: audit, cache: cache}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	professionalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Identificador inválido.")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("professional_id = ?", professionalID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	c.JSON(200, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	professionalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Identificador inválido.")
		return
	}

	var prof models.Professional
	if err := h.db.First(&prof, professionalID).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, d := range req.Days {
		if d.Active && (!isHM(d.StartTime) || !isHM(d.EndTime)) {
			httperr.BadRequest(c, "invalid_time_format", "Horários no formato HH:MM.")
			return
		}
		if (d.LunchStart != "" || d.LunchEnd != "") &&
			(!isHM(d.LunchStart) || !isHM(d.LunchEnd)) {
			httperr.BadRequest(c, "invalid_time_format", "Horários no formato HH:MM.")
			return
		}
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkingHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingHours{
				ProfessionalID: prof.ID,
				Weekday:        d.Weekday,
				Active:         d.Active,
				StartTime:      d.StartTime,
				EndTime:        d.EndTime,
				LunchStart:     d.LunchStart,
				LunchEnd:       d.LunchEnd,
			})
		}

		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_working_hours", "Erro ao salvar expediente.")
		return
	}

	// expediente novo muda a disponibilidade dos próximos dias
	ctx := c.Request.Context()
	for i := 0; i < 7; i++ {
		day := time.Now().AddDate(0, 0, i).Format("2006-01-02")
		h.cache.Invalidate(ctx, prof.ID, day)
	}

	dispatchAudit(c, h.audit, "working_hours_updated", "professional", &prof.ID, nil)

	c.JSON(200, gin.H{"status": "ok"})
}

func isHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
