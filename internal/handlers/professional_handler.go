package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/httperr"
	"github.com/barbertime/agenda-api/internal/httpresp"
	"github.com/barbertime/agenda-api/internal/models"
	"github.com/barbertime/agenda-api/internal/validators"
)

type ProfessionalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProfessionalHandler(db *gorm.DB, audit *audit.Dispatcher) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Specialties string `json:"specialties"`
}

type UpdateProfessionalRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Specialties *string `json:"specialties,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio

	q := h.db.Session(&gorm.Session{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var professionals []models.Professional
	if err := q.
		Order("id ASC").
		Find(&professionals).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, professionals)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Phone != "" && !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}
	if req.Email != "" && !validators.IsEmailFormatValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	prof := models.Professional{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Specialties: req.Specialties,
		Active:      true,
	}

	if err := h.db.Create(&prof).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao criar profissional.")
		return
	}

	dispatchAudit(c, h.audit, "professional_created", "professional", &prof.ID, nil)

	httpresp.Created(c, prof)
}

// Update também cobre ativar/desativar; desativar não mexe nos
// agendamentos já existentes
func (h *ProfessionalHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.First(&prof, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Phone != nil && *req.Phone != "" && !validators.IsPhoneValid(*req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}
	if req.Email != nil && *req.Email != "" && !validators.IsEmailFormatValid(*req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	if req.Name != nil {
		prof.Name = *req.Name
	}
	if req.Phone != nil {
		prof.Phone = *req.Phone
	}
	if req.Email != nil {
		prof.Email = *req.Email
	}
	if req.Specialties != nil {
		prof.Specialties = *req.Specialties
	}
	if req.Active != nil {
		prof.Active = *req.Active
	}

	if err := h.db.Save(&prof).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	action := "professional_updated"
	if req.Active != nil && !*req.Active {
		action = "professional_deactivated"
	}
	dispatchAudit(c, h.audit, action, "professional", &prof.ID, nil)

	httpresp.OK(c, prof)
}
