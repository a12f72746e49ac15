package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/httperr"
	"github.com/barbertime/agenda-api/internal/httpresp"
	"github.com/barbertime/agenda-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	dispatchAudit(c, h.audit, "service_created", "service", &service.ID, nil)

	httpresp.Created(c, service)
}

// Update muda o catálogo daqui pra frente; agendamentos existentes
// mantêm o snapshot feito na criação
func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.DurationMin != nil && *req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração precisa ser positiva.")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	dispatchAudit(c, h.audit, "service_updated", "service", &service.ID, nil)

	httpresp.OK(c, service)
}
