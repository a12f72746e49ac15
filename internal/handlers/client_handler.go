package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertime/agenda-api/internal/audit"
	domain "github.com/barbertime/agenda-api/internal/domain/appointment"
	"github.com/barbertime/agenda-api/internal/httperr"
	"github.com/barbertime/agenda-api/internal/httpresp"
	"github.com/barbertime/agenda-api/internal/models"
	"github.com/barbertime/agenda-api/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Observations string `json:"observations"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}
	if req.Email != "" && !validators.IsEmailFormatValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	client := models.Client{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Observations: req.Observations,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	dispatchAudit(c, h.audit, "client_created", "client", &client.ID, nil)

	httpresp.Created(c, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Phone != nil && !validators.IsPhoneValid(*req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}
	if req.Email != nil && *req.Email != "" && !validators.IsEmailFormatValid(*req.Email) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Observations != nil {
		client.Observations = *req.Observations
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	dispatchAudit(c, h.audit, "client_updated", "client", &client.ID, nil)

	httpresp.OK(c, client)
}

// ======================================================
// DELETE
// ======================================================

// Delete recusa remover cliente com agendamento futuro não cancelado;
// histórico nunca fica órfão
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var pending int64
	if err := h.db.
		Model(&models.Appointment{}).
		Where(
			"client_id = ? AND status <> ? AND start_time >= ?",
			client.ID,
			string(domain.StatusCancelled),
			time.Now(),
		).
		Count(&pending).Error; err != nil {

		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	if pending > 0 {
		httperr.Conflict(c, "client_has_appointments", "Cliente possui agendamentos futuros.")
		return
	}

	if err := h.db.Delete(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	dispatchAudit(c, h.audit, "client_deleted", "client", &client.ID, nil)

	c.Status(http.StatusNoContent)
}
