package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/santosbarber/agenda-api/internal/audit"
	"github.com/santosbarber/agenda-api/internal/httperr"
	"github.com/santosbarber/agenda-api/internal/httpresp"
	"github.com/santosbarber/agenda-api/internal/middleware"
	"github.com/santosbarber/agenda-api/internal/models"
	"github.com/santosbarber/agenda-api/internal/validators"
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
	Name    string `json:"nome"`
	CPF     string `json:"cpf"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
}

type UpdateClientRequest struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
}

// --------- Handlers ---------

// POST /clientes
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.CPF == "" {
		httperr.BadRequest(c, "missing_fields", "Nome e CPF são obrigatórios.")
		return
	}

	cpf := validators.NormalizeCPF(req.CPF)
	if !validators.IsValidCPF(cpf) {
		httperr.BadRequest(c, "invalid_cpf", "CPF inválido.")
		return
	}

	client := models.Client{
		Name:    req.Name,
		CPF:     cpf,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("client create failed")
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "cliente",
		EntityID: &client.ID,
	})

	httpresp.Created(c, client.ID, "Cliente cadastrado com sucesso.")
}

// GET /clientes?cpf=
func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Order("id DESC")

	if cpf := c.Query("cpf"); cpf != "" {
		q = q.Where("cpf LIKE ?", "%"+validators.NormalizeCPF(cpf)+"%")
	}

	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("client list failed")
		httperr.Internal(c, "failed_to_list_clients", "Erro ao buscar clientes.")
		return
	}

	httpresp.OK(c, clients)
}

// PUT /clientes/cpf/:cpf
func (h *ClientHandler) UpdateByCPF(c *gin.Context) {
	cpf := validators.NormalizeCPF(c.Param("cpf"))

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Where("cpf = ?", cpf).
		Updates(map[string]any{
			"nome":     req.Name,
			"email":    req.Email,
			"telefone": req.Phone,
			"endereco": req.Address,
		})
	if res.Error != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(res.Error).Msg("client update failed")
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "client_updated", Entity: "cliente"})

	c.String(http.StatusOK, "Cliente atualizado com sucesso.")
}
