package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/santosbarber/agenda-api/internal/audit"
	"github.com/santosbarber/agenda-api/internal/cache"
	"github.com/santosbarber/agenda-api/internal/httperr"
	"github.com/santosbarber/agenda-api/internal/httpresp"
	"github.com/santosbarber/agenda-api/internal/middleware"
	"github.com/santosbarber/agenda-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, c *cache.Cache, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, cache: c, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"nome"`
	Price       *float64 `json:"preco"`
	Duration    string   `json:"duracao"`
	Description string   `json:"descricao"`
}

type UpdateServiceRequest struct {
	Price       *float64 `json:"preco"`
	Duration    string   `json:"duracao"`
	Description string   `json:"descricao"`
}

// --------- Handlers ---------

// POST /servicos
func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Price == nil {
		httperr.BadRequest(c, "missing_fields", "Nome e Preço são obrigatórios.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Price:       *req.Price,
		Duration:    req.Duration,
		Description: req.Description,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("service create failed")
		httperr.Internal(c, "failed_to_create_service", "Erro ao cadastrar serviço.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyServices)
	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "servico",
		EntityID: &service.ID,
	})

	httpresp.Created(c, service.ID, "Serviço cadastrado com sucesso.")
}

// GET /servicos?nome=
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Order("id DESC")

	if name := c.Query("nome"); name != "" {
		q = q.Where("nome LIKE ?", "%"+name+"%")
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("service list failed")
		httperr.Internal(c, "failed_to_list_services", "Erro ao buscar serviços.")
		return
	}

	httpresp.OK(c, services)
}

// PUT /servicos/nome/:nome
func (h *ServiceHandler) UpdateByName(c *gin.Context) {
	name := c.Param("nome")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updates := map[string]any{
		"duracao":   req.Duration,
		"descricao": req.Description,
	}
	if req.Price != nil {
		updates["preco"] = *req.Price
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Where("nome = ?", name).
		Updates(updates)
	if res.Error != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(res.Error).Msg("service update failed")
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyServices)
	h.audit.Dispatch(audit.Event{Action: "service_updated", Entity: "servico"})

	c.String(http.StatusOK, "Serviço atualizado com sucesso.")
}
