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
	"github.com/santosbarber/agenda-api/internal/validators"
)

type BarberHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, c *cache.Cache, audit *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, cache: c, audit: audit}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name      string `json:"nome"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	Specialty string `json:"especialidade"`
	Address   string `json:"endereco"`
}

type UpdateBarberRequest struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	Specialty string `json:"especialidade"`
	Address   string `json:"endereco"`
}

// --------- Handlers ---------

// POST /barbeiros
func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
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

	barber := models.Barber{
		Name:      req.Name,
		CPF:       cpf,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Address:   req.Address,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("barber create failed")
		httperr.Internal(c, "failed_to_create_barber", "Erro ao cadastrar barbeiro.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyBarbers)
	h.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barbeiro",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber.ID, "Barbeiro cadastrado com sucesso.")
}

// GET /barbeiros?cpf=
func (h *BarberHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Order("id DESC")

	if cpf := c.Query("cpf"); cpf != "" {
		q = q.Where("cpf LIKE ?", "%"+validators.NormalizeCPF(cpf)+"%")
	}

	var barbers []models.Barber
	if err := q.Find(&barbers).Error; err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Msg("barber list failed")
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao buscar barbeiros.")
		return
	}

	httpresp.OK(c, barbers)
}

// PUT /barbeiros/cpf/:cpf
func (h *BarberHandler) UpdateByCPF(c *gin.Context) {
	cpf := validators.NormalizeCPF(c.Param("cpf"))

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Barber{}).
		Where("cpf = ?", cpf).
		Updates(map[string]any{
			"nome":          req.Name,
			"email":         req.Email,
			"telefone":      req.Phone,
			"especialidade": req.Specialty,
			"endereco":      req.Address,
		})
	if res.Error != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(res.Error).Msg("barber update failed")
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyBarbers)
	h.audit.Dispatch(audit.Event{Action: "barber_updated", Entity: "barbeiro"})

	c.String(http.StatusOK, "Barbeiro atualizado com sucesso.")
}
