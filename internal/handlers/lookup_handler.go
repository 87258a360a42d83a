package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/santosbarber/agenda-api/internal/cache"
	"github.com/santosbarber/agenda-api/internal/dto"
	"github.com/santosbarber/agenda-api/internal/middleware"
	"github.com/santosbarber/agenda-api/internal/models"
)

// LookupHandler serves the id+name listings the booking form uses to fill
// its selects. Results are read-through cached: reference data changes
// rarely and these two endpoints are hit on every page load.
type LookupHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewLookupHandler(db *gorm.DB, c *cache.Cache) *LookupHandler {
	return &LookupHandler{db: db, cache: c}
}

// GET /buscar-servicos
func (h *LookupHandler) Services(c *gin.Context) {
	h.lookup(c, cache.KeyServices, &models.Service{}, "Erro ao buscar serviços")
}

// GET /buscar-barbeiros
func (h *LookupHandler) Barbers(c *gin.Context) {
	h.lookup(c, cache.KeyBarbers, &models.Barber{}, "Erro ao buscar barbeiros")
}

func (h *LookupHandler) lookup(c *gin.Context, key string, model any, errMsg string) {
	ctx := c.Request.Context()

	if b := h.cache.Get(ctx, key); b != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	var refs []dto.NameRef
	if err := h.db.WithContext(ctx).
		Model(model).
		Select("id, nome").
		Order("id DESC").
		Scan(&refs).Error; err != nil {
		logger := middleware.Logger(c)
		logger.Error().Err(err).Str("key", key).Msg("lookup failed")
		c.String(http.StatusInternalServerError, errMsg)
		return
	}
	if refs == nil {
		refs = []dto.NameRef{}
	}

	b, err := json.Marshal(refs)
	if err != nil {
		c.String(http.StatusInternalServerError, errMsg)
		return
	}
	h.cache.Set(ctx, key, b)

	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}
