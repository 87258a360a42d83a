package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santosbarber/agenda-api/internal/domain/scheduling"
)

// WritePlain maps an engine error onto the plain-text contract of the
// booking endpoints: 400 for validation, 404 for a missing target, 500 for
// anything the store refused. userMsg is what a 500 shows instead of the
// underlying cause; the cause stays in the error for the logs.
func WritePlain(c *gin.Context, err error, userMsg string) {
	switch {
	case scheduling.IsValidation(err):
		c.String(http.StatusBadRequest, err.Error())
	case scheduling.IsNotFound(err):
		c.String(http.StatusNotFound, err.Error())
	default:
		c.String(http.StatusInternalServerError, userMsg)
	}
}
