package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created answers a successful insert the way the booking front end
// expects: the new id plus a human-readable confirmation.
func Created(c *gin.Context, id uint, message string) {
	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": message,
	})
}
