package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santosbarber/agenda-api/internal/cache"
	"github.com/santosbarber/agenda-api/internal/config"
	dbpkg "github.com/santosbarber/agenda-api/internal/db"
	"github.com/santosbarber/agenda-api/internal/logging"
	"github.com/santosbarber/agenda-api/internal/middleware"
	"github.com/santosbarber/agenda-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg, log)
	lookupCache := cache.New(cfg.RedisAddr, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, lookupCache, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
