package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fadehouse/barberpos/internal/config"
	dbpkg "github.com/fadehouse/barberpos/internal/db"
	"github.com/fadehouse/barberpos/internal/logger"
	"github.com/fadehouse/barberpos/internal/routes"
	"github.com/fadehouse/barberpos/internal/tokenstore"
)

func main() {

	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	tokens := tokenstore.New(cfg.RedisAddr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, tokens)

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
