package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	_ "nine-mens-morris/docs"
	httpapi "nine-mens-morris/internal/api/http"
	"nine-mens-morris/internal/api/ws"
	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/room"
	"nine-mens-morris/internal/store"
)

// @title Nine Men's Morris API
// @version 1.0
// @description REST and websocket API for Nine Men's Morris against a minimax / alpha-beta engine (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Get()
	config.SetupLogger(cfg)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, nil)
	hub := ws.NewHub(rm)
	rm.SetHub(hub)
	r := httpapi.SetupRouter(rm, hub, cfg)

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("algorithm", cfg.Search.Algorithm).
		Str("heuristics", cfg.Search.Heuristics).
		Dur("budget", cfg.Search.TimeBudget).
		Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
