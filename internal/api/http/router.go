package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nine-mens-morris/internal/api/ws"
	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/room"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/play", PlayHandler(rm))
	r.GET("/room", GetRoomHandler(rm))
	r.POST("/restart", RestartHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.GET("/score", ScoreHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/move-bot", MoveBotHandler(rm))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(rm, cfg)
	r.GET("/config/search", ch.GetDefaultSearchHandler)
	r.GET("/config/search/room", ch.GetRoomSearchHandler)
	r.POST("/config/search/room", ch.UpdateRoomSearchHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ev := log.Debug()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
