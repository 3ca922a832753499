package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
	"nine-mens-morris/internal/room"
)

type ConfigHandler struct {
	rm  *room.Manager
	cfg *config.Config
}

func NewConfigHandler(rm *room.Manager, cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{rm: rm, cfg: cfg}
}

// GetDefaultSearchHandler returns the process wide engine settings
// @Summary Get default engine settings
// @Description Returns the default search settings and positional heuristic weights
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/search [get]
func (h *ConfigHandler) GetDefaultSearchHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"search":  h.cfg.Search,
		"weights": h.cfg.DefaultWeights,
	})
}

// GetRoomSearchHandler returns the engine settings of a room
// @Summary Get room engine settings
// @Description Returns the per-color engine settings configured for a room
// @Tags Config
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /config/search/room [get]
func (h *ConfigHandler) GetRoomSearchHandler(c *gin.Context) {
	rx, ok := lookupRoom(c, h.rm, c.Query("room_code"))
	if !ok {
		return
	}
	rc := rx.RoomConfig
	c.JSON(http.StatusOK, gin.H{
		"room_code":     rx.Code,
		"red":           rc.GetSearch(game.PlayerA.String()),
		"green":         rc.GetSearch(game.PlayerB.String()),
		"weights":       rc.GetWeights(),
		"is_customized": rc.IsCustomized(),
	})
}

// UpdateRoomSearchHandler overrides the engine of one color
// @Summary Update room engine settings
// @Description Sets algorithm, heuristics, time budget and weights for one computer color
// @Tags Config
// @Accept json
// @Produce json
// @Param request body http.UpdateRoomSearchRequest true "Engine settings"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /config/search/room [post]
func (h *ConfigHandler) UpdateRoomSearchHandler(c *gin.Context) {
	var req UpdateRoomSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rx, ok := lookupRoom(c, h.rm, req.RoomCode)
	if !ok {
		return
	}
	color, err := game.ParseColor(req.Color)
	if err != nil || color == game.Empty {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color must be RED or GREEN"})
		return
	}
	sc := config.SearchConfig{
		Algorithm:  req.Algorithm,
		Heuristics: req.Heuristics,
		TimeBudget: time.Duration(req.TimeBudgetMs) * time.Millisecond,
		MaxPlies:   req.MaxPlies,
		MaxNodes:   req.MaxNodes,
		TieBreak:   req.TieBreak,
	}
	if err := h.rm.UpdateSearch(rx, color, sc, req.Weights); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room_code": rx.Code,
		"color":     color,
		"search":    rx.RoomConfig.GetSearch(color.String()),
		"weights":   rx.RoomConfig.GetWeights(),
	})
}
