package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nine-mens-morris/internal/game"
	"nine-mens-morris/internal/room"
	"nine-mens-morris/internal/shared"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrMoveNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, room.ErrNotYourTurn),
		errors.Is(err, room.ErrNotBotTurn),
		errors.Is(err, room.ErrGameOver),
		errors.Is(err, room.ErrNotStarted),
		errors.Is(err, room.ErrColorTaken),
		errors.Is(err, room.ErrStaleSearch):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func lookupRoom(c *gin.Context, rm *room.Manager, code string) (*shared.Room, bool) {
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_code required"})
		return nil, false
	}
	rx, ok := rm.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return nil, false
	}
	return rx, true
}

// @Summary Create new room
// @Description Create a lobby with a single human player of the chosen color
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		color, err := game.ParseColor(req.Color)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx := rm.CreateRoom(req.PlayerName, color)
		c.JSON(http.StatusOK, gin.H{
			"room_code": rx.Code,
			"player_id": rx.Players[0].ID,
			"room":      rm.View(rx),
		})
	}
}

// @Summary Start a game
// @Description Seat the computer (default) or a second local player in the free color
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.PlayRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /play [post]
func PlayHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		bots := 1
		if req.NumberBot != nil {
			bots = *req.NumberBot
		}
		// one free color at most
		if bots > 1 {
			bots = 1
		}

		var seated []shared.Player
		var err error
		if bots > 0 {
			seated, err = rm.AddBots(rx, bots)
		} else {
			var p shared.Player
			p, err = rm.Seat(rx, req.PlayerName, false)
			seated = append(seated, p)
		}
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seated": seated, "room": rm.View(rx)})
	}
}

// @Summary Get room
// @Description Returns the board snapshot, players, move log and endgame data
// @Tags Room
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} shared.RoomView
// @Failure 404 {object} map[string]string
// @Router /room [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm, c.Query("room_code"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, rm.View(rx))
	}
}

// @Summary Restart the game
// @Description Start a new game with the same players
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.RoomRequest true "Room"
// @Success 200 {object} shared.RoomView
// @Router /restart [post]
func RestartHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		if err := rm.Restart(rx); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rm.View(rx))
	}
}

// @Summary Get possible moves
// @Description Returns the selectable positions of the turn holder and, during a shift, the destinations of the chosen piece
// @Tags Game
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} room.PossibleMoves
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm, c.Query("room_code"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, rm.PossibleMoves(rx))
	}
}

// @Summary Get score table
// @Description Points, pieces on board and pieces in drawer per player
// @Tags Game
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /score [get]
func ScoreHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := lookupRoom(c, rm, c.Query("room_code"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"score": rm.Score(rx)})
	}
}

// @Summary Make a human move
// @Description Apply one tap: placement, removal, or either click of a shift
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		res, err := rm.ApplyMove(rx, req.PlayerID, *req.X, *req.Y)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error(), "result": res})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": res, "room": rm.View(rx)})
	}
}

// @Summary Trigger the computer move
// @Description Runs the search for the computer player and applies its complete turn
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveBotRequest true "Bot move data"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Router /move-bot [post]
func MoveBotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rx, ok := lookupRoom(c, rm, req.RoomCode)
		if !ok {
			return
		}
		moves, err := rm.BotMove(rx, req.BotID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"moves": moves, "room": rm.View(rx)})
	}
}
