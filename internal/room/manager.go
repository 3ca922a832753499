package room

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"nine-mens-morris/internal/config"
	"nine-mens-morris/internal/game"
	"nine-mens-morris/internal/shared"
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	SaveRoom(r *shared.Room)
}

type Manager struct {
	store Store
	cfg   *config.Config
	hub   Broadcaster
	bots  sync.WaitGroup
}

func NewManager(s Store, cfg *config.Config, hub Broadcaster) *Manager {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// SetHub replaces the broadcaster. Call it before serving requests.
func (m *Manager) SetHub(hub Broadcaster) {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	m.hub = hub
}

// CreateRoom opens a lobby with the creator seated as color.
func (m *Manager) CreateRoom(creatorName string, color game.Color) *shared.Room {
	if creatorName == "" {
		creatorName = "Player"
	}
	if color == game.Empty {
		color = game.PlayerA
	}
	r := &shared.Room{
		ID:         uuid.NewString(),
		Code:       randCode(6),
		State:      game.NewGameState(),
		Status:     shared.StatusLobby,
		CreatedAt:  time.Now(),
		RoomConfig: config.NewRoomConfig(m.cfg.Search, m.cfg.DefaultWeights),
		Players: []shared.Player{{
			ID:    uuid.NewString(),
			Name:  creatorName,
			Color: color,
		}},
	}
	m.store.SaveRoom(r)
	log.Info().Str("room", r.Code).Str("player", creatorName).Str("color", color.String()).Msg("room created")
	return r
}

func (m *Manager) Get(code string) (*shared.Room, bool) {
	return m.store.GetRoom(code)
}

// Seat fills the free color with a computer or a second local player and
// starts the game once both colors are taken.
func (m *Manager) Seat(r *shared.Room, name string, bot bool) (shared.Player, error) {
	r.Lock()
	if r.Status != shared.StatusLobby {
		r.Unlock()
		return shared.Player{}, ErrColorTaken
	}
	color := game.Empty
	for _, c := range []game.Color{game.PlayerA, game.PlayerB} {
		if r.PlayerByColor(c) == nil {
			color = c
			break
		}
	}
	if color == game.Empty {
		r.Unlock()
		return shared.Player{}, ErrColorTaken
	}

	p := shared.Player{ID: uuid.NewString(), Name: name, IsBot: bot, Color: color}
	if bot {
		p.ID = "bot-" + p.ID
		if p.Name == "" {
			p.Name = "Computer"
		}
	} else if p.Name == "" {
		p.Name = "Player"
	}
	r.Players = append(r.Players, p)
	m.startLocked(r)
	next := m.botToMove(r)
	r.Unlock()

	m.store.SaveRoom(r)
	log.Info().Str("room", r.Code).Str("player", p.ID).Bool("bot", bot).Str("color", color.String()).Msg("player seated")
	m.maybeScheduleBot(r, next)
	return p, nil
}

// AddBots seats n computer players, at most the free colors.
func (m *Manager) AddBots(r *shared.Room, n int) ([]shared.Player, error) {
	var out []shared.Player
	for i := 0; i < n; i++ {
		p, err := m.Seat(r, "", true)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Restart begins a new game with the same players.
func (m *Manager) Restart(r *shared.Room) error {
	r.Lock()
	if len(r.Players) < 2 {
		r.Unlock()
		return ErrNotStarted
	}
	r.State = game.NewGameState()
	r.Endgame = nil
	r.Thinking = false
	r.Status = shared.StatusLobby
	m.startLocked(r)
	next := m.botToMove(r)
	r.Unlock()

	m.store.SaveRoom(r)
	log.Info().Str("room", r.Code).Msg("game restarted")
	m.maybeScheduleBot(r, next)
	return nil
}

// startLocked moves a full lobby to playing.
func (m *Manager) startLocked(r *shared.Room) {
	if len(r.Players) < 2 {
		return
	}
	for _, p := range r.Players {
		r.State.Player(p.Color).Computer = p.IsBot
	}
	r.Status = shared.StatusPlaying
	r.StartedAt = time.Now()
	m.hub.Broadcast(r.Code, "game_started", m.viewLocked(r))
}

func checkPlayable(r *shared.Room) error {
	switch r.Status {
	case shared.StatusLobby:
		return ErrNotStarted
	case shared.StatusFinished:
		return ErrGameOver
	}
	if r.State.IsOver() {
		return ErrGameOver
	}
	return nil
}

// ApplyMove applies one tap of a human player. Illegal taps leave the
// state unchanged and return ErrMoveNotAllowed.
func (m *Manager) ApplyMove(r *shared.Room, playerID string, x, y int) (game.MoveResult, error) {
	r.Lock()
	p := r.PlayerByID(playerID)
	if p == nil {
		r.Unlock()
		return game.MoveNotAllowed, ErrPlayerNotFound
	}
	if err := checkPlayable(r); err != nil {
		r.Unlock()
		return game.MoveNotAllowed, err
	}
	if p.IsBot || p.Color != r.State.Turn || r.Thinking {
		r.Unlock()
		return game.MoveNotAllowed, ErrNotYourTurn
	}

	selected := game.Position{X: x, Y: y}
	before := len(r.State.Moves)
	res := game.PerformMove(r.State, selected)
	if res == game.MoveNotAllowed {
		phase := r.State.MoveType
		r.Unlock()
		log.Warn().Str("room", r.Code).Str("player", playerID).Stringer("pos", selected).Stringer("phase", phase).Msg("move rejected")
		return res, fmt.Errorf("%w: %v during %v", ErrMoveNotAllowed, selected, phase)
	}
	log.Debug().Str("room", r.Code).Str("player", playerID).Stringer("pos", selected).Stringer("result", res).Msg("move applied")

	records := append([]game.MoveRecord(nil), r.State.Moves[before:]...)
	m.afterMoveLocked(r, playerID, "move", res, records)
	next := m.botToMove(r)
	r.Unlock()

	m.store.SaveRoom(r)
	m.maybeScheduleBot(r, next)
	return res, nil
}

// BotMove runs the engine for botID and commits the chosen turn. The search
// works on a clone outside the room lock; the result is dropped if the room
// moved on meanwhile.
func (m *Manager) BotMove(r *shared.Room, botID string) ([]game.MoveRecord, error) {
	r.Lock()
	p := r.PlayerByID(botID)
	if p == nil {
		r.Unlock()
		return nil, ErrPlayerNotFound
	}
	if err := checkPlayable(r); err != nil {
		r.Unlock()
		return nil, err
	}
	if !p.IsBot || p.Color != r.State.Turn || r.Thinking {
		r.Unlock()
		return nil, ErrNotBotTurn
	}
	color := p.Color
	eng, err := m.engineFor(r, color)
	if err != nil {
		r.Unlock()
		return nil, err
	}
	live := r.State
	count := live.MoveCount
	start := live.Clone()
	r.Thinking = true
	m.hub.Broadcast(r.Code, "bot_thinking", gin.H{"bot_id": botID, "color": color})
	r.Unlock()

	res := eng.Search(start)

	r.Lock()
	defer r.Unlock()
	r.Thinking = false
	if r.State != live || live.MoveCount != count || r.Status != shared.StatusPlaying {
		return nil, ErrStaleSearch
	}
	if res.State == start {
		return nil, fmt.Errorf("%w: no legal turn for %v", ErrMoveNotAllowed, color)
	}

	before := len(live.Moves)
	r.State = res.State
	records := append([]game.MoveRecord(nil), r.State.Moves[before:]...)
	result := game.FinishedTurn
	if r.State.IsOver() {
		result = game.GameEnded
	}
	log.Info().Str("room", r.Code).Str("bot", botID).Int("plies", res.Plies).Int("nodes", res.Nodes).Dur("elapsed", res.Elapsed).Msg("computer moved")
	m.afterMoveLocked(r, botID, "bot_move", result, records)
	m.store.SaveRoom(r)
	return records, nil
}

// afterMoveLocked publishes a move and closes the game when it ended.
func (m *Manager) afterMoveLocked(r *shared.Room, playerID, action string, res game.MoveResult, records []game.MoveRecord) {
	m.hub.Broadcast(r.Code, action, gin.H{
		"player_id": playerID,
		"result":    res,
		"moves":     records,
		"board":     game.NewSnapshot(r.State),
		"next_turn": r.State.Turn,
	})
	if !r.State.IsOver() {
		return
	}
	data := game.NewEndgameData(r.State, time.Since(r.StartedAt))
	r.Endgame = &data
	r.Status = shared.StatusFinished
	log.Info().Str("room", r.Code).Str("loser", data.LosingPlayer.String()).Int("moves", data.MoveCount).Msg("game over")
	m.hub.Broadcast(r.Code, "game_over", gin.H{
		"winner":  game.Winner(r.State),
		"endgame": data,
		"score":   scoreLocked(r),
	})
}

func (m *Manager) botToMove(r *shared.Room) *shared.Player {
	if r.Status != shared.StatusPlaying || r.State.IsOver() {
		return nil
	}
	p := r.PlayerByColor(r.State.Turn)
	if p == nil || !p.IsBot {
		return nil
	}
	cp := *p
	return &cp
}

func (m *Manager) maybeScheduleBot(r *shared.Room, bot *shared.Player) {
	if bot == nil || !m.cfg.AutoBotMove {
		return
	}
	m.bots.Add(1)
	go func() {
		defer m.bots.Done()
		if _, err := m.BotMove(r, bot.ID); err != nil {
			log.Warn().Err(err).Str("room", r.Code).Str("bot", bot.ID).Msg("scheduled computer move failed")
		}
	}()
}

// Wait blocks until scheduled computer moves have finished.
func (m *Manager) Wait() {
	m.bots.Wait()
}

func (m *Manager) engineFor(r *shared.Room, c game.Color) (*game.Engine, error) {
	return game.NewEngine(r.RoomConfig.GetSearch(c.String()), r.RoomConfig.GetWeights())
}

// UpdateSearch overrides the engine settings of color in r.
func (m *Manager) UpdateSearch(r *shared.Room, c game.Color, sc config.SearchConfig, w *config.Weights) error {
	if _, err := game.ParseAlgorithm(sc.Algorithm); err != nil {
		return err
	}
	if _, err := game.ParseHeuristics(sc.Heuristics); err != nil {
		return err
	}
	r.RoomConfig.Update(c.String(), sc, w)
	m.hub.Broadcast(r.Code, "config_updated", gin.H{"color": c, "room_config": r.RoomConfig})
	return nil
}

// PossibleMoves is what a client highlights for the turn holder.
type PossibleMoves struct {
	Turn              game.Color      `json:"turn"`
	MoveType          game.MoveType   `json:"move_type"`
	AllowedMoves      []game.Position `json:"allowed_moves"`
	ShiftDestinations []game.Position `json:"shift_destinations"`
	ChosenForShift    *game.Position  `json:"chosen_for_shift,omitempty"`
}

func (m *Manager) PossibleMoves(r *shared.Room) PossibleMoves {
	r.Lock()
	defer r.Unlock()
	gs := r.State
	pm := PossibleMoves{
		Turn:              gs.Turn,
		MoveType:          gs.MoveType,
		AllowedMoves:      append([]game.Position{}, gs.AllowedMoves...),
		ShiftDestinations: append([]game.Position{}, gs.ShiftDestinations...),
	}
	if gs.ChosenForShift != nil {
		p := *gs.ChosenForShift
		pm.ChosenForShift = &p
	}
	return pm
}

type ScoreRow struct {
	PlayerID       string     `json:"player_id"`
	Name           string     `json:"name"`
	Color          game.Color `json:"color"`
	Points         int        `json:"points"`
	PiecesOnBoard  int        `json:"pieces_on_board"`
	PiecesInDrawer int        `json:"pieces_in_drawer"`
}

func (m *Manager) Score(r *shared.Room) []ScoreRow {
	r.Lock()
	defer r.Unlock()
	return scoreLocked(r)
}

func scoreLocked(r *shared.Room) []ScoreRow {
	out := make([]ScoreRow, 0, len(r.Players))
	for _, p := range r.Players {
		ps := r.State.Player(p.Color)
		out = append(out, ScoreRow{
			PlayerID:       p.ID,
			Name:           p.Name,
			Color:          p.Color,
			Points:         ps.Points,
			PiecesOnBoard:  ps.PiecesOnBoard,
			PiecesInDrawer: ps.PiecesInDrawer,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PiecesOnBoard+out[i].PiecesInDrawer > out[j].PiecesOnBoard+out[j].PiecesInDrawer
	})
	return out
}

func (m *Manager) View(r *shared.Room) shared.RoomView {
	r.Lock()
	defer r.Unlock()
	return m.viewLocked(r)
}

func (m *Manager) viewLocked(r *shared.Room) shared.RoomView {
	v := shared.RoomView{
		ID:         r.ID,
		Code:       r.Code,
		Status:     r.Status,
		Players:    append([]shared.Player(nil), r.Players...),
		Board:      game.NewSnapshot(r.State),
		Moves:      append([]game.MoveRecord(nil), r.State.Moves...),
		Thinking:   r.Thinking,
		CreatedAt:  r.CreatedAt,
		RoomConfig: r.RoomConfig,
	}
	if r.Endgame != nil {
		e := *r.Endgame
		v.Endgame = &e
	}
	return v
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[frand.Intn(len(letters))]
	}
	return string(b)
}
