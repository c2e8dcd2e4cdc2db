package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	GameID          string            `json:"game_id"`
	BoardSize       int               `json:"board_size"`
	WinLength       int               `json:"win_length"`
	Board           [][]int           `json:"board"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	Status          string            `json:"status"`
	LastMove        *Move             `json:"last_move,omitempty"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []Move            `json:"winning_line"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type apiMove struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type moveResponse struct {
	Applied     []historyEntryDTO `json:"applied"`
	NextPlayer  int               `json:"next_player"`
	Winner      int               `json:"winner"`
	Status      string            `json:"status"`
	WinningLine []Move            `json:"winning_line"`
}

type historyEntryDTO struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
	IsAi      bool    `json:"is_ai"`
}

type cacheStatusResponse struct {
	Entries int `json:"entries"`
}

func main() {
	conf := initConfig()
	logger := initLogger(conf)

	controller := NewGameController(*conf, logger)
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx.Done())

	router := newRouter(controller, hub, logger)
	server := &http.Server{
		Addr:    ":" + conf.HTTPPort,
		Handler: router,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	logger.Info("backend listening", slog.String("port", conf.HTTPPort))
	select {
	case <-sigCtx.Done():
		logger.Info("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			logger.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		_ = server.Close()
	}
}

func initConfig() *Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return MustLoad(filepath.Join(baseDir, "config.yml"))
}

func initLogger(conf *Config) *slog.Logger {
	var level slog.Level
	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func newRouter(controller *GameController, hub *Hub, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		controller.StartGame()
		status := controllerStatus(controller)
		writeJSON(w, http.StatusOK, status)
		hub.broadcastReset <- status
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		result, err := controller.SubmitMove(Move{X: payload.X, Y: payload.Y})
		if err != nil {
			writeMoveError(w, err)
			return
		}
		publishMoveResult(hub, controller, result)
		writeJSON(w, http.StatusOK, moveResponse{
			Applied:     entriesToDTO(result.Moves),
			NextPlayer:  playerToInt(result.NextPlayer),
			Winner:      winnerFromStatus(result.Status),
			Status:      statusToString(result.Status),
			WinningLine: result.WinningLine,
		})
	})

	r.Get("/api/cache", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cacheStatusResponse{Entries: controller.CacheLen()})
	})
	r.Delete("/api/cache", func(w http.ResponseWriter, r *http.Request) {
		controller.ClearCache()
		writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	return r
}

func publishMoveResult(hub *Hub, controller *GameController, result MoveResult) {
	for _, entry := range result.Moves {
		hub.broadcastMove <- movePayload{
			X:      entry.Move.X,
			Y:      entry.Move.Y,
			Player: playerToInt(entry.Player),
		}
	}
	if result.Status != StatusRunning {
		hub.broadcastGameOver <- gameOverPayload{
			Outcome:     statusToString(result.Status),
			Winner:      winnerFromStatus(result.Status),
			WinningLine: result.WinningLine,
		}
	}
	hub.broadcastStatus <- controllerStatus(controller)
}

func writeMoveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrOutOfBounds):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "out_of_bounds"})
	case errors.Is(err, ErrCellOccupied):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "cell_occupied"})
	case errors.Is(err, ErrGameOver):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "game_over"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(controllerStatus(controller))})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	var lastMove *Move
	if state.HasLastMove {
		move := state.LastMove
		lastMove = &move
	}
	return StatusResponse{
		GameID:          controller.ID(),
		BoardSize:       state.Board.Size(),
		WinLength:       WinLength,
		Board:           boardToSlice(state.Board),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		Status:          statusToString(state.Status),
		LastMove:        lastMove,
		History:         entriesToDTO(controller.History().All()),
		WinningLine:     append([]Move(nil), state.WinningLine...),
		TurnStartedAtMs: controller.TurnStartedAtMs(),
	}
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for y := 0; y < size; y++ {
		rows[y] = make([]int, size)
		for x := 0; x < size; x++ {
			rows[y][x] = cellToInt(board.At(x, y))
		}
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellX:
		return 1
	case CellO:
		return 2
	default:
		return 0
	}
}

func playerToInt(player Player) int {
	if player == PlayerX {
		return 1
	}
	return 2
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusXWon:
		return 1
	case StatusOWon:
		return 2
	default:
		return 0
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusXWon:
		return "x_won"
	case StatusOWon:
		return "o_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

func entriesToDTO(entries []HistoryEntry) []historyEntryDTO {
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryDTO{
			X:         entry.Move.X,
			Y:         entry.Move.Y,
			Player:    playerToInt(entry.Player),
			ElapsedMs: entry.ElapsedMs,
			IsAi:      entry.IsAi,
		})
	}
	return result
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
