package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler streams the latest ranked scan results to connected clients.
type Handler struct {
	repo     domain.ScanRepository
	interval time.Duration
	logger   zerolog.Logger
}

func NewHandler(repo domain.ScanRepository, interval time.Duration) *Handler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Handler{
		repo:     repo,
		interval: interval,
		logger:   log.With().Str("component", "websocket").Logger(),
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("upgrade failed")
		return
	}
	defer conn.Close()

	h.logger.Info().Str("remote", r.RemoteAddr).Msg("client connected")

	// Initial push so new clients see data immediately.
	if err := conn.WriteJSON(h.repo.LatestResults()); err != nil {
		h.logger.Debug().Err(err).Msg("write failed")
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteJSON(h.repo.LatestResults()); err != nil {
			h.logger.Debug().Err(err).Msg("write failed, closing")
			return
		}
	}
}
