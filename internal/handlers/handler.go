package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Calvin-222/COMP-4117-back-end/internal/config"
	"github.com/Calvin-222/COMP-4117-back-end/internal/store"
)

// MessageSender is the outbound messaging transport. The WhatsApp client
// implements it; handler tests stub it.
type MessageSender interface {
	SendText(ctx context.Context, to, body string) (json.RawMessage, error)
}

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	db     store.DataStore
	redis  *store.RedisStore
	wa     MessageSender
	logger zerolog.Logger
	cfg    *config.Config
}

// NewHandler creates a new Handler with the given dependencies. The
// redis store may be nil when rate limiting is not configured.
func NewHandler(db store.DataStore, redis *store.RedisStore, wa MessageSender, logger zerolog.Logger, cfg *config.Config) *Handler {
	return &Handler{db: db, redis: redis, wa: wa, logger: logger, cfg: cfg}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorResponse is the envelope every failure is reported in.
type errorResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, errorResponse{Success: false, Message: message})
}
