package adaptor

import (
	"context"
	"net/http"
	"time"

	"moviebooking/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  Pinger
	app utils.AppConfig
	log *zap.Logger
}

func NewHealthHandler(db Pinger, app utils.AppConfig, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		app: app,
		log: log.With(zap.String("handler", "health")),
	}
}

type StatusResponse struct {
	Application string `json:"application"`
	Status      string `json:"status"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// Status handles GET /
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Service is running", StatusResponse{
		Application: h.app.Name,
		Status:      "UP",
		Version:     h.app.Version,
		Description: "Movie ticket booking and review service",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Database unavailable", nil, nil)
		return
	}

	utils.ResponseSuccess(w, "OK", nil)
}
