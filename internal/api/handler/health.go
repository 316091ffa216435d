package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health. It reports process uptime and database
// connection state: 200 when MongoDB answers a ping, 503 otherwise.
type HealthHandler struct {
	db      *mongo.Database
	env     string
	started time.Time
}

func NewHealthHandler(db *mongo.Database, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env, started: time.Now()}
}

type healthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
	Database    string  `json:"database"`
}

// Check reports liveness and database connectivity.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	dbState := "connected"
	httpStatus := http.StatusOK
	if err := h.db.Client().Ping(ctx, nil); err != nil {
		dbState = "disconnected"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, healthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.started).Seconds(),
		Environment: h.env,
		Database:    dbState,
	})
}
