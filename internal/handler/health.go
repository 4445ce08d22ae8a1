package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gibugumi/cms/internal/repository"
)

// RedisPinger is the slice of the redis client the health check needs.
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// HealthHandler reports service health for load balancers and orchestration.
type HealthHandler struct {
	db      repository.DB
	rdb     RedisPinger
	version string
}

func NewHealthHandler(db repository.DB, rdb RedisPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb, version: version}
}

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version"`
}

// Show handles GET /health: 200 when every dependency is reachable, else 503.
func (h *HealthHandler) Show(w http.ResponseWriter, r *http.Request) {
	dbUp := h.db.Ping(r.Context()) == nil
	redisUp := h.rdb.Ping(r.Context()).Err() == nil
	healthy := dbUp && redisUp

	status := http.StatusOK
	label := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		label = "unhealthy"
	}

	writeJSON(w, status, healthResponse{
		Status:    label,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: map[string]string{
			"database": upDown(dbUp),
			"redis":    upDown(redisUp),
		},
		Version: h.version,
	})
}

// Ready handles GET /health/ready: can the app serve requests?
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ready := h.db.Ping(r.Context()) == nil
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"ready":     ready,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Live handles GET /health/live: is the process running?
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"alive":     true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func upDown(up bool) string {
	if up {
		return "up"
	}
	return "down"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
