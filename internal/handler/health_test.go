package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
)

type mockDB struct {
	pingFunc func(ctx context.Context) error
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

type mockRedis struct {
	err error
}

func (m *mockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusResult("PONG", m.err)
	return cmd
}

func TestHealth_Show_AllUp(t *testing.T) {
	h := NewHealthHandler(&mockDB{}, &mockRedis{}, "1.2.3")
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	h.Show(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status=healthy, got %q", resp.Status)
	}
	if resp.Services["database"] != "up" || resp.Services["redis"] != "up" {
		t.Errorf("expected both services up, got %v", resp.Services)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %q", resp.Version)
	}
	if resp.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestHealth_Show_DatabaseDown(t *testing.T) {
	h := NewHealthHandler(&mockDB{
		pingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}, &mockRedis{}, "1.2.3")

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	h.Show(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("expected status=unhealthy, got %q", resp.Status)
	}
	if resp.Services["database"] != "down" {
		t.Errorf("expected database=down, got %v", resp.Services)
	}
	if resp.Services["redis"] != "up" {
		t.Errorf("expected redis=up, got %v", resp.Services)
	}
}

func TestHealth_Show_RedisDown(t *testing.T) {
	h := NewHealthHandler(&mockDB{}, &mockRedis{err: errors.New("redis: timeout")}, "1.2.3")

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	h.Show(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

// Readiness only depends on the database: a dead redis degrades /health but
// must not pull the app out of rotation.
func TestHealth_Ready_IgnoresRedis(t *testing.T) {
	h := NewHealthHandler(&mockDB{}, &mockRedis{err: errors.New("redis: timeout")}, "1.2.3")

	req := httptest.NewRequest("GET", "/health/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHealth_Ready_DatabaseDown(t *testing.T) {
	h := NewHealthHandler(&mockDB{
		pingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}, &mockRedis{}, "1.2.3")

	req := httptest.NewRequest("GET", "/health/ready", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestHealth_Live_AlwaysOK(t *testing.T) {
	h := NewHealthHandler(&mockDB{
		pingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}, &mockRedis{err: errors.New("down")}, "1.2.3")

	req := httptest.NewRequest("GET", "/health/live", nil)
	rec := httptest.NewRecorder()

	h.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
