package handler

import (
	"context"
	"time"

	"talent-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by the database pool and the redis client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	required map[string]Pinger
	optional map[string]Pinger
}

// NewHealthHandler takes the dependencies readiness depends on and the ones
// the service can run without (reported as degraded).
func NewHealthHandler(required, optional map[string]Pinger) *HealthHandler {
	return &HealthHandler{required: required, optional: optional}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Live)
	r.Get("/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// Ready reports 503 when a required dependency fails its ping.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthPingTimeout)
	defer cancel()

	status := fiber.StatusOK
	checks := make(map[string]string, len(h.required)+len(h.optional))
	for name, dep := range h.required {
		if !ping(ctx, dep, name, checks, "down") {
			status = fiber.StatusServiceUnavailable
		}
	}
	for name, dep := range h.optional {
		ping(ctx, dep, name, checks, "degraded")
	}

	return response.Success(c, status, "", checks)
}

func ping(ctx context.Context, dep Pinger, name string, checks map[string]string, failure string) bool {
	if dep == nil {
		checks[name] = failure
		return false
	}
	if err := dep.Ping(ctx); err != nil {
		checks[name] = failure + ": " + err.Error()
		return false
	}
	checks[name] = "ok"
	return true
}
