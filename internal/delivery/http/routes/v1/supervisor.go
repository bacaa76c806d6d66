package v1

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterSupervisor(r fiber.Router, supervisorHandler *handler.SupervisorHandler) {
	if r == nil || supervisorHandler == nil {
		return
	}

	supervisorHandler.RegisterRoutes(r)
}
