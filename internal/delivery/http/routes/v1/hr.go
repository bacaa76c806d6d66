package v1

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterHR(r fiber.Router, hrHandler *handler.HRHandler) {
	if r == nil {
		return
	}
	if hrHandler == nil {
		return
	}

	hrHandler.RegisterRoutes(r)
}
