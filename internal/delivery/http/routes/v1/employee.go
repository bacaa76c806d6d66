package v1

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterEmployee(r fiber.Router, employeeHandler *handler.EmployeeHandler) {
	if r == nil || employeeHandler == nil {
		return
	}

	employeeHandler.RegisterRoutes(r)
}
