package v1

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	HR         *handler.HRHandler
	Supervisor *handler.SupervisorHandler
	Employee   *handler.EmployeeHandler

	AuthMiddleware *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.AuthMiddleware == nil {
		return
	}

	protected := r.Group("", h.AuthMiddleware.Middleware())

	RegisterHR(protected.Group("/hr", middleware.RequireRole(string(user.RoleHR))), h.HR)
	RegisterSupervisor(protected.Group("/supervisor", middleware.RequireRole(string(user.RoleSupervisor))), h.Supervisor)
	// Supervisors are employees too and keep their own records.
	RegisterEmployee(protected.Group("/employee", middleware.RequireRole(string(user.RoleEmployee), string(user.RoleSupervisor))), h.Employee)
}
