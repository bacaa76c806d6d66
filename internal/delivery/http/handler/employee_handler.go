package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployeeHandler struct {
	employee     usecase.EmployeeUsecase
	applications usecase.ApplicationUsecase
	objectives   usecase.ObjectiveUsecase
}

func NewEmployeeHandler(employee usecase.EmployeeUsecase, applications usecase.ApplicationUsecase, objectives usecase.ObjectiveUsecase) *EmployeeHandler {
	return &EmployeeHandler{employee: employee, applications: applications, objectives: objectives}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Profile)
	r.Post("/update-profile", h.UpdateProfile)
	r.Get("/reviews", h.ReceivedReviews)

	r.Post("/achievements", h.AddAchievement)
	r.Get("/achievements", h.Achievements)
	r.Post("/certificates", h.AddCertificate)
	r.Get("/certificates", h.Certificates)
	r.Post("/objectives", h.CreateObjective)
	r.Get("/objectives", h.Objectives)

	r.Get("/job-offers", h.EligibleJobOffers)
	r.Post("/job-offers/:job_id/apply", h.Apply)
	r.Get("/applications", h.MyApplications)
}

func (h *EmployeeHandler) Profile(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	u, err := h.employee.Profile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}

func (h *EmployeeHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	u, err := h.employee.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(u))
}

func (h *EmployeeHandler) ReceivedReviews(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.employee.ReceivedReviews(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReviewResponses(out))
}

func (h *EmployeeHandler) CreateObjective(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateObjectiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	target, err := dto.ParseDate(req.TargetDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid targetDate", nil, err)
	}

	o, err := h.objectives.Create(c.Context(), userID, usecase.CreateObjectiveInput{
		Title:       req.Title,
		Description: req.Description,
		TargetAt:    target,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewObjectiveResponse(o))
}

func (h *EmployeeHandler) Objectives(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.objectives.ListMine(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewObjectiveResponses(out))
}

func (h *EmployeeHandler) AddAchievement(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.AddAchievementRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	achieved, err := dto.ParseDate(req.AchievedDate)
	if err != nil || achieved == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid achievedDate", nil, err)
	}

	a, err := h.employee.AddAchievement(c.Context(), userID, usecase.AddAchievementInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		AchievedAt:  *achieved,
		ImpactScore: req.ImpactScore,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewAchievementResponse(a))
}

func (h *EmployeeHandler) Achievements(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.employee.Achievements(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAchievementResponses(out))
}

func (h *EmployeeHandler) AddCertificate(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.AddCertificateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	issued, err := dto.ParseDate(req.IssueDate)
	if err != nil || issued == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid issueDate", nil, err)
	}
	expires, err := dto.ParseDate(req.ExpirationDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid expirationDate", nil, err)
	}

	cert, err := h.employee.AddCertificate(c.Context(), userID, usecase.AddCertificateInput{
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		IssuedAt:            *issued,
		ExpiresAt:           expires,
		CredentialID:        req.CredentialID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewCertificateResponse(cert))
}

func (h *EmployeeHandler) Certificates(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.employee.Certificates(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCertificateResponses(out))
}

func (h *EmployeeHandler) EligibleJobOffers(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.employee.EligibleJobOffers(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobOfferResponses(out))
}

func (h *EmployeeHandler) Apply(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	app, err := h.applications.Apply(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewApplicationResponse(app))
}

func (h *EmployeeHandler) MyApplications(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.applications.ListMine(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(out))
}
