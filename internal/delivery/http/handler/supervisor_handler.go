package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SupervisorHandler struct {
	reviews    usecase.ReviewUsecase
	objectives usecase.ObjectiveUsecase
}

func NewSupervisorHandler(reviews usecase.ReviewUsecase, objectives usecase.ObjectiveUsecase) *SupervisorHandler {
	return &SupervisorHandler{reviews: reviews, objectives: objectives}
}

func (h *SupervisorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/employees", h.Employees)
	r.Post("/reviews", h.CreateReview)
	r.Get("/reviews", h.MyReviews)
	r.Get("/employee-objectives", h.EmployeeObjectives)
	r.Post("/comment-objective", h.CommentObjective)
}

func (h *SupervisorHandler) Employees(c fiber.Ctx) error {
	reviewerID, err := currentUser(c)
	if err != nil {
		return err
	}
	out, err := h.reviews.Employees(c.Context(), reviewerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponses(out))
}

func (h *SupervisorHandler) CreateReview(c fiber.Ctx) error {
	reviewerID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rv, err := h.reviews.Create(c.Context(), reviewerID, usecase.CreateReviewInput{
		EmployeeID:          req.EmployeeID,
		Period:              req.Period,
		Ratings:             req.Ratings(),
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		Comments:            req.Comments,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewReviewResponse(rv))
}

func (h *SupervisorHandler) MyReviews(c fiber.Ctx) error {
	reviewerID, err := currentUser(c)
	if err != nil {
		return err
	}

	out, err := h.reviews.ListMine(c.Context(), reviewerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReviewResponses(out))
}

func (h *SupervisorHandler) EmployeeObjectives(c fiber.Ctx) error {
	out, err := h.objectives.ListForReview(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEmployeeObjectiveResponses(out))
}

func (h *SupervisorHandler) CommentObjective(c fiber.Ctx) error {
	supervisorID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CommentObjectiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	o, p, err := h.objectives.Comment(c.Context(), supervisorID, usecase.CommentObjectiveInput{
		ObjectiveID:          req.ObjectiveID,
		Comment:              req.Comment,
		CompletionPercentage: req.CompletionPercentage,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.CommentObjectiveResponse{
		ProgressID:           p.ID,
		ObjectiveStatus:      string(o.Status),
		CompletionPercentage: o.CompletionPercentage,
	})
}
