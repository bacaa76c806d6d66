package handler

import (
	"errors"

	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Candidate data unavailable", nil, err)
	case errors.Is(err, usecase.ErrJobOfferNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job offer not found", nil, err)
	case errors.Is(err, usecase.ErrJobOfferClosed):
		return middleware.NewAppError(fiber.StatusNotFound, "Job offer is not accepting applications", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrObjectiveNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Objective not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job offer", nil, err)
	case errors.Is(err, matching.ErrInvalidOpening):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job opening", nil, err)
	case errors.Is(err, usecase.ErrSelfReview):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot review yourself", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func currentUser(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func jobIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	return id, nil
}
