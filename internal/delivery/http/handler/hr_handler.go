package handler

import (
	"bytes"
	"errors"
	"fmt"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/export"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HRHandler struct {
	hr       usecase.HRUsecase
	offers   usecase.JobOfferUsecase
	matching usecase.MatchingUsecase
}

func NewHRHandler(hr usecase.HRUsecase, offers usecase.JobOfferUsecase, m usecase.MatchingUsecase) *HRHandler {
	return &HRHandler{hr: hr, offers: offers, matching: m}
}

func (h *HRHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/pending-users", h.PendingUsers)
	r.Post("/approve-user", h.ApproveUser)
	r.Get("/stats", h.Stats)

	r.Get("/job-offers", h.ListJobOffers)
	r.Post("/job-offers", h.CreateJobOffer)
	r.Post("/job-offers/:job_id/close", h.CloseJobOffer)

	r.Get("/recommended-candidates/:job_id", h.RecommendedCandidates)
	r.Get("/recommended-candidates/:job_id/export", h.ExportCandidates)

	r.Get("/job-applications/:job_id", h.JobApplications)
	r.Post("/update-application-status", h.UpdateApplicationStatus)
}

func (h *HRHandler) PendingUsers(c fiber.Ctx) error {
	users, err := h.hr.PendingUsers(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponses(users))
}

func (h *HRHandler) ApproveUser(c fiber.Ctx) error {
	var req dto.ApproveUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.hr.ApproveUser(c.Context(), req.UserID, req.Role)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "User approved", dto.NewUserResponse(usr))
}

func (h *HRHandler) Stats(c fiber.Ctx) error {
	st, err := h.hr.Stats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DashboardStatsResponse{
		PendingUsersCount:        st.PendingUsersCount,
		OpenJobOffersCount:       st.OpenJobOffersCount,
		PendingApplicationsCount: st.PendingApplicationsCount,
	})
}

func (h *HRHandler) ListJobOffers(c fiber.Ctx) error {
	offers, err := h.offers.List(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobOfferResponses(offers))
}

func (h *HRHandler) CreateJobOffer(c fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobOfferRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	closing, err := dto.ParseDate(req.ClosingDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid closingDate", nil, err)
	}

	offer, err := h.offers.Create(c.Context(), userID, usecase.CreateJobOfferInput{
		Title:                   req.Title,
		Description:             req.Description,
		Department:              req.Department,
		RequiredSkills:          req.RequiredSkills,
		MinYearsExperience:      req.MinYearsExperience,
		MinPerformanceScore:     req.MinPerformanceScore,
		PreferredCertifications: req.PreferredCertifications,
		ClosingAt:               closing,
	})
	if err != nil {
		if errors.Is(err, matching.ErrInvalidOpening) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Minimum requirements out of range", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewJobOfferResponse(offer))
}

func (h *HRHandler) CloseJobOffer(c fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}
	if err := h.offers.Close(c.Context(), jobID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job offer closed", nil)
}

func (h *HRHandler) RecommendedCandidates(c fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	ranking, err := h.matching.RecommendedCandidates(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateMatchResponses(ranking.Candidates))
}

func (h *HRHandler) ExportCandidates(c fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	ranking, err := h.matching.RecommendedCandidates(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, export.Sheet{
		JobTitle:    ranking.JobTitle,
		Department:  ranking.Department,
		GeneratedAt: ranking.GeneratedAt,
		Candidates:  ranking.Candidates,
	}); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName(ranking.JobTitle, ranking.GeneratedAt)))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *HRHandler) JobApplications(c fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	apps, err := h.hr.JobApplications(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(apps))
}

func (h *HRHandler) UpdateApplicationStatus(c fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.hr.UpdateApplicationStatus(c.Context(), usecase.UpdateApplicationStatusInput{
		ApplicationID: req.ApplicationID,
		Status:        req.Status,
		HRNotes:       req.HRNotes,
	}); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application status updated", nil)
}
