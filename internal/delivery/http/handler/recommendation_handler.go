package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/dto"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/delivery/http/middleware"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/pkg/response"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/usecase"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/employees/:id/recommendations/projects", h.ProjectsForEmployee)
	r.Get("/projects/:id/recommendations/employees", h.EmployeesForProject)
}

func (h *RecommendationHandler) ProjectsForEmployee(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employee id", nil, err)
	}

	set, err := h.uc.ProjectsForEmployee(c.Context(), id)
	if err != nil {
		return mapRecommendationError(err)
	}

	out := dto.ProjectRecommendationsResponse{
		Source: string(set.Source),
		Items:  make([]dto.ProjectRecommendationItem, 0, len(set.Items)),
	}
	for _, it := range set.Items {
		out.Items = append(out.Items, dto.ProjectRecommendationItem{
			ProjectID:           it.Project.ID,
			Title:               it.Project.Title,
			CompatibilityScore:  it.Score,
			MatchingSkills:      it.MatchingSkills,
			MissingSkills:       it.MissingSkills,
			Reasoning:           it.Reasoning,
			RecommendationLevel: string(it.Level),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *RecommendationHandler) EmployeesForProject(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid project id", nil, err)
	}

	set, err := h.uc.EmployeesForProject(c.Context(), id)
	if err != nil {
		return mapRecommendationError(err)
	}

	out := dto.EmployeeRecommendationsResponse{
		Source: string(set.Source),
		Items:  make([]dto.EmployeeRecommendationItem, 0, len(set.Items)),
	}
	for _, it := range set.Items {
		out.Items = append(out.Items, dto.EmployeeRecommendationItem{
			EmployeeID:          it.Employee.ID,
			Name:                it.Employee.Name,
			CompatibilityScore:  it.Score,
			MatchingSkills:      it.MatchingSkills,
			AdditionalSkills:    it.AdditionalSkills,
			Reasoning:           it.Reasoning,
			RecommendationLevel: string(it.Level),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
