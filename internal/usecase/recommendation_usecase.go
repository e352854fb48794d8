package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/ai"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/repository"
)

// candidateFetchLimit bounds how many candidates one recommendation request
// pulls from the store.
const candidateFetchLimit = 200

type ProjectRecommendationSet struct {
	Source ai.Source                  `json:"source"`
	Items  []ai.ProjectRecommendation `json:"items"`
}

type EmployeeRecommendationSet struct {
	Source ai.Source                   `json:"source"`
	Items  []ai.EmployeeRecommendation `json:"items"`
}

type RecommendationUsecase interface {
	ProjectsForEmployee(ctx context.Context, employeeID uuid.UUID) (ProjectRecommendationSet, error)
	EmployeesForProject(ctx context.Context, projectID uuid.UUID) (EmployeeRecommendationSet, error)
}

type Recommendation struct {
	employees repository.EmployeeRepository
	projects  repository.ProjectRepository
	engine    *Orchestrator
	cache     RecommendationCache
	cacheTTL  time.Duration
}

func NewRecommendationUsecase(
	employees repository.EmployeeRepository,
	projects repository.ProjectRepository,
	engine *Orchestrator,
	cache RecommendationCache,
	cacheTTL time.Duration,
) *Recommendation {
	return &Recommendation{
		employees: employees,
		projects:  projects,
		engine:    engine,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (u *Recommendation) ProjectsForEmployee(ctx context.Context, employeeID uuid.UUID) (ProjectRecommendationSet, error) {
	if employeeID == uuid.Nil {
		return ProjectRecommendationSet{}, ErrInvalidInput
	}

	key := "recommendations:projects:" + employeeID.String()
	if u.cache != nil {
		var cached ProjectRecommendationSet
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	emp, err := u.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ProjectRecommendationSet{}, ErrEmployeeNotFound
		}
		return ProjectRecommendationSet{}, ErrInternal
	}

	projects, err := u.projects.List(ctx, candidateFetchLimit)
	if err != nil {
		return ProjectRecommendationSet{}, ErrInternal
	}

	items, source := u.engine.ProjectsForEmployee(ctx, emp, projects)
	set := ProjectRecommendationSet{Source: source, Items: items}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, set, u.cacheTTL)
	}
	return set, nil
}

func (u *Recommendation) EmployeesForProject(ctx context.Context, projectID uuid.UUID) (EmployeeRecommendationSet, error) {
	if projectID == uuid.Nil {
		return EmployeeRecommendationSet{}, ErrInvalidInput
	}

	key := "recommendations:employees:" + projectID.String()
	if u.cache != nil {
		var cached EmployeeRecommendationSet
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	proj, err := u.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return EmployeeRecommendationSet{}, ErrProjectNotFound
		}
		return EmployeeRecommendationSet{}, ErrInternal
	}

	employees, err := u.employees.List(ctx, candidateFetchLimit)
	if err != nil {
		return EmployeeRecommendationSet{}, ErrInternal
	}

	items, source := u.engine.EmployeesForProject(ctx, proj, employees)
	set := EmployeeRecommendationSet{Source: source, Items: items}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, set, u.cacheTTL)
	}
	return set, nil
}
