package ai

import (
	"context"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/employee"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/matching"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/project"
)

// Source identifies which provider produced a recommendation set. The result
// shapes are identical on both paths; this is the only way callers can tell
// them apart.
type Source string

const (
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
)

// ProjectRecommendation is one ranked project for an employee.
type ProjectRecommendation struct {
	Project        project.Project
	Score          int
	MatchingSkills []string
	MissingSkills  []string
	Reasoning      string
	Level          matching.Tier
}

// EmployeeRecommendation is one ranked employee for a project.
// AdditionalSkills lists what the candidate brings beyond the requirement.
type EmployeeRecommendation struct {
	Employee         employee.Employee
	Score            int
	MatchingSkills   []string
	AdditionalSkills []string
	Reasoning        string
	Level            matching.Tier
}

// Recommender is the single contract both the AI-backed primary and the
// heuristic fallback satisfy, so substituting one for the other is a
// data-level decision rather than exception-driven branching.
type Recommender interface {
	ProjectsForEmployee(ctx context.Context, emp employee.Employee, projects []project.Project) ([]ProjectRecommendation, error)
	EmployeesForProject(ctx context.Context, proj project.Project, employees []employee.Employee) ([]EmployeeRecommendation, error)
}
