package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/ai"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/employee"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/project"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/skillgraph"
)

// HeuristicRecommender adapts the deterministic SkillMatcher to the
// ai.Recommender contract. It never returns an error, which is what makes
// the orchestrator's fallback total.
type HeuristicRecommender struct {
	matcher *SkillMatcher
}

func NewHeuristicRecommender(matcher *SkillMatcher) *HeuristicRecommender {
	return &HeuristicRecommender{matcher: matcher}
}

func (h *HeuristicRecommender) ProjectsForEmployee(_ context.Context, emp employee.Employee, projects []project.Project) ([]ai.ProjectRecommendation, error) {
	matches := h.matcher.RecommendProjectsForEmployee(emp, projects)

	out := make([]ai.ProjectRecommendation, 0, len(matches))
	for _, m := range matches {
		out = append(out, ai.ProjectRecommendation{
			Project:        m.Project,
			Score:          m.Score,
			MatchingSkills: m.MatchingSkills,
			MissingSkills:  m.MissingSkills,
			Reasoning:      matchReasoning(m),
			Level:          m.Level,
		})
	}
	return out, nil
}

func (h *HeuristicRecommender) EmployeesForProject(_ context.Context, proj project.Project, employees []employee.Employee) ([]ai.EmployeeRecommendation, error) {
	matches := h.matcher.RecommendEmployeesForProject(proj, employees)

	out := make([]ai.EmployeeRecommendation, 0, len(matches))
	for _, m := range matches {
		out = append(out, ai.EmployeeRecommendation{
			Employee:         m.Employee,
			Score:            m.Score,
			MatchingSkills:   m.MatchingSkills,
			AdditionalSkills: additionalSkills(m.Employee, m.Project),
			Reasoning:        matchReasoning(m),
			Level:            m.Level,
		})
	}
	return out, nil
}

func matchReasoning(m SkillMatch) string {
	return fmt.Sprintf(
		"%d of %d required skills match; experience level: %s",
		len(m.MatchingSkills), m.RequiredCount, m.Employee.ExperienceLevel,
	)
}

// additionalSkills lists what the employee brings beyond the requirement.
func additionalSkills(emp employee.Employee, proj project.Project) []string {
	required := make(map[string]struct{}, len(proj.RequiredSkills))
	for _, s := range proj.RequiredSkills {
		required[skillgraph.Normalize(s)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(emp.Skills))
	out := make([]string, 0, len(emp.Skills))
	for _, s := range emp.Skills {
		n := skillgraph.Normalize(s)
		if n == "" {
			continue
		}
		if _, ok := required[n]; ok {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Orchestrator attempts the primary (AI) provider and substitutes the
// heuristic provider on any failure. The fallback runs at most once per
// request and cannot itself fail, so callers always receive a result list.
type Orchestrator struct {
	primary  ai.Recommender
	fallback *HeuristicRecommender
	logger   *zap.Logger
}

func NewOrchestrator(primary ai.Recommender, fallback *HeuristicRecommender, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{primary: primary, fallback: fallback, logger: logger}
}

func (o *Orchestrator) ProjectsForEmployee(ctx context.Context, emp employee.Employee, projects []project.Project) ([]ai.ProjectRecommendation, ai.Source) {
	if o.primary != nil {
		items, err := o.primary.ProjectsForEmployee(ctx, emp, projects)
		if err == nil {
			return items, ai.SourceAI
		}
		o.logger.Warn("ai recommender failed, using heuristic fallback",
			zap.String("employee_id", emp.ID.String()),
			zap.Error(err),
		)
	}

	items, _ := o.fallback.ProjectsForEmployee(ctx, emp, projects)
	return items, ai.SourceHeuristic
}

func (o *Orchestrator) EmployeesForProject(ctx context.Context, proj project.Project, employees []employee.Employee) ([]ai.EmployeeRecommendation, ai.Source) {
	if o.primary != nil {
		items, err := o.primary.EmployeesForProject(ctx, proj, employees)
		if err == nil {
			return items, ai.SourceAI
		}
		o.logger.Warn("ai recommender failed, using heuristic fallback",
			zap.String("project_id", proj.ID.String()),
			zap.Error(err),
		)
	}

	items, _ := o.fallback.EmployeesForProject(ctx, proj, employees)
	return items, ai.SourceHeuristic
}
