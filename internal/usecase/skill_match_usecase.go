package usecase

import (
	"sort"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/employee"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/matching"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/project"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/skillgraph"
)

const (
	minRecommendationScore = 30
	maxProjectResults      = 10
	maxEmployeeResults     = 15
)

// SkillMatch is the scored pairing of one employee and one project.
// It is a value object: constructed once, never mutated.
type SkillMatch struct {
	Employee       employee.Employee
	Project        project.Project
	Score          int
	Level          matching.Tier
	MatchingSkills []string
	MissingSkills  []string
	ExactCount     int
	RequiredCount  int
}

// SkillMatcher is the deterministic two-sided recommender. Both entry
// points are pure functions of their inputs: no I/O, no shared state, safe
// for any number of concurrent callers.
type SkillMatcher struct {
	graph *skillgraph.Graph
}

func NewSkillMatcher(graph *skillgraph.Graph) *SkillMatcher {
	if graph == nil {
		graph = skillgraph.Default()
	}
	return &SkillMatcher{graph: graph}
}

// Match scores a single employee/project pair.
func (m *SkillMatcher) Match(emp employee.Employee, proj project.Project) SkillMatch {
	res := matching.Calculate(
		m.graph,
		emp.Skills,
		proj.RequiredSkills,
		emp.ExperienceLevel,
		matching.DepartmentRelevant(emp.Department, proj.Title, proj.Description),
	)

	return SkillMatch{
		Employee:       emp,
		Project:        proj,
		Score:          res.Score,
		Level:          res.Level,
		MatchingSkills: res.MatchingSkills,
		MissingSkills:  res.MissingSkills,
		ExactCount:     res.ExactCount,
		RequiredCount:  res.RequiredCount,
	}
}

// RecommendProjectsForEmployee scores every project, keeps scores >= 30,
// sorts descending (stable, so ties stay in input order) and returns at
// most 10 results.
func (m *SkillMatcher) RecommendProjectsForEmployee(emp employee.Employee, projects []project.Project) []SkillMatch {
	out := make([]SkillMatch, 0, len(projects))
	for _, p := range projects {
		match := m.Match(emp, p)
		if match.Score < minRecommendationScore {
			continue
		}
		out = append(out, match)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > maxProjectResults {
		out = out[:maxProjectResults]
	}
	return out
}

// RecommendEmployeesForProject is the inverse direction with a cap of 15.
func (m *SkillMatcher) RecommendEmployeesForProject(proj project.Project, employees []employee.Employee) []SkillMatch {
	out := make([]SkillMatch, 0, len(employees))
	for _, e := range employees {
		match := m.Match(e, proj)
		if match.Score < minRecommendationScore {
			continue
		}
		out = append(out, match)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > maxEmployeeResults {
		out = out[:maxEmployeeResults]
	}
	return out
}
