package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/employee"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/skillgraph"
)

// Term weights of the compatibility score. The experience and department
// terms are applied unnormalized (0-10 each before weighting), so their
// effective ceilings exceed the nominal 15/5 split. That is the observed
// production contract and is pinned by tests; do not "correct" it without
// a deliberate product decision.
const (
	exactMatchWeight      = 60.0
	relatedBonusWeight    = 20.0
	experienceBonusWeight = 15.0
	departmentBonusWeight = 5.0

	relatedMatchUnit = 0.1
	departmentBonus  = 10.0
	versatilityBonus = 10.0
)

type Result struct {
	Score          int
	Level          Tier
	MatchingSkills []string
	MissingSkills  []string
	ExactCount     int
	RequiredCount  int
}

// Calculate scores one candidate skill set against one required skill set.
// It is total: empty or malformed inputs degrade toward score 0, never an
// error. All comparisons are over normalized (lowercase, trimmed) names.
func Calculate(g *skillgraph.Graph, candidateSkills, requiredSkills []string, level employee.ExperienceLevel, departmentRelevant bool) Result {
	candidate := normalizeSet(candidateSkills)
	required := normalizeSet(requiredSkills)
	requiredCount := len(required)

	exact := make(map[string]struct{}, requiredCount)
	for r := range required {
		if _, ok := candidate[r]; ok {
			exact[r] = struct{}{}
		}
	}

	exactRatio := 0.0
	if requiredCount > 0 {
		exactRatio = float64(len(exact)) / float64(requiredCount)
	}

	// One hop only: a required skill counts as related when some candidate
	// skill points at it in the graph.
	reachable := g.ReachableFrom(candidateSkills)
	related := make(map[string]struct{})
	for r := range required {
		if _, ok := exact[r]; ok {
			continue
		}
		if _, ok := reachable[r]; ok {
			related[r] = struct{}{}
		}
	}

	raw := exactRatio*exactMatchWeight +
		float64(len(related))*relatedMatchUnit*relatedBonusWeight +
		experienceBonus(level)*experienceBonusWeight +
		departmentTerm(departmentRelevant)*departmentBonusWeight

	if len(exact) >= requiredCount && len(candidate) > requiredCount {
		raw += versatilityBonus
	}

	score := clamp(int(math.Round(raw)), 0, 100)

	matchingSkills := make([]string, 0, len(exact)+len(related))
	for s := range exact {
		matchingSkills = append(matchingSkills, s)
	}
	for s := range related {
		matchingSkills = append(matchingSkills, s)
	}
	sort.Strings(matchingSkills)

	missingSkills := make([]string, 0)
	for r := range required {
		if _, ok := exact[r]; ok {
			continue
		}
		if _, ok := related[r]; ok {
			continue
		}
		missingSkills = append(missingSkills, r)
	}
	sort.Strings(missingSkills)

	return Result{
		Score:          score,
		Level:          Classify(score, len(exact), requiredCount),
		MatchingSkills: matchingSkills,
		MissingSkills:  missingSkills,
		ExactCount:     len(exact),
		RequiredCount:  requiredCount,
	}
}

// DepartmentRelevant reports whether any keyword of the candidate's
// department appears in the requirement's title or description.
func DepartmentRelevant(department, title, description string) bool {
	dept := strings.ToLower(strings.TrimSpace(department))
	if dept == "" {
		return false
	}
	text := strings.ToLower(title + " " + description)
	if strings.Contains(text, dept) {
		return true
	}
	for _, word := range strings.Fields(dept) {
		if len(word) < 3 {
			continue
		}
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func experienceBonus(level employee.ExperienceLevel) float64 {
	switch level {
	case employee.ExperienceLead, employee.ExperienceSenior:
		return 10
	case employee.ExperienceMid:
		return 7
	case employee.ExperienceJunior:
		return 5
	default:
		return 0
	}
}

func departmentTerm(relevant bool) float64 {
	if relevant {
		return departmentBonus
	}
	return 0
}

func normalizeSet(skills []string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := skillgraph.Normalize(s)
		if n == "" {
			continue
		}
		out[n] = struct{}{}
	}
	return out
}

func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
