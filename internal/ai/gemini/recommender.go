package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/ai"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/employee"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/matching"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/project"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Recommender asks Gemini to rank candidates and parses its structured
// response. Any transport or parse failure surfaces as an error; the caller
// owns the fallback decision. Calls are timeout-bound so a slow model stalls
// one request, not the server.
type Recommender struct {
	generator contentGenerator
	timeout   time.Duration
	logger    *zap.Logger
}

func NewRecommender(generator contentGenerator, timeout time.Duration, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{generator: generator, timeout: timeout, logger: logger}
}

func (r *Recommender) generate(ctx context.Context, prompt string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.generator.GenerateContent(ctx, prompt)
}

type candidatePayload struct {
	ID              string   `json:"id"`
	Name            string   `json:"name,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	Department      string   `json:"department,omitempty"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	RequiredSkills  []string `json:"requiredSkills,omitempty"`
}

type aiRecord struct {
	ID                  string   `json:"id"`
	Score               float64  `json:"score"`
	MatchingSkills      []string `json:"matchingSkills"`
	MissingSkills       []string `json:"missingSkills"`
	AdditionalSkills    []string `json:"additionalSkills"`
	Reasoning           string   `json:"reasoning"`
	RecommendationLevel string   `json:"recommendationLevel"`
}

func (r *Recommender) ProjectsForEmployee(ctx context.Context, emp employee.Employee, projects []project.Project) ([]ai.ProjectRecommendation, error) {
	if r == nil || r.generator == nil {
		return nil, errors.New("gemini recommender is not initialized")
	}

	prompt, err := buildPrompt(
		"Rank the projects below by how well this employee's skills fit their required skills.",
		employeePayload(emp),
		projectPayloads(projects),
		`"missingSkills": ["required skills the employee lacks"]`,
	)
	if err != nil {
		return nil, err
	}

	raw, err := r.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("gemini project recommendations response",
		zap.String("employee_id", emp.ID.String()),
		zap.Int("response_length", len(raw)),
	)

	records, err := parseRecords(raw)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]project.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	out := make([]ai.ProjectRecommendation, 0, len(records))
	for _, rec := range records {
		id, err := uuid.Parse(strings.TrimSpace(rec.ID))
		if err != nil {
			continue
		}
		p, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, ai.ProjectRecommendation{
			Project:        p,
			Score:          clampScore(rec.Score),
			MatchingSkills: cleanSkills(rec.MatchingSkills),
			MissingSkills:  cleanSkills(rec.MissingSkills),
			Reasoning:      strings.TrimSpace(rec.Reasoning),
			Level:          resolveLevel(rec, len(p.RequiredSkills)),
		})
	}
	if len(out) == 0 && len(projects) > 0 {
		return nil, errors.New("gemini response referenced no known projects")
	}
	return out, nil
}

func (r *Recommender) EmployeesForProject(ctx context.Context, proj project.Project, employees []employee.Employee) ([]ai.EmployeeRecommendation, error) {
	if r == nil || r.generator == nil {
		return nil, errors.New("gemini recommender is not initialized")
	}

	prompt, err := buildPrompt(
		"Rank the employees below by how well their skills fit this project's required skills.",
		projectPayload(proj),
		employeePayloads(employees),
		`"additionalSkills": ["skills the employee brings beyond the requirement"]`,
	)
	if err != nil {
		return nil, err
	}

	raw, err := r.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("gemini employee recommendations response",
		zap.String("project_id", proj.ID.String()),
		zap.Int("response_length", len(raw)),
	)

	records, err := parseRecords(raw)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	out := make([]ai.EmployeeRecommendation, 0, len(records))
	for _, rec := range records {
		id, err := uuid.Parse(strings.TrimSpace(rec.ID))
		if err != nil {
			continue
		}
		e, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, ai.EmployeeRecommendation{
			Employee:         e,
			Score:            clampScore(rec.Score),
			MatchingSkills:   cleanSkills(rec.MatchingSkills),
			AdditionalSkills: cleanSkills(rec.AdditionalSkills),
			Reasoning:        strings.TrimSpace(rec.Reasoning),
			Level:            resolveLevel(rec, len(proj.RequiredSkills)),
		})
	}
	if len(out) == 0 && len(employees) > 0 {
		return nil, errors.New("gemini response referenced no known employees")
	}
	return out, nil
}

func buildPrompt(task string, subject candidatePayload, candidates []candidatePayload, extraField string) (string, error) {
	subjectJSON, err := json.MarshalIndent(subject, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal subject payload: %w", err)
	}
	candidatesJSON, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidates payload: %w", err)
	}

	var b strings.Builder
	b.WriteString(task)
	b.WriteString("\n\nSubject:\n")
	b.Write(subjectJSON)
	b.WriteString("\n\nCandidates:\n")
	b.Write(candidatesJSON)
	b.WriteString("\n\nRespond with ONLY a JSON array, no prose. Each element:\n")
	b.WriteString(`{"id": "<candidate id>", "score": 0-100, "matchingSkills": ["..."], `)
	b.WriteString(extraField)
	b.WriteString(`, "reasoning": "one sentence", "recommendationLevel": "perfect|good|partial|stretch"}`)
	b.WriteString("\nOmit candidates with no plausible fit. Sort by score descending.")
	return b.String(), nil
}

func parseRecords(raw string) ([]aiRecord, error) {
	cleaned := extractJSON(raw)

	var records []aiRecord
	if err := json.Unmarshal([]byte(cleaned), &records); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}
	return records, nil
}

// extractJSON strips markdown code fences the model sometimes wraps its
// output in.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// resolveLevel trusts the model's tier label when it is one of the known
// values, and otherwise re-derives the tier from the score and the actual
// requirement size. The model's own skill lists can under-count when it
// omits skills, so they are only a last resort.
func resolveLevel(rec aiRecord, requiredCount int) matching.Tier {
	if tier, ok := matching.ParseTier(rec.RecommendationLevel); ok {
		return tier
	}
	matched := len(cleanSkills(rec.MatchingSkills))
	if requiredCount <= 0 {
		requiredCount = matched + len(cleanSkills(rec.MissingSkills))
	}
	return matching.Classify(clampScore(rec.Score), matched, requiredCount)
}

func clampScore(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func employeePayload(e employee.Employee) candidatePayload {
	return candidatePayload{
		ID:              e.ID.String(),
		Name:            e.Name,
		Skills:          e.Skills,
		ExperienceLevel: e.ExperienceLevel.String(),
		Department:      e.Department,
	}
}

func employeePayloads(list []employee.Employee) []candidatePayload {
	out := make([]candidatePayload, 0, len(list))
	for _, e := range list {
		out = append(out, employeePayload(e))
	}
	return out
}

func projectPayload(p project.Project) candidatePayload {
	return candidatePayload{
		ID:             p.ID.String(),
		Title:          p.Title,
		Description:    p.Description,
		RequiredSkills: p.RequiredSkills,
	}
}

func projectPayloads(list []project.Project) []candidatePayload {
	out := make([]candidatePayload, 0, len(list))
	for _, p := range list {
		out = append(out, projectPayload(p))
	}
	return out
}
