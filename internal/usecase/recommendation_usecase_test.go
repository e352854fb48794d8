package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/ai"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/employee"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/project"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/skillgraph"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/repository"
)

type memEmployeeRepo struct {
	byID    map[uuid.UUID]employee.Employee
	listErr error
}

func (r *memEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (employee.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, repository.ErrNotFound
	}
	return e, nil
}

func (r *memEmployeeRepo) List(_ context.Context, _ int) ([]employee.Employee, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]employee.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

type memProjectRepo struct {
	byID    map[uuid.UUID]project.Project
	list    []project.Project
	listErr error
}

func (r *memProjectRepo) FindByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return project.Project{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *memProjectRepo) List(_ context.Context, _ int) ([]project.Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.list, nil
}

type memCache struct {
	data map[string][]byte
	sets int
	gets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.gets++
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func newRecommendationFixture(primary ai.Recommender, cache RecommendationCache) (*Recommendation, employee.Employee, project.Project) {
	emp := testEmployee([]string{"go", "postgresql"}, employee.ExperienceSenior)
	proj := testProject("Billing Rewrite", []string{"go", "postgresql"})

	employees := &memEmployeeRepo{byID: map[uuid.UUID]employee.Employee{emp.ID: emp}}
	projects := &memProjectRepo{
		byID: map[uuid.UUID]project.Project{proj.ID: proj},
		list: []project.Project{proj},
	}

	engine := NewOrchestrator(primary, newTestFallback(), nil)
	uc := NewRecommendationUsecase(employees, projects, engine, cache, time.Minute)
	return uc, emp, proj
}

func TestRecommendation_ProjectsForEmployee(t *testing.T) {
	uc, emp, proj := newRecommendationFixture(nil, nil)

	set, err := uc.ProjectsForEmployee(context.Background(), emp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Source != ai.SourceHeuristic {
		t.Fatalf("expected source=heuristic, got %s", set.Source)
	}
	if len(set.Items) != 1 || set.Items[0].Project.ID != proj.ID {
		t.Fatalf("expected the seeded project recommended, got %+v", set.Items)
	}
}

func TestRecommendation_EmployeesForProject(t *testing.T) {
	uc, emp, proj := newRecommendationFixture(nil, nil)

	set, err := uc.EmployeesForProject(context.Background(), proj.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Items) != 1 || set.Items[0].Employee.ID != emp.ID {
		t.Fatalf("expected the seeded employee recommended, got %+v", set.Items)
	}
}

func TestRecommendation_InvalidInput(t *testing.T) {
	uc, _, _ := newRecommendationFixture(nil, nil)

	if _, err := uc.ProjectsForEmployee(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.EmployeesForProject(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendation_NotFound(t *testing.T) {
	uc, _, _ := newRecommendationFixture(nil, nil)

	if _, err := uc.ProjectsForEmployee(context.Background(), uuid.New()); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := uc.EmployeesForProject(context.Background(), uuid.New()); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestRecommendation_CacheHitSkipsEngine(t *testing.T) {
	cache := newMemCache()
	primary := &stubRecommender{err: errors.New("should not be reached on cache hit")}
	uc, emp, _ := newRecommendationFixture(primary, cache)

	first, err := uc.ProjectsForEmployee(context.Background(), emp.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
	callsAfterFirst := primary.calls

	second, err := uc.ProjectsForEmployee(context.Background(), emp.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if primary.calls != callsAfterFirst {
		t.Fatalf("primary invoked on cache hit")
	}
	if second.Source != first.Source || len(second.Items) != len(first.Items) {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestRecommendation_AIFallbackEquivalence(t *testing.T) {
	failing := &stubRecommender{err: errors.New("quota exhausted")}
	ucFailing, emp, _ := newRecommendationFixture(failing, nil)
	ucHeuristic, _, _ := newRecommendationFixture(nil, nil)

	// Same fixture data in both, so the fallback path must match the pure
	// heuristic path item for item.
	gotFailing, err := ucFailing.ProjectsForEmployee(context.Background(), emp.ID)
	if err != nil {
		t.Fatalf("fallback path errored: %v", err)
	}

	empH, _ := ucHeuristic.employees.List(context.Background(), 1)
	gotHeuristic, err := ucHeuristic.ProjectsForEmployee(context.Background(), empH[0].ID)
	if err != nil {
		t.Fatalf("heuristic path errored: %v", err)
	}

	if gotFailing.Source != ai.SourceHeuristic || gotHeuristic.Source != ai.SourceHeuristic {
		t.Fatalf("expected heuristic source on both paths")
	}
	if len(gotFailing.Items) != len(gotHeuristic.Items) {
		t.Fatalf("item count differs: %d vs %d", len(gotFailing.Items), len(gotHeuristic.Items))
	}
	for i := range gotFailing.Items {
		if gotFailing.Items[i].Score != gotHeuristic.Items[i].Score {
			t.Fatalf("score differs at idx=%d", i)
		}
		if gotFailing.Items[i].Reasoning != gotHeuristic.Items[i].Reasoning {
			t.Fatalf("reasoning differs at idx=%d", i)
		}
	}
}

func TestRecommendation_ListErrorIsInternal(t *testing.T) {
	emp := testEmployee([]string{"go"}, employee.ExperienceMid)
	employees := &memEmployeeRepo{byID: map[uuid.UUID]employee.Employee{emp.ID: emp}}
	projects := &memProjectRepo{byID: map[uuid.UUID]project.Project{}, listErr: errors.New("connection reset")}

	engine := NewOrchestrator(nil, NewHeuristicRecommender(NewSkillMatcher(skillgraph.Default())), nil)
	uc := NewRecommendationUsecase(employees, projects, engine, nil, time.Minute)

	if _, err := uc.ProjectsForEmployee(context.Background(), emp.ID); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
