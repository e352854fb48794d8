package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/database"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/employee"
)

var ErrNotFound = errors.New("not found")

type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (employee.Employee, error)
	List(ctx context.Context, limit int) ([]employee.Employee, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (employee.Employee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(skills, '{}'), COALESCE(experience_level, ''), COALESCE(department, '')
		 FROM employees
		 WHERE id = $1`,
		id,
	)

	var out employee.Employee
	var level string
	if err := row.Scan(&out.ID, &out.Name, &out.Skills, &level, &out.Department); err != nil {
		if isNoRows(err) {
			return employee.Employee{}, ErrNotFound
		}
		return employee.Employee{}, err
	}
	out.ExperienceLevel = employee.ParseExperienceLevel(level)
	return out, nil
}

func (r *PostgresEmployeeRepository) List(ctx context.Context, limit int) ([]employee.Employee, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(skills, '{}'), COALESCE(experience_level, ''), COALESCE(department, '')
		 FROM employees
		 ORDER BY name ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employee.Employee, 0)
	for rows.Next() {
		var it employee.Employee
		var level string
		if err := rows.Scan(&it.ID, &it.Name, &it.Skills, &level, &it.Department); err != nil {
			return nil, err
		}
		it.ExperienceLevel = employee.ParseExperienceLevel(level)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
