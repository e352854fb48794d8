package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/database"
	"github.com/jstewart-stratos/InternalTalentPlatform-sub000/internal/domain/project"
)

type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	List(ctx context.Context, limit int) ([]project.Project, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(required_skills, '{}'), COALESCE(priority, ''), COALESCE(status, '')
		 FROM projects
		 WHERE id = $1`,
		id,
	)

	var out project.Project
	if err := row.Scan(&out.ID, &out.Title, &out.Description, &out.RequiredSkills, &out.Priority, &out.Status); err != nil {
		if isNoRows(err) {
			return project.Project{}, ErrNotFound
		}
		return project.Project{}, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context, limit int) ([]project.Project, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(required_skills, '{}'), COALESCE(priority, ''), COALESCE(status, '')
		 FROM projects
		 WHERE COALESCE(status, '') <> 'archived'
		 ORDER BY title ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		var it project.Project
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.RequiredSkills, &it.Priority, &it.Status); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
