package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/flowpad-app/flowpad-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects, their
// tags, and their flow blobs. Every query that takes a project id also
// filters by the owning user id, so a foreign project is indistinguishable
// from a missing one.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and its normalized tags in one transaction, so
// readers never see a project with a partial tag set.
func (r *ProjectRepository) Create(ctx context.Context, userID int, in domain.CreateInput) (*domain.Project, error) {
	tags := domain.NormalizeTags(in.Tags)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create project: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p := &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		IsPrivate:   in.IsPrivate,
		UserID:      userID,
		Tags:        tags,
	}
	err = tx.QueryRowContext(ctx, `
INSERT INTO projects (name, description, is_private, user_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`, in.Name, in.Description, in.IsPrivate, userID).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	if err := insertTags(ctx, tx, p.ID, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create project: %w", err)
	}
	return p, nil
}

// List returns all projects owned by userID, newest first, with their tags
// resolved in a single batched query.
func (r *ProjectRepository) List(ctx context.Context, userID int) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, description, is_private, user_id, created_at
FROM projects
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	ids := make([]int64, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		p.Tags = []string{}
		out = append(out, p)
		ids = append(ids, int64(p.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	tagRows, err := r.db.QueryContext(ctx, `
SELECT project_id, name
FROM tags
WHERE project_id = ANY($1)
ORDER BY id
`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer tagRows.Close()

	byID := make(map[int]*domain.Project, len(out))
	for i := range out {
		byID[out[i].ID] = &out[i]
	}
	for tagRows.Next() {
		var projectID int
		var name string
		if err := tagRows.Scan(&projectID, &name); err != nil {
			return nil, err
		}
		if p, ok := byID[projectID]; ok {
			p.Tags = append(p.Tags, name)
		}
	}
	return out, tagRows.Err()
}

// Get returns a single project, owner-filtered.
func (r *ProjectRepository) Get(ctx context.Context, id, userID int) (*domain.Project, error) {
	p := &domain.Project{}
	err := scanProject(r.db.QueryRowContext(ctx, `
SELECT id, name, description, is_private, user_id, created_at
FROM projects
WHERE id = $1 AND user_id = $2
`, id, userID), p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	tags, err := r.projectTags(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	p.Tags = tags
	return p, nil
}

// Update applies a partial update inside one transaction, locking the row
// first. When tags are present the stored set is replaced wholesale, never
// merged, and no reader observes the window between delete and re-insert.
func (r *ProjectRepository) Update(ctx context.Context, id, userID int, in domain.UpdateInput) (*domain.Project, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update project: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var locked int
	err = tx.QueryRowContext(ctx, `
SELECT id FROM projects
WHERE id = $1 AND user_id = $2
FOR UPDATE
`, id, userID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock project: %w", err)
	}

	if in.Name != nil {
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET name = $1 WHERE id = $2`, *in.Name, id); err != nil {
			return nil, fmt.Errorf("update name: %w", err)
		}
	}
	if in.Description != nil {
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET description = $1 WHERE id = $2`, *in.Description, id); err != nil {
			return nil, fmt.Errorf("update description: %w", err)
		}
	}
	if in.IsPrivate != nil {
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET is_private = $1 WHERE id = $2`, *in.IsPrivate, id); err != nil {
			return nil, fmt.Errorf("update is_private: %w", err)
		}
	}

	if in.Tags != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE project_id = $1`, id); err != nil {
			return nil, fmt.Errorf("delete tags: %w", err)
		}
		if err := insertTags(ctx, tx, id, domain.NormalizeTags(in.Tags)); err != nil {
			return nil, err
		}
	}

	p := &domain.Project{}
	err = scanProject(tx.QueryRowContext(ctx, `
SELECT id, name, description, is_private, user_id, created_at
FROM projects
WHERE id = $1
`, id), p)
	if err != nil {
		return nil, fmt.Errorf("reload project: %w", err)
	}
	tags, err := r.projectTags(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	p.Tags = tags

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update project: %w", err)
	}
	return p, nil
}

// Delete removes the project; its tags cascade through the FK.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID int) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM projects
WHERE id = $1 AND user_id = $2
`, id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SaveFlow upserts the project's single flow blob.
func (r *ProjectRepository) SaveFlow(ctx context.Context, projectID, userID int, blob string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE projects
SET flow_blob = $1, flow_updated_at = now()
WHERE id = $2 AND user_id = $3
`, blob, projectID, userID)
	if err != nil {
		return fmt.Errorf("save flow: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save flow: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetFlow returns the stored flow verbatim. A project that never saved a
// flow yields ErrFlowNotSaved, which is not a failure for the caller.
func (r *ProjectRepository) GetFlow(ctx context.Context, projectID, userID int) (*domain.Flow, error) {
	var blob sql.NullString
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT flow_blob, flow_updated_at
FROM projects
WHERE id = $1 AND user_id = $2
`, projectID, userID).Scan(&blob, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get flow: %w", err)
	}

	if !blob.Valid {
		return nil, domain.ErrFlowNotSaved
	}
	return &domain.Flow{Blob: blob.String, UpdatedAt: updatedAt.Time}, nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *ProjectRepository) projectTags(ctx context.Context, q querier, projectID int) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
SELECT name FROM tags
WHERE project_id = $1
ORDER BY id
`, projectID)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

func insertTags(ctx context.Context, tx *sql.Tx, projectID int, tags []string) error {
	for _, name := range tags {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO tags (name, project_id) VALUES ($1, $2)
`, name, projectID); err != nil {
			return fmt.Errorf("insert tag: %w", err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner, p *domain.Project) error {
	var description sql.NullString
	err := row.Scan(&p.ID, &p.Name, &description, &p.IsPrivate, &p.UserID, &p.CreatedAt)
	if err != nil {
		return err
	}
	if description.Valid {
		p.Description = &description.String
	}
	return nil
}
