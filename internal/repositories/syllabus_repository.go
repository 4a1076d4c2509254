package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"koinonia/internal/models"
)

type SyllabusRepository struct {
	db Querier
}

func NewSyllabusRepository(db Querier) *SyllabusRepository {
	return &SyllabusRepository{db: db}
}

// CreatePath persists a learner profile, its learning path, and all path
// modules inside a single transaction. Nothing is written if any insert
// fails.
func (r *SyllabusRepository) CreatePath(
	ctx context.Context,
	learner *models.LearnerProfile,
	path *models.LearningPath,
	modules []models.LearningModule,
) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO syllabus.learner_profiles (name, organs_of_interest, level)
		VALUES ($1, $2, $3)
		RETURNING id
	`, learner.Name, learner.OrgansOfInterest, learner.Level).Scan(&learner.ID)
	if err != nil {
		return fmt.Errorf("failed to insert learner profile: %w", err)
	}

	path.LearnerID = learner.ID
	err = tx.QueryRow(ctx, `
		INSERT INTO syllabus.learning_paths (path_id, title, learner_id, total_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, path.PathID, path.Title, path.LearnerID, path.TotalHours).Scan(&path.ID)
	if err != nil {
		return fmt.Errorf("failed to insert learning path: %w", err)
	}

	for i := range modules {
		modules[i].PathID = path.ID
		m := &modules[i]
		_, err = tx.Exec(ctx, `
			INSERT INTO syllabus.learning_modules
			(path_id, module_id, title, organ, difficulty, readings, questions, estimated_hours, seq)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, m.PathID, m.ModuleID, m.Title, m.Organ, m.Difficulty, m.Readings, m.Questions, m.EstimatedHours, m.Seq)
		if err != nil {
			return fmt.Errorf("failed to insert learning module %s: %w", m.ModuleID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit learning path: %w", err)
	}
	return nil
}

// GetPath fetches a learning path and its modules by external path_id.
func (r *SyllabusRepository) GetPath(ctx context.Context, pathID string) (*models.LearningPath, error) {
	var p models.LearningPath
	err := r.db.QueryRow(ctx, `
		SELECT id, path_id, title, learner_id, total_hours, created_at
		FROM syllabus.learning_paths WHERE path_id = $1
	`, pathID).Scan(&p.ID, &p.PathID, &p.Title, &p.LearnerID, &p.TotalHours, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, path_id, module_id, title, organ, difficulty, readings, questions, estimated_hours, seq
		FROM syllabus.learning_modules WHERE path_id = $1
		ORDER BY seq
	`, p.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m models.LearningModule
		if err := rows.Scan(&m.ID, &m.PathID, &m.ModuleID, &m.Title, &m.Organ,
			&m.Difficulty, &m.Readings, &m.Questions, &m.EstimatedHours, &m.Seq); err != nil {
			return nil, err
		}
		p.Modules = append(p.Modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPaths returns all learning paths, newest first, without modules.
func (r *SyllabusRepository) ListPaths(ctx context.Context) ([]models.LearningPath, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, path_id, title, learner_id, total_hours, created_at
		FROM syllabus.learning_paths
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []models.LearningPath
	for rows.Next() {
		var p models.LearningPath
		if err := rows.Scan(&p.ID, &p.PathID, &p.Title, &p.LearnerID, &p.TotalHours, &p.CreatedAt); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
