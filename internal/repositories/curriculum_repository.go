package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"koinonia/internal/models"
)

type CurriculumRepository struct {
	db Querier
}

func NewCurriculumRepository(db Querier) *CurriculumRepository {
	return &CurriculumRepository{db: db}
}

// GetByTitle looks a curriculum up by title, the natural key used during
// seeding.
func (r *CurriculumRepository) GetByTitle(ctx context.Context, title string) (*models.Curriculum, error) {
	query := `
		SELECT id, title, theme, organ_focus, duration_weeks, description, created_at
		FROM reading.curricula WHERE title = $1
	`
	var c models.Curriculum
	err := r.db.QueryRow(ctx, query, title).Scan(
		&c.ID, &c.Title, &c.Theme, &c.OrganFocus, &c.DurationWeeks, &c.Description, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CurriculumRepository) Insert(ctx context.Context, c *models.Curriculum) (int, error) {
	query := `
		INSERT INTO reading.curricula (title, theme, organ_focus, duration_weeks, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		c.Title, c.Theme, c.OrganFocus, c.DurationWeeks, c.Description,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CurriculumRepository) InsertSession(ctx context.Context, s *models.ReadingSession) (int, error) {
	query := `
		INSERT INTO reading.sessions (curriculum_id, week, title)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query, s.CurriculumID, s.Week, s.Title).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// LinkEntry attaches a reading entry to a session. Duplicate links are
// silently ignored.
func (r *CurriculumRepository) LinkEntry(ctx context.Context, sessionID, entryID int) error {
	query := `
		INSERT INTO reading.session_entries (session_id, entry_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, sessionID, entryID)
	return err
}

func (r *CurriculumRepository) InsertQuestion(ctx context.Context, q *models.DiscussionQuestion) error {
	query := `
		INSERT INTO reading.discussion_questions (session_id, question_text, category)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, q.SessionID, q.QuestionText, q.Category)
	return err
}

func (r *CurriculumRepository) InsertGuide(ctx context.Context, g *models.Guide) error {
	query := `
		INSERT INTO reading.guides
		(session_id, opening_questions, deep_dive_questions, activities, closing_reflection)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		g.SessionID, g.OpeningQuestions, g.DeepDiveQuestions, g.Activities, g.ClosingReflection,
	)
	return err
}
