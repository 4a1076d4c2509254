package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"koinonia/internal/models"
)

type SalonRepository struct {
	db Querier
}

func NewSalonRepository(db Querier) *SalonRepository {
	return &SalonRepository{db: db}
}

const salonColumns = `id, title, date, format, facilitator, recording_url, notes, organ_tags, created_at`

func scanSalonRows(rows pgx.Rows) ([]models.SalonSession, error) {
	var sessions []models.SalonSession
	for rows.Next() {
		var s models.SalonSession
		if err := rows.Scan(&s.ID, &s.Title, &s.Date, &s.Format, &s.Facilitator,
			&s.RecordingURL, &s.Notes, &s.OrganTags, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetByTitleDate looks a session up by its natural key (used to keep
// seeding idempotent).
func (r *SalonRepository) GetByTitleDate(ctx context.Context, title string, date time.Time) (*models.SalonSession, error) {
	query := `
		SELECT ` + salonColumns + `
		FROM salons.sessions WHERE title = $1 AND date = $2
	`
	var s models.SalonSession
	err := r.db.QueryRow(ctx, query, title, date).Scan(
		&s.ID, &s.Title, &s.Date, &s.Format, &s.Facilitator,
		&s.RecordingURL, &s.Notes, &s.OrganTags, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SalonRepository) Insert(ctx context.Context, session *models.SalonSession) (int, error) {
	query := `
		INSERT INTO salons.sessions (title, date, format, facilitator, notes, organ_tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		session.Title, session.Date, session.Format, session.Facilitator, session.Notes, session.OrganTags,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SalonRepository) InsertParticipant(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO salons.participants (session_id, name, role, consent_given)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, p.SessionID, p.Name, p.Role, p.ConsentGiven)
	return err
}

func (r *SalonRepository) InsertSegment(ctx context.Context, seg *models.Segment) error {
	query := `
		INSERT INTO salons.segments (session_id, speaker, text, start_seconds, end_seconds, confidence)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		seg.SessionID, seg.Speaker, seg.Text, seg.StartSeconds, seg.EndSeconds, seg.Confidence,
	)
	return err
}

// SearchSessions runs a full-text query over session titles and notes.
func (r *SalonRepository) SearchSessions(ctx context.Context, q string, limit int) ([]models.SalonSession, error) {
	query := `
		SELECT ` + salonColumns + `
		FROM salons.sessions
		WHERE search_vector @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSalonRows(rows)
}

// SearchSegments runs a full-text query over transcript segments.
func (r *SalonRepository) SearchSegments(ctx context.Context, q string, limit int) ([]models.Segment, error) {
	query := `
		SELECT id, session_id, speaker, text, start_seconds, end_seconds, confidence
		FROM salons.segments
		WHERE search_vector @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segments []models.Segment
	for rows.Next() {
		var s models.Segment
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Speaker, &s.Text,
			&s.StartSeconds, &s.EndSeconds, &s.Confidence); err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	return segments, rows.Err()
}
