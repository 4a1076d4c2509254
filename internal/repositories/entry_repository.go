package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"koinonia/internal/models"
)

type EntryRepository struct {
	db Querier
}

func NewEntryRepository(db Querier) *EntryRepository {
	return &EntryRepository{db: db}
}

const entryColumns = `id, title, author, source_type, url, pages, difficulty, organ_tags`

func scanEntryRows(rows pgx.Rows) ([]models.Entry, error) {
	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Author, &e.SourceType, &e.URL, &e.Pages, &e.Difficulty, &e.OrganTags); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *EntryRepository) List(ctx context.Context) ([]models.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM reading.entries
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntryRows(rows)
}

// ListFiltered returns entries matching the optional organ tag and
// difficulty filters. Empty strings mean "no filter".
func (r *EntryRepository) ListFiltered(ctx context.Context, organ, difficulty string) ([]models.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM reading.entries
		WHERE ($1 = '' OR $1 = ANY(organ_tags))
		  AND ($2 = '' OR difficulty = $2)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, organ, difficulty)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntryRows(rows)
}

// GetByTitleAuthor looks an entry up by its natural key.
func (r *EntryRepository) GetByTitleAuthor(ctx context.Context, title, author string) (*models.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM reading.entries WHERE title = $1 AND author = $2
	`
	var e models.Entry
	err := r.db.QueryRow(ctx, query, title, author).Scan(
		&e.ID, &e.Title, &e.Author, &e.SourceType, &e.URL, &e.Pages, &e.Difficulty, &e.OrganTags,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EntryRepository) Insert(ctx context.Context, entry *models.Entry) (int, error) {
	query := `
		INSERT INTO reading.entries (title, author, source_type, url, pages, difficulty, organ_tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		entry.Title, entry.Author, entry.SourceType, entry.URL, entry.Pages, entry.Difficulty, entry.OrganTags,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Search runs a full-text query over entry titles and authors.
func (r *EntryRepository) Search(ctx context.Context, q string, limit int) ([]models.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM reading.entries
		WHERE search_vector @@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntryRows(rows)
}
